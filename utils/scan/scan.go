/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package scan

import (
	"dirpx.dev/idref/apis"
	"dirpx.dev/idref/config"
)

// Offset returns the effective-id offset for e: zero for local entities,
// (index+1)*LinkSpace for entities linked in from library index.
func Offset(e apis.Entity, cfg apis.Config) int64 {
	l, ok := e.(apis.Linker)
	if !ok {
		return 0
	}
	idx, ok := l.LinkIndex()
	if !ok {
		return 0
	}
	space := cfg.LinkSpace
	if space <= 0 {
		space = config.DefaultLinkSpace
	}
	return (idx + 1) * space
}

// EffectiveID returns the id e presents to the rest of the system: the
// stored id plus the link-space offset. ok=false when no id is stored.
func EffectiveID(e apis.Entity, cfg apis.Config) (int64, bool) {
	id, ok := e.PeekID()
	if !ok {
		return 0, false
	}
	return id + Offset(e, cfg), true
}

// MaxStoredID returns the highest stored id among local (non-linked)
// entities of pool, or 0 when none carries an id. This is the ground truth
// a counter reconciles its floor against: linked entities are skipped
// because their stored ids belong to the source library's value space.
func MaxStoredID(pool apis.Pool) int64 {
	if pool == nil {
		return 0
	}
	var max int64
	for _, e := range pool.Entities() {
		if linked(e) {
			continue
		}
		if id, ok := e.PeekID(); ok && id > max {
			max = id
		}
	}
	return max
}

// Holders returns every entity of pool whose effective id equals id, in
// scan order. More than one element means an id collision.
func Holders(pool apis.Pool, id int64, cfg apis.Config) []apis.Entity {
	if pool == nil {
		return nil
	}
	var out []apis.Entity
	for _, e := range pool.Entities() {
		if eid, ok := EffectiveID(e, cfg); ok && eid == id {
			out = append(out, e)
		}
	}
	return out
}

// FindByID returns the first entity in scan order whose effective id
// equals id, or ok=false when no live entity holds it.
func FindByID(pool apis.Pool, id int64, cfg apis.Config) (apis.Entity, bool) {
	if pool == nil {
		return nil, false
	}
	for _, e := range pool.Entities() {
		if eid, ok := EffectiveID(e, cfg); ok && eid == id {
			return e, true
		}
	}
	return nil, false
}

// linked reports whether e carries a link index.
func linked(e apis.Entity) bool {
	l, ok := e.(apis.Linker)
	if !ok {
		return false
	}
	_, ok = l.LinkIndex()
	return ok
}
