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

package lookup

import (
	"dirpx.dev/idref/apis"
	uscan "dirpx.dev/idref/utils/scan"
)

// NewIndex creates an opt-in apis.Lookup that remembers id->entity
// associations from previous resolutions.
//
// Every hit is verified against the entity's current stored id before it
// is returned; a stale association (the entity was reassigned a new id
// during collision repair, or its storage was rewritten by the host) falls
// through as a miss and gets dropped. The index is therefore only a fast
// path: chain it in front of the scan lookup, which refreshes it on every
// miss.
//
// Verification covers reassignment but not deletion: an entity handle must
// stay valid (never dangle) after the host removes the entity from the
// pool, reading as an empty shell at worst. Hosts that cannot guarantee
// that must stay on the plain scan lookup. This trade-off is the reason
// the index is not part of the default chain.
func NewIndex() apis.Lookup {
	return &indexLookup{byID: make(map[int64]apis.Entity)}
}

// indexLookup is a verified reverse index over prior resolutions.
type indexLookup struct {
	byID map[int64]apis.Entity
}

// Ensure indexLookup implements apis.Lookup.
var _ apis.Lookup = (*indexLookup)(nil)

// TryLookup returns a remembered entity if it still holds id.
func (l *indexLookup) TryLookup(id int64, pool apis.Pool, cfg apis.Config) (apis.Entity, bool) {
	e, ok := l.byID[id]
	if !ok {
		return nil, false
	}
	// Verify against current storage; never trust the cached association.
	if eid, ok := uscan.EffectiveID(e, cfg); ok && eid == id {
		return e, true
	}
	delete(l.byID, id)
	return nil, false
}

// Record remembers a resolved association for future fast-path hits.
// The resolver calls it after every successful resolution.
func (l *indexLookup) Record(id int64, e apis.Entity) {
	l.byID[id] = e
}

// Recorder is implemented by lookups that want to be fed successful
// resolutions produced further down the chain.
type Recorder interface {
	// Record remembers that e currently holds id.
	Record(id int64, e apis.Entity)
}
