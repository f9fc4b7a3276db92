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

package resolver

import (
	"go.uber.org/zap"

	"dirpx.dev/idref/apis"
	"dirpx.dev/idref/lookup"
	uscan "dirpx.dev/idref/utils/scan"
)

// Option configures a resolver during construction.
type Option func(*resolver)

// WithLogger attaches a logger for collision-repair observability.
// Defaults to a no-op logger. Repairs never surface as errors; the log is
// the only place they are visible.
func WithLogger(log *zap.Logger) Option {
	return func(r *resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithLookups replaces the default lookup chain. Nil lookups are ignored.
// The chain is tried in order for every Resolve call; chain a verified
// index in front of the scan only when entity handles outlive removal
// (see lookup.NewIndex).
func WithLookups(lookups ...apis.Lookup) Option {
	return func(r *resolver) {
		out := make([]apis.Lookup, 0, len(lookups))
		for _, l := range lookups {
			if l != nil {
				out = append(out, l)
			}
		}
		if len(out) > 0 {
			r.lookups = out
		}
	}
}

// New constructs an apis.Resolver over pool, allocating fresh ids from ctr.
//
// The resolver owns the lazy-assignment policy: an entity's id is created
// the first time it is read through EnsureID, not when the host creates
// the entity. Because the host exposes no duplication-complete event,
// every EnsureID and Resolve call doubles as a collision check over the
// whole pool; duplicated ids persist undetected only until one of the
// colliding entities is accessed here.
func New(cfg apis.Config, pool apis.Pool, ctr apis.Counter, opts ...Option) apis.Resolver {
	r := &resolver{
		cfg:     cfg,
		pool:    pool,
		ctr:     ctr,
		lookups: []apis.Lookup{lookup.NewScan()},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// resolver implements apis.Resolver. All methods run synchronously on the
// host's control thread; scans observe a consistent pool snapshot because
// nothing mutates the pool mid-call.
type resolver struct {
	cfg     apis.Config
	pool    apis.Pool
	ctr     apis.Counter
	lookups []apis.Lookup
	log     *zap.Logger
}

// Ensure resolver implements apis.Resolver.
var _ apis.Resolver = (*resolver)(nil)

// EnsureID returns e's effective id, assigning one from the counter when
// unset. Reading for the first time mutates storage.
func (r *resolver) EnsureID(e apis.Entity) int64 {
	if e == nil {
		return 0
	}

	if _, ok := e.PeekID(); !ok {
		// The counter reconciles its floor against the pool before
		// handing out, so the fresh value cannot collide with anything
		// currently stored.
		id := r.ctr.Next()
		e.SetID(id)
		eff := id + uscan.Offset(e, r.cfg)
		r.log.Debug("assigned entity id",
			zap.String("namespace", e.Namespace()),
			zap.String("entity", e.Name()),
			zap.Int64("id", eff))
		return eff
	}

	eff, _ := uscan.EffectiveID(e, r.cfg)
	r.repair(eff)
	// e itself may have lost the tie-break; re-read before returning.
	eff, _ = uscan.EffectiveID(e, r.cfg)
	return eff
}

// PeekID returns e's effective id without assigning or repairing anything.
func (r *resolver) PeekID(e apis.Entity) (int64, bool) {
	if e == nil {
		return 0, false
	}
	return uscan.EffectiveID(e, r.cfg)
}

// Resolve returns the live entity currently holding id.
func (r *resolver) Resolve(id int64) (apis.Entity, bool) {
	if id < r.cfg.FirstID {
		return nil, false
	}
	r.repair(id)
	for _, l := range r.lookups {
		if e, ok := l.TryLookup(id, r.pool, r.cfg); ok {
			r.record(id, e)
			return e, true
		}
	}
	return nil, false
}

// Sweep clears later-scanned duplicate ids across the whole pool and
// informs the counter of every locally stored id. Hosts call it once
// after load/reload.
func (r *resolver) Sweep() {
	if r.pool == nil {
		return
	}
	seen := make(map[int64]struct{})
	for _, e := range r.pool.Entities() {
		id, ok := uscan.EffectiveID(e, r.cfg)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			// Later-scanned duplicate: unset and let it regenerate
			// lazily with a unique value.
			e.ClearID()
			r.log.Info("cleared duplicate id during sweep",
				zap.String("namespace", e.Namespace()),
				zap.String("entity", e.Name()),
				zap.Int64("id", id))
			continue
		}
		seen[id] = struct{}{}
		if stored, ok := e.PeekID(); ok && uscan.Offset(e, r.cfg) == 0 {
			r.ctr.Observe(e.Namespace(), stored)
		}
	}
}

// repair scans for entities sharing id and re-allocates every holder after
// the first in scan order. Silent corrective action: callers still get a
// correct answer, so nothing is reported as a failure.
func (r *resolver) repair(id int64) {
	holders := uscan.Holders(r.pool, id, r.cfg)
	if len(holders) < 2 {
		return
	}
	for _, loser := range holders[1:] {
		fresh := r.ctr.Next()
		loser.SetID(fresh)
		r.log.Info("repaired id collision",
			zap.Int64("id", id),
			zap.String("namespace", loser.Namespace()),
			zap.String("entity", loser.Name()),
			zap.Int64("new_id", fresh+uscan.Offset(loser, r.cfg)))
	}
}

// record feeds a successful resolution to every recording lookup in the
// chain (e.g. the verified index).
func (r *resolver) record(id int64, e apis.Entity) {
	for _, l := range r.lookups {
		if rec, ok := l.(lookup.Recorder); ok {
			rec.Record(id, e)
		}
	}
}
