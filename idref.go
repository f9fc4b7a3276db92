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

package idref

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/idref/apis"
	"dirpx.dev/idref/builder"
	"dirpx.dev/idref/config"
	"dirpx.dev/idref/pool"
)

// init initializes the global idref state.
func init() {
	// Initialize state with default cfg, an empty in-memory pool, and
	// built ctr/res. Hosts with a native pool call SetPool.
	s := &state{cfg: config.DefaultConfig(), pool: pool.New()}
	b := builder.New()
	s.ctr = b.BuildCounter(s.cfg, s.pool, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.pool, s.ctr, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilCounter is returned when a builder returns a nil counter.
	ErrNilCounter = errors.New("idref: builder returned nil counter")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("idref: builder returned nil resolver")
)

// EnsureID returns e's unique id, assigning one when unset, using the
// global idref resolver.
// This is a convenience wrapper around the global res.
func EnsureID(e apis.Entity) int64 {
	return st.Load().res.EnsureID(e)
}

// PeekID returns e's unique id without assigning one, using the global
// idref resolver.
// This is a convenience wrapper around the global res.
func PeekID(e apis.Entity) (int64, bool) {
	return st.Load().res.PeekID(e)
}

// Resolve returns the entity currently holding id, using the global idref
// resolver.
// This is a convenience wrapper around the global res.
func Resolve(id int64) (apis.Entity, bool) {
	return st.Load().res.Resolve(id)
}

// Sweep runs the global resolver's post-load duplicate sweep.
// This is a convenience wrapper around the global res.
func Sweep() {
	st.Load().res.Sweep()
}

// SetAll explicitly sets all global idref state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, p apis.Pool, ctr apis.Counter, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Pool
	npool := old.pool
	if p != nil {
		npool = p
	}

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Counter
	nctr := ctr
	npctr := false
	if nctr == nil {
		nctr = nbld.BuildCounter(ncfg, npool, old.ctr, next)
	} else {
		npctr = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, npool, nctr, old.res, next)
	} else {
		npres = true
	}

	// Ensure non-nil ctr and res.
	if nctr == nil {
		panic(ErrNilCounter)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			pool: npool,
			ctr:  nctr,
			res:  nres,
			bld:  nbld,
			pctr: npctr,
			pres: npres,
		},
	)
}

// Config returns the global idref configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global idref configuration to cfg.
// It rebuilds the global ctr and res using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new ctr and res based on the new cfg and old state.
	nctr := old.ctr
	if !old.pctr {
		nctr = b.BuildCounter(cfg, old.pool, old.ctr, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, old.pool, nctr, old.res, old.ext)
	}

	// Ensure non-nil ctr and res.
	if nctr == nil {
		panic(ErrNilCounter)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  nctr,
			res:  nres,
			bld:  b,
			pctr: old.pctr,
			pres: old.pres,
		},
	)
}

// Pool returns the global idref pool.
func Pool() apis.Pool {
	return st.Load().pool
}

// SetPool attaches the host's entity pool and rebuilds the non-pinned
// ctr and res over it.
// This is a convenience wrapper around the global state.
func SetPool(p apis.Pool) {
	if p == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new ctr and res over the new pool.
	nctr := old.ctr
	if !old.pctr {
		nctr = b.BuildCounter(old.cfg, p, old.ctr, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, p, nctr, old.res, old.ext)
	}

	// Ensure non-nil ctr and res.
	if nctr == nil {
		panic(ErrNilCounter)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: p,
			ctr:  nctr,
			res:  nres,
			bld:  b,
			pctr: old.pctr,
			pres: old.pres,
		},
	)
}

// Counter returns the global idref ctr.
func Counter() apis.Counter {
	return st.Load().ctr
}

// SetCounter sets the global idref ctr to ctr.
// It rebuilds the non-pinned global res on top of the new ctr.
// This is a convenience wrapper around the global state.
func SetCounter(ctr apis.Counter) {
	if ctr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new res based on the old cfg and new ctr.
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, old.pool, ctr, old.res, old.ext)
	}

	// Ensure non-nil res.
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  ctr,
			res:  nres,
			bld:  b,
			pctr: true,
			pres: old.pres,
		},
	)
}

// Resolver returns the global idref res.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global idref res to res.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  old.ctr,
			res:  res,
			bld:  old.bld,
			pctr: old.pctr,
			pres: true,
		},
	)
}

// Builder returns the global idref bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global idref bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new ctr and res based on the new bld and old state.
	nctr := old.ctr
	if !old.pctr {
		nctr = b.BuildCounter(old.cfg, old.pool, old.ctr, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, old.pool, nctr, old.res, old.ext)
	}

	// Ensure non-nil ctr and res.
	if nctr == nil {
		panic(ErrNilCounter)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  nctr,
			res:  nres,
			bld:  b,
			pctr: old.pctr,
			pres: old.pres,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new ctr and res based on the new ext and old state.
	nctr := old.ctr
	if !old.pctr {
		nctr = b.BuildCounter(old.cfg, old.pool, old.ctr, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, old.pool, nctr, old.res, ext)
	}

	// Ensure non-nil ctr and res.
	if nctr == nil {
		panic(ErrNilCounter)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			pool: old.pool,
			ctr:  nctr,
			res:  nres,
			bld:  b,
			pctr: old.pctr,
			pres: old.pres,
		},
	)
}

// ExtAs returns the global idref extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsCounterPinned returns whether the global idref ctr is pinned (immutable).
func IsCounterPinned() bool {
	return st.Load().pctr
}

// PinCounter makes the global idref ctr immutable.
func PinCounter() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  old.ctr,
			res:  old.res,
			bld:  old.bld,
			pctr: true,
			pres: old.pres,
		},
	)
}

// UnpinCounter makes the global idref ctr mutable again.
func UnpinCounter() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  old.ctr,
			res:  old.res,
			bld:  old.bld,
			pctr: false,
			pres: old.pres,
		},
	)
}

// IsResolverPinned returns whether the global idref res is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global idref res immutable.
func PinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  old.ctr,
			res:  old.res,
			bld:  old.bld,
			pctr: old.pctr,
			pres: true,
		},
	)
}

// UnpinResolver makes the global idref res mutable again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			pool: old.pool,
			ctr:  old.ctr,
			res:  old.res,
			bld:  old.bld,
			pctr: old.pctr,
			pres: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global idref state.
var st atomic.Pointer[state]

// state is the global idref state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global idref configuration.
	cfg apis.Config
	// ext is the global idref extension configuration.
	ext any
	// pool is the host entity pool all components operate over.
	pool apis.Pool
	// ctr is the global idref ctr.
	ctr apis.Counter
	// res is the global idref res.
	res apis.Resolver
	// bld is the global idref bld.
	bld apis.Builder
	// pctr indicates whether the ctr is pinned (immutable).
	pctr bool
	// pres indicates whether the res is pinned (immutable).
	pres bool
}
