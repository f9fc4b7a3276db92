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

package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/idref/config"
	"dirpx.dev/idref/counter"
	"dirpx.dev/idref/lookup"
	"dirpx.dev/idref/pool"
	"dirpx.dev/idref/resolver"
)

func TestIndex_RecordThenHit(t *testing.T) {
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	a, err := pl.Create("main", "A")
	require.NoError(t, err)
	a.SetID(7)

	idx := lookup.NewIndex()
	rec, ok := idx.(lookup.Recorder)
	require.True(t, ok, "index must accept recorded resolutions")

	_, ok = idx.TryLookup(7, pl, cfg)
	require.False(t, ok, "cold index misses")

	rec.Record(7, a)
	got, ok := idx.TryLookup(7, pl, cfg)
	require.True(t, ok)
	require.Same(t, a, got)
}

func TestIndex_StaleEntryDropped(t *testing.T) {
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	a, err := pl.Create("main", "A")
	require.NoError(t, err)
	a.SetID(7)

	idx := lookup.NewIndex()
	idx.(lookup.Recorder).Record(7, a)

	// Storage rewritten behind the index's back.
	a.SetID(9)

	_, ok := idx.TryLookup(7, pl, cfg)
	require.False(t, ok, "stale association must not be served")

	// Dropped, not just skipped: restoring the id does not revive the
	// entry without a fresh Record.
	a.SetID(7)
	_, ok = idx.TryLookup(7, pl, cfg)
	require.False(t, ok)
}

func TestIndex_UnsetIDReadsAsMiss(t *testing.T) {
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	a, err := pl.Create("main", "A")
	require.NoError(t, err)
	a.SetID(7)

	idx := lookup.NewIndex()
	idx.(lookup.Recorder).Record(7, a)

	a.ClearID()
	_, ok := idx.TryLookup(7, pl, cfg)
	require.False(t, ok)
}

func TestIndex_ChainedBehindScan(t *testing.T) {
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	a, err := pl.Create("main", "A")
	require.NoError(t, err)

	idx := lookup.NewIndex()
	ctr := counter.New(cfg, pl)
	res := resolver.New(cfg, pl, ctr,
		resolver.WithLookups(idx, lookup.NewScan()))

	id := res.EnsureID(a)

	// First Resolve misses the index, falls through to the scan, and
	// refreshes the index on the way out.
	got, ok := res.Resolve(id)
	require.True(t, ok)
	require.Same(t, a, got)

	got, ok = idx.TryLookup(id, pl, cfg)
	require.True(t, ok, "resolver must feed hits back into the index")
	require.Same(t, a, got)
}
