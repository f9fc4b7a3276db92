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

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apis "dirpx.dev/idref/apis"
	"dirpx.dev/idref/config"
	"dirpx.dev/idref/counter"
	"dirpx.dev/idref/pool"
	"dirpx.dev/idref/resolver"
)

// newFixture wires a fresh memory pool, counter and resolver.
func newFixture(t *testing.T) (*pool.Memory, apis.Resolver) {
	t.Helper()
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	ctr := counter.New(cfg, pl)
	return pl, resolver.New(cfg, pl, ctr)
}

func mustCreate(t *testing.T, pl *pool.Memory, name string) *pool.Object {
	t.Helper()
	o, err := pl.Create("main", name)
	require.NoError(t, err)
	return o
}

func TestEnsureID_LazyAssignment(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")

	// Never read: no id yet, and PeekID must not assign one.
	_, ok := res.PeekID(a)
	require.False(t, ok)
	_, ok = a.PeekID()
	require.False(t, ok)

	// First read assigns exactly one value.
	id := res.EnsureID(a)
	require.Equal(t, int64(1), id)

	// Second read returns the identical value.
	require.Equal(t, id, res.EnsureID(a))
	got, ok := res.PeekID(a)
	require.True(t, ok)
	require.Equal(t, id, got)
}

func TestEnsureID_SequentialAcrossEntities(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")
	b := mustCreate(t, pl, "B")

	require.Equal(t, int64(1), res.EnsureID(a))
	require.Equal(t, int64(2), res.EnsureID(b))
}

func TestEnsureID_RepairsDuplicatedID(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")
	b := mustCreate(t, pl, "B")
	require.Equal(t, int64(1), res.EnsureID(a))
	require.Equal(t, int64(2), res.EnsureID(b))

	// Host-side duplication copies storage verbatim, bypassing the
	// allocator: C now shares B's id.
	c, err := pl.Duplicate(b, "C")
	require.NoError(t, err)
	got, ok := c.PeekID()
	require.True(t, ok)
	require.Equal(t, int64(2), got)

	// Accessing C detects the collision; C is later in scan order, so it
	// loses the tie-break and gets a fresh id above the contested one.
	require.Equal(t, int64(3), res.EnsureID(c))
	got, ok = b.PeekID()
	require.True(t, ok)
	require.Equal(t, int64(2), got, "earlier-scanned entity keeps its id")

	// Repeating the check afterwards is a no-op.
	require.Equal(t, int64(3), res.EnsureID(c))
	require.Equal(t, int64(2), res.EnsureID(b))
}

func TestResolve_ReturnsCurrentHolder(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")
	b := mustCreate(t, pl, "B")
	idA := res.EnsureID(a)
	idB := res.EnsureID(b)

	got, ok := res.Resolve(idA)
	require.True(t, ok)
	require.Same(t, a, got)

	got, ok = res.Resolve(idB)
	require.True(t, ok)
	require.Same(t, b, got)
}

func TestResolve_UnknownIDUnresolved(t *testing.T) {
	_, res := newFixture(t)

	_, ok := res.Resolve(99)
	require.False(t, ok)
	_, ok = res.Resolve(0)
	require.False(t, ok)
}

func TestResolve_DeletedEntityUnresolved(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")
	id := res.EnsureID(a)

	pl.Remove(a)

	_, ok := res.Resolve(id)
	require.False(t, ok, "deleted entity must read as unresolved, not error")
}

func TestResolve_RepairsBeforeAnswering(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")
	b := mustCreate(t, pl, "B")
	res.EnsureID(a)
	idB := res.EnsureID(b)

	c, err := pl.Duplicate(b, "C")
	require.NoError(t, err)

	// Resolving the contested id repairs first: B (earlier in scan order)
	// keeps it, C is re-allocated.
	got, ok := res.Resolve(idB)
	require.True(t, ok)
	require.Same(t, b, got)

	idC, ok := c.PeekID()
	require.True(t, ok)
	require.Greater(t, idC, idB)

	got, ok = res.Resolve(idC)
	require.True(t, ok)
	require.Same(t, c, got)
}

func TestResolve_SurvivesRename(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")
	id := res.EnsureID(a)

	require.NoError(t, a.Rename("Foo"))

	got, ok := res.Resolve(id)
	require.True(t, ok)
	require.Same(t, a, got)
	require.Equal(t, "Foo", got.Name())
}

func TestEnsureID_LinkedEntityOffsets(t *testing.T) {
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	ctr := counter.New(cfg, pl)
	res := resolver.New(cfg, pl, ctr)

	local := mustCreate(t, pl, "local")
	local.SetID(5)

	// Linked entity carrying the same stored id lives in a disjoint
	// effective range: no collision, no repair.
	linked, err := pl.Link("main", "lib", 0, 5)
	require.NoError(t, err)

	require.Equal(t, int64(5), res.EnsureID(local))
	require.Equal(t, int64(5+config.DefaultLinkSpace), res.EnsureID(linked))

	// Both stored ids untouched.
	id, _ := local.PeekID()
	require.Equal(t, int64(5), id)
	id, _ = linked.PeekID()
	require.Equal(t, int64(5), id)
}

func TestEnsureID_LinkedEntityFreshID(t *testing.T) {
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	ctr := counter.New(cfg, pl)
	res := resolver.New(cfg, pl, ctr)

	linked, err := pl.Link("main", "lib", 2, 0)
	require.NoError(t, err)

	// Unset linked entity draws from the local counter, offset into the
	// library's range.
	require.Equal(t, int64(1+3*config.DefaultLinkSpace), res.EnsureID(linked))
}

func TestSweep_ClearsLaterDuplicates(t *testing.T) {
	pl, res := newFixture(t)
	a := mustCreate(t, pl, "A")
	b := mustCreate(t, pl, "B")
	res.EnsureID(a)
	idB := res.EnsureID(b)

	c, err := pl.Duplicate(b, "C")
	require.NoError(t, err)

	res.Sweep()

	// B, earlier in scan order, keeps its id; C was cleared and will
	// regenerate a unique id lazily.
	got, ok := b.PeekID()
	require.True(t, ok)
	require.Equal(t, idB, got)
	_, ok = c.PeekID()
	require.False(t, ok)

	require.Equal(t, int64(3), res.EnsureID(c))
}

func TestRepair_LoggedNotReported(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	ctr := counter.New(cfg, pl)
	res := resolver.New(cfg, pl, ctr, resolver.WithLogger(zap.New(core)))

	b := mustCreate(t, pl, "B")
	res.EnsureID(b)
	c, err := pl.Duplicate(b, "C")
	require.NoError(t, err)

	// The caller's operation succeeds; the repair is visible only in the
	// log.
	require.Equal(t, int64(2), res.EnsureID(c))

	entries := logs.FilterMessage("repaired id collision").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(1), fields["id"])
	require.Equal(t, "C", fields["entity"])
	require.Equal(t, int64(2), fields["new_id"])
}
