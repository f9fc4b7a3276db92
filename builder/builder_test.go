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

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/idref/builder"
	"dirpx.dev/idref/config"
	"dirpx.dev/idref/pool"
)

func TestBuildCounter(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")

	ctr := b.BuildCounter(cfg, pl, nil, nil)
	require.NotNil(t, ctr)
	require.Equal(t, int64(1), ctr.Next())
	require.Equal(t, int64(2), ctr.Next())
}

func TestBuildCounter_CarriesPreviousFloor(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")

	prev := b.BuildCounter(cfg, pl, nil, nil)
	prev.Next()
	prev.Next()
	prev.Next()

	// A rebuilt counter must not re-issue values the previous one already
	// handed out, even before the ids land in entity storage.
	next := b.BuildCounter(cfg, pl, prev, nil)
	require.Equal(t, int64(4), next.Next())
}

func TestBuildResolver(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	a, err := pl.Create("main", "A")
	require.NoError(t, err)

	ctr := b.BuildCounter(cfg, pl, nil, nil)
	res := b.BuildResolver(cfg, pl, ctr, nil, nil)
	require.NotNil(t, res)

	id := res.EnsureID(a)
	got, ok := res.Resolve(id)
	require.True(t, ok)
	require.Same(t, a, got)
}

func TestBuild_LoggerExtension(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	b := builder.New()
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")
	a, err := pl.Create("main", "A")
	require.NoError(t, err)

	ctr := b.BuildCounter(cfg, pl, nil, log)
	res := b.BuildResolver(cfg, pl, ctr, nil, log)
	res.EnsureID(a)

	require.NotZero(t, logs.Len(), "logger extension must be threaded into built components")
}

func TestBuild_UnknownExtIgnored(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	pl := pool.New()
	pl.AddNamespace("main")

	ctr := b.BuildCounter(cfg, pl, nil, "not a logger")
	require.NotNil(t, ctr)
	require.NotNil(t, b.BuildResolver(cfg, pl, ctr, nil, 42))
}
