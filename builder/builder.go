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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/idref/apis"
	"dirpx.dev/idref/counter"
	"dirpx.dev/idref/resolver"
)

// New creates and returns a new instance of an apis.Builder.
//
// The default builder interprets a *zap.Logger extension context: when ext
// is a logger, counters and resolvers built here log observations and
// collision repairs through it. Any other ext value is ignored.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildCounter builds and returns a new apis.Counter for cfg over pool.
// The floor observed by a previous counter is carried over through its
// namespace mirrors; either way the new counter re-reconciles against the
// pool's stored ids on first use.
func (b *builder) BuildCounter(cfg apis.Config, pool apis.Pool, prev apis.Counter, ext any) apis.Counter {
	var opts []counter.Option
	if log, ok := ext.(*zap.Logger); ok {
		opts = append(opts, counter.WithLogger(log))
	}
	ctr := counter.New(cfg, pool, opts...)
	if prev != nil {
		for _, nc := range prev.Namespaces() {
			ctr.Observe(nc.Namespace, nc.Value)
		}
	}
	return ctr
}

// BuildResolver builds and returns a new apis.Resolver for cfg over pool,
// allocating from ctr. The previous resolver carries no migratable state:
// every resolution is a fresh scan.
func (b *builder) BuildResolver(cfg apis.Config, pool apis.Pool, ctr apis.Counter, _ apis.Resolver, ext any) apis.Resolver {
	var opts []resolver.Option
	if log, ok := ext.(*zap.Logger); ok {
		opts = append(opts, resolver.WithLogger(log))
	}
	return resolver.New(cfg, pool, ctr, opts...)
}
