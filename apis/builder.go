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

package apis

// Builder composes Counter and Resolver for a (Config, Pool) pair.
// Implementations may migrate state from previous instances (prev*), or ignore them.
type Builder interface {
	// BuildCounter constructs a Counter for cfg over pool. May carry the
	// observed floor over from a previous counter.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildCounter(cfg Config, pool Pool, prev Counter, ext any) Counter

	// BuildResolver constructs a Resolver for cfg over pool, allocating
	// from ctr. May reuse state from a previous resolver.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildResolver(cfg Config, pool Pool, ctr Counter, prev Resolver, ext any) Resolver
}
