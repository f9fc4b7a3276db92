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

// Package idref provides stable, collision-resistant unique ids for the
// entities of a mutable object pool, and reference fields that keep
// pointing at the right entity even when it is renamed.
//
// idref is meant to be embedded into a host application that owns an
// object pool (for example, the objects of a scene graph). The host keeps
// full ownership of entity lifetime and storage; idref only annotates
// entities with ids and resolves ids back to entities.
//
// # Design
//
// Three components cooperate, each behind a small interface in apis:
//
//   - Counter: one monotonically increasing "next id" shared by every
//     namespace (scene) of the pool, so no two namespaces ever hand out
//     the same value. The counter state is never persisted: before any
//     value is handed out, the counter reconciles its floor against the
//     highest id currently stored in the pool, which is the ground truth
//     after a reload.
//
//   - Resolver: lazy id assignment and id->entity resolution. An entity
//     gets its id the first time it is read through EnsureID, not when
//     the host creates it. This is deliberate: hosts duplicate entities
//     through channels idref cannot hook, and the duplicate inherits the
//     original's stored id at the storage level. Since no
//     "duplication completed" event exists, every resolver entry point
//     runs an opportunistic collision scan and silently repairs what it
//     finds: the entity encountered first in scan order keeps the
//     contested id, later holders are re-allocated fresh ids.
//
//   - Reference fields (package field): a property that is read and
//     written as an entity (or its display name) while being persisted as
//     an id on the owning entity. Reads re-resolve the id against the
//     live pool on every call, so a reference survives renames and decays
//     to "unresolved" (not an error) when the target is deleted.
//
// Resolution is a linear scan over the pool. A persistent
// reverse index would have to track host-driven creation, deletion and
// undo with no reliable notification channel; the scan is always correct
// against the current pool. Hosts that can guarantee stable entity
// handles may chain the verified index lookup (package lookup) in front
// of the scan as a fast path.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means idref calls are lock-free on the hot path:
//
//	id := idref.EnsureID(entity)
//	target, ok := idref.Resolve(id)
//
// and concurrent callers always see a consistent snapshot. Note that the
// components themselves follow the host's single-control-thread model;
// the snapshot machinery only makes reconfiguration safe, it does not
// serialize pool mutation against scans.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     EnsureID(e apis.Entity) int64
//     PeekID(e apis.Entity) (int64, bool)
//     Resolve(id int64) (apis.Entity, bool)
//     Sweep()
//     Counter() apis.Counter
//     Resolver() apis.Resolver
//     Pool() apis.Pool
//
//     These always read from the latest published snapshot. EnsureID and
//     Resolve mutate entity storage (lazy assignment, collision repair),
//     which is part of their documented contract.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetPool(p apis.Pool)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetCounter(ctr apis.Counter)
//     SetResolver(res apis.Resolver)
//     UnpinCounter()
//     UnpinResolver()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Counter / Resolver as needed),
//     and then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects allocation (first id, link spaces, namespace
//     mirrors). Calling SetConfig() may trigger a rebuild of Counter
//     and/or Resolver, unless they are explicitly "pinned".
//
//     - SetPool() attaches the host's pool; a fresh counter built over it
//     reconciles against the pool's stored ids on first use, so swapping
//     pools never hands out colliding ids.
//
//     - Builder controls how Counter and Resolver are constructed.
//     Swapping the Builder lets you replace allocation or lookup logic
//     at runtime.
//
//     - Ext is an opaque extension payload passed down to the Builder.
//     The default builder interprets a *zap.Logger ext and wires it into
//     the components it builds; custom builders may carry anything.
//
//     - SetCounter() / SetResolver() directly overwrite the current
//     Counter / Resolver in the snapshot and "pin" them. Once a layer is
//     pinned, idref will stop rebuilding that layer automatically until
//     you call UnpinCounter()/UnpinResolver().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Pool, Counter, Resolver in one shot. This is
//     mainly used by tests to get a clean deterministic state between
//     test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Counter().Namespaces(), etc.
//
// # Usage pattern in a host
//
// A typical embedding does:
//
//  1. Implement apis.Pool and apis.Entity over the host's object model
//     (or use the in-memory pool package).
//
//  2. Call idref.SetPool(hostPool) once at startup, and idref.Sweep()
//     after every file load to clear duplicate ids carried in by the
//     load.
//
//  3. Declare reference fields:
//
//     target := field.New("target", idref.Resolver(), idref.Pool(),
//         field.WithDisplayName("Target Object"))
//
//  4. Back the UI picker with target.DisplayValue / target.SetByName and
//     programmatic access with target.Get / target.Set.
//
//  5. In tests, call idref.SetAll(...) with a fresh pool for
//     deterministic, isolated state.
//
// # Scope
//
// idref is intentionally small. It does not try to be an ORM or a scene
// graph. It only solves one job:
//
//	"Give every entity a stable unique id, map ids back to entities
//	 without trusting any cache, and let references be edited by name
//	 while being persisted by id."
//
// Persistence of entity storage, entity lifetime, undo, and UI rendering
// all belong to the host.
package idref
