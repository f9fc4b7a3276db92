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

package common

// Named is the display-adaptation contract a host object must satisfy so
// that reference fields can be presented by name.
//
// # Overview
//
// The idref core persists references as ids and never interprets names.
// Names exist purely at the presentation boundary: when a picker shows a
// reference, it shows the *current* name of the resolved entity, and when
// a user types a name, the host maps it back to an entity. Named captures
// the read half of that boundary.
//
// The name and the unique id are conceptually orthogonal:
//
//   - The unique id is stable for the lifetime of the entity and is what
//     reference fields store.
//   - The display name is mutable at any time and is what humans see.
//
// A reference "survives renaming" precisely because the core never caches
// the value returned by DisplayName: every presentation read resolves the
// stored id first and asks the live entity for its name afterwards.
//
// # Contract
//
//   - DisplayName MUST return the entity's name as of the moment of the
//     call. Implementations MUST NOT serve a snapshot taken at creation
//     or at an earlier read.
//   - DisplayName MAY return the empty string for entities the host
//     considers anonymous. Callers MUST treat the empty string as
//     "nothing to show", not as an error.
//   - DisplayName MUST NOT perform blocking operations or I/O; it is
//     called on the host's UI thread.
//   - Uniqueness of names is a host policy. The core never requires names
//     to be unique; only the optional name->entity lookup used by pickers
//     does, and hosts with ambiguous names SHOULD resolve the ambiguity
//     themselves before handing an entity to the setter.
type Named interface {
	// DisplayName returns the entity's current human-readable name.
	DisplayName() string
}

// NamedFunc adapts a plain function to the Named interface.
//
// This is convenient when the name lives in host storage that is awkward
// to wrap in a dedicated type:
//
//	n := common.NamedFunc(func() string { return hostObj.Name })
//
// The wrapped function is subject to the full Named contract, in
// particular the prohibition on returning cached names.
type NamedFunc func() string

// DisplayName implements Named for NamedFunc.
func (f NamedFunc) DisplayName() string {
	return f()
}
