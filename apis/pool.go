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

// Entity is an opaque handle to one pool member. The host owns creation,
// duplication and deletion; the core only reads and annotates the scalar
// storage exposed here. Implementations are expected to be thin views over
// the host's own attribute storage, so a value written through SetID or
// SetRef must be visible to every other handle of the same pool member.
type Entity interface {
	// PeekID returns the stored unique id, or ok=false when no id has been
	// assigned yet. It never mutates storage.
	PeekID() (id int64, ok bool)

	// SetID overwrites the stored unique id.
	SetID(id int64)

	// ClearID drops the stored id back to unset. A cleared id regenerates
	// lazily on the entity's next resolver access.
	ClearID()

	// Name returns the entity's current display name. The host may rename
	// entities at any time between calls; callers must not cache the result.
	Name() string

	// Namespace returns the name of the namespace (scene) holding this
	// entity.
	Namespace() string

	// Ref returns the target id stored under the named reference field,
	// or ok=false when the field is unset.
	Ref(key string) (id int64, ok bool)

	// SetRef stores a target id under the named reference field.
	SetRef(key string, id int64)

	// ClearRef unsets the named reference field.
	ClearRef(key string)
}

// Linker is an optional Entity capability reporting that the entity was
// linked in from an external library rather than created locally. Linked
// entities keep the stored id assigned by their source file; the core
// offsets it into a disjoint effective-id range (see Config.LinkSpace).
type Linker interface {
	// LinkIndex returns the zero-based index of the source library, or
	// ok=false for local entities.
	LinkIndex() (idx int64, ok bool)
}

// Pool is the host's entity pool: an enumerable collection of namespaces,
// each holding live entities. The core never creates or destroys entities
// through this interface.
type Pool interface {
	// Namespaces returns the names of all namespaces.
	Namespaces() []string

	// Entities returns every live entity across all namespaces, in scan
	// order. The order must be stable within a single scan; it need not be
	// stable across scans.
	Entities() []Entity

	// ByName returns the entity with the given display name, if any.
	// Used by the display-name indirection only, never by the id logic.
	ByName(name string) (Entity, bool)
}
