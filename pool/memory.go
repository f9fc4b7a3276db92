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

// Package pool provides an in-memory apis.Pool implementation.
//
// Memory models the host side of the contract: namespaces, named entities
// with scalar id/reference storage, duplication that copies storage
// verbatim (bypassing the allocator, which is exactly the collision source
// the resolver repairs), linking from external libraries, renaming and
// removal. It backs the package tests and serves embedders that have no
// native object pool of their own.
//
// Memory follows the single-control-thread model of the core: it is not
// safe for concurrent mutation.
package pool

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dirpx.dev/idref/apis"
)

var (
	// ErrUnknownNamespace is returned when an operation names a namespace
	// that was never added.
	ErrUnknownNamespace = errors.New("idref(pool): unknown namespace")
	// ErrDuplicateName is returned when a created entity's name is already
	// taken. Display names are unique pool-wide, like the host object
	// collections this models.
	ErrDuplicateName = errors.New("idref(pool): duplicate entity name")
)

// Memory is an in-memory entity pool. The zero value is not usable; use New.
type Memory struct {
	namespaces []string
	order      []*Object
	byName     map[string]*Object
}

// Ensure Memory implements apis.Pool.
var _ apis.Pool = (*Memory)(nil)

// New constructs an empty Memory pool.
func New() *Memory {
	return &Memory{byName: make(map[string]*Object)}
}

// AddNamespace registers a namespace. Adding the same namespace twice is a
// no-op.
func (m *Memory) AddNamespace(name string) {
	for _, ns := range m.namespaces {
		if ns == name {
			return
		}
	}
	m.namespaces = append(m.namespaces, name)
}

// Create adds a new local entity to the given namespace. The entity starts
// with no id; ids are assigned lazily on first resolver access.
func (m *Memory) Create(namespace, name string) (*Object, error) {
	return m.add(namespace, name, unset, -1, nil)
}

// Link adds an entity carried in from an external library. The stored id
// (if any) is the one assigned by the source file; libIndex selects the
// effective-id range the core offsets it into.
func (m *Memory) Link(namespace, name string, libIndex int64, storedID int64) (*Object, error) {
	if libIndex < 0 {
		return nil, fmt.Errorf("idref(pool): negative library index %d", libIndex)
	}
	return m.add(namespace, name, storedID, libIndex, nil)
}

// Duplicate copies src under a new name, storage included. The copy keeps
// src's stored id and reference fields verbatim: this is the out-of-band
// duplication event that bypasses the allocator.
func (m *Memory) Duplicate(src *Object, name string) (*Object, error) {
	refs := make(map[string]int64, len(src.refs))
	for k, v := range src.refs {
		refs[k] = v
	}
	return m.add(src.namespace, name, src.id, src.linkIdx, refs)
}

// Remove deletes the entity from the pool. Unknown entities are a no-op.
func (m *Memory) Remove(o *Object) {
	for i, e := range m.order {
		if e.handle == o.handle {
			m.order = append(m.order[:i], m.order[i+1:]...)
			delete(m.byName, e.name)
			return
		}
	}
}

// Namespaces returns the names of all namespaces in insertion order.
func (m *Memory) Namespaces() []string {
	out := make([]string, len(m.namespaces))
	copy(out, m.namespaces)
	return out
}

// Entities returns every live entity in creation order.
func (m *Memory) Entities() []apis.Entity {
	out := make([]apis.Entity, len(m.order))
	for i, e := range m.order {
		out[i] = e
	}
	return out
}

// ByName returns the entity with the given display name, if any.
func (m *Memory) ByName(name string) (apis.Entity, bool) {
	e, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return e, true
}

// add appends a new object in scan order and indexes its name.
func (m *Memory) add(namespace, name string, id, linkIdx int64, refs map[string]int64) (*Object, error) {
	if !m.hasNamespace(namespace) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNamespace, namespace)
	}
	if _, taken := m.byName[name]; taken {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if refs == nil {
		refs = make(map[string]int64)
	}
	o := &Object{
		pool:      m,
		handle:    uuid.New(),
		namespace: namespace,
		name:      name,
		id:        id,
		linkIdx:   linkIdx,
		refs:      refs,
	}
	m.order = append(m.order, o)
	m.byName[name] = o
	return o, nil
}

func (m *Memory) hasNamespace(name string) bool {
	for _, ns := range m.namespaces {
		if ns == name {
			return true
		}
	}
	return false
}

// unset is the stored-id value meaning "no id assigned".
const unset int64 = 0

// Object is one pool member. It implements apis.Entity and apis.Linker.
type Object struct {
	pool      *Memory
	handle    uuid.UUID
	namespace string
	name      string
	id        int64 // 0 = unset
	linkIdx   int64 // -1 = local
	refs      map[string]int64
}

// Ensure Object implements the host-side contracts.
var (
	_ apis.Entity = (*Object)(nil)
	_ apis.Linker = (*Object)(nil)
)

// Handle returns the object's stable opaque identity. Unlike the display
// name it never changes, and unlike the unique id it exists from creation.
func (o *Object) Handle() uuid.UUID {
	return o.handle
}

// PeekID returns the stored unique id, or ok=false when unset.
func (o *Object) PeekID() (int64, bool) {
	if o.id == unset {
		return 0, false
	}
	return o.id, true
}

// SetID overwrites the stored unique id.
func (o *Object) SetID(id int64) {
	o.id = id
}

// ClearID drops the stored id back to unset. Host-side operation used by
// load-time sweeps; the id regenerates lazily on next access.
func (o *Object) ClearID() {
	o.id = unset
}

// Name returns the current display name.
func (o *Object) Name() string {
	return o.name
}

// Rename changes the display name. Renaming to a taken name is rejected.
func (o *Object) Rename(name string) error {
	if name == o.name {
		return nil
	}
	if _, taken := o.pool.byName[name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	delete(o.pool.byName, o.name)
	o.name = name
	o.pool.byName[name] = o
	return nil
}

// Namespace returns the namespace holding this object.
func (o *Object) Namespace() string {
	return o.namespace
}

// Ref returns the target id stored under the named reference field.
func (o *Object) Ref(key string) (int64, bool) {
	id, ok := o.refs[key]
	return id, ok
}

// SetRef stores a target id under the named reference field.
func (o *Object) SetRef(key string, id int64) {
	o.refs[key] = id
}

// ClearRef unsets the named reference field.
func (o *Object) ClearRef(key string) {
	delete(o.refs, key)
}

// LinkIndex returns the source library index for linked objects.
func (o *Object) LinkIndex() (int64, bool) {
	if o.linkIdx < 0 {
		return 0, false
	}
	return o.linkIdx, true
}

// String renders a short diagnostic form.
func (o *Object) String() string {
	return fmt.Sprintf("%s/%s(%s)", o.namespace, o.name, o.handle.String()[:8])
}
