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

// Package field implements the reference field: a typed indirection
// property that is read and written as an entity handle (or its display
// name) while being persisted as a unique id on the owning entity.
//
// Because the stored value is an id and every read re-resolves it against
// the live pool, a reference keeps pointing at the same entity across
// renames, and reads back as unresolved (not an error) once the target is
// deleted.
package field

import (
	"errors"
	"fmt"

	"dirpx.dev/idref/apis"
)

var (
	// ErrValidation is returned by Set when the target entity is rejected
	// by the field's validator. No state is mutated; callers typically
	// reject the pick and keep the previous value.
	ErrValidation = errors.New("idref(field): target rejected by validator")
)

// Validator is a predicate deciding whether an entity may be assigned to a
// reference field. A nil Validator accepts any entity.
type Validator func(apis.Entity) bool

// Option configures a Reference during construction.
type Option func(*Reference)

// WithDisplayName sets the label UI layers show for the field. The core
// passes it through without interpreting it.
func WithDisplayName(name string) Option {
	return func(f *Reference) {
		f.displayName = name
	}
}

// WithValidator sets the predicate a target must pass on Set.
func WithValidator(v Validator) Option {
	return func(f *Reference) {
		f.validator = v
	}
}

// New constructs a reference field persisted under key on its owning
// entities. res resolves stored ids back to entities; pool backs the
// display-name indirection (SetByName).
func New(key string, res apis.Resolver, pool apis.Pool, opts ...Option) *Reference {
	f := &Reference{key: key, res: res, pool: pool}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Reference is a single-valued, entity-typed reference field definition.
// One Reference describes the field for every owning entity; the per-owner
// value lives in the owner's scalar storage under the field key.
type Reference struct {
	key         string
	displayName string
	validator   Validator
	res         apis.Resolver
	pool        apis.Pool
}

// Key returns the storage key the field persists under.
func (f *Reference) Key() string {
	return f.key
}

// DisplayName returns the UI label, falling back to the storage key.
func (f *Reference) DisplayName() string {
	if f.displayName != "" {
		return f.displayName
	}
	return f.key
}

// Get returns the entity the owner's field currently references, or
// ok=false when the field is unset or no live entity holds the stored id.
func (f *Reference) Get(owner apis.Entity) (apis.Entity, bool) {
	if owner == nil {
		return nil, false
	}
	id, ok := owner.Ref(f.key)
	if !ok {
		return nil, false
	}
	return f.res.Resolve(id)
}

// Set points the owner's field at target. A nil target clears the field.
// The target's id is ensured (assigned if missing) and stored; setting the
// same logical target twice stores the same id.
func (f *Reference) Set(owner, target apis.Entity) error {
	if owner == nil {
		return nil
	}
	if target == nil {
		f.Clear(owner)
		return nil
	}
	if f.validator != nil && !f.validator(target) {
		return fmt.Errorf("%w: %s", ErrValidation, target.Name())
	}
	owner.SetRef(f.key, f.res.EnsureID(target))
	return nil
}

// Clear unsets the owner's field.
func (f *Reference) Clear(owner apis.Entity) {
	if owner == nil {
		return
	}
	owner.ClearRef(f.key)
}

// SetByName is the display-name write path used by pickers. The empty
// name clears the field; an unknown name is a no-op, matching pickers
// that feed back free-form text.
func (f *Reference) SetByName(owner apis.Entity, name string) error {
	if name == "" {
		f.Clear(owner)
		return nil
	}
	target, ok := f.pool.ByName(name)
	if !ok {
		return nil
	}
	return f.Set(owner, target)
}

// DisplayValue is the display-name read path: the referenced entity's
// current name, never a cached one, or "" when unresolved. This is what
// makes a reference survive renaming.
func (f *Reference) DisplayValue(owner apis.Entity) string {
	e, ok := f.Get(owner)
	if !ok {
		return ""
	}
	return e.Name()
}
