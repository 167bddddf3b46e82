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

package registry

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"dirpx.dev/fmtx/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("fmtx(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty (or blank) name is provided.
	ErrEmptyName = errors.New("fmtx(registry): empty name provided")
	// ErrInvalidName is returned when a name contains whitespace.
	ErrInvalidName = errors.New("fmtx(registry): name must not contain whitespace")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different name.
	ErrConflictingRegistration = errors.New("fmtx(registry): conflicting type registration")
)

// New constructs an empty Registry keyed by exact reflect.Type.
//
// Unlike reflection-derived names, registered names are matched exactly:
// registering T does not affect *T or []T.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to registered full name.
	m sync.Map // map[reflect.Type]string
	// count tracks the number of registered entries.
	count int
}

// Register associates t with the full display name name.
// It is idempotent for the same (type,name) pair.
func (r *registry) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(t); ok {
		return conflict(t, old.(string), name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		return conflict(t, old.(string), name)
	}

	r.m.Store(t, name)
	r.count++
	return nil
}

func conflict(t reflect.Type, old, name string) error {
	if old == name {
		return nil
	}
	return fmt.Errorf("%w: %v is %q, not %q", ErrConflictingRegistration, t, old, name)
}

// Lookup returns the registered name for exactly t.
func (r *registry) Lookup(t reflect.Type) (name string, ok bool) {
	if t == nil {
		return "", false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot sorted by name.
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type: key.(reflect.Type),
			Name: value.(string),
		})
		return true
	})
	slices.SortFunc(entries, func(a, b apis.Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
