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

package registry_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fmtx/registry"
)

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.Register(reflect.TypeFor[T1](), "domain/model.T1"))
	// idempotent re-register with same name
	require.NoError(t, reg.Register(reflect.TypeFor[T1](), "domain/model.T1"))

	name, ok := reg.Lookup(reflect.TypeFor[T1]())
	require.True(t, ok)
	assert.Equal(t, "domain/model.T1", name)
	assert.Equal(t, 1, reg.Count())
}

func TestLookup_ExactTypeOnly(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(reflect.TypeFor[T1](), "domain/model.T1"))

	for _, typ := range []reflect.Type{
		reflect.TypeFor[*T1](),
		reflect.TypeFor[[]T1](),
		reflect.TypeFor[map[string]T1](),
	} {
		name, ok := reg.Lookup(typ)
		assert.False(t, ok, "Lookup(%v) should miss", typ)
		assert.Empty(t, name)
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.Register(reflect.TypeFor[T1](), "domain.T1"))
	err := reg.Register(reflect.TypeFor[T1](), "other.Name")
	require.ErrorIs(t, err, registry.ErrConflictingRegistration)
	assert.Contains(t, err.Error(), `"domain.T1"`)

	// The original registration survives.
	name, _ := reg.Lookup(reflect.TypeFor[T1]())
	assert.Equal(t, "domain.T1", name)
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	cases := []struct {
		name string
		typ  reflect.Type
		in   string
		want error
	}{
		{"nil type", nil, "x", registry.ErrNilType},
		{"empty name", reflect.TypeFor[T1](), "", registry.ErrEmptyName},
		{"blank name", reflect.TypeFor[T1](), "   ", registry.ErrEmptyName},
		{"whitespace", reflect.TypeFor[T1](), "domain T1", registry.ErrInvalidName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, reg.Register(tc.typ, tc.in), tc.want)
		})
	}
	assert.Zero(t, reg.Count())
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.Register(reflect.TypeFor[T2](), "domain.T2"))
	require.NoError(t, reg.Register(reflect.TypeFor[T1](), "domain.T1"))

	entries := reg.Entries()
	require.Len(t, entries, 2)
	// Sorted by name.
	assert.Equal(t, "domain.T1", entries[0].Name)
	assert.Equal(t, reflect.TypeFor[T1](), entries[0].Type)
	assert.Equal(t, "domain.T2", entries[1].Name)

	reg.Reset()

	assert.Zero(t, reg.Count())
	name, ok := reg.Lookup(reflect.TypeFor[T1]())
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestLookupNilAndUnknown(t *testing.T) {
	reg := registry.New()

	if name, ok := reg.Lookup(nil); ok || name != "" {
		t.Fatalf("Lookup(nil): got (%q,%v), want ('',false)", name, ok)
	}
	if name, ok := reg.Lookup(reflect.TypeFor[T1]()); ok || name != "" {
		t.Fatalf("Lookup(unknown): got (%q,%v), want ('',false)", name, ok)
	}
}
