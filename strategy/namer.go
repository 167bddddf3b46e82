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

package strategy

import (
	"reflect"

	"dirpx.dev/fmtx/apis"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy is a zero-reflection fast path: if the type implements
// apis.Namer, return its TypeName() and stop the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

var namerType = reflect.TypeFor[apis.Namer]()

// TryResolve checks if v implements apis.Namer and returns its TypeName().
// A nil pointer is resolved through its type so value-receiver methods are
// never called on nil.
func (s *namerStrategy) TryResolve(v any, m apis.Mode, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	n, ok := v.(apis.Namer)
	if !ok {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return s.TryResolveType(rv.Type(), m, cfg)
	}
	return named(n, m)
}

// TryResolveType calls TypeName() on a zero instance of t.
// Pointer types get a freshly allocated element so pointer receivers work.
// If TypeName panics on the zero instance, t falls through to the next
// strategy.
func (*namerStrategy) TryResolveType(t reflect.Type, m apis.Mode, _ apis.Config) (string, bool) {
	if t == nil || t.Kind() == reflect.Interface || !t.Implements(namerType) {
		return "", false
	}
	var zero reflect.Value
	if t.Kind() == reflect.Pointer {
		zero = reflect.New(t.Elem())
	} else {
		zero = reflect.Zero(t)
	}
	n, ok := zero.Interface().(apis.Namer)
	if !ok {
		return "", false
	}
	return named(n, m)
}

// named calls TypeName. A TypeName that panics (typically one reading
// state that is nil on the zero value) is treated like an empty name.
func named(n apis.Namer, m apis.Mode) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()
	name = n.TypeName()
	if name == "" {
		// Empty names fall through to the next strategy.
		return "", false
	}
	return render(name, m), true
}
