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

package option

import (
	"database/sql"
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/debugfmt"
)

// TypeName renders "Some(<name of T>)" or "None". T is the static type,
// so an option of error renders "Some(error)".
type TypeName[T any] struct {
	p    *T
	mode apis.Mode
}

// SomeTypeName is a present marker for T carrying no value.
func SomeTypeName[T any](m apis.Mode) TypeName[T] {
	return TypeName[T]{p: new(T), mode: m}
}

// NoneTypeName is the absent marker for T.
func NoneTypeName[T any]() TypeName[T] {
	return TypeName[T]{}
}

// TypeNameOf borrows p; a nil p is None.
func TypeNameOf[T any](p *T, m apis.Mode) TypeName[T] {
	return TypeName[T]{p: p, mode: m}
}

// NewTypeName owns v when ok is set.
func NewTypeName[T any](v T, ok bool, m apis.Mode) TypeName[T] {
	return TypeName[T]{p: own(v, ok), mode: m}
}

// TypeNameFromNull adapts a sql.Null.
func TypeNameFromNull[T any](n sql.Null[T], m apis.Mode) TypeName[T] {
	return NewTypeName(n.V, n.Valid, m)
}

// IsSome reports whether a value is present.
func (o TypeName[T]) IsSome() bool { return o.p != nil }

// Get returns the value and whether it is present.
func (o TypeName[T]) Get() (T, bool) { return get(o.p) }

// Format implements fmt.Formatter. Every verb renders the same record.
func (o TypeName[T]) Format(f fmt.State, _ rune) {
	_ = write(f, o.IsSome(), o.field)
}

// String returns "Some(<name>)" or "None".
func (o TypeName[T]) String() string { return text(o.IsSome(), o.field) }

// GoString returns String.
func (o TypeName[T]) GoString() string { return o.String() }

// MarshalText implements encoding.TextMarshaler.
func (o TypeName[T]) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// LogValue implements slog.LogValuer.
func (o TypeName[T]) LogValue() slog.Value { return slog.StringValue(o.String()) }

func (o TypeName[T]) field(b *debugfmt.TupleBuilder) {
	b.FieldType(reflect.TypeFor[T](), o.mode)
}
