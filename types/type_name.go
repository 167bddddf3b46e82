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

package types

import (
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/fmtx"
	"dirpx.dev/fmtx/apis"
)

// TypeName renders the name of its type parameter and nothing else.
// T is the static type: TypeName[error] renders "error", not the name
// of some concrete error.
type TypeName[T any] struct {
	mode apis.Mode
}

// FullTypeName returns a marker rendering the fully qualified name of T.
func FullTypeName[T any]() TypeName[T] {
	return TypeName[T]{mode: apis.Full}
}

// ShortTypeName returns a marker rendering the short name of T.
func ShortTypeName[T any]() TypeName[T] {
	return TypeName[T]{mode: apis.Short}
}

// NewTypeName returns a marker rendering the name of T in mode m.
func NewTypeName[T any](m apis.Mode) TypeName[T] {
	return TypeName[T]{mode: m}
}

// Mode returns the marker's mode.
func (n TypeName[T]) Mode() apis.Mode { return n.mode }

// Name resolves the name of T through the global snapshot.
func (n TypeName[T]) Name() string { return fmtx.TypeNameFor[T](n.mode) }

// Format implements fmt.Formatter.
func (n TypeName[T]) Format(f fmt.State, _ rune) { writeString(f, n.Name()) }

// String returns Name.
func (n TypeName[T]) String() string { return n.Name() }

// GoString returns Name.
func (n TypeName[T]) GoString() string { return n.Name() }

// MarshalText implements encoding.TextMarshaler.
func (n TypeName[T]) MarshalText() ([]byte, error) { return []byte(n.Name()), nil }

// LogValue implements slog.LogValuer.
func (n TypeName[T]) LogValue() slog.Value { return slog.StringValue(n.Name()) }

// TypeNameValue carries a value but only ever renders the name of T.
type TypeNameValue[T any] struct {
	v    T
	mode apis.Mode
}

// WrapTypeName wraps v so that it renders as the name of T.
func WrapTypeName[T any](v T, m apis.Mode) TypeNameValue[T] {
	return TypeNameValue[T]{v: v, mode: m}
}

// Value returns the wrapped value.
func (n TypeNameValue[T]) Value() T { return n.v }

// Name resolves the name of T.
func (n TypeNameValue[T]) Name() string { return fmtx.TypeNameFor[T](n.mode) }

// Format implements fmt.Formatter.
func (n TypeNameValue[T]) Format(f fmt.State, _ rune) { writeString(f, n.Name()) }

// String returns Name.
func (n TypeNameValue[T]) String() string { return n.Name() }

// GoString returns Name.
func (n TypeNameValue[T]) GoString() string { return n.Name() }

// MarshalText implements encoding.TextMarshaler.
func (n TypeNameValue[T]) MarshalText() ([]byte, error) { return []byte(n.Name()), nil }

// LogValue implements slog.LogValuer.
func (n TypeNameValue[T]) LogValue() slog.Value { return slog.StringValue(n.Name()) }

// TypeNameRef is the borrowed form of TypeNameValue. A nil pointer still
// renders the name of T.
type TypeNameRef[T any] struct {
	p    *T
	mode apis.Mode
}

// BorrowTypeName wraps p without copying the value it points to.
func BorrowTypeName[T any](p *T, m apis.Mode) TypeNameRef[T] {
	return TypeNameRef[T]{p: p, mode: m}
}

// Ptr returns the borrowed pointer.
func (n TypeNameRef[T]) Ptr() *T { return n.p }

// Name resolves the name of T.
func (n TypeNameRef[T]) Name() string { return fmtx.TypeNameFor[T](n.mode) }

// Format implements fmt.Formatter.
func (n TypeNameRef[T]) Format(f fmt.State, _ rune) { writeString(f, n.Name()) }

// String returns Name.
func (n TypeNameRef[T]) String() string { return n.Name() }

// GoString returns Name.
func (n TypeNameRef[T]) GoString() string { return n.Name() }

// MarshalText implements encoding.TextMarshaler.
func (n TypeNameRef[T]) MarshalText() ([]byte, error) { return []byte(n.Name()), nil }

// LogValue implements slog.LogValuer.
func (n TypeNameRef[T]) LogValue() slog.Value { return slog.StringValue(n.Name()) }

// RuntimeTypeName renders the name of a reflect.Type chosen at runtime.
type RuntimeTypeName struct {
	t    reflect.Type
	mode apis.Mode
}

// TypeNameOfType returns a marker rendering the name of t in mode m.
func TypeNameOfType(t reflect.Type, m apis.Mode) RuntimeTypeName {
	return RuntimeTypeName{t: t, mode: m}
}

// TypeNameOfValue returns a marker rendering the name of v's dynamic type.
func TypeNameOfValue(v any, m apis.Mode) RuntimeTypeName {
	return RuntimeTypeName{t: reflect.TypeOf(v), mode: m}
}

// Name resolves the name of the type.
func (n RuntimeTypeName) Name() string { return fmtx.TypeName(n.t, n.mode) }

// Format implements fmt.Formatter.
func (n RuntimeTypeName) Format(f fmt.State, _ rune) { writeString(f, n.Name()) }

// String returns Name.
func (n RuntimeTypeName) String() string { return n.Name() }

// GoString returns Name.
func (n RuntimeTypeName) GoString() string { return n.Name() }

// MarshalText implements encoding.TextMarshaler.
func (n RuntimeTypeName) MarshalText() ([]byte, error) { return []byte(n.Name()), nil }

// LogValue implements slog.LogValuer.
func (n RuntimeTypeName) LogValue() slog.Value { return slog.StringValue(n.Name()) }

func writeString(f fmt.State, s string) {
	_, _ = f.Write([]byte(s))
}
