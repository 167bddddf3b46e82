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

package result

import (
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/debugfmt"
)

// TypeName renders "Ok(<name of T>)" or "Err(<%#v of the error>)".
type TypeName[T, E any] struct {
	outcome[T, E]
	mode apis.Mode
}

// NewTypeName adapts the (value, error) pair of a Go call.
func NewTypeName[T any](v T, err error, m apis.Mode) TypeName[T, error] {
	return TypeName[T, error]{fromPair(v, err), m}
}

// BorrowTypeName is NewTypeName over a borrowed value.
func BorrowTypeName[T any](p *T, err error, m apis.Mode) TypeName[T, error] {
	return TypeName[T, error]{borrowPair(p, err), m}
}

// TypeNameOk returns a success holding v.
func TypeNameOk[T, E any](v T, m apis.Mode) TypeName[T, E] {
	return TypeName[T, E]{outcome[T, E]{p: &v}, m}
}

// TypeNameErr returns a failure holding e.
func TypeNameErr[T, E any](e E, m apis.Mode) TypeName[T, E] {
	return TypeName[T, E]{outcome[T, E]{e: e, err: true}, m}
}

// Mode returns the adaptor's mode.
func (r TypeName[T, E]) Mode() apis.Mode { return r.mode }

// Format implements fmt.Formatter. Every verb renders the same record.
func (r TypeName[T, E]) Format(f fmt.State, _ rune) {
	_ = write(f, r.IsOk(), r.e, r.ok)
}

// String returns "Ok(<name>)" or "Err(...)".
func (r TypeName[T, E]) String() string { return text(r.IsOk(), r.e, r.ok) }

// GoString returns String.
func (r TypeName[T, E]) GoString() string { return r.String() }

// MarshalText implements encoding.TextMarshaler.
func (r TypeName[T, E]) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// LogValue implements slog.LogValuer.
func (r TypeName[T, E]) LogValue() slog.Value { return slog.StringValue(r.String()) }

func (r TypeName[T, E]) ok(b *debugfmt.TupleBuilder) {
	b.FieldType(reflect.TypeFor[T](), r.mode)
}
