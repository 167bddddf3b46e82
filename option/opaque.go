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

	"dirpx.dev/fmtx/debugfmt"
)

// Opaque renders "Some(..)" or "None": presence is shown, the value never is.
type Opaque[T any] struct {
	p *T
}

var (
	// OpaqueSome is a present marker with nothing behind it.
	OpaqueSome = Opaque[struct{}]{p: &struct{}{}}
	// OpaqueNone is the absent marker.
	OpaqueNone = Opaque[struct{}]{}
)

// OpaqueOf borrows p; a nil p is None.
func OpaqueOf[T any](p *T) Opaque[T] {
	return Opaque[T]{p: p}
}

// NewOpaque owns v when ok is set.
func NewOpaque[T any](v T, ok bool) Opaque[T] {
	return Opaque[T]{p: own(v, ok)}
}

// OpaqueFromNull adapts a sql.Null.
func OpaqueFromNull[T any](n sql.Null[T]) Opaque[T] {
	return NewOpaque(n.V, n.Valid)
}

// IsSome reports whether a value is present.
func (o Opaque[T]) IsSome() bool { return o.p != nil }

// Get returns the value and whether it is present.
func (o Opaque[T]) Get() (T, bool) { return get(o.p) }

// Format implements fmt.Formatter. Every verb renders the same record.
func (o Opaque[T]) Format(f fmt.State, _ rune) {
	_ = write(f, o.IsSome(), o.field)
}

// String returns "Some(..)" or "None".
func (o Opaque[T]) String() string { return text(o.IsSome(), o.field) }

// GoString returns String.
func (o Opaque[T]) GoString() string { return o.String() }

// MarshalText implements encoding.TextMarshaler.
func (o Opaque[T]) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// LogValue implements slog.LogValuer.
func (o Opaque[T]) LogValue() slog.Value { return slog.StringValue(o.String()) }

func (Opaque[T]) field(b *debugfmt.TupleBuilder) { b.FieldOpaque() }
