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
	"dirpx.dev/fmtx/internal/directive"
)

// Display renders "Some(<value's %v>)" or "None".
type Display[T any] struct {
	p *T
}

// DisplayOf borrows p; a nil p is None.
func DisplayOf[T any](p *T) Display[T] {
	return Display[T]{p: p}
}

// NewDisplay owns v when ok is set.
func NewDisplay[T any](v T, ok bool) Display[T] {
	return Display[T]{p: own(v, ok)}
}

// DisplayFromNull adapts a sql.Null.
func DisplayFromNull[T any](n sql.Null[T]) Display[T] {
	return NewDisplay(n.V, n.Valid)
}

// IsSome reports whether a value is present.
func (o Display[T]) IsSome() bool { return o.p != nil }

// Get returns the value and whether it is present.
func (o Display[T]) Get() (T, bool) { return get(o.p) }

// Format implements fmt.Formatter.
func (o Display[T]) Format(f fmt.State, _ rune) {
	_ = write(f, o.IsSome(), o.field)
}

// String returns "Some(<value>)" or "None".
func (o Display[T]) String() string { return text(o.IsSome(), o.field) }

// GoString returns String.
func (o Display[T]) GoString() string { return o.String() }

// MarshalText implements encoding.TextMarshaler.
func (o Display[T]) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// LogValue implements slog.LogValuer.
func (o Display[T]) LogValue() slog.Value { return slog.StringValue(o.String()) }

func (o Display[T]) field(b *debugfmt.TupleBuilder) {
	b.FieldDisplay(directive.Operand(o.p, directive.Display))
}
