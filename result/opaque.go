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

	"dirpx.dev/fmtx/debugfmt"
)

// Opaque renders "Ok(..)" or "Err(<%#v of the error>)".
type Opaque[T, E any] struct {
	outcome[T, E]
}

// OpaqueOkMarker is a success with nothing behind it.
var OpaqueOkMarker = Opaque[struct{}, error]{outcome[struct{}, error]{p: &struct{}{}}}

// NewOpaque adapts the (value, error) pair of a Go call.
func NewOpaque[T any](v T, err error) Opaque[T, error] {
	return Opaque[T, error]{fromPair(v, err)}
}

// BorrowOpaque is NewOpaque over a borrowed value.
func BorrowOpaque[T any](p *T, err error) Opaque[T, error] {
	return Opaque[T, error]{borrowPair(p, err)}
}

// OpaqueOk returns a success holding v.
func OpaqueOk[T, E any](v T) Opaque[T, E] {
	return Opaque[T, E]{outcome[T, E]{p: &v}}
}

// OpaqueErr returns a failure holding e.
func OpaqueErr[T, E any](e E) Opaque[T, E] {
	return Opaque[T, E]{outcome[T, E]{e: e, err: true}}
}

// Format implements fmt.Formatter. Every verb renders the same record.
func (r Opaque[T, E]) Format(f fmt.State, _ rune) {
	_ = write(f, r.IsOk(), r.e, opaqueOk)
}

// String returns "Ok(..)" or "Err(...)".
func (r Opaque[T, E]) String() string { return text(r.IsOk(), r.e, opaqueOk) }

// GoString returns String.
func (r Opaque[T, E]) GoString() string { return r.String() }

// MarshalText implements encoding.TextMarshaler.
func (r Opaque[T, E]) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// LogValue implements slog.LogValuer.
func (r Opaque[T, E]) LogValue() slog.Value { return slog.StringValue(r.String()) }

func opaqueOk(b *debugfmt.TupleBuilder) { b.FieldOpaque() }
