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

package wrap

import (
	"fmt"
	"log/slog"

	"dirpx.dev/fmtx/internal/directive"
)

// DebugAsDisplay renders the value's %#v output when asked for %v or %s.
// %+v becomes %#+v; %#v and every other directive are forwarded unchanged.
type DebugAsDisplay[T any] struct {
	v T
}

// NewDebugAsDisplay wraps a copy of v.
func NewDebugAsDisplay[T any](v T) DebugAsDisplay[T] {
	return DebugAsDisplay[T]{v: v}
}

// Value returns the wrapped value.
func (w DebugAsDisplay[T]) Value() T { return w.v }

// Format implements fmt.Formatter.
func (w DebugAsDisplay[T]) Format(f fmt.State, verb rune) {
	debugAsDisplay(f, verb, &w.v)
}

// String returns the value's %#v output.
func (w DebugAsDisplay[T]) String() string {
	return fmt.Sprintf("%#v", directive.Operand(&w.v, directive.GoSyntax))
}

// GoString returns the same text as String.
func (w DebugAsDisplay[T]) GoString() string { return w.String() }

// LogValue implements slog.LogValuer.
func (w DebugAsDisplay[T]) LogValue() slog.Value { return slog.StringValue(w.String()) }

// DebugAsDisplayRef is the borrowed form of DebugAsDisplay.
type DebugAsDisplayRef[T any] struct {
	p *T
}

// BorrowDebugAsDisplay wraps p without copying the value it points to.
// A nil p renders as "<nil>".
func BorrowDebugAsDisplay[T any](p *T) DebugAsDisplayRef[T] {
	return DebugAsDisplayRef[T]{p: p}
}

// Format implements fmt.Formatter.
func (w DebugAsDisplayRef[T]) Format(f fmt.State, verb rune) {
	if w.p == nil {
		fmt.Fprint(f, nilPointer)
		return
	}
	debugAsDisplay(f, verb, w.p)
}

// String returns the value's %#v output.
func (w DebugAsDisplayRef[T]) String() string {
	if w.p == nil {
		return nilPointer
	}
	return fmt.Sprintf("%#v", directive.Operand(w.p, directive.GoSyntax))
}

// GoString returns the same text as String.
func (w DebugAsDisplayRef[T]) GoString() string { return w.String() }

// LogValue implements slog.LogValuer.
func (w DebugAsDisplayRef[T]) LogValue() slog.Value { return slog.StringValue(w.String()) }

func debugAsDisplay[T any](f fmt.State, verb rune, p *T) {
	switch verb {
	case 'v', 's':
		directive.Forward(f, 'v', directive.Add, directive.Operand(p, directive.GoSyntax))
	default:
		directive.Forward(f, verb, directive.Keep, directive.Operand(p, directive.Display))
	}
}
