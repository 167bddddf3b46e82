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

// Package wrap redirects one of a value's renderers to the other.
//
// DisplayAsDebug makes %#v print what %v prints; DebugAsDisplay makes %v
// print what %#v prints. Each comes owned (holds a copy) and borrowed
// (holds a *T and never copies). Wrappers are immutable and safe to share
// between goroutines when the wrapped value's own formatting is.
package wrap

import (
	"fmt"
	"log/slog"

	"dirpx.dev/fmtx/internal/directive"
)

const nilPointer = "<nil>"

// DisplayAsDebug renders the value's %v output when asked for %#v.
// Every other directive is forwarded to the value unchanged.
type DisplayAsDebug[T any] struct {
	v T
}

// NewDisplayAsDebug wraps a copy of v.
func NewDisplayAsDebug[T any](v T) DisplayAsDebug[T] {
	return DisplayAsDebug[T]{v: v}
}

// Value returns the wrapped value.
func (w DisplayAsDebug[T]) Value() T { return w.v }

// Format implements fmt.Formatter.
func (w DisplayAsDebug[T]) Format(f fmt.State, verb rune) {
	displayAsDebug(f, verb, directive.Operand(&w.v, directive.Display))
}

// String returns the value's %v output.
func (w DisplayAsDebug[T]) String() string {
	return fmt.Sprint(directive.Operand(&w.v, directive.Display))
}

// GoString returns the same text as String.
func (w DisplayAsDebug[T]) GoString() string { return w.String() }

// LogValue implements slog.LogValuer.
func (w DisplayAsDebug[T]) LogValue() slog.Value { return slog.StringValue(w.String()) }

// DisplayAsDebugRef is the borrowed form of DisplayAsDebug.
type DisplayAsDebugRef[T any] struct {
	p *T
}

// BorrowDisplayAsDebug wraps p without copying the value it points to.
// A nil p renders as "<nil>".
func BorrowDisplayAsDebug[T any](p *T) DisplayAsDebugRef[T] {
	return DisplayAsDebugRef[T]{p: p}
}

// Format implements fmt.Formatter.
func (w DisplayAsDebugRef[T]) Format(f fmt.State, verb rune) {
	if w.p == nil {
		fmt.Fprint(f, nilPointer)
		return
	}
	displayAsDebug(f, verb, directive.Operand(w.p, directive.Display))
}

// String returns the value's %v output.
func (w DisplayAsDebugRef[T]) String() string {
	if w.p == nil {
		return nilPointer
	}
	return fmt.Sprint(directive.Operand(w.p, directive.Display))
}

// GoString returns the same text as String.
func (w DisplayAsDebugRef[T]) GoString() string { return w.String() }

// LogValue implements slog.LogValuer.
func (w DisplayAsDebugRef[T]) LogValue() slog.Value { return slog.StringValue(w.String()) }

func displayAsDebug(f fmt.State, verb rune, v any) {
	if directive.Debug(f, verb) {
		directive.Forward(f, 'v', directive.Drop, v)
		return
	}
	directive.Forward(f, verb, directive.Keep, v)
}
