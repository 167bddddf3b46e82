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

// Package types provides markers that stand in for values when they are
// formatted: the opaque token, type names and container summaries.
//
// Markers ignore the verb and flags they are formatted with; %v, %#v, %s
// and %+v all produce the same text.
package types

import (
	"fmt"
	"log/slog"
)

// OpaqueToken is the text every opaque marker renders as.
const OpaqueToken = ".."

// Opaque holds a value that is never rendered. It signals that a field is
// present while keeping its content out of logs and debug output.
type Opaque[T any] struct {
	v T
}

// NewOpaque hides v behind the opaque token.
func NewOpaque[T any](v T) Opaque[T] {
	return Opaque[T]{v: v}
}

// Format implements fmt.Formatter.
func (Opaque[T]) Format(f fmt.State, _ rune) { writeOpaque(f) }

// String returns OpaqueToken.
func (Opaque[T]) String() string { return OpaqueToken }

// GoString returns OpaqueToken.
func (Opaque[T]) GoString() string { return OpaqueToken }

// MarshalText implements encoding.TextMarshaler.
func (Opaque[T]) MarshalText() ([]byte, error) { return []byte(OpaqueToken), nil }

// LogValue implements slog.LogValuer.
func (Opaque[T]) LogValue() slog.Value { return slog.StringValue(OpaqueToken) }

// OpaqueMarker is the value-less opaque marker.
type OpaqueMarker struct{}

// Format implements fmt.Formatter.
func (OpaqueMarker) Format(f fmt.State, _ rune) { writeOpaque(f) }

// String returns OpaqueToken.
func (OpaqueMarker) String() string { return OpaqueToken }

// GoString returns OpaqueToken.
func (OpaqueMarker) GoString() string { return OpaqueToken }

// MarshalText implements encoding.TextMarshaler.
func (OpaqueMarker) MarshalText() ([]byte, error) { return []byte(OpaqueToken), nil }

// LogValue implements slog.LogValuer.
func (OpaqueMarker) LogValue() slog.Value { return slog.StringValue(OpaqueToken) }

func writeOpaque(f fmt.State) {
	_, _ = f.Write([]byte(OpaqueToken))
}
