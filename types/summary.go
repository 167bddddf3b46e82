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
	"strconv"

	"dirpx.dev/fmtx"
	"dirpx.dev/fmtx/apis"
)

// Sized is anything that knows its element count without being walked.
type Sized interface {
	Len() int
}

// OpaqueList summarizes a sequence as "[..: N]".
type OpaqueList struct {
	Len int
}

// OpaqueListOf summarizes s by its length. Elements are never visited.
func OpaqueListOf[S ~[]E, E any](s S) OpaqueList {
	return OpaqueList{Len: len(s)}
}

// OpaqueListFrom summarizes any Sized source.
func OpaqueListFrom(s Sized) OpaqueList {
	return OpaqueList{Len: s.Len()}
}

// Format implements fmt.Formatter.
func (l OpaqueList) Format(f fmt.State, _ rune) { writeString(f, l.String()) }

// String returns "[..: N]".
func (l OpaqueList) String() string { return list(OpaqueToken, l.Len) }

// GoString returns String.
func (l OpaqueList) GoString() string { return l.String() }

// MarshalText implements encoding.TextMarshaler.
func (l OpaqueList) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// LogValue implements slog.LogValuer.
func (l OpaqueList) LogValue() slog.Value { return slog.StringValue(l.String()) }

// OpaqueSet summarizes a set or map as "{..: N}".
type OpaqueSet struct {
	Len int
}

// OpaqueMap is the map-shaped opaque summary; it renders like OpaqueSet.
type OpaqueMap = OpaqueSet

// OpaqueSetOf summarizes m by its length.
func OpaqueSetOf[M ~map[K]V, K comparable, V any](m M) OpaqueSet {
	return OpaqueSet{Len: len(m)}
}

// OpaqueSetFrom summarizes any Sized source.
func OpaqueSetFrom(s Sized) OpaqueSet {
	return OpaqueSet{Len: s.Len()}
}

// Format implements fmt.Formatter.
func (s OpaqueSet) Format(f fmt.State, _ rune) { writeString(f, s.String()) }

// String returns "{..: N}".
func (s OpaqueSet) String() string { return set(OpaqueToken, s.Len) }

// GoString returns String.
func (s OpaqueSet) GoString() string { return s.String() }

// MarshalText implements encoding.TextMarshaler.
func (s OpaqueSet) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// LogValue implements slog.LogValuer.
func (s OpaqueSet) LogValue() slog.Value { return slog.StringValue(s.String()) }

// TypeNameList summarizes a sequence of T as "[<T>: N]".
type TypeNameList[T any] struct {
	Len  int
	Mode apis.Mode
}

// NewTypeNameList summarizes n elements of type T.
func NewTypeNameList[T any](n int, m apis.Mode) TypeNameList[T] {
	return TypeNameList[T]{Len: n, Mode: m}
}

// TypeNameListOf summarizes s by its length and element type.
func TypeNameListOf[S ~[]E, E any](s S, m apis.Mode) TypeNameList[E] {
	return TypeNameList[E]{Len: len(s), Mode: m}
}

// Format implements fmt.Formatter.
func (l TypeNameList[T]) Format(f fmt.State, _ rune) { writeString(f, l.String()) }

// String returns "[<T>: N]".
func (l TypeNameList[T]) String() string {
	return list(angle(fmtx.TypeNameFor[T](l.Mode)), l.Len)
}

// GoString returns String.
func (l TypeNameList[T]) GoString() string { return l.String() }

// MarshalText implements encoding.TextMarshaler.
func (l TypeNameList[T]) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// LogValue implements slog.LogValuer.
func (l TypeNameList[T]) LogValue() slog.Value { return slog.StringValue(l.String()) }

// TypeNameSet summarizes a set of T as "{<T>: N}".
type TypeNameSet[T any] struct {
	Len  int
	Mode apis.Mode
}

// NewTypeNameSet summarizes n elements of type T.
func NewTypeNameSet[T any](n int, m apis.Mode) TypeNameSet[T] {
	return TypeNameSet[T]{Len: n, Mode: m}
}

// TypeNameSetOf summarizes the key set of m.
func TypeNameSetOf[M ~map[K]V, K comparable, V any](m M, mode apis.Mode) TypeNameSet[K] {
	return TypeNameSet[K]{Len: len(m), Mode: mode}
}

// Format implements fmt.Formatter.
func (s TypeNameSet[T]) Format(f fmt.State, _ rune) { writeString(f, s.String()) }

// String returns "{<T>: N}".
func (s TypeNameSet[T]) String() string {
	return set(angle(fmtx.TypeNameFor[T](s.Mode)), s.Len)
}

// GoString returns String.
func (s TypeNameSet[T]) GoString() string { return s.String() }

// MarshalText implements encoding.TextMarshaler.
func (s TypeNameSet[T]) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// LogValue implements slog.LogValuer.
func (s TypeNameSet[T]) LogValue() slog.Value { return slog.StringValue(s.String()) }

// TypeNameMap summarizes a map as "{<K, V>: N}".
type TypeNameMap[K comparable, V any] struct {
	Len  int
	Mode apis.Mode
}

// NewTypeNameMap summarizes n entries of K to V.
func NewTypeNameMap[K comparable, V any](n int, m apis.Mode) TypeNameMap[K, V] {
	return TypeNameMap[K, V]{Len: n, Mode: m}
}

// TypeNameMapOf summarizes m by its length, key and value types.
func TypeNameMapOf[M ~map[K]V, K comparable, V any](m M, mode apis.Mode) TypeNameMap[K, V] {
	return TypeNameMap[K, V]{Len: len(m), Mode: mode}
}

// Format implements fmt.Formatter.
func (s TypeNameMap[K, V]) Format(f fmt.State, _ rune) { writeString(f, s.String()) }

// String returns "{<K, V>: N}".
func (s TypeNameMap[K, V]) String() string {
	kind := fmtx.TypeNameFor[K](s.Mode) + ", " + fmtx.TypeNameFor[V](s.Mode)
	return set(angle(kind), s.Len)
}

// GoString returns String.
func (s TypeNameMap[K, V]) GoString() string { return s.String() }

// MarshalText implements encoding.TextMarshaler.
func (s TypeNameMap[K, V]) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// LogValue implements slog.LogValuer.
func (s TypeNameMap[K, V]) LogValue() slog.Value { return slog.StringValue(s.String()) }

func angle(name string) string { return "<" + name + ">" }

func list(kind string, n int) string { return "[" + kind + ": " + strconv.Itoa(n) + "]" }

func set(kind string, n int) string { return "{" + kind + ": " + strconv.Itoa(n) + "}" }
