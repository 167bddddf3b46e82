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

package debugfmt

import (
	"cmp"
	"io"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/fmtx/types"
	"dirpx.dev/fmtx/wrap"
)

// MapBuilder renders key/value pairs: "{k: v}".
type MapBuilder struct {
	record
}

// Map starts a map record written to w.
func Map(w io.Writer) *MapBuilder {
	return &MapBuilder{record: newRecord(w)}
}

// Entry adds a pair with both sides rendered in their debug form.
func (b *MapBuilder) Entry(k, v any) *MapBuilder {
	b.add(b.debug(k) + ": " + b.debug(v))
	return b
}

// EntryDisplay adds a pair whose value is rendered with its display form.
func (b *MapBuilder) EntryDisplay(k, v any) *MapBuilder {
	return b.Entry(k, wrap.NewDisplayAsDebug(v))
}

// EntryOpaque adds a pair whose value is hidden behind "..".
func (b *MapBuilder) EntryOpaque(k any) *MapBuilder {
	return b.Entry(k, types.OpaqueMarker{})
}

// Finish writes the record.
func (b *MapBuilder) Finish() error {
	var sb strings.Builder
	b.delimited(&sb, "{", "}", false, false)
	return b.flush(sb.String())
}

// MapEntries adds every pair of m to b in ascending key order.
func MapEntries[K cmp.Ordered, V any](b *MapBuilder, m map[K]V) *MapBuilder {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		b.Entry(k, m[k])
	}
	return b
}

// MapEntriesDisplay is MapEntries with values in their display form.
func MapEntriesDisplay[K cmp.Ordered, V any](b *MapBuilder, m map[K]V) *MapBuilder {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		b.EntryDisplay(k, m[k])
	}
	return b
}

// MapEntriesOpaque adds every key of m in ascending order with its value hidden.
func MapEntriesOpaque[K cmp.Ordered, V any](b *MapBuilder, m map[K]V) *MapBuilder {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		b.EntryOpaque(k)
	}
	return b
}
