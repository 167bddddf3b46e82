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
	"io"
	"strings"

	"dirpx.dev/fmtx/wrap"
)

// ListBuilder renders a sequence: "[1, 2]".
type ListBuilder struct {
	record
}

// List starts a list record written to w.
func List(w io.Writer) *ListBuilder {
	return &ListBuilder{record: newRecord(w)}
}

// Entry adds an element rendered with its debug form.
func (b *ListBuilder) Entry(v any) *ListBuilder {
	b.add(b.debug(v))
	return b
}

// Entries adds every element of vs in order.
func (b *ListBuilder) Entries(vs ...any) *ListBuilder {
	for _, v := range vs {
		b.Entry(v)
	}
	return b
}

// EntryDisplay adds an element rendered with its display form.
func (b *ListBuilder) EntryDisplay(v any) *ListBuilder {
	return b.Entry(wrap.NewDisplayAsDebug(v))
}

// EntriesDisplay adds every element of vs with its display form.
func (b *ListBuilder) EntriesDisplay(vs ...any) *ListBuilder {
	for _, v := range vs {
		b.EntryDisplay(v)
	}
	return b
}

// Finish writes the record.
func (b *ListBuilder) Finish() error {
	var sb strings.Builder
	b.delimited(&sb, "[", "]", false, false)
	return b.flush(sb.String())
}

// SetBuilder renders an unordered collection: "{1, 2}".
type SetBuilder struct {
	record
}

// Set starts a set record written to w.
func Set(w io.Writer) *SetBuilder {
	return &SetBuilder{record: newRecord(w)}
}

// Entry adds an element rendered with its debug form.
func (b *SetBuilder) Entry(v any) *SetBuilder {
	b.add(b.debug(v))
	return b
}

// Entries adds every element of vs in order.
func (b *SetBuilder) Entries(vs ...any) *SetBuilder {
	for _, v := range vs {
		b.Entry(v)
	}
	return b
}

// EntryDisplay adds an element rendered with its display form.
func (b *SetBuilder) EntryDisplay(v any) *SetBuilder {
	return b.Entry(wrap.NewDisplayAsDebug(v))
}

// EntriesDisplay adds every element of vs with its display form.
func (b *SetBuilder) EntriesDisplay(vs ...any) *SetBuilder {
	for _, v := range vs {
		b.EntryDisplay(v)
	}
	return b
}

// Finish writes the record.
func (b *SetBuilder) Finish() error {
	var sb strings.Builder
	b.delimited(&sb, "{", "}", false, false)
	return b.flush(sb.String())
}
