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
	"reflect"
	"strings"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/types"
	"dirpx.dev/fmtx/wrap"
)

// StructBuilder renders a named record with named fields:
// "Name { a: 1, b: 2 }".
type StructBuilder struct {
	record
	name string
}

// Struct starts a struct record named name that is written to w.
func Struct(w io.Writer, name string) *StructBuilder {
	return &StructBuilder{record: newRecord(w), name: name}
}

// Field adds a field rendered with its debug form.
func (b *StructBuilder) Field(name string, v any) *StructBuilder {
	b.add(name + ": " + b.debug(v))
	return b
}

// FieldDisplay adds a field rendered with its display form.
func (b *StructBuilder) FieldDisplay(name string, v any) *StructBuilder {
	return b.Field(name, wrap.NewDisplayAsDebug(v))
}

// FieldOpaque adds a field whose value is hidden behind "..".
func (b *StructBuilder) FieldOpaque(name string) *StructBuilder {
	return b.Field(name, types.OpaqueMarker{})
}

// FieldType adds a field rendered as the name of t.
func (b *StructBuilder) FieldType(name string, t reflect.Type, m apis.Mode) *StructBuilder {
	return b.Field(name, types.TypeNameOfType(t, m))
}

// Finish writes the record. A struct without fields renders as its name.
func (b *StructBuilder) Finish() error {
	return b.finish(false)
}

// FinishNonExhaustive writes the record with a trailing ".." marking
// fields that were left out: "Name { a: 1, .. }".
func (b *StructBuilder) FinishNonExhaustive() error {
	return b.finish(true)
}

func (b *StructBuilder) finish(nonExhaustive bool) error {
	var sb strings.Builder
	sb.WriteString(b.name)
	if len(b.entries) > 0 || nonExhaustive {
		if b.name != "" {
			sb.WriteByte(' ')
		}
		b.delimited(&sb, "{", "}", true, nonExhaustive)
	}
	return b.flush(sb.String())
}
