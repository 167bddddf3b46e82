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

// TupleBuilder renders a named record with positional fields: "Name(1, 2)".
type TupleBuilder struct {
	record
	name string
}

// Tuple starts a tuple record named name that is written to w.
// An empty name renders a bare tuple: "(1, 2)".
func Tuple(w io.Writer, name string) *TupleBuilder {
	return &TupleBuilder{record: newRecord(w), name: name}
}

// Field adds a field rendered with its debug form.
func (b *TupleBuilder) Field(v any) *TupleBuilder {
	b.add(b.debug(v))
	return b
}

// FieldDisplay adds a field rendered with its display form.
func (b *TupleBuilder) FieldDisplay(v any) *TupleBuilder {
	return b.Field(wrap.NewDisplayAsDebug(v))
}

// FieldOpaque adds a field whose value is hidden behind "..".
func (b *TupleBuilder) FieldOpaque() *TupleBuilder {
	return b.Field(types.OpaqueMarker{})
}

// FieldType adds a field rendered as the name of t.
func (b *TupleBuilder) FieldType(t reflect.Type, m apis.Mode) *TupleBuilder {
	return b.Field(types.TypeNameOfType(t, m))
}

// Finish writes the record. A named tuple without fields renders as its
// name, so Tuple(w, "None").Finish() writes "None".
func (b *TupleBuilder) Finish() error {
	var sb strings.Builder
	sb.WriteString(b.name)
	switch {
	case len(b.entries) == 0:
		if b.name == "" {
			sb.WriteString("()")
		}
	case b.name == "" && len(b.entries) == 1 && !b.pretty:
		// A one-element bare tuple keeps its comma: "(1,)".
		sb.WriteByte('(')
		sb.WriteString(b.entries[0])
		sb.WriteString(",)")
	default:
		b.delimited(&sb, "(", ")", false, false)
	}
	return b.flush(sb.String())
}
