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

// Package debugfmt renders records (structs, tuples, lists, sets and maps)
// in the debug form used across fmtx, and provides the helpers that let a
// record field be shown through its display form, as a type name, or not
// at all.
//
// A builder buffers its output and writes it to the sink once, at Finish.
// When the sink is the fmt.State of a "%#+v" directive the record is
// pretty-printed, one entry per line:
//
//	func (c Credentials) Format(f fmt.State, _ rune) {
//		_ = debugfmt.Struct(f, "Credentials").
//			Field("user", c.User).
//			FieldOpaque("password").
//			Finish()
//	}
//
//	fmt.Sprintf("%#v", c)  // Credentials { user: "root", password: .. }
//	fmt.Sprintf("%#+v", c) // Credentials {\n    user: "root",\n    password: ..,\n}
package debugfmt

import (
	"fmt"
	"io"
	"strings"
)

// Indent prefixes every nested line of a pretty-printed record.
const Indent = "    "

// record holds the rendered entries shared by every builder.
type record struct {
	w       io.Writer
	pretty  bool
	entries []string
}

func newRecord(w io.Writer) record {
	f, ok := w.(fmt.State)
	return record{w: w, pretty: ok && f.Flag('#') && f.Flag('+')}
}

// debug renders v in the debug form matching the record's layout.
func (r *record) debug(v any) string {
	if r.pretty {
		return fmt.Sprintf("%#+v", v)
	}
	return fmt.Sprintf("%#v", v)
}

func (r *record) add(entry string) {
	r.entries = append(r.entries, entry)
}

// delimited writes the entries between open and end. Compact records
// separate entries with ", " and pad with spaces when spaced is set;
// pretty records put each entry on its own indented line.
func (r *record) delimited(b *strings.Builder, open, end string, spaced, nonExhaustive bool) {
	if r.pretty && len(r.entries) > 0 {
		b.WriteString(open)
		b.WriteByte('\n')
		for _, e := range r.entries {
			b.WriteString(Indent)
			b.WriteString(strings.ReplaceAll(e, "\n", "\n"+Indent))
			b.WriteString(",\n")
		}
		if nonExhaustive {
			b.WriteString(Indent)
			b.WriteString("..\n")
		}
		b.WriteString(end)
		return
	}

	b.WriteString(open)
	if spaced {
		b.WriteByte(' ')
	}
	b.WriteString(strings.Join(r.entries, ", "))
	if nonExhaustive {
		if len(r.entries) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("..")
	}
	if spaced {
		b.WriteByte(' ')
	}
	b.WriteString(end)
}

// flush writes s to the sink in a single call and returns its error as is.
func (r *record) flush(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}
