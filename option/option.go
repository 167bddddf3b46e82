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

// Package option renders optional values as "Some(...)" or "None" while
// controlling how much of the present value is revealed.
//
// Go spells an optional value as a pointer, a (value, ok) pair or a
// sql.Null; every adaptor here accepts all three. Absent values always
// render as "None".
//
//	option.OpaqueOf(&token)                      // Some(..)
//	option.NewTypeName(42, true, apis.Short)     // Some(int)
//	option.DisplayFromNull(sql.Null[string]{})   // None
package option

import (
	"io"
	"strings"

	"dirpx.dev/fmtx/debugfmt"
)

// write renders a Some or None tuple to w; field adds the payload of Some.
func write(w io.Writer, some bool, field func(b *debugfmt.TupleBuilder)) error {
	if !some {
		return debugfmt.Tuple(w, "None").Finish()
	}
	b := debugfmt.Tuple(w, "Some")
	field(b)
	return b.Finish()
}

func text(some bool, field func(b *debugfmt.TupleBuilder)) string {
	var sb strings.Builder
	_ = write(&sb, some, field)
	return sb.String()
}

func get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func own[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
