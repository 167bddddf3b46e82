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

// Package directive rebuilds fmt directives from a fmt.State so wrappers
// can forward formatting to the value they hold with adjusted flags.
package directive

import (
	"fmt"
	"strconv"
)

// Sharp controls the '#' flag of a rebuilt directive.
type Sharp int

const (
	// Keep preserves the caller's '#' flag.
	Keep Sharp = iota
	// Drop removes the '#' flag.
	Drop
	// Add sets the '#' flag.
	Add
)

// Build returns the directive that reproduces f's flags, width and
// precision for verb, with the '#' flag adjusted by sharp.
//
//	Build(%#+8v state, 'v', Drop) == "%+8v"
func Build(f fmt.State, verb rune, sharp Sharp) string {
	buf := make([]byte, 0, 16)
	buf = append(buf, '%')

	switch sharp {
	case Add:
		buf = append(buf, '#')
	case Keep:
		if f.Flag('#') {
			buf = append(buf, '#')
		}
	}
	for _, c := range "+- 0" {
		if f.Flag(int(c)) {
			buf = append(buf, byte(c))
		}
	}
	if w, ok := f.Width(); ok {
		buf = strconv.AppendInt(buf, int64(w), 10)
	}
	if p, ok := f.Precision(); ok {
		buf = append(buf, '.')
		buf = strconv.AppendInt(buf, int64(p), 10)
	}
	buf = append(buf, string(verb)...)
	return string(buf)
}

// Forward formats v into f with the directive built from f, verb and sharp.
func Forward(f fmt.State, verb rune, sharp Sharp, v any) {
	fmt.Fprintf(f, Build(f, verb, sharp), v)
}

// Debug reports whether f and verb request the developer renderer (%#v).
func Debug(f fmt.State, verb rune) bool {
	return verb == 'v' && f.Flag('#')
}

// Pretty reports whether f requests the multi-line developer form (%#+v).
func Pretty(f fmt.State, verb rune) bool {
	return Debug(f, verb) && f.Flag('+')
}

// Renderer names the fmt output an operand is picked for.
type Renderer int

const (
	// Display is the %v family: fmt.Formatter, fmt.Stringer or error.
	Display Renderer = iota
	// GoSyntax is %#v: fmt.Formatter or fmt.GoStringer.
	GoSyntax
)

// Operand picks what to hand to fmt for the value at p when producing r.
// The pointer is chosen only when *T has the method r calls and T does
// not; otherwise the value is passed, so fmt never prints a stray '&'.
func Operand[T any](p *T, r Renderer) any {
	v := any(*p)
	if renders(v, r) {
		return v
	}
	if pv := any(p); renders(pv, r) {
		return pv
	}
	return v
}

func renders(v any, r Renderer) bool {
	if _, ok := v.(fmt.Formatter); ok {
		return true
	}
	if r == GoSyntax {
		_, ok := v.(fmt.GoStringer)
		return ok
	}
	switch v.(type) {
	case fmt.Stringer, error:
		return true
	}
	return false
}
