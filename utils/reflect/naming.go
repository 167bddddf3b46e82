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

package reflect

import (
	"reflect"
	"strconv"
	"strings"
)

// NilTypeName is returned for a nil reflect.Type, matching fmt's %T of nil.
const NilTypeName = "<nil>"

// DefaultMaxDepth is used by FullName when a non-positive depth is given.
const DefaultMaxDepth = 16

// FullName composes the fully qualified name of t.
//
// Composition policy:
//   - named types:          PkgPath + "." + Name ("time.Duration", "example.com/app/model.User");
//     builtins have no PkgPath and keep their bare name ("int", "error").
//   - ptr/slice/array/chan: prefix + FullName(Elem()).
//   - map[K]V:              "map[" + FullName(K) + "]" + FullName(V).
//   - everything else (anonymous struct, func, interface literals): t.String().
//
// Recursion stops after maxDepth composite levels; the remaining type is
// rendered with t.String(). If stripParams is set, generic instantiation
// arguments are dropped from named types: "pkg.Box[int]" -> "pkg.Box".
func FullName(t reflect.Type, maxDepth int, stripParams bool) string {
	if t == nil {
		return NilTypeName
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	var b strings.Builder
	writeFull(&b, t, maxDepth, stripParams)
	return b.String()
}

func writeFull(b *strings.Builder, t reflect.Type, depth int, strip bool) {
	if name := t.Name(); name != "" {
		if strip {
			name = StripTypeParams(name)
		}
		if p := t.PkgPath(); p != "" {
			b.WriteString(p)
			b.WriteByte('.')
		}
		b.WriteString(name)
		return
	}
	if depth <= 0 {
		b.WriteString(t.String())
		return
	}

	switch t.Kind() {
	case reflect.Pointer:
		b.WriteByte('*')
		writeFull(b, t.Elem(), depth-1, strip)
	case reflect.Slice:
		b.WriteString("[]")
		writeFull(b, t.Elem(), depth-1, strip)
	case reflect.Array:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Len()))
		b.WriteByte(']')
		writeFull(b, t.Elem(), depth-1, strip)
	case reflect.Map:
		b.WriteString("map[")
		writeFull(b, t.Key(), depth-1, strip)
		b.WriteByte(']')
		writeFull(b, t.Elem(), depth-1, strip)
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			b.WriteString("<-chan ")
		case reflect.SendDir:
			b.WriteString("chan<- ")
		default:
			b.WriteString("chan ")
			// chan (<-chan T) needs parentheses to stay unambiguous.
			if e := t.Elem(); e.Name() == "" && e.Kind() == reflect.Chan && e.ChanDir() == reflect.RecvDir {
				b.WriteByte('(')
				writeFull(b, e, depth-1, strip)
				b.WriteByte(')')
				return
			}
		}
		writeFull(b, t.Elem(), depth-1, strip)
	default:
		b.WriteString(t.String())
	}
}

// ShortName reduces every qualified identifier in full to its last segment.
//
// Separators are '/' and '.'. Composite punctuation ("[]", "map[", "*",
// "chan", parentheses, commas) is kept as is, as are the variadic "..."
// prefix and double-quoted struct tags. An identifier without separators
// is returned unchanged, so ShortName("int") == "int".
//
//	ShortName("example.com/app/model.User")                = "User"
//	ShortName("[]map[string]example.com/app/model.User")   = "[]map[string]User"
//	ShortName("example.com/x.Box[example.com/y.Item]")     = "Box[Item]"
func ShortName(full string) string {
	if strings.IndexAny(full, "./") < 0 {
		return full
	}

	var b strings.Builder
	b.Grow(len(full))

	for i := 0; i < len(full); {
		c := full[i]
		switch {
		case c == '"' || c == '`':
			j := skipQuoted(full, i)
			b.WriteString(full[i:j])
			i = j
		case isBoundary(c):
			b.WriteByte(c)
			i++
		default:
			j := i
			for j < len(full) && !isBoundary(full[j]) && full[j] != '"' && full[j] != '`' {
				j++
			}
			b.WriteString(lastSegment(full[i:j]))
			i = j
		}
	}
	return b.String()
}

// StripTypeParams removes a generic instantiation suffix: "Box[int,string]" -> "Box".
func StripTypeParams(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

// lastSegment returns the text after the last '/' or '.' of a single
// identifier token, preserving a leading "..." and tokens whose last
// separator is trailing.
func lastSegment(tok string) string {
	prefix := ""
	if strings.HasPrefix(tok, "...") {
		prefix, tok = "...", tok[3:]
	}
	i := strings.LastIndexAny(tok, "./")
	if i < 0 || i == len(tok)-1 {
		return prefix + tok
	}
	return prefix + tok[i+1:]
}

func skipQuoted(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			if q == '"' {
				j++
			}
		case q:
			return j + 1
		}
	}
	return len(s)
}

func isBoundary(c byte) bool {
	switch c {
	case '[', ']', '*', '(', ')', '{', '}', ',', ' ', ';', '<', '\t', '\n':
		return true
	}
	return false
}
