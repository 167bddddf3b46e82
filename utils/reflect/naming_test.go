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

package reflect_test

import (
	"reflect"
	"testing"

	uref "dirpx.dev/fmtx/utils/reflect"
)

// Local test types.
type A struct{}
type Box[T any] struct{ V T }

const pkg = "dirpx.dev/fmtx/utils/reflect_test"

func TestFullName_Composites(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"nil", nil, "<nil>"},
		{"builtin", reflect.TypeFor[int](), "int"},
		{"error", reflect.TypeFor[error](), "error"},
		{"named", reflect.TypeFor[A](), pkg + ".A"},
		{"ptr", reflect.TypeFor[*A](), "*" + pkg + ".A"},
		{"slice", reflect.TypeFor[[]A](), "[]" + pkg + ".A"},
		{"array", reflect.TypeFor[[3]A](), "[3]" + pkg + ".A"},
		{"map", reflect.TypeFor[map[string]A](), "map[string]" + pkg + ".A"},
		{"chan", reflect.TypeFor[chan A](), "chan " + pkg + ".A"},
		{"recv chan", reflect.TypeFor[<-chan A](), "<-chan " + pkg + ".A"},
		{"send chan", reflect.TypeFor[chan<- int](), "chan<- int"},
		{"nested", reflect.TypeFor[[]map[string]*A](), "[]map[string]*" + pkg + ".A"},
		{"stdlib", reflect.TypeFor[reflect.Kind](), "reflect.Kind"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.FullName(tc.typ, 0, false); got != tc.want {
				t.Fatalf("FullName(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestFullName_StripTypeParams(t *testing.T) {
	typ := reflect.TypeFor[[]Box[int]]()
	if got, want := uref.FullName(typ, 0, true), "[]"+pkg+".Box"; got != want {
		t.Fatalf("FullName(strip) = %q, want %q", got, want)
	}
	if got, want := uref.FullName(typ, 0, false), "[]"+pkg+".Box[int]"; got != want {
		t.Fatalf("FullName(keep) = %q, want %q", got, want)
	}
}

func TestFullName_MaxDepthFallsBackToString(t *testing.T) {
	typ := reflect.TypeFor[[][]A]()
	// Depth 1 composes the outer slice, then falls back to reflect's own string.
	if got, want := uref.FullName(typ, 1, false), "[][]reflect_test.A"; got != want {
		t.Fatalf("FullName(depth=1) = %q, want %q", got, want)
	}
}

func TestShortName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"int", "int"},
		{"", ""},
		{"Secret", "Secret"},
		{"dirpx.dev/fmtx/types.Secret", "Secret"},
		{"time.Duration", "Duration"},
		{"[]map[string]example.com/app/model.User", "[]map[string]User"},
		{"*example.com/app/model.User", "*User"},
		{"map[example.com/a.K]example.com/b.V", "map[K]V"},
		{"example.com/x.Box[example.com/y.Item]", "Box[Item]"},
		{"example.com/x.Pair[int,example.com/y.Item]", "Pair[int,Item]"},
		{"github.com/foo-bar/baz.T", "T"},
		{"<-chan example.com/x.T", "<-chan T"},
		{"chan<- example.com/x.T", "chan<- T"},
		{"func(...example.com/x.T) error", "func(...T) error"},
		{`struct { A int "json:\"a.b\"" }`, `struct { A int "json:\"a.b\"" }`},
		{"trailing.", "trailing."},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := uref.ShortName(tc.in); got != tc.want {
				t.Fatalf("ShortName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestShortName_OfFullName(t *testing.T) {
	full := uref.FullName(reflect.TypeFor[Box[A]](), 0, false)
	if got := uref.ShortName(full); got != "Box[A]" {
		t.Fatalf("ShortName(%q) = %q, want %q", full, got, "Box[A]")
	}
}

func TestStripTypeParams(t *testing.T) {
	if got := uref.StripTypeParams("Box[int,string]"); got != "Box" {
		t.Fatalf("StripTypeParams = %q, want %q", got, "Box")
	}
	if got := uref.StripTypeParams("Plain"); got != "Plain" {
		t.Fatalf("StripTypeParams = %q, want %q", got, "Plain")
	}
}
