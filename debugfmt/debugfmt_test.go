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

package debugfmt_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/debugfmt"
	"dirpx.dev/fmtx/internal/testvalue"
)

func render(t *testing.T, finish func(w *strings.Builder) error) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, finish(&sb))
	return sb.String()
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		finish func(w *strings.Builder) error
		want   string
	}{
		{
			name:   "no fields",
			finish: func(w *strings.Builder) error { return debugfmt.Struct(w, "Empty").Finish() },
			want:   "Empty",
		},
		{
			name: "fields",
			finish: func(w *strings.Builder) error {
				return debugfmt.Struct(w, "Creds").Field("user", "root").FieldOpaque("password").Finish()
			},
			want: `Creds { user: "root", password: .. }`,
		},
		{
			name: "display and debug",
			finish: func(w *strings.Builder) error {
				return debugfmt.Struct(w, "S").
					Field("dbg", testvalue.Value{N: 1}).
					FieldDisplay("disp", testvalue.Value{N: 2}).
					Finish()
			},
			want: "S { dbg: debug_1, disp: display_2 }",
		},
		{
			name: "type field",
			finish: func(w *strings.Builder) error {
				return debugfmt.Struct(w, "Timer").
					FieldType("every", reflect.TypeFor[time.Duration](), apis.Short).
					FieldType("full", reflect.TypeFor[time.Duration](), apis.Full).
					Finish()
			},
			want: "Timer { every: Duration, full: time.Duration }",
		},
		{
			name: "non exhaustive",
			finish: func(w *strings.Builder) error {
				return debugfmt.Struct(w, "Big").Field("a", 1).FinishNonExhaustive()
			},
			want: "Big { a: 1, .. }",
		},
		{
			name:   "non exhaustive without fields",
			finish: func(w *strings.Builder) error { return debugfmt.Struct(w, "Big").FinishNonExhaustive() },
			want:   "Big { .. }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.finish))
		})
	}
}

func TestTuple(t *testing.T) {
	tests := []struct {
		name   string
		finish func(w *strings.Builder) error
		want   string
	}{
		{"unit", func(w *strings.Builder) error { return debugfmt.Tuple(w, "None").Finish() }, "None"},
		{"empty bare", func(w *strings.Builder) error { return debugfmt.Tuple(w, "").Finish() }, "()"},
		{"one bare", func(w *strings.Builder) error { return debugfmt.Tuple(w, "").Field(1).Finish() }, "(1,)"},
		{"named", func(w *strings.Builder) error { return debugfmt.Tuple(w, "Point").Field(1).Field(2).Finish() }, "Point(1, 2)"},
		{"opaque", func(w *strings.Builder) error { return debugfmt.Tuple(w, "Some").FieldOpaque().Finish() }, "Some(..)"},
		{"display", func(w *strings.Builder) error {
			return debugfmt.Tuple(w, "Some").FieldDisplay(testvalue.Value{N: 3}).Finish()
		}, "Some(display_3)"},
		{"type", func(w *strings.Builder) error {
			return debugfmt.Tuple(w, "Some").FieldType(reflect.TypeFor[[]string](), apis.Short).Finish()
		}, "Some([]string)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.finish))
		})
	}
}

func TestCollections(t *testing.T) {
	tests := []struct {
		name   string
		finish func(w *strings.Builder) error
		want   string
	}{
		{"empty list", func(w *strings.Builder) error { return debugfmt.List(w).Finish() }, "[]"},
		{"list", func(w *strings.Builder) error { return debugfmt.List(w).Entries(1, "a").Finish() }, `[1, "a"]`},
		{"list display", func(w *strings.Builder) error {
			return debugfmt.List(w).EntriesDisplay(testvalue.Value{N: 1}, "a").Finish()
		}, "[display_1, a]"},
		{"empty set", func(w *strings.Builder) error { return debugfmt.Set(w).Finish() }, "{}"},
		{"set", func(w *strings.Builder) error { return debugfmt.Set(w).Entry(1).EntryDisplay("x").Finish() }, "{1, x}"},
		{"empty map", func(w *strings.Builder) error { return debugfmt.Map(w).Finish() }, "{}"},
		{"map", func(w *strings.Builder) error {
			return debugfmt.Map(w).Entry("k", 1).EntryDisplay("d", "v").EntryOpaque("o").Finish()
		}, `{"k": 1, "d": v, "o": ..}`},
		{"sorted", func(w *strings.Builder) error {
			return debugfmt.MapEntries(debugfmt.Map(w), map[string]int{"b": 2, "a": 1, "c": 3}).Finish()
		}, `{"a": 1, "b": 2, "c": 3}`},
		{"sorted display", func(w *strings.Builder) error {
			return debugfmt.MapEntriesDisplay(debugfmt.Map(w), map[int]string{2: "two", 1: "one"}).Finish()
		}, "{1: one, 2: two}"},
		{"sorted opaque", func(w *strings.Builder) error {
			return debugfmt.MapEntriesOpaque(debugfmt.Map(w), map[string]string{"token": "x", "key": "y"}).Finish()
		}, `{"key": .., "token": ..}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.finish))
		})
	}
}

type pair struct{ a, b int }

func (p pair) Format(f fmt.State, _ rune) {
	_ = debugfmt.Struct(f, "Pair").Field("a", p.a).Field("b", p.b).Finish()
}

type outer struct {
	inner pair
	tags  []string
}

func (o outer) Format(f fmt.State, _ rune) {
	_ = debugfmt.Struct(f, "Outer").Field("inner", o.inner).Field("tags", o.tags).FinishNonExhaustive()
}

type bag []int

func (b bag) Format(f fmt.State, _ rune) {
	l := debugfmt.List(f)
	for _, v := range b {
		l.Entry(v)
	}
	_ = l.Finish()
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "Pair { a: 1, b: 2 }", fmt.Sprintf("%#v", pair{1, 2}))
	assert.Equal(t, "Pair {\n    a: 1,\n    b: 2,\n}", fmt.Sprintf("%#+v", pair{1, 2}))

	want := "Outer {\n" +
		"    inner: Pair {\n" +
		"        a: 1,\n" +
		"        b: 2,\n" +
		"    },\n" +
		"    tags: []string{\"x\"},\n" +
		"    ..\n" +
		"}"
	assert.Equal(t, want, fmt.Sprintf("%#+v", outer{inner: pair{1, 2}, tags: []string{"x"}}))

	assert.Equal(t, "[1, 2]", fmt.Sprintf("%v", bag{1, 2}))
	assert.Equal(t, "[\n    1,\n    2,\n]", fmt.Sprintf("%#+v", bag{1, 2}))
	assert.Equal(t, "[]", fmt.Sprintf("%#+v", bag{}))
}

type countingWriter struct {
	calls int
	data  []byte
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestFinish_SingleWrite(t *testing.T) {
	w := &countingWriter{}
	require.NoError(t, debugfmt.Struct(w, "S").Field("a", 1).Field("b", 2).Field("c", 3).Finish())
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, "S { a: 1, b: 2, c: 3 }", string(w.data))
}

func TestFinish_SinkError(t *testing.T) {
	sink := testvalue.FailingWriter{Err: testvalue.ErrSink}
	finishers := map[string]func() error{
		"struct": func() error { return debugfmt.Struct(sink, "S").Field("a", 1).Finish() },
		"tuple":  func() error { return debugfmt.Tuple(sink, "T").Field(1).Finish() },
		"list":   func() error { return debugfmt.List(sink).Entry(1).Finish() },
		"set":    func() error { return debugfmt.Set(sink).Finish() },
		"map":    func() error { return debugfmt.Map(sink).Entry(1, 2).Finish() },
	}
	for name, finish := range finishers {
		t.Run(name, func(t *testing.T) {
			assert.Same(t, testvalue.ErrSink, finish())
		})
	}
}
