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

package option_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/internal/testvalue"
	"dirpx.dev/fmtx/option"
)

var verbs = []string{"%v", "%#v", "%+v", "%s", "%d", "%q"}

func TestOpaque(t *testing.T) {
	token := "s3cr3t"
	tests := []struct {
		name string
		got  option.Opaque[string]
		want string
	}{
		{"borrowed some", option.OpaqueOf(&token), "Some(..)"},
		{"borrowed none", option.OpaqueOf[string](nil), "None"},
		{"owned some", option.NewOpaque(token, true), "Some(..)"},
		{"owned none", option.NewOpaque(token, false), "None"},
		{"null valid", option.OpaqueFromNull(sql.Null[string]{V: token, Valid: true}), "Some(..)"},
		{"null invalid", option.OpaqueFromNull(sql.Null[string]{V: token}), "None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, verb := range verbs {
				assert.Equal(t, tt.want, fmt.Sprintf(verb, tt.got), "verb %s", verb)
			}
			assert.Equal(t, tt.want, tt.got.String())
			assert.Equal(t, tt.want, tt.got.GoString())
			assert.NotContains(t, fmt.Sprintf("%#+v", tt.got), token)
		})
	}

	assert.Equal(t, "Some(..)", option.OpaqueSome.String())
	assert.Equal(t, "None", option.OpaqueNone.String())
}

func TestOpaque_Accessors(t *testing.T) {
	n := 7
	o := option.OpaqueOf(&n)
	require.True(t, o.IsSome())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = option.NewOpaque(9, false).Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	text, err := o.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Some(..)", string(text))
	assert.Equal(t, "Some(..)", o.LogValue().String())
}

func TestTypeName(t *testing.T) {
	var err error = errors.New("boom")
	tests := []struct {
		name string
		got  fmt.Stringer
		want string
	}{
		{"owned", option.NewTypeName(42, true, apis.Short), "Some(int)"},
		{"owned none", option.NewTypeName(42, false, apis.Short), "None"},
		{"static interface", option.TypeNameOf(&err, apis.Full), "Some(error)"},
		{"borrowed none", option.TypeNameOf[error](nil, apis.Full), "None"},
		{"marker full", option.SomeTypeName[time.Duration](apis.Full), "Some(time.Duration)"},
		{"marker short", option.SomeTypeName[[]uuid.UUID](apis.Short), "Some([]UUID)"},
		{"marker none", option.NoneTypeName[int](), "None"},
		{"null", option.TypeNameFromNull(sql.Null[int64]{V: 1, Valid: true}, apis.Full), "Some(int64)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
			assert.Equal(t, tt.want, fmt.Sprintf("%v", tt.got))
			assert.Equal(t, tt.want, fmt.Sprintf("%#v", tt.got))
		})
	}

	got, ok := option.TypeNameOf(&err, apis.Full).Get()
	assert.True(t, ok)
	assert.Equal(t, err, got)
}

func TestDisplay(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	tests := []struct {
		name string
		got  fmt.Stringer
		want string
	}{
		{"display not debug", option.NewDisplay(testvalue.Value{N: 5}, true), "Some(display_5)"},
		{"string is unquoted", option.NewDisplay("plain", true), "Some(plain)"},
		{"borrowed", option.DisplayOf(&id), "Some(6ba7b810-9dad-11d1-80b4-00c04fd430c8)"},
		{"borrowed none", option.DisplayOf[uuid.UUID](nil), "None"},
		{"null", option.DisplayFromNull(sql.Null[time.Duration]{V: time.Second, Valid: true}), "Some(1s)"},
		{"null invalid", option.DisplayFromNull(sql.Null[time.Duration]{}), "None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
			assert.Equal(t, tt.want, fmt.Sprintf("%#v", tt.got))
		})
	}
}

type goSyntaxOnPointer struct{ N int }

func (p *goSyntaxOnPointer) GoString() string { return "never shown" }

func TestDisplay_PointerOnlyGoString(t *testing.T) {
	v := goSyntaxOnPointer{N: 1}
	assert.Equal(t, "Some({1})", option.NewDisplay(v, true).String())
	assert.Equal(t, "Some({1})", option.DisplayOf(&v).String())
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "Some(\n    ..,\n)", fmt.Sprintf("%#+v", option.NewOpaque(1, true)))
	assert.Equal(t, "Some(\n    int,\n)", fmt.Sprintf("%#+v", option.NewTypeName(1, true, apis.Short)))
	assert.Equal(t, "None", fmt.Sprintf("%#+v", option.NewDisplay(1, false)))
}

func TestNestedInStruct(t *testing.T) {
	type account struct {
		Name     string
		Password option.Opaque[string]
	}
	a := account{Name: "root", Password: option.NewOpaque("hunter2", true)}
	assert.Equal(t, "{root Some(..)}", fmt.Sprintf("%v", a))
}

func TestOptionProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("none is always None", prop.ForAll(
		func(s string, verbIdx int) bool {
			verb := verbs[verbIdx]
			return fmt.Sprintf(verb, option.NewOpaque(s, false)) == "None" &&
				fmt.Sprintf(verb, option.NewTypeName(s, false, apis.Full)) == "None" &&
				fmt.Sprintf(verb, option.NewDisplay(s, false)) == "None"
		},
		gen.AnyString(),
		gen.IntRange(0, len(verbs)-1),
	))

	properties.Property("some renders its policy", prop.ForAll(
		func(n int) bool {
			return option.NewOpaque(n, true).String() == "Some(..)" &&
				option.NewTypeName(n, true, apis.Short).String() == "Some(int)" &&
				option.NewDisplay(n, true).String() == fmt.Sprintf("Some(%d)", n)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
