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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/config"
)

func TestLoad(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want apis.Config
	}{
		{
			name: "empty document",
			in:   "",
			want: config.DefaultConfig(),
		},
		{
			name: "all keys",
			in:   "default_mode: full\nmax_depth: 4\nstrip_type_params: true\n",
			want: apis.Config{DefaultMode: apis.Full, MaxDepth: 4, StripTypeParams: true},
		},
		{
			name: "partial keeps defaults",
			in:   "strip_type_params: true\n",
			want: apis.Config{DefaultMode: apis.Short, MaxDepth: config.DefaultMaxDepth, StripTypeParams: true},
		},
		{
			name: "mode is case insensitive",
			in:   "default_mode: SHORT\n",
			want: config.DefaultConfig(),
		},
		{
			name: "zero depth normalized",
			in:   "max_depth: 0\n",
			want: config.DefaultConfig(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := config.Load(strings.NewReader(tc.in))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"unknown key", "default_mode: full\ncolour: blue\n"},
		{"unknown mode", "default_mode: verbose\n"},
		{"default mode not allowed", "default_mode: default\n"},
		{"negative depth", "max_depth: -2\n"},
		{"wrong type", "max_depth: deep\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MultipleDocuments(t *testing.T) {
	_, err := config.Load(strings.NewReader("default_mode: full\n---\ndefault_mode: short\n"))
	assert.ErrorIs(t, err, config.ErrMultipleDocuments)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fmtx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_mode: full\n"), 0o600))

	got, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, apis.Full, got.DefaultMode)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_LoadsBack(t *testing.T) {
	want := config.NewConfig(config.WithDefaultMode(apis.Full), config.WithMaxDepth(3))

	data, err := config.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_mode: full")

	got, err := config.Load(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
