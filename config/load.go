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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/fmtx/apis"
)

// ErrMultipleDocuments is returned when a config stream holds more than one
// YAML document.
var ErrMultipleDocuments = errors.New("fmtx(config): multiple YAML documents are not supported")

// Load decodes a YAML config from r on top of DefaultConfig.
//
// Unknown keys are rejected. An empty document yields the defaults.
// Missing keys keep their default values, and the result is validated
// before it is returned:
//
//	default_mode: full
//	max_depth: 8
//	strip_type_params: true
func Load(r io.Reader) (apis.Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// The decoder returns io.EOF when there is no document.
		if !errors.Is(err, io.EOF) {
			return apis.Config{}, fmt.Errorf("fmtx(config): decode: %w", err)
		}
	} else {
		var extra any
		if err := dec.Decode(&extra); err == nil {
			return apis.Config{}, ErrMultipleDocuments
		} else if !errors.Is(err, io.EOF) {
			return apis.Config{}, fmt.Errorf("fmtx(config): after first document: %w", err)
		}
	}

	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return normalize(cfg), nil
}

// LoadFile reads and decodes the YAML config at path.
func LoadFile(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("fmtx(config): read %s: %w", path, err)
	}
	cfg, err := Load(bytes.NewReader(data))
	if err != nil {
		return apis.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as a YAML document.
func Marshal(cfg apis.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
