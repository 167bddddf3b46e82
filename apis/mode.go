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

package apis

import (
	"fmt"
	"strings"
)

// Mode selects how a type name is rendered.
//
// # Values
//
//   - Default: defer to Config.DefaultMode.
//   - Full:    fully qualified, "dirpx.dev/fmtx/types.Secret".
//   - Short:   last segment of every qualified identifier, "Secret".
//
// # Contract
//
//   - Mode is a stable, public enum; new values may be added, existing
//     values MUST NOT change meaning.
//   - Mode values are plain integers and safe to share between goroutines.
type Mode int

const (
	// Default resolves to the process-wide Config.DefaultMode at render time.
	Default Mode = iota

	// Full renders the fully qualified type name, including the complete
	// import path of every named type that appears in it:
	//
	//	[]map[string]example.com/app/model.User
	Full

	// Short renders only the last path segment of every qualified
	// identifier:
	//
	//	[]map[string]User
	//
	// A name that contains no separator is rendered unchanged.
	Short
)

// String returns a human-readable representation of the Mode value.
//
// For unknown values, String returns "Unknown(<n>)" and never panics, so
// corrupted values still surface safely in logs.
func (m Mode) String() string {
	switch m {
	case Default:
		return "Default"
	case Full:
		return "Full"
	case Short:
		return "Short"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMode parses a textual representation of a Mode.
//
// Accepted (case-insensitive, surrounding whitespace ignored) inputs are
// "default", "full" and "short". Any other input results in Default and a
// non-nil error.
func ParseMode(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Default, fmt.Errorf("mode: empty mode")
	}

	switch strings.ToLower(trimmed) {
	case "default":
		return Default, nil
	case "full":
		return Full, nil
	case "short":
		return Short, nil
	default:
		return Default, fmt.Errorf("mode: unknown mode %q", s)
	}
}

// MustParseMode is like ParseMode but panics on invalid input.
// It is intended for hard-coded values, tests and examples.
func MustParseMode(s string) Mode {
	m, err := ParseMode(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText implements encoding.TextMarshaler.
//
// Unknown values are rejected rather than serialized as "Unknown(...)"
// so that invalid states are never persisted.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Default, Full, Short:
		return []byte(strings.ToLower(m.String())), nil
	default:
		return nil, fmt.Errorf("mode: cannot marshal unknown mode %d", m)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// tokens as ParseMode. On failure the receiver is left unchanged.
func (m *Mode) UnmarshalText(text []byte) error {
	value, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = value
	return nil
}
