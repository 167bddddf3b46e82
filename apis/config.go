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

// Config carries read-only knobs that influence how type names are rendered.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// DefaultMode is the mode used when a caller asks for Default.
	// It must be Full or Short; anything else is treated as Short.
	DefaultMode Mode `yaml:"default_mode" json:"default_mode"`

	// MaxDepth limits recursion when composing names of composite types
	// (ptr/slice/array/chan/map). Past the limit the reflect.Type string
	// is used as-is. Acts as a safety guard against pathological nesting.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// StripTypeParams drops generic instantiation arguments from named
	// types: "pkg.Box[int]" -> "pkg.Box".
	StripTypeParams bool `yaml:"strip_type_params" json:"strip_type_params"`
}

// ModeFor resolves m against the configuration: Default maps to
// DefaultMode, Full and Short are returned unchanged.
func (c Config) ModeFor(m Mode) Mode {
	switch m {
	case Full, Short:
		return m
	}
	if c.DefaultMode == Full {
		return Full
	}
	return Short
}
