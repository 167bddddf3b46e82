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
	"errors"
	"fmt"

	"dirpx.dev/fmtx/apis"
)

const (
	// DefaultMode represents the default for Config.DefaultMode.
	// Short names keep log lines compact; Full is opt-in.
	DefaultMode = apis.Short
	// DefaultMaxDepth represents the default for MaxDepth.
	// A value of 16 covers any realistic nesting of composite types.
	DefaultMaxDepth = 16
	// DefaultStripTypeParams represents the default for StripTypeParams.
	DefaultStripTypeParams = false
)

// ErrInvalidMode is returned by Validate when DefaultMode is not Full or Short.
var ErrInvalidMode = errors.New("fmtx(config): default mode must be full or short")

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		DefaultMode:     DefaultMode,
		MaxDepth:        DefaultMaxDepth,
		StripTypeParams: DefaultStripTypeParams,
	}
}

// Validate reports whether cfg can be published as is.
func Validate(cfg apis.Config) error {
	switch cfg.DefaultMode {
	case apis.Full, apis.Short:
	default:
		return fmt.Errorf("%w: got %v", ErrInvalidMode, cfg.DefaultMode)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("fmtx(config): max depth must not be negative: %d", cfg.MaxDepth)
	}
	return nil
}

// normalize applies the same guardrails as the With* options.
func normalize(cfg apis.Config) apis.Config {
	if cfg.DefaultMode != apis.Full {
		cfg.DefaultMode = apis.Short
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDefaultMode sets the DefaultMode option.
// Default (or any unknown value) resolves to Short.
func WithDefaultMode(m apis.Mode) Option {
	return func(c *apis.Config) {
		c.DefaultMode = m
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithStripTypeParams sets the StripTypeParams option.
func WithStripTypeParams(strip bool) Option {
	return func(c *apis.Config) {
		c.StripTypeParams = strip
	}
}
