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

// Package testvalue provides fixtures whose two renderers differ, for tests
// across the module.
package testvalue

import (
	"errors"
	"fmt"
)

// Value renders as "display_<N>" for %v and "debug_<N>" for %#v.
type Value struct{ N int }

// String implements fmt.Stringer.
func (v Value) String() string { return fmt.Sprintf("display_%d", v.N) }

// GoString implements fmt.GoStringer.
func (v Value) GoString() string { return fmt.Sprintf("debug_%d", v.N) }

// Error is an error with a distinct %#v form and an optional cause.
type Error struct {
	Msg   string
	Cause error
}

// Error implements error.
func (e *Error) Error() string { return e.Msg }

// GoString implements fmt.GoStringer.
func (e *Error) GoString() string { return fmt.Sprintf("Error{%q}", e.Msg) }

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Cause }

// FailingWriter fails every write with Err.
type FailingWriter struct{ Err error }

// Write implements io.Writer.
func (w FailingWriter) Write([]byte) (int, error) { return 0, w.Err }

// ErrSink is a ready-made sink failure.
var ErrSink = errors.New("sink failure")
