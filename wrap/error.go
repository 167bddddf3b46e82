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

package wrap

import (
	"errors"
	"fmt"
	"log/slog"
)

// DisplayAsDebugError is an error whose %#v is its Error() text.
//
// Presentation is the only thing that changes: Unwrap returns the wrapped
// error's own cause, and Is/As consult the wrapped error, so causal chains
// stay intact.
type DisplayAsDebugError struct {
	err error
}

// DisplayAsDebugErr wraps err. A nil err yields nil.
func DisplayAsDebugErr(err error) error {
	if err == nil {
		return nil
	}
	return &DisplayAsDebugError{err: err}
}

// Error returns the wrapped error's message.
func (e *DisplayAsDebugError) Error() string { return e.err.Error() }

// Format implements fmt.Formatter.
func (e *DisplayAsDebugError) Format(f fmt.State, verb rune) {
	displayAsDebug(f, verb, e.err)
}

// GoString returns the same text as Error.
func (e *DisplayAsDebugError) GoString() string { return e.Error() }

// Unwrap returns the wrapped error's cause, not the wrapped error itself.
func (e *DisplayAsDebugError) Unwrap() error { return errors.Unwrap(e.err) }

// Is reports whether the wrapped error matches target.
func (e *DisplayAsDebugError) Is(target error) bool { return errors.Is(e.err, target) }

// As finds the first error in the wrapped error's chain that matches target.
func (e *DisplayAsDebugError) As(target any) bool { return errors.As(e.err, target) }

// LogValue implements slog.LogValuer.
func (e *DisplayAsDebugError) LogValue() slog.Value { return slog.StringValue(e.Error()) }

// DebugAsDisplayError is an error whose Error() and %v are the wrapped
// error's %#v output.
type DebugAsDisplayError struct {
	err error
}

// DebugAsDisplayErr wraps err. A nil err yields nil.
func DebugAsDisplayErr(err error) error {
	if err == nil {
		return nil
	}
	return &DebugAsDisplayError{err: err}
}

// Error returns the wrapped error's %#v output.
func (e *DebugAsDisplayError) Error() string { return fmt.Sprintf("%#v", e.err) }

// Format implements fmt.Formatter.
func (e *DebugAsDisplayError) Format(f fmt.State, verb rune) {
	debugAsDisplay(f, verb, &e.err)
}

// GoString returns the same text as Error.
func (e *DebugAsDisplayError) GoString() string { return e.Error() }

// Unwrap returns the wrapped error's cause, not the wrapped error itself.
func (e *DebugAsDisplayError) Unwrap() error { return errors.Unwrap(e.err) }

// Is reports whether the wrapped error matches target.
func (e *DebugAsDisplayError) Is(target error) bool { return errors.Is(e.err, target) }

// As finds the first error in the wrapped error's chain that matches target.
func (e *DebugAsDisplayError) As(target any) bool { return errors.As(e.err, target) }

// LogValue implements slog.LogValuer.
func (e *DebugAsDisplayError) LogValue() slog.Value { return slog.StringValue(e.Error()) }
