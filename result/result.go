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

// Package result renders the outcome of a fallible call as "Ok(...)" or
// "Err(...)". The success value is hidden or reduced to its type name;
// the error is always rendered in full with its debug form, because a
// redacted failure is useless in a log.
//
//	v, err := store.Load(ctx, key)
//	log.Printf("load: %v", result.NewOpaque(v, err)) // Ok(..) or Err(&errors.errorString{s:"not found"})
package result

import (
	"io"
	"strings"

	"dirpx.dev/fmtx/debugfmt"
)

// write renders an Ok or Err tuple to w; ok adds the payload of Ok.
func write(w io.Writer, isOK bool, e any, ok func(b *debugfmt.TupleBuilder)) error {
	if !isOK {
		return debugfmt.Tuple(w, "Err").Field(e).Finish()
	}
	b := debugfmt.Tuple(w, "Ok")
	ok(b)
	return b.Finish()
}

func text(isOK bool, e any, ok func(b *debugfmt.TupleBuilder)) string {
	var sb strings.Builder
	_ = write(&sb, isOK, e, ok)
	return sb.String()
}

// outcome is the state shared by every adaptor.
type outcome[T, E any] struct {
	p   *T
	e   E
	err bool
}

func fromPair[T any](v T, err error) outcome[T, error] {
	if err != nil {
		return outcome[T, error]{e: err, err: true}
	}
	return outcome[T, error]{p: &v}
}

func borrowPair[T any](p *T, err error) outcome[T, error] {
	if err != nil {
		return outcome[T, error]{e: err, err: true}
	}
	return outcome[T, error]{p: p}
}

// IsOk reports whether the outcome is a success.
func (o outcome[T, E]) IsOk() bool { return !o.err }

// Value returns the success value, or the zero T on failure or when a
// nil pointer was borrowed.
func (o outcome[T, E]) Value() T {
	if o.err || o.p == nil {
		var zero T
		return zero
	}
	return *o.p
}

// Err returns the failure, or the zero E on success.
func (o outcome[T, E]) Err() E { return o.e }
