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

package fmtx

import (
	"fmt"
	"io"
)

// WriteDebug renders v with %#v into w. The error is exactly the one
// returned by w; nothing is added or translated.
func WriteDebug(w io.Writer, v any) error {
	_, err := fmt.Fprintf(w, "%#v", v)
	return err
}

// WriteDisplay renders v with %v into w.
func WriteDisplay(w io.Writer, v any) error {
	_, err := fmt.Fprintf(w, "%v", v)
	return err
}

// Debug returns the %#v rendering of v.
func Debug(v any) string {
	return fmt.Sprintf("%#v", v)
}

// Display returns the %v rendering of v.
func Display(v any) string {
	return fmt.Sprintf("%v", v)
}
