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

// Package strategy provides the name resolution steps chained by resolver.
package strategy

import (
	"dirpx.dev/fmtx/apis"
	uref "dirpx.dev/fmtx/utils/reflect"
)

// render projects a full name onto mode m.
// Strategies receive an already-resolved mode, so Default only shows up
// when a strategy is used directly; it is treated as Short.
func render(full string, m apis.Mode) string {
	if m == apis.Full {
		return full
	}
	return uref.ShortName(full)
}
