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

// Namer lets a type choose the name that type-name markers display for it.
//
// # Overview
//
// Namer is the zero-reflection fast path of the resolution chain. When a
// type implements Namer, resolution MUST prefer it over registry lookups
// and reflection.
//
// TypeName is a type-level contract: it describes the kind of value, not a
// particular instance. Resolvers may call it on the zero value of the type
// when no instance is available, so implementations MUST NOT read instance
// state.
//
// # Usage
//
//	type Token struct{ raw string }
//
//	func (Token) TypeName() string { return "auth/session.Token" }
//
//	fmtx.TypeNameFor[Token](apis.Full)  // "auth/session.Token"
//	fmtx.TypeNameFor[Token](apis.Short) // "Token"
//
// The returned string is treated as the Full name; the Short form is
// derived from it with the same last-segment rule used for reflected names.
type Namer interface {
	// TypeName returns the fully qualified display name of the type.
	//
	// # Contract
	//
	//   - The returned name MUST be non-empty and deterministic.
	//   - It MUST NOT depend on instance state and MUST be safe to call on
	//     the zero value. A TypeName that panics on the zero value is
	//     skipped and resolution falls through to the registry and reflection.
	//   - It MUST be safe for concurrent calls and MUST NOT block or perform I/O.
	TypeName() string
}

// NamerFunc adapts a plain function to the Namer interface.
type NamerFunc func() string

// TypeName implements Namer for NamerFunc.
func (f NamerFunc) TypeName() string {
	return f()
}
