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

// Package fmtx provides formatting adaptors that swap, hide or summarize
// what a value prints, plus the process-wide type-name resolution those
// adaptors rely on.
//
// Go has two renderers for every value: the user-facing one (%v, %s,
// fmt.Stringer, error.Error) and the developer one (%#v, fmt.GoStringer).
// The subpackages redirect one to the other, or replace the value with a
// marker entirely:
//
//   - wrap:     DisplayAsDebug / DebugAsDisplay redirect wrappers, owned and
//     borrowed, plus error variants that keep Unwrap/Is/As intact.
//   - types:    the opaque marker (".."), type-name markers and container
//     summaries such as "[..: 100]" or "{<string, int>: 3}".
//   - option:   Some(..) / Some(<T>) / None adaptors for optional values.
//   - result:   Ok(..) / Ok(<T>) / Err(<%#v of err>) adaptors for (v, err) pairs.
//   - debugfmt: struct, tuple, list, set and map record builders with
//     helpers that add fields through the adaptors above.
//   - zapfmt:   zap.Field constructors over the adaptors.
//
// # Type-name resolution
//
// Type-name markers need "the name of T". This package keeps a read-mostly
// global snapshot (state) that answers that question. The snapshot holds:
//
//   - Config: the default Mode, the composite-type recursion bound and
//     whether generic instantiation arguments are stripped.
//
//   - Registry: explicit full-name overrides per exact reflect.Type,
//     written at runtime with RegisterTypeName.
//
//   - Resolver: an ordered strategy chain:
//     1. If the type implements apis.Namer, use its TypeName().
//     2. If the type is in the Registry, use that name.
//     3. Otherwise derive the name through reflection (memoized).
//
//   - Builder: the factory that constructs Registry and Resolver for a
//     Config and migrates registry entries on rebuild.
//
// Readers load the snapshot atomically and never take locks:
//
//	fmtx.TypeNameFor[*model.User](apis.Full)   // "*example.com/app/model.User"
//	fmtx.TypeNameOf(users, apis.Short)         // "[]*User"
//
// Writers (SetConfig, SetBuilder, SetRegistry, SetResolver, SetAll, the
// Pin/Unpin helpers) take a short build mutex, assemble a new snapshot and
// publish it with an atomic pointer swap.
//
// # Pinning
//
// SetRegistry and SetResolver install a layer and pin it: later SetConfig
// or SetBuilder calls stop rebuilding that layer until it is unpinned.
//
// # Errors
//
// Rendering never adds errors of its own. WriteDebug and WriteDisplay
// return exactly what the sink returned.
package fmtx
