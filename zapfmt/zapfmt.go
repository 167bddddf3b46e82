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

// Package zapfmt builds zap fields from the fmtx adaptors, so a log line
// can carry a redacted value, a type name or a summary without the value
// itself ever reaching the encoder.
//
//	logger.Info("session opened",
//		zapfmt.Opaque("token"),
//		zapfmt.TypeNameOf("store", store, apis.Short),
//		zapfmt.ResultOpaque("lookup", user, err),
//	)
//
// Every field is a zap.Stringer: the text is produced only when an encoder
// actually writes the entry.
package zapfmt

import (
	"go.uber.org/zap"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/option"
	"dirpx.dev/fmtx/result"
	"dirpx.dev/fmtx/types"
	"dirpx.dev/fmtx/wrap"
)

// Opaque logs ".." under key.
func Opaque(key string) zap.Field {
	return zap.Stringer(key, types.OpaqueMarker{})
}

// Display logs the display form of v.
func Display(key string, v any) zap.Field {
	return zap.Stringer(key, wrap.NewDisplayAsDebug(v))
}

// Debug logs the debug form of v.
func Debug(key string, v any) zap.Field {
	return zap.Stringer(key, wrap.NewDebugAsDisplay(v))
}

// TypeName logs the name of the static type T.
func TypeName[T any](key string, m apis.Mode) zap.Field {
	return zap.Stringer(key, types.NewTypeName[T](m))
}

// TypeNameOf logs the name of v's dynamic type.
func TypeNameOf(key string, v any, m apis.Mode) zap.Field {
	return zap.Stringer(key, types.TypeNameOfValue(v, m))
}

// OpaqueList logs "[..: n]".
func OpaqueList(key string, n int) zap.Field {
	return zap.Stringer(key, types.OpaqueList{Len: n})
}

// OpaqueSet logs "{..: n}".
func OpaqueSet(key string, n int) zap.Field {
	return zap.Stringer(key, types.OpaqueSet{Len: n})
}

// OptionOpaque logs "Some(..)" or "None" depending on p.
func OptionOpaque[T any](key string, p *T) zap.Field {
	return zap.Stringer(key, option.OpaqueOf(p))
}

// ResultOpaque logs "Ok(..)", or the failure in its debug form.
func ResultOpaque[T any](key string, v T, err error) zap.Field {
	return zap.Stringer(key, result.NewOpaque(v, err))
}
