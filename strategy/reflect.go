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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/fmtx/apis"
	uref "dirpx.dev/fmtx/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives names via
// reflection using utils/reflect.FullName and memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It always handles non-nil
// types: every Go type has a reflect-derived name.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t          reflect.Type
	mode       apis.Mode
	maxDepth   int
	stripParam bool
}

// typeNameCache caches resolved type names by (type, mode, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolve computes the name of v's dynamic type.
func (reflectStrategy) TryResolve(v any, m apis.Mode, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), m, cfg), true
}

// TryResolveType computes the name of t.
func (reflectStrategy) TryResolveType(t reflect.Type, m apis.Mode, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, m, cfg), true
}

// byType resolves the name for t with memoization.
func byType(t reflect.Type, m apis.Mode, cfg apis.Config) string {
	if m != apis.Full {
		m = apis.Short
	}
	key := cacheKey{
		t:          t,
		mode:       m,
		maxDepth:   cfg.MaxDepth,
		stripParam: cfg.StripTypeParams,
	}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	name := render(uref.FullName(t, cfg.MaxDepth, cfg.StripTypeParams), m)

	typeNameCache.Store(key, name)
	return name
}
