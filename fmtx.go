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
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/builder"
	"dirpx.dev/fmtx/config"
	uref "dirpx.dev/fmtx/utils/reflect"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil)
	s.res = s.bld.BuildResolver(s.cfg, s.reg, nil)
	st.Store(s)
}

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("fmtx: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("fmtx: builder returned nil resolver")
)

// TypeName returns the display name of t in mode m using the global
// snapshot. A nil t yields "<nil>".
func TypeName(t reflect.Type, m apis.Mode) string {
	s := st.Load()
	return s.res.ResolveType(t, m, s.cfg)
}

// TypeNameOf returns the display name of v's dynamic type in mode m.
func TypeNameOf(v any, m apis.Mode) string {
	s := st.Load()
	return s.res.Resolve(v, m, s.cfg)
}

// TypeNameFor returns the display name of the static type T in mode m.
// Interface types keep their own name: TypeNameFor[error] is "error".
func TypeNameFor[T any](m apis.Mode) string {
	return TypeName(reflect.TypeFor[T](), m)
}

// ShortName reduces a full type name to its Short form.
// A name without separators is returned unchanged.
func ShortName(full string) string {
	return uref.ShortName(full)
}

// RegisterTypeName adds a full-name override for exactly t to the global registry.
func RegisterTypeName(t reflect.Type, name string) error {
	return st.Load().reg.Register(t, name)
}

// SetAll explicitly sets all global snapshot components.
//
// A nil cfg or bld keeps the current value. A nil reg or res is rebuilt
// through the builder and left unpinned; a non-nil one is installed and
// pinned. Tests use SetAll to get a clean deterministic snapshot.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{cfg: old.cfg, bld: old.bld, reg: reg, res: res}
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	if next.reg == nil {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
	} else {
		next.preg = true
	}
	if next.res == nil {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res)
	} else {
		next.pres = true
	}
	publish(next)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration and rebuilds the
// non-pinned layers.
func SetConfig(cfg apis.Config) {
	update(func(next *state) { next.cfg = cfg }, true, true)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs and pins reg. The resolver is rebuilt against it
// unless pinned. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(next *state) {
		next.reg = reg
		next.preg = true
	}, false, true)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs and pins res. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(next *state) {
		next.res = res
		next.pres = true
	}, false, false)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and rebuilds the non-pinned layers with it.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(next *state) { next.bld = b }, true, true)
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic registry rebuilds.
func PinRegistry() {
	update(func(next *state) { next.preg = true }, false, false)
}

// UnpinRegistry re-enables automatic registry rebuilds.
func UnpinRegistry() {
	update(func(next *state) { next.preg = false }, false, false)
}

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops automatic resolver rebuilds.
func PinResolver() {
	update(func(next *state) { next.pres = true }, false, false)
}

// UnpinResolver re-enables automatic resolver rebuilds.
func UnpinResolver() {
	update(func(next *state) { next.pres = false }, false, false)
}

// update copies the current snapshot, applies mut, rebuilds the requested
// non-pinned layers and publishes the result under buildMu.
func update(mut func(*state), rebuildReg, rebuildRes bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	mut(&next)

	if rebuildReg && !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
	}
	if rebuildRes && !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res)
	}
	publish(&next)
}

// publish validates and stores s. Callers hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store; never
// mutate fields of a published state. Writers copy, modify and swap.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
}
