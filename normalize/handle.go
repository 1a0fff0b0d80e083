/*
   Copyright 2025 The DIRPX Authors

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

package normalize

import (
	"fmt"
	"reflect"
)

// Handle is an opaque reference to a process or resource: a worker, a
// connection, a subscription. It has no JSON form of its own, so it is
// rendered as its identifier.
type Handle interface {
	// HandleID returns a stable, printable identifier.
	HandleID() string

	// Local reports whether the handle refers to something owned by the
	// running process. Only local handles are looked up in the alias
	// resolver.
	Local() bool
}

// Ref is a minimal Handle for resources identified by a string.
type Ref struct {
	ID     string
	Remote bool
}

// HandleID implements Handle.
func (r Ref) HandleID() string { return r.ID }

// Local implements Handle.
func (r Ref) Local() bool { return !r.Remote }

// HandleID returns the identifier Normalize would use for v, so that
// channels and other handles can be registered under an alias.
func HandleID(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	id, _, ok := handleOf(reflect.ValueOf(v))
	return id, ok
}

// handleOf identifies opaque handles. Channels and unsafe pointers are always
// local to the process.
func handleOf(rv reflect.Value) (id string, local, ok bool) {
	switch rv.Kind() {
	case reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return "", false, false
		}
		return fmt.Sprintf("%s(%#x)", rv.Type(), rv.Pointer()), true, true
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false, false
		}
	}
	if !rv.CanInterface() {
		return "", false, false
	}
	h, isHandle := rv.Interface().(Handle)
	if !isHandle {
		return "", false, false
	}
	return h.HandleID(), h.Local(), true
}

func (n *Normalizer) handle(rv reflect.Value) (string, bool) {
	id, local, ok := handleOf(rv)
	if !ok {
		return "", false
	}
	if !local {
		return id, true
	}
	if alias, found := n.alias(id); found {
		return id + "__" + alias, true
	}
	return id, true
}

// alias is best-effort: a missing resolver, a busy registry or a panicking
// resolver all yield the bare identifier.
func (n *Normalizer) alias(id string) (alias string, ok bool) {
	if n.aliases == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			alias, ok = "", false
		}
	}()
	alias, ok = n.aliases.Alias(id)
	return alias, ok && alias != ""
}
