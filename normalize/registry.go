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
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrEmpty is returned when registering an empty id or alias.
	ErrEmpty = errors.New("normalize: empty handle id or alias")

	// ErrAliasTaken is returned when the alias is bound to another handle.
	ErrAliasTaken = errors.New("normalize: alias already registered")

	// ErrHandleRegistered is returned when the handle already has an alias.
	ErrHandleRegistered = errors.New("normalize: handle already registered")
)

// AliasResolver looks up the human-readable alias of a local handle.
type AliasResolver interface {
	Alias(id string) (string, bool)
}

// AliasFunc adapts a function to AliasResolver.
type AliasFunc func(id string) (string, bool)

// Alias implements AliasResolver.
func (f AliasFunc) Alias(id string) (string, bool) { return f(id) }

// Registry is a process-local table of handle aliases. Each handle has at
// most one alias and each alias names at most one handle.
//
// Lookups never wait for writers: when the table is being modified, Alias
// reports no alias.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]string
	byAlias map[string]string
}

// DefaultRegistry is consulted by the package-level Normalize.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]string),
		byAlias: make(map[string]string),
	}
}

// Register binds alias to the handle identified by id.
func (r *Registry) Register(id, alias string) error {
	if id == "" || alias == "" {
		return ErrEmpty
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.byAlias[alias]; ok && owner != id {
		return fmt.Errorf("%w: %q is bound to %q", ErrAliasTaken, alias, owner)
	}
	if prev, ok := r.byID[id]; ok && prev != alias {
		return fmt.Errorf("%w: %q is registered as %q", ErrHandleRegistered, id, prev)
	}
	r.byID[id] = alias
	r.byAlias[alias] = id
	return nil
}

// Unregister removes the alias of id. It reports whether one was present.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	alias, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	delete(r.byAlias, alias)
	return true
}

// Alias implements AliasResolver.
func (r *Registry) Alias(id string) (string, bool) {
	if !r.mu.TryRLock() {
		return "", false
	}
	defer r.mu.RUnlock()
	alias, ok := r.byID[id]
	return alias, ok
}

// Whereis returns the handle id registered under alias.
func (r *Registry) Whereis(alias string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byAlias[alias]
	return id, ok
}
