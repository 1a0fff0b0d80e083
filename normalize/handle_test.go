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
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type worker struct {
	id string
}

func (w *worker) HandleID() string { return "#PID<" + w.id + ">" }
func (w *worker) Local() bool      { return true }

func TestNormalize_LocalHandleWithAlias(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("#PID<0.1.0>", "mailer"))
	n := New(WithAliasResolver(reg))

	require.Equal(t, "#PID<0.1.0>__mailer", n.Normalize(&worker{id: "0.1.0"}))
	require.Equal(t, "#PID<0.2.0>", n.Normalize(&worker{id: "0.2.0"}))
}

func TestNormalize_RemoteHandleSkipsLookup(t *testing.T) {
	var calls int
	n := New(WithAliasResolver(AliasFunc(func(string) (string, bool) {
		calls++
		return "remote_alias", true
	})))

	require.Equal(t, "node-b/42", n.Normalize(Ref{ID: "node-b/42", Remote: true}))
	require.Zero(t, calls)

	require.Equal(t, "local/1__remote_alias", n.Normalize(Ref{ID: "local/1"}))
	require.Equal(t, 1, calls)
}

func TestNormalize_HandleInsideDetails(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("job-7", "reindex"))
	n := New(WithAliasResolver(reg))

	got := n.Normalize(map[string]any{
		"owner": Ref{ID: "job-7"},
		"peers": []Ref{{ID: "job-8"}, {ID: "far", Remote: true}},
	})
	require.Equal(t, map[string]any{
		"owner": "job-7__reindex",
		"peers": []any{"job-8", "far"},
	}, got)
}

func TestNormalize_Channel(t *testing.T) {
	ch := make(chan int)
	id, ok := HandleID(ch)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(id, "chan int(0x"), id)

	reg := NewRegistry()
	n := New(WithAliasResolver(reg))
	require.Equal(t, id, n.Normalize(ch))

	require.NoError(t, reg.Register(id, "events"))
	require.Equal(t, id+"__events", n.Normalize(ch))
}

func TestNormalize_UnsafePointer(t *testing.T) {
	x := 1
	got, ok := New(WithAliasResolver(nil)).Normalize(unsafe.Pointer(&x)).(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(got, "unsafe.Pointer(0x"), got)
}

func TestNormalize_AliasLookupIsBestEffort(t *testing.T) {
	panicky := New(WithAliasResolver(AliasFunc(func(string) (string, bool) {
		panic("resolver down")
	})))
	require.Equal(t, "svc", panicky.Normalize(Ref{ID: "svc"}))

	empty := New(WithAliasResolver(AliasFunc(func(string) (string, bool) {
		return "", true
	})))
	require.Equal(t, "svc", empty.Normalize(Ref{ID: "svc"}))

	none := New(WithAliasResolver(nil))
	require.Equal(t, "svc", none.Normalize(Ref{ID: "svc"}))
}

func TestRegistry_DoesNotBlockOnWriter(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", "alpha"))

	reg.mu.Lock()
	alias, ok := reg.Alias("a")
	reg.mu.Unlock()
	require.False(t, ok)
	require.Empty(t, alias)

	alias, ok = reg.Alias("a")
	require.True(t, ok)
	require.Equal(t, "alpha", alias)
}

func TestRegistry_RegisterRules(t *testing.T) {
	reg := NewRegistry()
	require.ErrorIs(t, reg.Register("", "x"), ErrEmpty)
	require.ErrorIs(t, reg.Register("x", ""), ErrEmpty)

	require.NoError(t, reg.Register("a", "alpha"))
	require.NoError(t, reg.Register("a", "alpha"), "re-registering the same pair is a no-op")
	require.ErrorIs(t, reg.Register("b", "alpha"), ErrAliasTaken)
	require.ErrorIs(t, reg.Register("a", "beta"), ErrHandleRegistered)

	id, ok := reg.Whereis("alpha")
	require.True(t, ok)
	require.Equal(t, "a", id)

	require.True(t, reg.Unregister("a"))
	require.False(t, reg.Unregister("a"))
	_, ok = reg.Whereis("alpha")
	require.False(t, ok)
	require.NoError(t, reg.Register("b", "alpha"))
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := NewRegistry()
	n := New(WithAliasResolver(reg))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			for j := 0; j < 500; j++ {
				if err := reg.Register(id, "alias-"+id); err != nil && !errors.Is(err, ErrAliasTaken) {
					t.Errorf("Register: %v", err)
					return
				}
				_ = n.Normalize(Ref{ID: id})
				reg.Unregister(id)
			}
		}(i)
	}
	wg.Wait()
}

func TestHandleID_NotAHandle(t *testing.T) {
	_, ok := HandleID(42)
	require.False(t, ok)
	_, ok = HandleID(nil)
	require.False(t, ok)
	_, ok = HandleID((chan int)(nil))
	require.False(t, ok)
}
