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

package herrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/herrors/code"
)

func TestLogString(t *testing.T) {
	t.Run("no details", func(t *testing.T) {
		require.Equal(t, "not_found - User not found", NotFound("User not found").LogString())
	})

	empties := map[string]any{
		"empty map":    map[string]any{},
		"empty slice":  []int{},
		"nil slice":    []int(nil),
		"empty array":  [0]int{},
		"empty string": "",
		"nil pointer":  (*int)(nil),
	}
	for name, d := range empties {
		t.Run(name, func(t *testing.T) {
			e := NotFoundWith("User not found", d)
			require.Equal(t, "not_found - User not found", e.LogString())
		})
	}

	t.Run("with details", func(t *testing.T) {
		e := NotFoundWith("User not found", map[string]any{"user_id": 123})
		s := e.LogString()
		require.True(t, strings.HasPrefix(s, "not_found - User not found\nDetails: \n"), s)
		require.Contains(t, s, `"user_id"`)
		require.Contains(t, s, "123")
	})

	t.Run("raw details", func(t *testing.T) {
		type UserStruct struct{ Name string }
		e := BadRequestWith("bad user", UserStruct{Name: "John"})
		s := e.LogString()
		require.Contains(t, s, "UserStruct")
		require.Contains(t, s, "John")
		require.NotContains(t, s, `"struct"`)
	})
}

func TestJSONMap(t *testing.T) {
	e := NotFoundWith("User not found", map[string]any{"user_id": 123})

	got := e.JSONMap(context.Background())
	require.Equal(t, map[string]any{
		"code":    "not_found",
		"message": "User not found",
		"details": map[string]any{"user_id": 123},
	}, got)
	_, ok := got["request_id"]
	require.False(t, ok)
}

func TestJSONMap_RequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	got := Forbidden("nope").JSONMap(ctx)

	require.Equal(t, "req-42", got["request_id"])
	require.Nil(t, got["details"])
	require.Contains(t, got, "details")
}

func TestJSONMap_NormalizesDetails(t *testing.T) {
	type UserStruct struct {
		Name string `json:"name"`
	}
	e := UnprocessableEntityWith("invalid", map[string]any{
		"user":  UserStruct{Name: "John"},
		"tuple": [2]any{true, 500},
		"code":  code.Conflict,
	})

	got := e.JSONMap(nil)
	require.Equal(t, map[string]any{
		"user":  map[string]any{"struct": "UserStruct", "data": map[string]any{"name": "John"}},
		"tuple": []any{true, 500},
		"code":  "conflict",
	}, got["details"])
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestID(ctx)
	require.False(t, ok)
	require.Equal(t, ctx, WithRequestID(ctx, ""))

	id, ok := RequestID(WithRequestID(ctx, "abc"))
	require.True(t, ok)
	require.Equal(t, "abc", id)

	//nolint:staticcheck // a nil context must be tolerated
	_, ok = RequestID(nil)
	require.False(t, ok)
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, 404, NotFound("x").HTTPStatus())
	require.Equal(t, 500, InternalServerError("x").HTTPStatus())
	require.Equal(t, 418, ImATeapot("x").HTTPStatus())
	require.Equal(t, 404, code.NotFound.HTTPStatus())

	require.Equal(t, 429, HTTPStatus(fmt.Errorf("wrap: %w", TooManyRequests("slow down"))))
	require.Equal(t, 500, HTTPStatus(errors.New("plain")))
	require.Equal(t, 500, E(code.Code("bogus"), "x").HTTPStatus())
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := NotFoundWith("User not found", map[string]any{"user_id": 123}).
		WithCause(errors.New("sql: no rows"))
	logger.Error("lookup failed", "err", e)

	out := buf.String()
	require.Contains(t, out, "err.code=not_found")
	require.Contains(t, out, `err.message="User not found"`)
	require.Contains(t, out, "err.http_status=404")
	require.Contains(t, out, "err.details=map[user_id:123]")
	require.Contains(t, out, `err.cause="sql: no rows"`)
}

func TestLogValue_NoDetails(t *testing.T) {
	v := Gone("removed").LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())
	for _, a := range v.Group() {
		require.NotEqual(t, "details", a.Key)
		require.NotEqual(t, "cause", a.Key)
	}
}
