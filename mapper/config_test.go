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

package mapper

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/code"
)

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join("testdata", "mapper.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg.GRPCFallback)
	require.Equal(t, codes.Unknown, codes.Code(*cfg.GRPCFallback))

	m, err := New(cfg.Options()...)
	require.NoError(t, err)
	tests := []struct {
		c        code.Code
		wantHTTP int
		wantGRPC codes.Code
	}{
		{code.Conflict, 409, codes.FailedPrecondition},
		{code.NotFound, 404, codes.NotFound},
		{code.TooEarly, 425, codes.FailedPrecondition},
		{code.NoResponse, 502, codes.Unavailable},
		{code.SeeOther, 303, codes.Unknown},
		{code.BadRequest, 400, codes.InvalidArgument},
	}
	for _, tt := range tests {
		require.Equal(t, apis.Status{HTTP: tt.wantHTTP, GRPC: tt.wantGRPC}, m.Status(tt.c), tt.c)
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	for _, in := range []string{"", "# nothing here\n"} {
		cfg, err := LoadConfig([]byte(in))
		require.NoError(t, err, in)
		require.Empty(t, cfg.Options(), "empty config must yield no options")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown field":     "grpc_fallbak: internal\n",
		"unknown code":      "grpc_overrides:\n  not_a_code: internal\n",
		"unknown grpc name": "grpc_overrides:\n  not_found: missing\n",
		"grpc out of range": "grpc_overrides:\n  not_found: 17\n",
		"grpc not scalar":   "grpc_overrides:\n  not_found: [5]\n",
		"http out of range": "http_overrides:\n  not_found: 700\n",
		"http unknown code": "http_overrides:\n  ok: 200\n",
		"multi document":    "grpc_fallback: internal\n---\ngrpc_fallback: unknown\n",
		"bad yaml":          "grpc_overrides: [\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig([]byte(in))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_UnknownCodeIsWrapped(t *testing.T) {
	_, err := LoadConfig([]byte("grpc_overrides:\n  nope: internal\n"))
	require.ErrorIs(t, err, code.ErrUnknownCode)
}

func TestGRPCCode_Names(t *testing.T) {
	tests := map[string]codes.Code{
		"grpc_fallback: ok\n":                 codes.OK,
		"grpc_fallback: canceled\n":           codes.Canceled,
		"grpc_fallback: CANCELLED\n":          codes.Canceled,
		"grpc_fallback: invalid_argument\n":   codes.InvalidArgument,
		"grpc_fallback: Resource-Exhausted\n": codes.ResourceExhausted,
		"grpc_fallback: 16\n":                 codes.Unauthenticated,
		"grpc_fallback: \"14\"\n":             codes.Unavailable,
	}
	for in, want := range tests {
		cfg, err := LoadConfig([]byte(in))
		require.NoError(t, err, in)
		require.Equal(t, want, codes.Code(*cfg.GRPCFallback), in)
	}
}
