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
	"net/http"

	"dirpx.dev/herrors/code"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// grpcDefaults holds per-code gRPC defaults, seeded from defaultGRPC.
	grpcDefaults map[code.Code]codes.Code

	// httpOverride holds exact per-code HTTP overrides (higher than the registry).
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides (higher than defaults).
	grpcOverride map[code.Code]codes.Code

	// global fallbacks used when a code has no mapping at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		grpcDefaults: make(map[code.Code]codes.Code, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}
	return b
}
