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

// Package mapper provides deterministic, immutable mappings from herrors
// codes (dirpx.dev/herrors/code) to transport-level statuses for HTTP and
// gRPC.
//
// # Overview
//
// Every code already carries an HTTP status in the code registry, e.g.
// code.NotFound is 404. gRPC has no such natural pairing, so this package
// ships a table translating every 4xx and 5xx code into a canonical gRPC
// status and lets callers adjust it. A Mapper is an immutable snapshot, safe
// for concurrent reuse, and resolves HTTP and gRPC from the same rules.
//
// # Resolution model
//
// HTTP statuses resolve in the following order:
//
//  1. exact override for the Code;
//  2. status registered for the Code in package code;
//  3. global fallback (500).
//
// gRPC statuses resolve in the following order:
//
//  1. exact override for the Code;
//  2. per-Code default (library or user-adjusted);
//  3. global fallback (codes.Internal unless changed with WithGRPCFallback).
//
// Redirection codes (3xx) have no gRPC default and resolve to the fallback.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithGRPCOverride(code.Conflict, codes.FailedPrecondition),
//	    mapper.WithHTTPOverride(code.NoResponse, http.StatusBadGateway),
//	)
//	if err != nil {
//	    // unknown code or out-of-range status
//	}
//
//	st := m.Status(code.Conflict)
//	// st.HTTP == 409, st.GRPC == codes.FailedPrecondition
//
// The same rules can be read from YAML with LoadConfig:
//
//	grpc_fallback: UNKNOWN
//	grpc_overrides:
//	  conflict: FAILED_PRECONDITION
//	  not_found: 5
//	http_overrides:
//	  no_response: 502
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular code was resolved, including which tier matched.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps. This makes it safe to
// share a single instance across handlers, goroutines, and requests.
package mapper
