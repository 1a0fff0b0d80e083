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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/code"
	"google.golang.org/grpc/codes"
)

var (
	// ErrInvalidGRPCCode is returned by New when a rule targets a value
	// outside the canonical gRPC codes (0..16).
	ErrInvalidGRPCCode = errors.New("mapper: invalid gRPC code")

	// ErrInvalidHTTPStatus is returned by New when an HTTP override is
	// outside 100..599.
	ErrInvalidHTTPStatus = errors.New("mapper: invalid HTTP status")
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults.
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Validate every rule: the code must be registered and the target
//     status must be in range.
//  4. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	// (1) Seed the builder with package-level defaults.
	b := newBuilder()

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	for c, v := range b.httpOverride {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: HTTP override: %w", err)
		}
		if !validHTTP(v) {
			return nil, fmt.Errorf("%w: %d for code %q", ErrInvalidHTTPStatus, v, c)
		}
	}
	for _, rules := range []map[code.Code]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for c, v := range rules {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: gRPC rule: %w", err)
			}
			if !validGRPC(v) {
				return nil, fmt.Errorf("%w: %d for code %q", ErrInvalidGRPCCode, v, c)
			}
		}
	}
	if !validGRPC(b.fallbackGRPC) {
		return nil, fmt.Errorf("%w: fallback %d", ErrInvalidGRPCCode, b.fallbackGRPC)
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines the code
// registry, per-code gRPC defaults and per-code exact overrides. Lookups are
// map reads and safe for concurrent use once constructed.
type mapper struct {
	// grpcDefault holds the base gRPC status for a given code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over the registry.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when a code is not registered.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. status from the code registry;
//  3. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(c code.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, err := code.Status(c); err == nil {
		return v
	}
	// HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
//
// Resolution order:
//  1. exact per-code override;
//  2. per-code default;
//  3. fallback (codes.Internal unless configured).
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// Example output:
//
//	code="conflict"
//	http: source=registry -> 409
//	grpc: source=override -> FAILEDPRECONDITION(9)
//
// Notes:
//   - http source ∈ {override | registry | fallback}
//   - grpc source ∈ {override | default | fallback}
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprint(&b, m.explainGRPC(c))
	return b.String()
}

// explainHTTP returns a formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(c code.Code) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, err := code.Status(c); err == nil {
		return fmt.Sprintf("http: source=registry -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(c code.Code) string {
	if v, ok := m.grpcOverride[c]; ok {
		return "grpc: source=override -> " + grpcName(v)
	}
	if v, ok := m.grpcDefault[c]; ok {
		return "grpc: source=default -> " + grpcName(v)
	}
	return "grpc: source=fallback -> " + grpcName(m.fallbackGRPC)
}
