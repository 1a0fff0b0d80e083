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

// Package adapter holds the pieces shared by the transport adapters: finding
// the presentable error in a chain and describing it for structured logs.
package adapter

import (
	"errors"
	"net/http"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/code"
)

// Resolve finds the first apis.Presenter in err's chain and parses its code.
//
// When err has no Presenter, or the Presenter's code is not registered, the
// result is an internal_server_error wrapping err and ok is false. The text of
// err is never copied into the replacement, so it is safe to send to clients.
func Resolve(err error) (p apis.Presenter, c code.Code, ok bool) {
	if errors.As(err, &p) {
		if c, perr := code.Parse(p.ErrorCode()); perr == nil {
			return p, c, true
		}
	}
	return Unclassified(err), code.InternalServerError, false
}

// Unclassified returns the internal_server_error that replaces an error the
// adapters cannot present. err is kept as the cause.
func Unclassified(err error) *herrors.Error {
	return herrors.E(code.InternalServerError,
		http.StatusText(http.StatusInternalServerError),
		herrors.WithCauseOption(err))
}

// ToDescriptor converts a presentable error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging. It carries both the
// logical code and the concrete transport statuses (HTTP and gRPC).
func ToDescriptor(p apis.Presenter, st apis.Status) apis.ErrorDescriptor {
	if p == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       p.ErrorCode(),
		Message:    p.ErrorMessage(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}
