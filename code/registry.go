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

package code

import (
	"fmt"
	"net/http"
)

// Class groups codes by the hundreds digit of their HTTP status.
type Class uint8

const (
	// ClassUnknown is reported for codes missing from the registry.
	ClassUnknown Class = iota
	// ClassRedirection covers 3xx codes.
	ClassRedirection
	// ClassClientError covers 4xx codes.
	ClassClientError
	// ClassServerError covers 5xx codes.
	ClassServerError
)

func (c Class) String() string {
	switch c {
	case ClassRedirection:
		return "redirection"
	case ClassClientError:
		return "client_error"
	case ClassServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// Status returns the HTTP status registered for c.
func Status(c Code) (int, error) {
	if st, ok := lookupStatus(c); ok {
		return st, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCode, string(c))
}

// MustStatus is the panic-on-error variant of Status.
func MustStatus(c Code) int {
	st, err := Status(c)
	if err != nil {
		panic(err)
	}
	return st
}

// FromStatus returns the code registered for an HTTP status.
func FromStatus(status int) (Code, error) {
	if c, ok := lookupCode(status); ok {
		return c, nil
	}
	return Empty, fmt.Errorf("%w: %d", ErrUnknownStatus, status)
}

// HTTPStatus returns the registered status of c, or 500 when c is unknown.
// Transports must never emit a zero status.
func (c Code) HTTPStatus() int {
	if st, ok := lookupStatus(c); ok {
		return st
	}
	return http.StatusInternalServerError
}

// Class reports which status range c belongs to.
func (c Code) Class() Class {
	st, ok := lookupStatus(c)
	if !ok {
		return ClassUnknown
	}
	switch st / 100 {
	case 3:
		return ClassRedirection
	case 4:
		return ClassClientError
	case 5:
		return ClassServerError
	}
	return ClassUnknown
}

// All returns every registered code ordered by HTTP status.
// The returned slice is a copy and may be modified by the caller.
func All() []Code {
	out := make([]Code, len(catalogue))
	copy(out, catalogue[:])
	return out
}
