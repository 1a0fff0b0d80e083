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
	"errors"
	"fmt"

	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/code"
)

// Error is the uniform error value.
//
// It carries:
//   - Code: the classification, one of the registered codes (required);
//   - Message: human-oriented description (required);
//   - Details: arbitrary payload, absent when nil;
//   - Cause: wrapped underlying error for errors.Is / errors.As.
//
// Treat an Error as immutable. All WithX helpers return a shallow copy, so
// Error instances can be shared across goroutines.
type Error struct {
	// Code is the classification callers branch on, e.g. code.NotFound.
	Code code.Code

	// Message is a human-readable explanation. This is what ends up in logs
	// and in the "message" field of a response body.
	Message string

	// Details is any value. Its shape is never checked at construction;
	// it is normalized when the error is rendered as JSON.
	Details any

	// Cause holds the wrapped underlying error, if any.
	Cause error
}

// E is the general constructor behind the per-code helpers.
//
// Usage:
//
//	return herrors.E(code.ServiceUnavailable, "storage is down",
//	    herrors.WithDetailsOption(map[string]any{"host": "db:5432"}),
//	    herrors.WithCauseOption(err),
//	)
//
// It always returns a new Error and applies the options in order. It never
// fails.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code> - <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s - %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ErrorCode returns the symbolic code. A nil Error has no code.
func (e *Error) ErrorCode() string {
	if e == nil {
		return ""
	}
	return string(e.Code)
}

// ErrorMessage returns the human message.
func (e *Error) ErrorMessage() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// ErrorDetails returns the raw details payload. May return nil.
func (e *Error) ErrorDetails() any {
	if e == nil {
		return nil
	}
	return e.Details
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetails returns a shallow copy of e carrying v as its details.
// Passing nil makes the details absent.
func (e *Error) WithDetails(v any) *Error {
	cp := *e
	cp.Details = v
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (code.Code, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code, true
	}
	return code.Empty, false
}

// DetailsOf returns the details of the first apis.DetailedError in err's
// chain. It reports false when there is none or its details are nil.
func DetailsOf(err error) (any, bool) {
	var de apis.DetailedError
	if !errors.As(err, &de) {
		return nil, false
	}
	d := de.ErrorDetails()
	return d, d != nil
}

// HasCode reports whether the first *Error in err's chain has code c.
func HasCode(err error, c code.Code) bool {
	got, ok := CodeOf(err)
	return ok && got == c
}
