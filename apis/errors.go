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

package apis

// CodedError represents an error that is classified into one of the
// registered codes of package code.
//
// A code mirrors an HTTP status reason phrase, such as:
//   - "bad_request":           malformed input or validation failure,
//   - "not_found":             a referenced object does not exist,
//   - "conflict":              concurrent modification or version mismatch,
//   - "internal_server_error": unexpected server-side failure.
//
// Codes are stable and enumerable. They are the primary value that adapters
// use to decide which status to return to the client.
type CodedError interface {
	error

	// ErrorCode returns the symbolic code, e.g. "not_found".
	//
	// Adapters treat unknown or empty codes as internal server errors.
	ErrorCode() string
}

// DetailedError represents an error that carries an arbitrary details
// payload.
//
// The payload is returned as is; herrors.DetailsOf finds it anywhere in an
// error chain. Callers that need a JSON-safe shape run it through package
// normalize first.
type DetailedError interface {
	error

	// ErrorDetails returns the raw details. May return nil.
	ErrorDetails() any
}
