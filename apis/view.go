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

import "context"

// Presenter is implemented by errors that can render themselves for a log
// sink and for a JSON encoder.
//
// The HTTP and gRPC adapters look for a Presenter in an error chain, so any
// error type implementing it is rendered in the canonical form.
type Presenter interface {
	CodedError

	// ErrorMessage returns the human message, e.g. "User not found".
	ErrorMessage() string

	// LogString returns a line-oriented representation for logs.
	LogString() string

	// JSONMap returns a JSON-safe map:
	//
	//	{"code": ..., "message": ..., "details": ..., "request_id"?: ...}
	//
	// request_id is read from ctx and omitted when absent.
	JSONMap(ctx context.Context) map[string]any
}
