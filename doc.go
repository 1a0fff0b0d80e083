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

// Package herrors is a uniform error value for every layer of an
// application: domain logic, services, API boundaries and logs.
//
// An *Error carries a code from the closed catalogue in package code, a
// human-readable message and an optional details payload of any shape.
// Callers branch on the code, never on the message:
//
//	if herrors.HasCode(err, code.NotFound) {
//	    // ...
//	}
//
// One constructor pair exists per code:
//
//	herrors.NotFound("user not found")
//	herrors.NotFoundWith("user not found", map[string]any{"user_id": 123})
//
// The same value renders as a log line (LogString), a structured slog value
// (LogValue), a JSON-ready map (JSONMap) or an HTTP status (HTTPStatus).
// JSONMap normalizes the details with package normalize so that dates,
// structs, tuples, handles and functions become plain JSON values. Encoding
// the map to bytes is left to the caller; packages httpx and grpcx do it for
// HTTP responses and gRPC statuses.
//
// The request identifier included by JSONMap is read from the context passed
// in, see WithRequestID.
package herrors
