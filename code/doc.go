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

// Package code is the status registry of herrors.
//
// A "code" is the top-level, machine-readable classification of an error,
// borrowed from HTTP reason phrases: "not_found", "conflict",
// "internal_server_error" and so on. Codes are:
//
//   - short and stable;
//   - lowercased and underscore-separated;
//   - drawn from a closed catalogue (codes.yaml) of 3xx, 4xx and 5xx statuses.
//
// Every code maps to exactly one HTTP status and every registered status maps
// back to exactly one code. The lookups are generated as switch statements,
// so a duplicate in the catalogue is a compile error.
//
//	st, _ := code.Status(code.NotFound)   // 404
//	c, _ := code.FromStatus(503)          // code.ServiceUnavailable
//
//go:generate go run ../internal/cmd/gen-codes -in codes.yaml -code-out codes_gen.go -ctor-out ../constructors_gen.go
package code
