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

import "log/slog"

// ErrorDescriptor is a flat description of an error together with the
// transport statuses it was resolved to.
//
// It uses plain strings and integers so that log sinks, tracing and message
// buses can carry it without importing the code or mapper packages.
type ErrorDescriptor struct {
	// Code is the canonical error code, e.g. "not_found".
	Code string `json:"code"`

	// Message is the human message of the error instance.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC code as an integer. 0 means "not
	// resolved"; an error never resolves to OK.
	GRPCCode int `json:"grpc_code,omitempty"`
}

// LogValue implements slog.LogValuer. Unresolved statuses are omitted.
func (d ErrorDescriptor) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("code", d.Code))
	if d.Message != "" {
		attrs = append(attrs, slog.String("message", d.Message))
	}
	if d.HTTPStatus != 0 {
		attrs = append(attrs, slog.Int("http_status", d.HTTPStatus))
	}
	if d.GRPCCode != 0 {
		attrs = append(attrs, slog.Int("grpc_code", d.GRPCCode))
	}
	return slog.GroupValue(attrs...)
}
