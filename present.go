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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/kr/pretty"

	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/normalize"
)

var (
	_ slog.LogValuer     = (*Error)(nil)
	_ apis.Presenter     = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
)

// LogString renders e for a line-oriented log sink:
//
//	<code> - <message>
//
// or, when details are present and not an empty collection:
//
//	<code> - <message>
//	Details:
//	<pretty-printed details>
//
// The raw details are printed, not their normalized form.
func (e *Error) LogString() string {
	if e == nil {
		return "<nil>"
	}
	if !hasDetails(e.Details) {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s - %s\nDetails: \n%s", e.Code, e.Message, pretty.Sprint(e.Details))
}

// JSONMap returns a map ready for JSON encoding:
//
//	{"code": ..., "message": ..., "details": ..., "request_id": ...}
//
// details holds the normalized payload (nil when absent). request_id is set
// only when ctx carries one; otherwise the key is missing altogether.
func (e *Error) JSONMap(ctx context.Context) map[string]any {
	if e == nil {
		return nil
	}
	m := map[string]any{
		"code":    string(e.Code),
		"message": e.Message,
		"details": normalize.Normalize(e.Details),
	}
	if id, ok := RequestID(ctx); ok {
		m["request_id"] = id
	}
	return m
}

// HTTPStatus returns the HTTP status registered for the error's code.
func (e *Error) HTTPStatus() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	return e.Code.HTTPStatus()
}

// HTTPStatus returns the status for the first *Error in err's chain, or 500
// when there is none.
func HTTPStatus(err error) int {
	if c, ok := CodeOf(err); ok {
		return c.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
		slog.Int("http_status", e.HTTPStatus()),
	}
	if hasDetails(e.Details) {
		attrs = append(attrs, slog.Any("details", normalize.Normalize(e.Details)))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// hasDetails reports whether v is present and not an empty collection.
func hasDetails(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
