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

// Package httpx writes herrors values as HTTP responses.
//
// The response body is the JSON-safe map produced by (*herrors.Error).JSONMap,
// converted to a google.protobuf.Struct and rendered with protojson:
//
//	{"code":"not_found","message":"User not found","details":{"user_id":123},"request_id":"req-1"}
//
// Any error implementing apis.Presenter is rendered this way. The status comes
// from an apis.Mapper, or from the code registry when the Writer has no
// Mapper.
package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/adapter"
	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/code"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// RequestIDHeader is the header read by RequestID and echoed by Writer.
const RequestIDHeader = "X-Request-Id"

// Writer is a thin adapter that knows how to turn an apis.Presenter into an HTTP
// response using the provided status mapper.
type Writer struct {
	// Mapper resolves the HTTP status. Nil means the code registry.
	Mapper apis.Mapper

	// Logger receives encoding fallbacks and foreign errors.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// Write serializes err and writes it to the response writer. The HTTP status
// is resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error is exposed as is. If the details cannot be encoded, the
// response keeps the code and message and drops the details.
func (w Writer) Write(ctx context.Context, rw http.ResponseWriter, err *herrors.Error) {
	if err == nil {
		return
	}
	w.WriteError(ctx, rw, err)
}

// WriteError writes any error. The first apis.Presenter in err's chain is
// written in its canonical form. Foreign errors, and presenters whose code is
// not registered, become internal_server_error; their text is only logged,
// never sent to the client.
func (w Writer) WriteError(ctx context.Context, rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	p, c, ok := adapter.Resolve(err)
	st := w.status(c)
	if !ok {
		w.logger().LogAttrs(ctx, slog.LevelError, "httpx: unclassified error",
			slog.Any("error", adapter.ToDescriptor(p, st)),
			slog.String("cause", err.Error()))
	}

	body := w.encode(ctx, p, st)

	h := rw.Header()
	h.Set("Content-Type", "application/json")
	if id, ok := herrors.RequestID(ctx); ok {
		h.Set(RequestIDHeader, id)
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// HandlerFunc is an http.HandlerFunc that reports failures by returning them.
type HandlerFunc func(rw http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.Handler, writing returned errors with WriteError.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.WriteError(r.Context(), rw, err)
		}
	})
}

// RequestID is middleware that copies the RequestIDHeader of the incoming
// request into the request context, where JSONMap picks it up.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if id := strings.TrimSpace(r.Header.Get(RequestIDHeader)); id != "" {
			r = r.WithContext(herrors.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(rw, r)
	})
}

func (w Writer) status(c code.Code) apis.Status {
	if w.Mapper != nil {
		return w.Mapper.Status(c)
	}
	return apis.Status{HTTP: c.HTTPStatus()}
}

func (w Writer) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

// encode renders the body. Normalization is best-effort, so the details may
// still hold a value structpb rejects; the body is then re-encoded without
// them.
func (w Writer) encode(ctx context.Context, p apis.Presenter, st apis.Status) []byte {
	m := p.JSONMap(ctx)
	b, encErr := marshal(m)
	if encErr == nil {
		return b
	}

	w.logger().LogAttrs(ctx, slog.LevelWarn, "httpx: dropping unencodable details",
		slog.Any("error", adapter.ToDescriptor(p, st)),
		slog.String("reason", encErr.Error()))

	m["details"] = nil
	for _, k := range []string{"code", "message", "request_id"} {
		if s, ok := m[k].(string); ok {
			m[k] = strings.ToValidUTF8(s, "\uFFFD")
		}
	}
	b, _ = marshal(m)
	return b
}

func marshal(m map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	// protobuf JSON through protojson keeps well-known type rendering
	// consistent with the gRPC adapter.
	return protojson.Marshal(s)
}
