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

// Package grpcx turns herrors values into gRPC statuses and back.
//
// The status code comes from an apis.Mapper. The JSON-safe map produced by
// apis.Presenter.JSONMap travels as a google.protobuf.Struct status detail,
// so clients can rebuild the error with FromError.
package grpcx

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/adapter"
	"dirpx.dev/herrors/apis"
	"dirpx.dev/herrors/code"
	"dirpx.dev/herrors/mapper"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// RequestIDKey is the incoming metadata key copied into the request context
// by the interceptors.
const RequestIDKey = "x-request-id"

// Option configures the interceptors.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving encoding fallbacks.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	c := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// defaultMapper is used when a nil apis.Mapper is passed in.
var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := mapper.New()
	if err != nil {
		panic(err) // library defaults are valid by construction
	}
	return m
})

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// maps apis.Presenter errors into gRPC errors with a structpb.Struct detail.
//
// The provided apis.Mapper is used to map codes into gRPC status codes.
// Errors with no apis.Presenter in their chain are returned unchanged. A
// Presenter whose code is not registered becomes internal_server_error.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newConfig(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = withRequestID(ctx)
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(ctx, m, cfg, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	cfg := newConfig(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := withRequestID(ss.Context())
		err := handler(srv, &serverStream{ServerStream: ss, ctx: ctx})
		if err == nil {
			return nil
		}
		return convert(ctx, m, cfg, err)
	}
}

// ToStatus builds the gRPC status for e: the code from m and a
// structpb.Struct detail holding e.JSONMap(ctx). If the details cannot be
// encoded, the detail is attached without them.
func ToStatus(ctx context.Context, m apis.Mapper, e *herrors.Error) *gstatus.Status {
	return toStatus(ctx, m, newConfig(nil), e)
}

// ExtractDetails pulls the structpb.Struct detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractDetails(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}

// FromError rebuilds a *herrors.Error from a gRPC error produced by this
// package. Details come back in their JSON-decoded form (numbers are
// float64). It reports false when err carries no herrors detail.
func FromError(err error) (*herrors.Error, bool) {
	s, ok := ExtractDetails(err)
	if !ok {
		return nil, false
	}
	fields := s.GetFields()
	c, perr := code.Parse(fields["code"].GetStringValue())
	if perr != nil {
		return nil, false
	}
	e := herrors.E(c, fields["message"].GetStringValue())
	if d, ok := fields["details"]; ok && d.GetKind() != nil {
		if _, isNull := d.GetKind().(*structpb.Value_NullValue); !isNull {
			e = e.WithDetails(d.AsInterface())
		}
	}
	return e, true
}

func convert(ctx context.Context, m apis.Mapper, cfg config, err error) error {
	var p apis.Presenter
	if !errors.As(err, &p) {
		// Not ours, return as is.
		return err
	}
	return toStatus(ctx, m, cfg, err).Err()
}

func toStatus(ctx context.Context, m apis.Mapper, cfg config, err error) *gstatus.Status {
	if m == nil {
		m = defaultMapper()
	}
	p, c, ok := adapter.Resolve(err)
	st := m.Status(c)
	if st.GRPC == gcodes.OK {
		// An OK status cannot carry details and would turn the error into a success.
		st.GRPC = gcodes.Unknown
	}
	if !ok {
		cfg.logger.LogAttrs(ctx, slog.LevelError, "grpcx: unclassified error",
			slog.Any("error", adapter.ToDescriptor(p, st)),
			slog.String("cause", err.Error()))
	}
	base := gstatus.New(st.GRPC, p.ErrorMessage())

	fields := p.JSONMap(ctx)
	detail, encErr := structpb.NewStruct(fields)
	if encErr != nil {
		cfg.logger.LogAttrs(ctx, slog.LevelWarn, "grpcx: dropping unencodable details",
			slog.Any("error", adapter.ToDescriptor(p, st)),
			slog.String("reason", encErr.Error()))
		fields["details"] = nil
		for _, k := range []string{"code", "message", "request_id"} {
			if s, ok := fields[k].(string); ok {
				fields[k] = strings.ToValidUTF8(s, "\uFFFD")
			}
		}
		if detail, encErr = structpb.NewStruct(fields); encErr != nil {
			return base
		}
	}

	// Attach the detail; on failure return base.
	with, werr := base.WithDetails(detail)
	if werr != nil {
		return base
	}
	return with
}

// withRequestID copies the request id from incoming metadata into ctx unless
// ctx already carries one.
func withRequestID(ctx context.Context) context.Context {
	if _, ok := herrors.RequestID(ctx); ok {
		return ctx
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	if v := md.Get(RequestIDKey); len(v) > 0 {
		return herrors.WithRequestID(ctx, strings.TrimSpace(v[0]))
	}
	return ctx
}

// serverStream exposes the request-id enriched context to stream handlers.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context { return s.ctx }
