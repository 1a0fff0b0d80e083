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

package grpcx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/code"
	"dirpx.dev/herrors/mapper"
)

// quotaError is an apis.Presenter implemented outside package herrors.
type quotaError struct{ code string }

func (q quotaError) Error() string        { return "quota exceeded for tenant acme" }
func (q quotaError) ErrorCode() string    { return q.code }
func (q quotaError) ErrorMessage() string { return "quota exceeded" }
func (q quotaError) LogString() string    { return q.code + " - quota exceeded" }

func (q quotaError) JSONMap(context.Context) map[string]any {
	return map[string]any{"code": q.code, "message": "quota exceeded", "details": nil}
}

func callUnary(t *testing.T, ctx context.Context, i grpc.UnaryServerInterceptor, err error) (any, error) {
	t.Helper()
	info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}
	return i(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
		if err != nil {
			return nil, err
		}
		return "resp", nil
	})
}

func TestUnaryServerInterceptor(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	i := UnaryServerInterceptor(m)

	_, got := callUnary(t, context.Background(), i,
		herrors.NotFoundWith("User not found", map[string]any{"user_id": 123}))

	st, ok := gstatus.FromError(got)
	require.True(t, ok)
	require.Equal(t, gcodes.NotFound, st.Code())
	require.Equal(t, "User not found", st.Message())

	s, ok := ExtractDetails(got)
	require.True(t, ok)
	require.Equal(t, map[string]any{
		"code":    "not_found",
		"message": "User not found",
		"details": map[string]any{"user_id": float64(123)},
	}, s.AsMap())
}

func TestUnaryServerInterceptor_Success(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	resp, err := callUnary(t, context.Background(), UnaryServerInterceptor(m), nil)
	require.NoError(t, err)
	require.Equal(t, "resp", resp)
}

func TestUnaryServerInterceptor_ForeignErrorPassesThrough(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	plain := errors.New("boom")
	_, got := callUnary(t, context.Background(), UnaryServerInterceptor(m), plain)
	require.Same(t, plain, got)

	grpcErr := gstatus.Error(gcodes.Aborted, "retry")
	_, got = callUnary(t, context.Background(), UnaryServerInterceptor(m), grpcErr)
	require.Equal(t, grpcErr, got)
}

func TestUnaryServerInterceptor_WrappedError(t *testing.T) {
	m, err := mapper.New(mapper.WithGRPCOverride(code.Conflict, gcodes.FailedPrecondition))
	require.NoError(t, err)

	_, got := callUnary(t, context.Background(), UnaryServerInterceptor(m),
		fmt.Errorf("update: %w", herrors.Conflict("version mismatch")))

	require.Equal(t, gcodes.FailedPrecondition, gstatus.Code(got))
}

func TestUnaryServerInterceptor_ForeignPresenter(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	var logs bytes.Buffer
	i := UnaryServerInterceptor(m, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	_, got := callUnary(t, context.Background(), i, fmt.Errorf("charge: %w", quotaError{code: "too_many_requests"}))

	require.Equal(t, gcodes.ResourceExhausted, gstatus.Code(got))
	require.Equal(t, "quota exceeded", gstatus.Convert(got).Message())
	s, ok := ExtractDetails(got)
	require.True(t, ok)
	require.Equal(t, "too_many_requests", s.GetFields()["code"].GetStringValue())
	require.Empty(t, logs.String())

	_, got = callUnary(t, context.Background(), i, quotaError{code: "over_quota"})

	require.Equal(t, gcodes.Internal, gstatus.Code(got))
	require.Equal(t, "Internal Server Error", gstatus.Convert(got).Message())
	s, ok = ExtractDetails(got)
	require.True(t, ok)
	require.Equal(t, "internal_server_error", s.GetFields()["code"].GetStringValue())
	require.Contains(t, logs.String(), "grpcx: unclassified error")
	require.Contains(t, logs.String(), "error.grpc_code=13")
	require.Contains(t, logs.String(), "quota exceeded for tenant acme")
}

func TestUnaryServerInterceptor_RequestIDFromMetadata(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDKey, "req-9"))
	var seen string
	_, got := UnaryServerInterceptor(m)(ctx, nil, &grpc.UnaryServerInfo{},
		func(ctx context.Context, req any) (any, error) {
			seen, _ = herrors.RequestID(ctx)
			return nil, herrors.Unauthorized("login required")
		})

	require.Equal(t, "req-9", seen)
	require.Equal(t, gcodes.Unauthenticated, gstatus.Code(got))
	s, ok := ExtractDetails(got)
	require.True(t, ok)
	require.Equal(t, "req-9", s.GetFields()["request_id"].GetStringValue())
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func TestStreamServerInterceptor(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	i := StreamServerInterceptor(m)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDKey, "stream-1"))
	ss := &fakeStream{ctx: ctx}
	info := &grpc.StreamServerInfo{FullMethod: "/users.v1.Users/Watch", IsServerStream: true}

	var seen string
	got := i(nil, ss, info, func(srv any, stream grpc.ServerStream) error {
		seen, _ = herrors.RequestID(stream.Context())
		return herrors.TooManyRequests("slow down")
	})

	require.Equal(t, "stream-1", seen)
	require.Equal(t, gcodes.ResourceExhausted, gstatus.Code(got))

	require.NoError(t, i(nil, ss, info, func(any, grpc.ServerStream) error { return nil }))

	require.Equal(t, io.EOF, i(nil, ss, info, func(any, grpc.ServerStream) error { return io.EOF }))
}

func TestToStatus(t *testing.T) {
	t.Run("nil mapper uses defaults", func(t *testing.T) {
		st := ToStatus(context.Background(), nil, herrors.ServiceUnavailable("down"))
		require.Equal(t, gcodes.Unavailable, st.Code())
		require.Len(t, st.Details(), 1)
	})

	t.Run("ok is never returned", func(t *testing.T) {
		m, err := mapper.New(mapper.WithGRPCOverride(code.NotFound, gcodes.OK))
		require.NoError(t, err)

		st := ToStatus(context.Background(), m, herrors.NotFound("x"))
		require.Equal(t, gcodes.Unknown, st.Code())
		require.Error(t, st.Err())
	})

	t.Run("redirection uses fallback", func(t *testing.T) {
		st := ToStatus(context.Background(), nil, herrors.Found("moved"))
		require.Equal(t, gcodes.Internal, st.Code())
	})
}

func TestUnencodableDetailsAreDropped(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	var logs bytes.Buffer
	i := UnaryServerInterceptor(m, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	_, got := callUnary(t, context.Background(), i,
		herrors.BadRequestWith("bad", map[string]any{"z": complex(1, 2)}))

	require.Equal(t, gcodes.InvalidArgument, gstatus.Code(got))
	s, ok := ExtractDetails(got)
	require.True(t, ok)
	require.Equal(t, "bad_request", s.GetFields()["code"].GetStringValue())
	require.Nil(t, s.AsMap()["details"])
	require.Contains(t, logs.String(), "dropping unencodable details")
	require.Contains(t, logs.String(), "error.code=bad_request")
	require.Contains(t, logs.String(), "error.grpc_code=3")
}

func TestFromError(t *testing.T) {
	st := ToStatus(context.Background(), nil,
		herrors.UnprocessableEntityWith("invalid", map[string]any{"fields": []any{"name"}}))

	e, ok := FromError(fmt.Errorf("call: %w", st.Err()))
	require.True(t, ok)
	require.Equal(t, code.UnprocessableEntity, e.Code)
	require.Equal(t, "invalid", e.Message)
	require.Equal(t, map[string]any{"fields": []any{"name"}}, e.Details)

	e, ok = FromError(ToStatus(context.Background(), nil, herrors.Gone("bye")).Err())
	require.True(t, ok)
	require.Nil(t, e.Details)
	require.Equal(t, "gone - bye", e.Error())

	_, ok = FromError(gstatus.Error(gcodes.NotFound, "plain"))
	require.False(t, ok)
	_, ok = FromError(errors.New("plain"))
	require.False(t, ok)
	_, ok = FromError(nil)
	require.False(t, ok)
}
