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

package mapper

import (
	"dirpx.dev/herrors/code"
	"google.golang.org/grpc/codes"
)

// defaultGRPC defines the library's built-in gRPC mappings for every client
// and server error code. The table follows the usual HTTP to gRPC conventions
// (the same ones grpc-gateway applies in reverse). Callers may override any
// entry at the transport edge.
//
// Redirection codes are absent and resolve to the fallback.
var defaultGRPC = map[code.Code]codes.Code{
	// 4xx: input / protocol.
	code.BadRequest:                   codes.InvalidArgument,
	code.NotAcceptable:                codes.InvalidArgument,
	code.LengthRequired:               codes.InvalidArgument,
	code.RequestEntityTooLarge:        codes.InvalidArgument,
	code.RequestURITooLong:            codes.InvalidArgument,
	code.UnsupportedMediaType:         codes.InvalidArgument,
	code.UnprocessableEntity:          codes.InvalidArgument,
	code.RequestHeaderFieldsTooLarge:  codes.InvalidArgument,
	code.RequestedRangeNotSatisfiable: codes.OutOfRange,
	code.MethodNotAllowed:             codes.Unimplemented,
	code.ImATeapot:                    codes.Unimplemented, // Refuses the request on principle.

	// 4xx: resource state / preconditions.
	code.NotFound:             codes.NotFound,
	code.Gone:                 codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	code.Conflict:             codes.Aborted,  // Concurrent update or version mismatch.
	code.PaymentRequired:      codes.FailedPrecondition,
	code.PreconditionFailed:   codes.FailedPrecondition,
	code.PreconditionRequired: codes.FailedPrecondition,
	code.ExpectationFailed:    codes.FailedPrecondition,
	code.MisdirectedRequest:   codes.FailedPrecondition,
	code.Locked:               codes.FailedPrecondition,
	code.FailedDependency:     codes.FailedPrecondition,
	code.UpgradeRequired:      codes.FailedPrecondition,
	code.RetryWith:            codes.FailedPrecondition, // Client must resend with more information.
	code.TooEarly:             codes.Unavailable,        // Retrying later may succeed.
	code.RequestTimeout:       codes.DeadlineExceeded,
	code.NoResponse:           codes.Unavailable, // Server closed the connection without a reply.

	// 4xx: authN / authZ.
	code.Unauthorized:                     codes.Unauthenticated,
	code.ProxyAuthenticationRequired:      codes.Unauthenticated,
	code.LoginTimeout:                     codes.Unauthenticated, // Session expired; client must log in again.
	code.InvalidToken:                     codes.Unauthenticated,
	code.TokenRequired:                    codes.Unauthenticated,
	code.Forbidden:                        codes.PermissionDenied,
	code.BlockedByWindowsParentalControls: codes.PermissionDenied,
	code.UnavailableForLegalReasons:       codes.PermissionDenied,

	// 4xx: rate / quotas.
	code.TooManyRequests: codes.ResourceExhausted,
	code.EnhanceYourCalm: codes.ResourceExhausted,

	// 5xx: server / dependency / transient issues.
	code.InternalServerError:           codes.Internal,
	code.VariantAlsoNegotiates:         codes.Internal, // Server misconfiguration.
	code.LoopDetected:                  codes.Internal,
	code.NotImplemented:                codes.Unimplemented,
	code.HTTPVersionNotSupported:       codes.Unimplemented,
	code.BadGateway:                    codes.Unavailable,
	code.ServiceUnavailable:            codes.Unavailable,
	code.GatewayTimeout:                codes.DeadlineExceeded,
	code.InsufficientStorage:           codes.ResourceExhausted,
	code.BandwidthLimitExceeded:        codes.ResourceExhausted,
	code.NotExtended:                   codes.FailedPrecondition,
	code.NetworkAuthenticationRequired: codes.Unauthenticated,
}
