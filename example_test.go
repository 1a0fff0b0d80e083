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

package herrors_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/herrors"
	"dirpx.dev/herrors/code"
)

func ExampleNotFound() {
	err := herrors.NotFound("User not found")
	fmt.Println(err.LogString())
	fmt.Println(err.HTTPStatus())
	// Output:
	// not_found - User not found
	// 404
}

func ExampleError_JSONMap() {
	err := herrors.NotFoundWith("User not found", map[string]any{"user_id": 123})
	ctx := herrors.WithRequestID(context.Background(), "req-1")

	b, _ := json.Marshal(err.JSONMap(ctx))
	fmt.Println(string(b))
	// Output:
	// {"code":"not_found","details":{"user_id":123},"message":"User not found","request_id":"req-1"}
}

func ExampleHasCode() {
	err := fmt.Errorf("load profile: %w", herrors.Unauthorized("token expired"))

	if herrors.HasCode(err, code.Unauthorized) {
		fmt.Println("ask for credentials")
	}

	var he *herrors.Error
	if errors.As(err, &he) {
		fmt.Println(he.Code, he.HTTPStatus())
	}
	// Output:
	// ask for credentials
	// unauthorized 401
}
