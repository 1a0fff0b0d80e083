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

// Package normalize converts arbitrary Go values into JSON-safe trees.
//
// The output of Normalize is built exclusively from:
//
//   - nil, bool, builtin integer and float kinds, string;
//   - []any of normalized values;
//   - map[string]any of normalized values.
//
// Input values are classified in a fixed order, first match wins:
//
//  1. opaque handles (Handle implementations, channels, unsafe pointers);
//  2. slices;
//  3. civil.Date;
//  4. civil.Time;
//  5. time.Time;
//  6. civil.DateTime;
//  7. named structs, rendered as {"struct": <type name>, "data": {...}};
//  8. maps (and anonymous structs);
//  9. arrays, which degrade to ordered lists;
//  10. functions, rendered as {"module", "function", "arity"};
//  11. everything else passes through, named scalar types converted to
//     their builtin kind.
//
// The order is load-bearing: time.Time is a struct and a handle may be a
// struct or a map, so earlier categories shadow later ones.
//
// Normalization never fails. A value outside every category is returned
// as-is; whether it can be encoded is up to the encoder. Cyclic inputs are
// not detected and must not be passed in.
package normalize
