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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Code is the symbolic classification of an herrors error.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with registered values.
//
// The set of valid codes is closed: it is exactly the catalogue generated
// from codes.yaml. Values obtained through Parse or UnmarshalText are always
// registered; a Code built from an arbitrary string literal is not, and every
// lookup on it reports ErrUnknownCode.
type Code string

var (
	// ErrUnknownCode is returned when a value is not one of the registered
	// codes.
	ErrUnknownCode = errors.New("herrors: unknown code")

	// ErrUnknownStatus is returned when an integer status has no registered
	// code.
	ErrUnknownStatus = errors.New("herrors: unknown status")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is never registered.
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and resolves it against
// the registry.
func Parse(s string) (Code, error) {
	c := Code(Normalize(s))
	if !c.Known() {
		return Empty, fmt.Errorf("%w: %q", ErrUnknownCode, s)
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to the canonical code form:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result is registered.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate reports ErrUnknownCode for codes missing from the registry.
func Validate(c Code) error {
	if !c.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownCode, string(c))
	}
	return nil
}

// Known reports whether c is a registered code.
func (c Code) Known() bool {
	_, ok := lookupStatus(c)
	return ok
}

// String returns the symbolic name of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and resolves the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
