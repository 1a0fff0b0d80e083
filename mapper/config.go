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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"dirpx.dev/herrors/code"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every failure reported by LoadConfig.
var ErrInvalidConfig = errors.New("mapper: invalid config")

// Config is the YAML form of the mapper options:
//
//	grpc_fallback: UNKNOWN
//	grpc_defaults:
//	  too_early: FAILED_PRECONDITION
//	grpc_overrides:
//	  conflict: FAILED_PRECONDITION
//	  not_found: 5
//	http_overrides:
//	  no_response: 502
//
// Code keys are normalized the way code.Parse does, so "Not-Found" is
// accepted for not_found.
type Config struct {
	GRPCFallback  *GRPCCode           `yaml:"grpc_fallback"`
	GRPCDefaults  map[string]GRPCCode `yaml:"grpc_defaults"`
	GRPCOverrides map[string]GRPCCode `yaml:"grpc_overrides"`
	HTTPOverrides map[string]int      `yaml:"http_overrides"`
}

// GRPCCode is a gRPC status code that decodes from either its canonical name
// ("NOT_FOUND", case-insensitive) or its number.
type GRPCCode codes.Code

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GRPCCode) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: gRPC code must be a scalar", n.Line)
	}
	v := strings.ToUpper(strings.TrimSpace(n.Value))
	v = strings.ReplaceAll(v, "-", "_")
	if v == "CANCELED" {
		v = "CANCELLED"
	}

	raw := v
	if _, err := strconv.ParseUint(v, 10, 32); err != nil {
		raw = strconv.Quote(v)
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*g = GRPCCode(c)
	return nil
}

// LoadConfig parses a YAML mapper configuration. Unknown fields, unknown
// codes and multiple documents are rejected with ErrInvalidConfig.
// Empty input yields a zero Config.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("mapper: read config: %w", err)
	}
	return LoadConfig(data)
}

// Options turns the configuration into mapper options, in a stable order.
func (c Config) Options() []Option {
	var opts []Option
	if c.GRPCFallback != nil {
		opts = append(opts, WithGRPCFallback(codes.Code(*c.GRPCFallback)))
	}
	for _, k := range sortedKeys(c.GRPCDefaults) {
		opts = append(opts, WithGRPCDefault(code.Code(code.Normalize(k)), codes.Code(c.GRPCDefaults[k])))
	}
	for _, k := range sortedKeys(c.GRPCOverrides) {
		opts = append(opts, WithGRPCOverride(code.Code(code.Normalize(k)), codes.Code(c.GRPCOverrides[k])))
	}
	for _, k := range sortedKeys(c.HTTPOverrides) {
		opts = append(opts, WithHTTPOverride(code.Code(code.Normalize(k)), c.HTTPOverrides[k]))
	}
	return opts
}

func (c Config) validate() error {
	check := func(section string, keys []string) error {
		for _, k := range keys {
			if _, err := code.Parse(k); err != nil {
				return fmt.Errorf("%s: %w", section, err)
			}
		}
		return nil
	}
	if err := check("grpc_defaults", sortedKeys(c.GRPCDefaults)); err != nil {
		return err
	}
	if err := check("grpc_overrides", sortedKeys(c.GRPCOverrides)); err != nil {
		return err
	}
	if err := check("http_overrides", sortedKeys(c.HTTPOverrides)); err != nil {
		return err
	}
	for _, k := range sortedKeys(c.HTTPOverrides) {
		if v := c.HTTPOverrides[k]; !validHTTP(v) {
			return fmt.Errorf("http_overrides: %w: %d for code %q", ErrInvalidHTTPStatus, v, k)
		}
	}
	return nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return errors.New("multiple YAML documents are not allowed")
	} else if !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
