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

// Command gen-codes renders the herrors code catalogue.
//
// It reads code/codes.yaml and writes:
//
//   - code/codes_gen.go: the Code constants, the ordered catalogue and the
//     two switch-based lookups backing code.Status and code.FromStatus;
//   - constructors_gen.go: one constructor pair per code in package herrors.
//
// Both lookups are emitted as switch statements so that a duplicated name or
// status in codes.yaml fails compilation instead of surfacing at runtime.
//
// Usage (from the module root):
//
//	go run ./internal/cmd/gen-codes
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// entry is one code declaration in codes.yaml.
type entry struct {
	Name   string `yaml:"name"`
	Status int    `yaml:"status"`
	GoName string `yaml:"go_name"`
	Doc    string `yaml:"doc"`
}

type catalogue struct {
	Codes []entry `yaml:"codes"`
}

var initialisms = map[string]string{
	"http": "HTTP",
	"uri":  "URI",
	"id":   "ID",
	"url":  "URL",
}

func main() {
	in := flag.String("in", filepath.Join("code", "codes.yaml"), "catalogue file")
	codeOut := flag.String("code-out", filepath.Join("code", "codes_gen.go"), "output for package code")
	ctorOut := flag.String("ctor-out", "constructors_gen.go", "output for package herrors")
	flag.Parse()

	if err := run(*in, *codeOut, *ctorOut); err != nil {
		slog.Error("gen-codes failed", "err", err)
		os.Exit(1)
	}
}

func run(in, codeOut, ctorOut string) error {
	raw, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read catalogue: %w", err)
	}
	entries, err := load(raw)
	if err != nil {
		return err
	}
	if err := render(codeTmpl, entries, codeOut); err != nil {
		return err
	}
	if err := render(ctorTmpl, entries, ctorOut); err != nil {
		return err
	}
	slog.Info("generated code catalogue", "codes", len(entries), "files", []string{codeOut, ctorOut})
	return nil
}

// load parses and checks the catalogue. Duplicates are also rejected by the
// compiler later on; checking here gives a readable message.
func load(raw []byte) ([]entry, error) {
	var c catalogue
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	if len(c.Codes) == 0 {
		return nil, errors.New("catalogue has no codes")
	}
	names := make(map[string]bool, len(c.Codes))
	statuses := make(map[int]string, len(c.Codes))
	for i := range c.Codes {
		e := &c.Codes[i]
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: empty name", i)
		}
		if e.Status < 300 || e.Status > 599 {
			return nil, fmt.Errorf("code %q: status %d outside 300..599", e.Name, e.Status)
		}
		if names[e.Name] {
			return nil, fmt.Errorf("code %q declared twice", e.Name)
		}
		if prev, ok := statuses[e.Status]; ok {
			return nil, fmt.Errorf("status %d shared by %q and %q", e.Status, prev, e.Name)
		}
		names[e.Name] = true
		statuses[e.Status] = e.Name
		if e.GoName == "" {
			e.GoName = goName(e.Name)
		}
		e.Doc = strings.TrimSuffix(strings.TrimSpace(e.Doc), ".")
	}
	slices.SortStableFunc(c.Codes, func(a, b entry) int { return a.Status - b.Status })
	return c.Codes, nil
}

// goName converts a snake_case code name into an exported Go identifier.
func goName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[part]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func render(t *template.Template, entries []entry, out string) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, entries); err != nil {
		return fmt.Errorf("execute %s: %w", t.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", out, err)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

const header = `/*
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

// Code generated by gen-codes from code/codes.yaml. DO NOT EDIT.
`

var codeTmpl = template.Must(template.New("code").Parse(header + `
package code

const (
{{- range $i, $e := .}}
{{- if $i}}
{{end}}
	// {{.GoName}} ({{.Status}}): {{.Doc}}.
	{{.GoName}} Code = "{{.Name}}"
{{- end}}
)

// catalogue lists every code ordered by HTTP status.
var catalogue = [...]Code{
{{- range .}}
	{{.GoName}},
{{- end}}
}

// lookupStatus is the forward half of the registry.
func lookupStatus(c Code) (int, bool) {
	switch c {
{{- range .}}
	case {{.GoName}}:
		return {{.Status}}, true
{{- end}}
	}
	return 0, false
}

// lookupCode is the reverse half of the registry.
func lookupCode(status int) (Code, bool) {
	switch status {
{{- range .}}
	case {{.Status}}:
		return {{.GoName}}, true
{{- end}}
	}
	return "", false
}
`))

var ctorTmpl = template.Must(template.New("ctor").Parse(header + `
package herrors

import "dirpx.dev/herrors/code"
{{range .}}
// {{.GoName}} returns a {{.Name}} ({{.Status}}) error without details.
func {{.GoName}}(msg string) *Error {
	return E(code.{{.GoName}}, msg)
}

// {{.GoName}}With returns a {{.Name}} ({{.Status}}) error carrying details.
func {{.GoName}}With(msg string, details any) *Error {
	return E(code.{{.GoName}}, msg, WithDetailsOption(details))
}
{{end}}`))
