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

package normalize

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
)

// Normalizer converts values into JSON-safe trees.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	aliases AliasResolver
}

// New returns a Normalizer. Without options, local handle aliases are
// resolved against DefaultRegistry.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{aliases: DefaultRegistry}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var std = New()

// Normalize converts v using the package-level Normalizer.
func Normalize(v any) any {
	return std.Normalize(v)
}

// Normalize converts v into a tree of JSON-safe values.
func (n *Normalizer) Normalize(v any) any {
	if v == nil {
		return nil
	}
	return n.value(reflect.ValueOf(v))
}

var (
	dateType     = reflect.TypeOf(civil.Date{})
	timeOfDay    = reflect.TypeOf(civil.Time{})
	timeType     = reflect.TypeOf(time.Time{})
	dateTimeType = reflect.TypeOf(civil.DateTime{})
)

// builtins maps scalar kinds to their predeclared type.
var builtins = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Uintptr: reflect.TypeOf(uintptr(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.String:  reflect.TypeOf(""),
}

func (n *Normalizer) value(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return nil
		}
	}

	// 1. Opaque handles.
	if s, ok := n.handle(rv); ok {
		return s
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return n.value(rv.Elem())
	case reflect.Slice:
		// 2. Ordered sequences.
		return n.slice(rv)
	}

	// 3-6. Calendar values.
	switch rv.Type() {
	case dateType:
		return rv.Interface().(civil.Date).String()
	case timeOfDay:
		return rv.Interface().(civil.Time).String()
	case timeType:
		return rv.Interface().(time.Time).Format(time.RFC3339Nano)
	case dateTimeType:
		return rv.Interface().(civil.DateTime).String()
	}

	switch rv.Kind() {
	case reflect.Struct:
		// 7. Records; anonymous structs have no name and read as maps.
		if rv.Type().Name() == "" {
			return n.fields(rv)
		}
		return map[string]any{
			"struct": typeName(rv.Type()),
			"data":   n.fields(rv),
		}
	case reflect.Map:
		// 8. Associative maps.
		return n.mapping(rv)
	case reflect.Array:
		// 9. Tuples degrade to lists.
		return n.list(rv)
	case reflect.Func:
		// 10. Function references.
		return function(rv)
	}

	// 11. Scalars and anything unrecognized.
	return scalar(rv)
}

func (n *Normalizer) slice(rv reflect.Value) any {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		if b := rv.Bytes(); utf8.Valid(b) {
			return string(b)
		}
	}
	return n.list(rv)
}

func (n *Normalizer) list(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = n.value(rv.Index(i))
	}
	return out
}

func (n *Normalizer) mapping(rv reflect.Value) map[string]any {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[mapKey(iter.Key())] = n.value(iter.Value())
	}
	return out
}

// fields collects the exported fields of a struct. Field names follow the
// json tag when present; untagged embedded structs are promoted, with outer
// fields taking precedence.
func (n *Normalizer) fields(rv reflect.Value) map[string]any {
	out := make(map[string]any, rv.NumField())
	n.collect(rv, out)
	return out
}

func (n *Normalizer) collect(rv reflect.Value, out map[string]any) {
	t := rv.Type()
	var promoted []reflect.Value
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, tagged, skip := fieldName(f)
		if skip {
			continue
		}
		fv := rv.Field(i)
		// Embedded structs are promoted even when their type is unexported.
		if f.Anonymous && !tagged && isStruct(f.Type) {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			promoted = append(promoted, fv)
			continue
		}
		if !f.IsExported() {
			continue
		}
		out[name] = n.value(fv)
	}
	for _, ev := range promoted {
		inner := make(map[string]any, ev.NumField())
		n.collect(ev, inner)
		for k, v := range inner {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
}

func isStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func fieldName(f reflect.StructField) (name string, tagged, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	if name, _, _ = strings.Cut(tag, ","); name != "" {
		return name, true, false
	}
	return f.Name, false, false
}

// typeName returns the unqualified name of a named type, without generic
// type arguments.
func typeName(t reflect.Type) string {
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "<nil>"
		}
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
			if text, err := tm.MarshalText(); err == nil {
				return string(text)
			}
		}
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(k.Bool())
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(k.Float(), 'g', -1, 64)
	}
	if k.CanInterface() {
		return fmt.Sprint(k.Interface())
	}
	return k.String()
}

func function(rv reflect.Value) map[string]any {
	var full string
	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
		full = fn.Name()
	}
	module, name := splitFuncName(full)
	return map[string]any{
		"module":   module,
		"function": name,
		"arity":    rv.Type().NumIn(),
	}
}

// splitFuncName splits a runtime symbol such as
// "example.com/pkg.(*T).Method-fm" into its import path and the name
// within the package. Closures keep the runtime's "Outer.funcN" name.
func splitFuncName(full string) (module, name string) {
	slash := strings.LastIndexByte(full, '/')
	dot := strings.IndexByte(full[slash+1:], '.')
	if dot < 0 {
		return "", full
	}
	dot += slash + 1
	module = full[:dot]
	// The linker escapes dots in the last path element, e.g. "yaml%2ev3".
	if u, err := url.PathUnescape(module); err == nil {
		module = u
	}
	return module, strings.TrimSuffix(full[dot+1:], "-fm")
}

func scalar(rv reflect.Value) any {
	if !rv.CanInterface() {
		return nil
	}
	bt, ok := builtins[rv.Kind()]
	if !ok || rv.Type() == bt {
		return rv.Interface()
	}
	return rv.Convert(bt).Interface()
}
