// Package safejson renders arbitrary values as JSON text for diagnostic
// output. Unlike encoding/json it never fails: cyclic references are
// replaced with a placeholder and values JSON cannot express fall back to
// their type name.
package safejson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

const placeholder = "<cycle>"

func String(v any) string {
	// an Encoder so HTML escaping can be turned off; the output is read by
	// humans, '<' must stay '<'
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sanitize(reflect.ValueOf(v), map[uintptr]bool{})); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// sanitize copies v into a tree of plain maps, slices and scalars. The seen
// set tracks the reference path from the root, so shared non-cyclic values
// still render fully while true cycles get cut.
func sanitize(v reflect.Value, seen map[uintptr]bool) any {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return sanitize(v.Elem(), seen)

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if seen[ptr] {
			return placeholder
		}
		seen[ptr] = true
		out := sanitize(v.Elem(), seen)
		delete(seen, ptr)
		return out

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if seen[ptr] {
			return placeholder
		}
		seen[ptr] = true
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = sanitize(iter.Value(), seen)
		}
		delete(seen, ptr)
		return m

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if seen[ptr] {
			return placeholder
		}
		seen[ptr] = true
		out := sanitizeList(v, seen)
		delete(seen, ptr)
		return out

	case reflect.Array:
		return sanitizeList(v, seen)

	case reflect.Struct:
		t := v.Type()
		m := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			m[field.Name] = sanitize(v.Field(i), seen)
		}
		return m

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.Type().String()

	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v.Complex())

	default:
		return v.Interface()
	}
}

func sanitizeList(v reflect.Value, seen map[uintptr]bool) []any {
	s := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		s[i] = sanitize(v.Index(i), seen)
	}
	return s
}
