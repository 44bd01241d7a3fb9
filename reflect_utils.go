package polyjson

import (
	"reflect"
	"strings"
)

// structKey resolves the JSON key of a struct field.
// Priority: json tag name > field name; "-" disables the field.
func structKey(sf reflect.StructField) string {
	if jt, ok := sf.Tag.Lookup("json"); ok {
		if jt == "-" {
			return "-"
		}
		name := jt
		if i := strings.IndexByte(jt, ','); i >= 0 {
			name = jt[:i]
		}
		if name != "" {
			return name
		}
	}
	return sf.Name
}

// declaredKeys collects the JSON keys a struct type decodes, flattening
// untagged embedded structs the way encoding/json does. Non-struct types
// declare nothing.
func declaredKeys(t reflect.Type) map[string]struct{} {
	keys := map[string]struct{}{}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return keys
	}
	collectKeys(t, keys, map[reflect.Type]bool{})
	return keys
}

func collectKeys(t reflect.Type, keys map[string]struct{}, seen map[reflect.Type]bool) {
	if seen[t] {
		return
	}
	seen[t] = true
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		_, tagged := sf.Tag.Lookup("json")
		if sf.Anonymous && !tagged {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectKeys(ft, keys, seen)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if k := structKey(sf); k != "-" {
			keys[k] = struct{}{}
		}
	}
}

// typeOf returns the dynamic type of v, nil for a nil interface.
func typeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}

// sameType reports whether a and b match, treating *T and T as equal.
func sameType(a, b reflect.Type) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if a.Kind() == reflect.Pointer && a.Elem() == b {
		return true
	}
	return b.Kind() == reflect.Pointer && b.Elem() == a
}
