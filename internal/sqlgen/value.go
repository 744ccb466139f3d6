// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sqlgen renders extracted records as a PostgreSQL seed script.
package sqlgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// jsonbCast marks a literal as structured data.
const jsonbCast = "::jsonb"

// SQLValue renders v as a SQL literal.
//
// Maps, slices, arrays and structs become compact JSON in a single-quoted
// literal followed by ::jsonb. A nil value (including nil pointers, maps and
// slices) becomes NULL. Anything else becomes a single-quoted string of its
// default text form. Embedded single quotes are doubled in both cases.
func SQLValue(v any) (string, error) {
	if v == nil {
		return "NULL", nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "NULL", nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return "NULL", nil
		}
		if b, ok := rv.Interface().([]byte); ok {
			return quoteLiteral(string(b)), nil
		}
		return jsonLiteral(rv.Interface())
	case reflect.Array, reflect.Struct:
		return jsonLiteral(rv.Interface())
	default:
		return quoteLiteral(fmt.Sprint(rv.Interface())), nil
	}
}

// quoteLiteral wraps s in single quotes, doubling embedded quotes.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func jsonLiteral(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding %T as JSON: %w", v, err)
	}
	return quoteLiteral(strings.TrimSuffix(buf.String(), "\n")) + jsonbCast, nil
}
