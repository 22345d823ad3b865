// Package internal contains internal utilities for networkresult.
package internal

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// BodyText renders a decoded body as text for error messages.
// Supported types:
//   - nil or a nil pointer: "null"
//   - []byte: returned as-is
//   - string: returned as-is
//   - fmt.Stringer and error: their text
//   - other: JSON encoded, or %v if encoding fails
func BodyText(body any) string {
	if body == nil {
		return "null"
	}
	if rv := reflect.ValueOf(body); isNilable(rv.Kind()) && rv.IsNil() {
		return "null"
	}

	switch v := body.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
