package infer

import (
	"io"
	"reflect"
	"strings"
)

// Unwrap extracts the meaningful payload from a captured HTTP response
// wrapper before inference.
//
// Resolution order: a body field wins, then a data field, then a value
// carrying a status code is reduced to {status, data, headers} with only
// string- and number-valued headers retained. Anything else is returned
// unchanged.
func Unwrap(value any) any {
	if value == nil {
		return nil
	}

	if m, ok := value.(map[string]any); ok {
		return unwrapMap(m)
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		return unwrapStruct(v)
	}
	return value
}

func unwrapMap(m map[string]any) any {
	if body, ok := m["body"]; ok {
		return body
	}
	if data, ok := m["data"]; ok {
		return data
	}
	status, ok := m["status"]
	if !ok {
		status, ok = m["statusCode"]
	}
	if !ok {
		return m
	}
	return map[string]any{
		"status":  status,
		"data":    m["data"],
		"headers": filterHeaders(m["headers"]),
	}
}

func unwrapStruct(v reflect.Value) any {
	// Body first; readers are transport streams, not payloads.
	if body, ok := structField(v, "Body"); ok && !isReader(body) {
		return body.Interface()
	}
	if data, ok := structField(v, "Data"); ok {
		return data.Interface()
	}

	status, ok := statusField(v)
	if !ok {
		return v.Interface()
	}
	out := map[string]any{"status": status}
	for _, name := range []string{"Header", "Headers"} {
		if headers, found := structField(v, name); found {
			out["headers"] = filterHeaders(headers.Interface())
			break
		}
	}
	if data, found := structField(v, "Data"); found {
		out["data"] = data.Interface()
	} else {
		out["data"] = nil
	}
	return out
}

func structField(v reflect.Value, name string) (reflect.Value, bool) {
	field := v.FieldByName(name)
	if !field.IsValid() || !field.CanInterface() {
		return reflect.Value{}, false
	}
	return field, true
}

func statusField(v reflect.Value) (int, bool) {
	for _, name := range []string{"StatusCode", "Status", "Code"} {
		field, ok := structField(v, name)
		if !ok {
			continue
		}
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(field.Int()), true
		}
	}
	return 0, false
}

func isReader(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	_, ok := v.Interface().(io.Reader)
	return ok
}

// filterHeaders keeps only string- and number-valued header entries.
// Multi-valued headers (http.Header style) are reduced to their first
// value.
func filterHeaders(headers any) map[string]any {
	out := make(map[string]any)
	if headers == nil {
		return out
	}

	v := reflect.ValueOf(headers)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return out
	}
	for _, key := range v.MapKeys() {
		name := strings.ToLower(key.String())
		val := v.MapIndex(key)
		for val.Kind() == reflect.Interface {
			if val.IsNil() {
				val = reflect.Value{}
				break
			}
			val = val.Elem()
		}
		if !val.IsValid() {
			continue
		}
		switch val.Kind() {
		case reflect.String:
			out[name] = val.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[name] = val.Int()
		case reflect.Float32, reflect.Float64:
			out[name] = val.Float()
		case reflect.Slice:
			// http.Header: []string values, first entry wins.
			if val.Len() > 0 && val.Index(0).Kind() == reflect.String {
				out[name] = val.Index(0).String()
			}
		}
	}
	return out
}
