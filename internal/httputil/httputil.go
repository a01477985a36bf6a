// Package httputil provides HTTP method and status helpers shared by the
// collector and the synthesizer.
package httputil

import "strings"

// Lowercase HTTP method constants, matching OpenAPI path item keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// HTTP status code bounds.
const (
	MinStatusCode = 100
	MaxStatusCode = 599
)

var validMethods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// NormalizeMethod lowercases an HTTP method and reports whether it is one
// of the methods an OpenAPI path item can carry.
func NormalizeMethod(method string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(method))
	return m, validMethods[m]
}

// ValidStatusCode reports whether code is within the valid HTTP status
// range.
func ValidStatusCode(code int) bool {
	return code >= MinStatusCode && code <= MaxStatusCode
}
