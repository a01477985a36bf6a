package collector

import (
	"testing"

	"github.com/dev-jwshin/testswag/spec"
)

// RunFunc is a response test body. It performs the live HTTP exchange for
// one declared response and returns the raw captured result, which may be
// a framework response wrapper; the collector unwraps it before
// inference. Returning nil captures nothing.
type RunFunc func(t *testing.T) (any, error)

// responseConfig is the explicit options structure for Response. Every
// field is named; there is no positional overloading.
type responseConfig struct {
	content map[string]*spec.MediaType
	headers map[string]*spec.Header
	capture *bool
	run     RunFunc
}

// ResponseOption configures a response declaration.
type ResponseOption func(*responseConfig)

// WithContent declares response content for a media type.
func WithContent(mediaType string, mt *spec.MediaType) ResponseOption {
	return func(cfg *responseConfig) {
		if cfg.content == nil {
			cfg.content = make(map[string]*spec.MediaType)
		}
		cfg.content[mediaType] = mt.Clone()
	}
}

// WithJSONContent declares application/json response content from a
// schema and example.
func WithJSONContent(schema *spec.Schema, example any) ResponseOption {
	return func(cfg *responseConfig) {
		if cfg.content == nil {
			cfg.content = make(map[string]*spec.MediaType)
		}
		cfg.content["application/json"] = &spec.MediaType{
			Schema:  schema.Clone(),
			Example: example,
		}
	}
}

// WithResponseHeader declares a response header.
func WithResponseHeader(name string, h *spec.Header) ResponseOption {
	return func(cfg *responseConfig) {
		if cfg.headers == nil {
			cfg.headers = make(map[string]*spec.Header)
		}
		cfg.headers[name] = h.Clone()
	}
}

// WithRun registers the test body executed for this response. Capture
// defaults to true whenever a run function is supplied.
func WithRun(fn RunFunc) ResponseOption {
	return func(cfg *responseConfig) {
		cfg.run = fn
	}
}

// WithCapture overrides whether the run function's result is captured and
// inferred into response content.
func WithCapture(capture bool) ResponseOption {
	return func(cfg *responseConfig) {
		cfg.capture = &capture
	}
}
