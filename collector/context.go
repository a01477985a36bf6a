package collector

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/dev-jwshin/testswag/infer"
	"github.com/dev-jwshin/testswag/internal/httputil"
	"github.com/dev-jwshin/testswag/spec"
)

// cursor is one frame of declaration state. Scope entry pushes a deep
// copy, so mutations inside a scope never leak outward.
type cursor struct {
	path        string
	method      string
	summary     string
	description string
	tags        []string
	parameters  []*spec.Parameter
	requestBody *spec.RequestBody
	responses   map[string]*spec.Response
	security    []spec.SecurityRequirement
}

func newCursor() *cursor {
	return &cursor{responses: make(map[string]*spec.Response)}
}

func (c *cursor) clone() *cursor {
	out := &cursor{
		path:        c.path,
		method:      c.method,
		summary:     c.summary,
		description: c.description,
		requestBody: c.requestBody.Clone(),
		responses:   make(map[string]*spec.Response, len(c.responses)),
	}
	out.tags = append([]string(nil), c.tags...)
	for _, p := range c.parameters {
		out.parameters = append(out.parameters, p.Clone())
	}
	for k, r := range c.responses {
		out.responses[k] = r.Clone()
	}
	for _, req := range c.security {
		cp := make(spec.SecurityRequirement, len(req))
		for name, scopes := range req {
			cp[name] = append([]string(nil), scopes...)
		}
		out.security = append(out.security, cp)
	}
	return out
}

// snapshot converts the cursor into a finalized ApiSpec copy.
func (c *cursor) snapshot() *spec.ApiSpec {
	s := &spec.ApiSpec{
		Path:        c.path,
		Method:      c.method,
		Summary:     c.summary,
		Description: c.description,
		RequestBody: c.requestBody,
		Responses:   c.responses,
		Tags:        c.tags,
		Parameters:  c.parameters,
		Security:    c.security,
	}
	return s.Clone()
}

// Context tracks the current declaration cursor as test scopes nest and
// feeds finalized snapshots to a Collector.
//
// Contexts are driven by the declaration pass of a test run and are not
// safe for concurrent use; declaration bodies must not call t.Parallel.
type Context struct {
	collector *Collector
	stack     []*cursor
}

// NewContext creates a declaration context feeding the given collector.
// A nil collector means the process-wide default.
func NewContext(c *Collector) *Context {
	if c == nil {
		c = Default()
	}
	return &Context{collector: c, stack: []*cursor{newCursor()}}
}

// Collector returns the collector this context feeds.
func (d *Context) Collector() *Collector { return d.collector }

func (d *Context) current() *cursor {
	return d.stack[len(d.stack)-1]
}

func (d *Context) push(c *cursor) {
	d.stack = append(d.stack, c)
}

func (d *Context) pop() {
	d.stack = d.stack[:len(d.stack)-1]
}

// Path declares a path scope. The body runs as a grouped subtest with the
// cursor's path set to template; on return the cursor is restored to its
// pre-call value. Scopes nest: the innermost path wins, while parameters
// declared before descending remain visible. Declare path-level
// parameters before entering method blocks if they must apply to all of
// them.
func (d *Context) Path(t *testing.T, template string, body func(t *testing.T)) {
	frame := d.current().clone()
	frame.path = template
	d.push(frame)
	defer d.pop()
	t.Run(template, body)
}

// Operation declares an operation scope for an HTTP method and summary.
// The responses map starts empty for every operation; everything else is
// inherited from the enclosing scope.
func (d *Context) Operation(t *testing.T, method, summary string, body func(t *testing.T)) {
	normalized, ok := httputil.NormalizeMethod(method)
	if !ok {
		d.collector.logger.Warn("unknown HTTP method declared", "method", method)
	}
	frame := d.current().clone()
	frame.method = normalized
	frame.summary = summary
	frame.responses = make(map[string]*spec.Response)
	d.push(frame)
	defer d.pop()
	t.Run(normalized+" "+summary, body)
}

// AddTag appends tags to the current cursor.
func (d *Context) AddTag(names ...string) {
	cur := d.current()
	cur.tags = append(cur.tags, names...)
}

// SetDescription sets the current cursor's description.
func (d *Context) SetDescription(text string) {
	d.current().description = text
}

// AddParameter appends a parameter to the current cursor. The parameter
// is copied, so later caller mutations do not bleed into snapshots.
func (d *Context) AddParameter(p *spec.Parameter) {
	cur := d.current()
	cur.parameters = append(cur.parameters, p.Clone())
}

// SetRequestBody sets (overwrites) the current cursor's request body.
func (d *Context) SetRequestBody(b *spec.RequestBody) {
	d.current().requestBody = b.Clone()
}

// AddSecurity appends a security requirement to the current cursor.
func (d *Context) AddSecurity(req spec.SecurityRequirement) {
	cur := d.current()
	cur.security = append(cur.security, req)
}

// Response declares a response for the current operation.
//
// The response is stored under its status code, suffixed "<code>-<n>"
// when the code was already declared for this operation, and a structural
// snapshot of the full cursor is submitted immediately. When WithRun
// supplies a test body, it is registered as an individual subtest labeled
// by the response key; if capture is enabled (the default once a run
// function exists) and the body returns a value, the payload is
// unwrapped, its schema inferred, and an enriched snapshot resubmitted,
// superseding the structural one.
func (d *Context) Response(t *testing.T, statusCode int, description string, opts ...ResponseOption) {
	if !httputil.ValidStatusCode(statusCode) {
		d.collector.logger.Warn("status code outside valid HTTP range", "status", statusCode)
	}

	cfg := &responseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	cur := d.current()
	key := responseKey(cur.responses, statusCode)
	cur.responses[key] = &spec.Response{
		Description: description,
		Content:     cfg.content,
		Headers:     cfg.headers,
	}

	// Phase 1: structural snapshot. The document reflects declared shape
	// even when the test body is skipped or never runs.
	d.collector.Submit(cur.snapshot())

	if cfg.run == nil {
		return
	}
	capture := cfg.capture == nil || *cfg.capture

	t.Run(key, func(t *testing.T) {
		result, err := cfg.run(t)
		if err != nil {
			t.Fatalf("response %s: %v", key, err)
		}
		if !capture || result == nil {
			return
		}

		payload := infer.Unwrap(result)
		schema := infer.Infer(payload)
		cur.responses[key].Content = map[string]*spec.MediaType{
			"application/json": {Schema: schema, Example: schema.Example},
		}

		// Phase 2: observed shape supersedes declared shape.
		d.collector.Submit(cur.snapshot())
	})
}

// responseKey computes the storage key for a status code, suffixing
// repeats so each declaration survives as a distinct entry.
func responseKey(responses map[string]*spec.Response, statusCode int) string {
	base := strconv.Itoa(statusCode)
	if _, exists := responses[base]; !exists {
		return base
	}
	for n := 1; ; n++ {
		key := fmt.Sprintf("%s-%d", base, n)
		if _, exists := responses[key]; !exists {
			return key
		}
	}
}
