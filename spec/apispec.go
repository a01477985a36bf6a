package spec

import "encoding/json"

// Parameter location constants.
const (
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInPath   = "path"
	ParamInCookie = "cookie"
)

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any     `yaml:"example,omitempty" json:"example,omitempty"`
}

// Clone returns a deep copy of the parameter.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	out := *p
	out.Schema = p.Schema.Clone()
	return &out
}

// MediaType pairs a schema with a representative example for one media
// type entry in a content map.
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
}

// Clone returns a deep copy of the media type entry.
func (m *MediaType) Clone() *MediaType {
	if m == nil {
		return nil
	}
	return &MediaType{Schema: m.Schema.Clone(), Example: m.Example}
}

// RequestBody describes an operation request body.
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Clone returns a deep copy of the request body.
func (r *RequestBody) Clone() *RequestBody {
	if r == nil {
		return nil
	}
	return &RequestBody{
		Description: r.Description,
		Required:    r.Required,
		Content:     cloneContent(r.Content),
	}
}

// Header describes a response header.
type Header struct {
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	if h == nil {
		return nil
	}
	return &Header{Description: h.Description, Schema: h.Schema.Clone()}
}

// Response describes one declared response of an operation.
type Response struct {
	Description string                `yaml:"description" json:"description"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Clone returns a deep copy of the response.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}
	out := &Response{
		Description: r.Description,
		Content:     cloneContent(r.Content),
	}
	if r.Headers != nil {
		out.Headers = make(map[string]*Header, len(r.Headers))
		for k, h := range r.Headers {
			out.Headers[k] = h.Clone()
		}
	}
	return out
}

func cloneContent(in map[string]*MediaType) map[string]*MediaType {
	if in == nil {
		return nil
	}
	out := make(map[string]*MediaType, len(in))
	for k, mt := range in {
		out[k] = mt.Clone()
	}
	return out
}

// SecurityRequirement maps a security scheme name to its required scopes.
type SecurityRequirement map[string][]string

func cloneSecurity(in []SecurityRequirement) []SecurityRequirement {
	if in == nil {
		return nil
	}
	out := make([]SecurityRequirement, len(in))
	for i, req := range in {
		cp := make(SecurityRequirement, len(req))
		for name, scopes := range req {
			cp[name] = append([]string(nil), scopes...)
		}
		out[i] = cp
	}
	return out
}

// ApiSpec is one HTTP operation's declared contract, snapshotted from the
// declaration cursor. Responses are keyed by status code, with repeated
// codes suffixed "<code>-<n>" so they survive as distinct entries.
type ApiSpec struct {
	Path        string                `yaml:"path" json:"path"`
	Method      string                `yaml:"method" json:"method"`
	Summary     string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Parameters  []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`
	Security    []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
}

// Key returns the identity key used for deduplication. Two snapshots with
// the same key are competing versions of the same declaration.
func (s *ApiSpec) Key() string {
	return s.Path + "|" + s.Method + "|" + s.Summary
}

// Complete reports whether the spec carries the identity fields required
// for accumulation. Incomplete snapshots are dropped, not errors.
func (s *ApiSpec) Complete() bool {
	return s.Path != "" && s.Method != ""
}

// Size returns the serialized byte length of the spec. Larger serialized
// form is treated as carrying strictly more information when competing
// snapshots share an identity key.
func (s *ApiSpec) Size() int {
	data, err := json.Marshal(s)
	if err != nil {
		return 0
	}
	return len(data)
}

// Clone returns a deep copy of the spec. Examples are shared values.
func (s *ApiSpec) Clone() *ApiSpec {
	if s == nil {
		return nil
	}
	out := &ApiSpec{
		Path:        s.Path,
		Method:      s.Method,
		Summary:     s.Summary,
		Description: s.Description,
		RequestBody: s.RequestBody.Clone(),
	}
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	if s.Parameters != nil {
		out.Parameters = make([]*Parameter, len(s.Parameters))
		for i, p := range s.Parameters {
			out.Parameters[i] = p.Clone()
		}
	}
	if s.Responses != nil {
		out.Responses = make(map[string]*Response, len(s.Responses))
		for k, r := range s.Responses {
			out.Responses[k] = r.Clone()
		}
	}
	out.Security = cloneSecurity(s.Security)
	return out
}
