package spec

// OpenAPIVersion is the OpenAPI version stamped on synthesized documents.
const OpenAPIVersion = "3.0.0"

// Info provides metadata about the documented API.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Server represents a server the documented API is reachable at.
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// SecurityScheme describes a reusable security scheme under components.
type SecurityScheme struct {
	Type         string `yaml:"type" json:"type"`
	Scheme       string `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Name         string `yaml:"name,omitempty" json:"name,omitempty"`
	In           string `yaml:"in,omitempty" json:"in,omitempty"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Components holds reusable objects referenced from the document.
type Components struct {
	Schemas         map[string]*Schema         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
}

// Operation is one method entry under a document path.
type Operation struct {
	Summary     string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Parameters  []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*Response  `yaml:"responses" json:"responses"`
	Security    []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
}

// PathItem groups the operations declared for one path template. Field
// order follows conventional OpenAPI method ordering so marshaled output
// is stable.
type PathItem struct {
	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// Document is the synthesized OpenAPI-3.0-shaped output.
type Document struct {
	OpenAPI    string                `yaml:"openapi" json:"openapi"`
	Info       *Info                 `yaml:"info" json:"info"`
	Servers    []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      map[string]*PathItem  `yaml:"paths" json:"paths"`
	Components *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security   []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
}

// Clone returns a deep copy of the info block.
func (i *Info) Clone() *Info {
	if i == nil {
		return nil
	}
	cp := *i
	return &cp
}

// Clone returns a deep copy of the server entry.
func (s *Server) Clone() *Server {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// Clone returns a deep copy of the security scheme.
func (s *SecurityScheme) Clone() *SecurityScheme {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// Clone returns a deep copy of the components block.
func (c *Components) Clone() *Components {
	if c == nil {
		return nil
	}
	out := &Components{}
	if c.Schemas != nil {
		out.Schemas = make(map[string]*Schema, len(c.Schemas))
		for k, s := range c.Schemas {
			out.Schemas[k] = s.Clone()
		}
	}
	if c.SecuritySchemes != nil {
		out.SecuritySchemes = make(map[string]*SecurityScheme, len(c.SecuritySchemes))
		for k, s := range c.SecuritySchemes {
			out.SecuritySchemes[k] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the operation.
func (o *Operation) Clone() *Operation {
	if o == nil {
		return nil
	}
	out := &Operation{
		Summary:     o.Summary,
		Description: o.Description,
		RequestBody: o.RequestBody.Clone(),
		Security:    cloneSecurity(o.Security),
	}
	if o.Tags != nil {
		out.Tags = append([]string(nil), o.Tags...)
	}
	if o.Parameters != nil {
		out.Parameters = make([]*Parameter, len(o.Parameters))
		for i, p := range o.Parameters {
			out.Parameters[i] = p.Clone()
		}
	}
	if o.Responses != nil {
		out.Responses = make(map[string]*Response, len(o.Responses))
		for k, r := range o.Responses {
			out.Responses[k] = r.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the path item.
func (p *PathItem) Clone() *PathItem {
	if p == nil {
		return nil
	}
	return &PathItem{
		Get:     p.Get.Clone(),
		Put:     p.Put.Clone(),
		Post:    p.Post.Clone(),
		Delete:  p.Delete.Clone(),
		Options: p.Options.Clone(),
		Head:    p.Head.Clone(),
		Patch:   p.Patch.Clone(),
		Trace:   p.Trace.Clone(),
	}
}

// Clone returns a deep copy of the document. Examples are shared values.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		OpenAPI:    d.OpenAPI,
		Info:       d.Info.Clone(),
		Components: d.Components.Clone(),
		Security:   cloneSecurity(d.Security),
	}
	if d.Servers != nil {
		out.Servers = make([]*Server, len(d.Servers))
		for i, s := range d.Servers {
			out.Servers[i] = s.Clone()
		}
	}
	if d.Paths != nil {
		out.Paths = make(map[string]*PathItem, len(d.Paths))
		for k, item := range d.Paths {
			out.Paths[k] = item.Clone()
		}
	}
	return out
}
