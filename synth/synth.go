package synth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dev-jwshin/testswag/internal/httputil"
	"github.com/dev-jwshin/testswag/spec"
)

// cacheSize bounds the number of memoized (input hash, document) pairs.
// One entry covers the common regenerate-in-a-loop case; a few more cover
// alternating collections.
const cacheSize = 8

// suffixedKeyPattern matches response keys of the form "<code>-<n>".
var suffixedKeyPattern = regexp.MustCompile(`^(\d{3})-(\d+)$`)

// pathParamPattern matches "{param}" segments in path templates.
var pathParamPattern = regexp.MustCompile(`^\{(.+)\}$`)

var titleCaser = cases.Title(language.English)

// Synthesizer produces OpenAPI documents from accumulated specs.
type Synthesizer struct {
	cfg             *spec.Config
	logger          spec.Logger
	cache           *lru.Cache[string, *spec.Document]
	securitySchemes map[string]*spec.SecurityScheme
	security        []spec.SecurityRequirement
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithLogger sets the logger. Defaults to spec.NopLogger.
func WithLogger(logger spec.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSecurityScheme registers a reusable security scheme under
// components.securitySchemes.
func WithSecurityScheme(name string, scheme *spec.SecurityScheme) Option {
	return func(s *Synthesizer) {
		if s.securitySchemes == nil {
			s.securitySchemes = make(map[string]*spec.SecurityScheme)
		}
		s.securitySchemes[name] = scheme
	}
}

// WithDocumentSecurity sets the document-level security requirements.
func WithDocumentSecurity(reqs ...spec.SecurityRequirement) Option {
	return func(s *Synthesizer) {
		s.security = reqs
	}
}

// New creates a Synthesizer for the given generation config. A nil
// config falls back to spec.DefaultConfig.
func New(cfg *spec.Config, opts ...Option) *Synthesizer {
	if cfg == nil {
		cfg = spec.DefaultConfig()
	}
	cache, _ := lru.New[string, *spec.Document](cacheSize)
	s := &Synthesizer{
		cfg:    cfg,
		logger: spec.NopLogger{},
		cache:  cache,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize assembles the document for the given spec collection.
// Deterministic for a fixed input order. An unchanged collection returns
// the memoized document without recomputation.
func (s *Synthesizer) Synthesize(specs []*spec.ApiSpec) *spec.Document {
	key, hashable := s.inputHash(specs)
	if hashable {
		if doc, ok := s.cache.Get(key); ok {
			s.logger.Debug("document cache hit", "specs", len(specs))
			// Callers own the returned document; cloning keeps their
			// mutations out of the cache.
			return doc.Clone()
		}
	}

	paths := make(map[string]*spec.PathItem)
	for _, sp := range specs {
		if !sp.Complete() {
			continue
		}
		item, ok := paths[sp.Path]
		if !ok {
			item = &spec.PathItem{}
			paths[sp.Path] = item
		}
		s.setOperation(item, sp.Method, s.buildOperation(sp))
	}

	doc := &spec.Document{
		OpenAPI: spec.OpenAPIVersion,
		Info: &spec.Info{
			Title:       s.cfg.Title,
			Version:     s.cfg.Version,
			Description: s.cfg.Description,
		},
		Paths:    paths,
		Security: s.security,
	}
	if len(s.cfg.Servers) > 0 {
		doc.Servers = s.cfg.Servers
	}
	if len(s.securitySchemes) > 0 {
		doc.Components = &spec.Components{SecuritySchemes: s.securitySchemes}
	}

	if hashable {
		s.cache.Add(key, doc.Clone())
	}
	s.logger.Info("document synthesized", "paths", len(paths), "specs", len(specs))
	return doc
}

// inputHash fingerprints the spec collection plus the config. Hashing the
// serialized form is equivalent to element-wise deep equality because
// marshaling here is deterministic.
func (s *Synthesizer) inputHash(specs []*spec.ApiSpec) (string, bool) {
	h := sha256.New()
	cfgData, err := json.Marshal(s.cfg)
	if err != nil {
		return "", false
	}
	h.Write(cfgData)
	specData, err := json.Marshal(specs)
	if err != nil {
		return "", false
	}
	h.Write(specData)
	return hex.EncodeToString(h.Sum(nil)), true
}

// buildOperation converts one accumulated spec into a document operation.
func (s *Synthesizer) buildOperation(sp *spec.ApiSpec) *spec.Operation {
	cp := sp.Clone()
	op := &spec.Operation{
		Summary:     cp.Summary,
		Description: cp.Description,
		Tags:        cp.Tags,
		Parameters:  cp.Parameters,
		RequestBody: cp.RequestBody,
		Responses:   rekeyResponses(cp.Responses),
		Security:    cp.Security,
	}
	if op.Summary == "" {
		op.Summary = deriveSummary(cp.Method, cp.Path)
	}
	if len(op.Responses) == 0 {
		op.Responses = map[string]*spec.Response{
			"200": {Description: "Success"},
		}
	}
	return op
}

// rekeyResponses renders suffixed keys "<code>-<n>" as "<code> (<n>)".
// The numeric prefix stays the effective HTTP status.
func rekeyResponses(responses map[string]*spec.Response) map[string]*spec.Response {
	if len(responses) == 0 {
		return nil
	}
	out := make(map[string]*spec.Response, len(responses))
	for key, resp := range responses {
		if m := suffixedKeyPattern.FindStringSubmatch(key); m != nil {
			key = m[1] + " (" + m[2] + ")"
		}
		out[key] = resp
	}
	return out
}

// deriveSummary builds a readable fallback summary from the method and
// path segments, e.g. "get /user-profiles/{id}" becomes
// "Get User Profiles By Id".
func deriveSummary(method, path string) string {
	words := []string{method}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if m := pathParamPattern.FindStringSubmatch(seg); m != nil {
			words = append(words, "by", m[1])
			continue
		}
		seg = strings.NewReplacer("-", " ", "_", " ").Replace(seg)
		words = append(words, seg)
	}
	return titleCaser.String(strings.Join(words, " "))
}

// setOperation assigns an operation to a path item based on HTTP method.
func (s *Synthesizer) setOperation(item *spec.PathItem, method string, op *spec.Operation) {
	switch method {
	case httputil.MethodGet:
		item.Get = op
	case httputil.MethodPut:
		item.Put = op
	case httputil.MethodPost:
		item.Post = op
	case httputil.MethodDelete:
		item.Delete = op
	case httputil.MethodOptions:
		item.Options = op
	case httputil.MethodHead:
		item.Head = op
	case httputil.MethodPatch:
		item.Patch = op
	case httputil.MethodTrace:
		item.Trace = op
	default:
		s.logger.Warn("skipping operation with unsupported method", "method", method)
	}
}
