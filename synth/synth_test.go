package synth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-jwshin/testswag/spec"
)

func sampleSpecs() []*spec.ApiSpec {
	return []*spec.ApiSpec{
		{
			Path:    "/users",
			Method:  "get",
			Summary: "List users",
			Tags:    []string{"users"},
			Responses: map[string]*spec.Response{
				"200": {Description: "Successful response"},
			},
		},
		{
			Path:    "/users",
			Method:  "post",
			Summary: "Create user",
			Responses: map[string]*spec.Response{
				"201": {Description: "Created"},
			},
		},
		{
			Path:    "/users/{id}",
			Method:  "delete",
			Summary: "Delete user",
			Responses: map[string]*spec.Response{
				"204": {Description: "Deleted"},
			},
		},
	}
}

func TestSynthesize(t *testing.T) {
	cfg := &spec.Config{Title: "Users API", Version: "2.0.0", OutputPath: "openapi.json"}
	doc := New(cfg).Synthesize(sampleSpecs())

	assert.Equal(t, spec.OpenAPIVersion, doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Users API", doc.Info.Title)
	assert.Equal(t, "2.0.0", doc.Info.Version)
	assert.Nil(t, doc.Servers, "servers must be omitted when none are configured")

	require.Len(t, doc.Paths, 2)
	users := doc.Paths["/users"]
	require.NotNil(t, users)
	require.NotNil(t, users.Get)
	require.NotNil(t, users.Post)
	assert.Equal(t, "List users", users.Get.Summary)
	assert.Equal(t, []string{"users"}, users.Get.Tags)

	byID := doc.Paths["/users/{id}"]
	require.NotNil(t, byID)
	require.NotNil(t, byID.Delete)
	assert.Contains(t, byID.Delete.Responses, "204")
}

func TestSynthesizeSkipsIncomplete(t *testing.T) {
	doc := New(nil).Synthesize([]*spec.ApiSpec{
		{Path: "/ok", Method: "get", Summary: "Works"},
		{Path: "/no-method"},
		{Method: "get"},
	})
	assert.Len(t, doc.Paths, 1)
	assert.Contains(t, doc.Paths, "/ok")
}

func TestSynthesizeDefaultResponse(t *testing.T) {
	doc := New(nil).Synthesize([]*spec.ApiSpec{
		{Path: "/ping", Method: "get", Summary: "Ping"},
	})
	op := doc.Paths["/ping"].Get
	require.NotNil(t, op)
	require.Contains(t, op.Responses, "200")
	assert.Equal(t, "Success", op.Responses["200"].Description)
}

func TestSynthesizeRekeysRepeatedResponses(t *testing.T) {
	doc := New(nil).Synthesize([]*spec.ApiSpec{
		{
			Path:    "/orders",
			Method:  "get",
			Summary: "List orders",
			Responses: map[string]*spec.Response{
				"200":   {Description: "Full page"},
				"200-1": {Description: "Empty page"},
				"200-2": {Description: "Partial page"},
			},
		},
	})

	responses := doc.Paths["/orders"].Get.Responses
	require.Len(t, responses, 3)
	assert.Equal(t, "Full page", responses["200"].Description)
	assert.Equal(t, "Empty page", responses["200 (1)"].Description)
	assert.Equal(t, "Partial page", responses["200 (2)"].Description)
}

func TestSynthesizeDerivedSummary(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"get", "/users", "Get Users"},
		{"get", "/users/{id}", "Get Users By Id"},
		{"post", "/user-profiles", "Post User Profiles"},
		{"delete", "/audit_logs/{entry}", "Delete Audit Logs By Entry"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveSummary(tt.method, tt.path))
		})
	}
}

func TestSynthesizeDerivedSummaryApplied(t *testing.T) {
	doc := New(nil).Synthesize([]*spec.ApiSpec{
		{Path: "/users/{id}", Method: "get"},
	})
	assert.Equal(t, "Get Users By Id", doc.Paths["/users/{id}"].Get.Summary)
}

func TestSynthesizeUnknownMethodSkipped(t *testing.T) {
	doc := New(nil).Synthesize([]*spec.ApiSpec{
		{Path: "/weird", Method: "brew", Summary: "Teapot"},
	})
	item := doc.Paths["/weird"]
	require.NotNil(t, item)
	assert.Nil(t, item.Get)
	assert.Nil(t, item.Post)
}

func TestSynthesizeDeterministic(t *testing.T) {
	cfg := &spec.Config{Title: "Users API", Version: "1.0.0", OutputPath: "openapi.json"}

	first, err := json.Marshal(New(cfg).Synthesize(sampleSpecs()))
	require.NoError(t, err)
	second, err := json.Marshal(New(cfg).Synthesize(sampleSpecs()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second),
		"identical collections must synthesize byte-identical documents")
}

func TestSynthesizeCache(t *testing.T) {
	s := New(nil)
	specs := sampleSpecs()

	first := s.Synthesize(specs)
	second := s.Synthesize(specs)
	assert.Equal(t, first, second, "an unchanged collection must reproduce the memoized document")

	specs[0].Summary = "Changed summary"
	third := s.Synthesize(specs)
	assert.NotEqual(t, first.Paths["/users"].Get.Summary, third.Paths["/users"].Get.Summary)
}

func TestSynthesizeCacheIsolation(t *testing.T) {
	s := New(nil)
	specs := sampleSpecs()

	first := s.Synthesize(specs)
	// Callers own the returned document; mutating it must not leak into
	// later synthesis of the same collection.
	first.Info.Title = "mutated"
	first.Paths["/users"].Get.Summary = "mutated"
	delete(first.Paths, "/users/{id}")

	second := s.Synthesize(specs)
	assert.Equal(t, "API Documentation", second.Info.Title)
	assert.Equal(t, "List users", second.Paths["/users"].Get.Summary)
	assert.Contains(t, second.Paths, "/users/{id}")
	assert.NotSame(t, first, second)
}

func TestSynthesizeSecurity(t *testing.T) {
	doc := New(nil,
		WithSecurityScheme("bearerAuth", &spec.SecurityScheme{
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		}),
		WithDocumentSecurity(spec.SecurityRequirement{"bearerAuth": {}}),
	).Synthesize(sampleSpecs())

	require.NotNil(t, doc.Components)
	require.Contains(t, doc.Components.SecuritySchemes, "bearerAuth")
	assert.Equal(t, "JWT", doc.Components.SecuritySchemes["bearerAuth"].BearerFormat)
	require.Len(t, doc.Security, 1)
}

func TestSynthesizeServers(t *testing.T) {
	cfg := spec.DefaultConfig()
	cfg.Servers = []*spec.Server{{URL: "https://api.example.com", Description: "Production"}}

	doc := New(cfg).Synthesize(sampleSpecs())
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com", doc.Servers[0].URL)
}
