package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentClone(t *testing.T) {
	orig := &Document{
		OpenAPI: OpenAPIVersion,
		Info:    &Info{Title: "Users API", Version: "1.0.0"},
		Servers: []*Server{{URL: "https://api.example.com"}},
		Paths: map[string]*PathItem{
			"/users": {
				Get: &Operation{
					Summary: "List users",
					Tags:    []string{"users"},
					Responses: map[string]*Response{
						"200": {Description: "Successful response"},
					},
				},
			},
		},
		Components: &Components{
			SecuritySchemes: map[string]*SecurityScheme{
				"bearerAuth": {Type: "http", Scheme: "bearer"},
			},
		},
		Security: []SecurityRequirement{{"bearerAuth": {}}},
	}

	cp := orig.Clone()
	require.NotNil(t, cp)
	assert.Equal(t, orig, cp)

	cp.Info.Title = "changed"
	cp.Servers[0].URL = "changed"
	cp.Paths["/users"].Get.Summary = "changed"
	cp.Paths["/users"].Get.Responses["200"].Description = "changed"
	cp.Components.SecuritySchemes["bearerAuth"].Scheme = "changed"
	delete(cp.Paths, "/users")

	assert.Equal(t, "Users API", orig.Info.Title)
	assert.Equal(t, "https://api.example.com", orig.Servers[0].URL)
	require.Contains(t, orig.Paths, "/users")
	assert.Equal(t, "List users", orig.Paths["/users"].Get.Summary)
	assert.Equal(t, "Successful response", orig.Paths["/users"].Get.Responses["200"].Description)
	assert.Equal(t, "bearer", orig.Components.SecuritySchemes["bearerAuth"].Scheme)

	var nilDoc *Document
	assert.Nil(t, nilDoc.Clone())
}
