package infer

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapMap(t *testing.T) {
	t.Run("body wins", func(t *testing.T) {
		got := Unwrap(map[string]any{
			"body": map[string]any{"id": 1},
			"data": "ignored",
		})
		assert.Equal(t, map[string]any{"id": 1}, got)
	})

	t.Run("data second", func(t *testing.T) {
		got := Unwrap(map[string]any{"data": []any{"a"}, "status": 200})
		assert.Equal(t, []any{"a"}, got)
	})

	t.Run("status reduces to envelope", func(t *testing.T) {
		got := Unwrap(map[string]any{
			"status": 201,
			"headers": map[string]any{
				"Content-Type":   "application/json",
				"Content-Length": 42,
				"X-Weird":        []int{1, 2},
			},
		})
		envelope, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 201, envelope["status"])
		assert.Nil(t, envelope["data"])

		headers, ok := envelope["headers"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "application/json", headers["content-type"])
		assert.EqualValues(t, 42, headers["content-length"])
		_, present := headers["x-weird"]
		assert.False(t, present, "non string/number header values are dropped")
	})

	t.Run("statusCode alias", func(t *testing.T) {
		got := Unwrap(map[string]any{"statusCode": 404})
		envelope, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 404, envelope["status"])
	})

	t.Run("plain map passes through", func(t *testing.T) {
		m := map[string]any{"id": 1, "name": "bob"}
		assert.Equal(t, m, Unwrap(m))
	})
}

func TestUnwrapStruct(t *testing.T) {
	t.Run("reader body is skipped", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: 200,
			Body:       http.NoBody,
			Header:     http.Header{"Content-Type": {"application/json"}},
		}
		got := Unwrap(resp)
		envelope, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 200, envelope["status"])

		headers, ok := envelope["headers"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "application/json", headers["content-type"])
	})

	t.Run("value body wins", func(t *testing.T) {
		wrapper := struct {
			Body map[string]any
			Data string
		}{Body: map[string]any{"id": 1}, Data: "ignored"}
		assert.Equal(t, map[string]any{"id": 1}, Unwrap(wrapper))
	})

	t.Run("data field", func(t *testing.T) {
		wrapper := struct {
			Data []string
		}{Data: []string{"x"}}
		assert.Equal(t, []string{"x"}, Unwrap(wrapper))
	})

	t.Run("plain struct passes through", func(t *testing.T) {
		type user struct{ Name string }
		u := user{Name: "ann"}
		assert.Equal(t, u, Unwrap(u))
	})
}

func TestUnwrapNil(t *testing.T) {
	assert.Nil(t, Unwrap(nil))

	var resp *http.Response
	assert.Nil(t, Unwrap(resp))
}

func TestUnwrapNonWrapperValues(t *testing.T) {
	assert.Equal(t, "plain", Unwrap("plain"))
	assert.Equal(t, 42, Unwrap(42))
	assert.Equal(t, []int{1, 2}, Unwrap([]int{1, 2}))
}
