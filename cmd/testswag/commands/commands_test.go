package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-jwshin/testswag/sink"
	"github.com/dev-jwshin/testswag/spec"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seedSpecs(t *testing.T, dir string, specs []*spec.ApiSpec) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	s := sink.NewFileSink(
		sink.WithPath(sink.SpecPath(dir, wd, os.Getpid())),
		sink.WithDebounce(0),
	)
	require.NoError(t, s.Store(specs))
}

func TestGenerateNothingCollected(t *testing.T) {
	out, err := runCLI(t, "generate", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to generate")
}

func TestGenerateWritesDocument(t *testing.T) {
	dir := t.TempDir()
	seedSpecs(t, dir, []*spec.ApiSpec{
		{Path: "/users", Method: "get", Summary: "List users",
			Responses: map[string]*spec.Response{"200": {Description: "Successful response"}}},
		{Path: "/users", Method: "post", Summary: "Create user"},
	})

	output := filepath.Join(t.TempDir(), "openapi.json")
	out, err := runCLI(t, "generate", "--dir", dir, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+output)
	assert.Contains(t, out, "1 paths, 2 specs")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, spec.OpenAPIVersion, doc["openapi"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/users")
}

func TestGenerateReconcilesDuplicates(t *testing.T) {
	dir := t.TempDir()
	bare := &spec.ApiSpec{Path: "/users", Method: "get", Summary: "List users"}
	rich := bare.Clone()
	rich.Responses = map[string]*spec.Response{"200": {Description: "Successful response"}}
	seedSpecs(t, dir, []*spec.ApiSpec{bare, rich, bare})

	output := filepath.Join(t.TempDir(), "openapi.json")
	out, err := runCLI(t, "generate", "--dir", dir, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "1 paths, 1 specs")
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	seedSpecs(t, dir, []*spec.ApiSpec{{Path: "/ping", Method: "get", Summary: "Ping"}})

	outDir := t.TempDir()
	cfgPath := filepath.Join(outDir, "testswag.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"title: Configured API\noutputPath: "+filepath.Join(outDir, "doc.json")+"\n",
	), 0o644))

	_, err := runCLI(t, "generate", "--dir", dir, "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "doc.json"))
	require.NoError(t, err)
	var doc struct {
		Info struct{ Title string }
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Configured API", doc.Info.Title)
}

func TestGenerateMissingExplicitConfig(t *testing.T) {
	_, err := runCLI(t, "generate",
		"--dir", t.TempDir(),
		"--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestGenerateEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	seedSpecs(t, dir, []*spec.ApiSpec{{Path: "/ping", Method: "get", Summary: "Ping"}})

	t.Setenv(envTitle, "Env API")
	t.Setenv(envVersion, "9.9.9")
	output := filepath.Join(t.TempDir(), "openapi.json")
	t.Setenv(envOutput, output)

	_, err := runCLI(t, "generate", "--dir", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var doc struct {
		Info struct {
			Title   string
			Version string
		}
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Env API", doc.Info.Title)
	assert.Equal(t, "9.9.9", doc.Info.Version)
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	seedSpecs(t, dir, []*spec.ApiSpec{{Path: "/ping", Method: "get", Summary: "Ping"}})

	wd, err := os.Getwd()
	require.NoError(t, err)
	files, err := sink.Glob(dir, wd)
	require.NoError(t, err)
	require.Len(t, files, 1)

	out, err := runCLI(t, "clean", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 spec file(s)")

	files, err = sink.Glob(dir, wd)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCleanEmptyDir(t *testing.T) {
	out, err := runCLI(t, "clean", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "removed 0 spec file(s)")
}
