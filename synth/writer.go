package synth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/dev-jwshin/testswag/internal/fileutil"
	"github.com/dev-jwshin/testswag/spec"
)

// WriteDocument writes the document to path, creating parent directories
// as needed. The format is inferred from the extension: .yaml/.yml for
// YAML, anything else pretty-printed JSON with 2-space indentation.
//
// A write failure is fatal to the generation pass and is returned, never
// swallowed: silently producing no documentation is worse than a loud
// failure here.
func WriteDocument(doc *spec.Document, path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("synth: failed to marshal document: %w", err)
	}

	if err := fileutil.EnsureParentDir(path); err != nil {
		return fmt.Errorf("synth: failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("synth: failed to write document: %w", err)
	}
	return nil
}

// Generate synthesizes the document for specs and writes it to the
// configured output path.
func (s *Synthesizer) Generate(specs []*spec.ApiSpec) (*spec.Document, error) {
	doc := s.Synthesize(specs)
	if err := WriteDocument(doc, s.cfg.OutputPath); err != nil {
		return nil, err
	}
	s.logger.Info("document written", "path", s.cfg.OutputPath)
	return doc, nil
}
