package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dev-jwshin/testswag/spec"
)

// defaultConfigFile is the conventional config location in a project
// root.
const defaultConfigFile = "testswag.yaml"

// Environment variable overrides, applied after the config file.
const (
	envTitle       = "TESTSWAG_TITLE"
	envVersion     = "TESTSWAG_VERSION"
	envDescription = "TESTSWAG_DESCRIPTION"
	envOutput      = "TESTSWAG_OUTPUT"
)

// resolveConfig assembles the generation config from, in increasing
// precedence: defaults, the YAML config file, .env-loaded environment
// variables, and flags.
func resolveConfig(cmd *cobra.Command) (*spec.Config, error) {
	// A project .env may carry the TESTSWAG_* overrides; a missing file
	// is fine.
	_ = godotenv.Load()

	path, _ := cmd.Flags().GetString("config")

	cfg := spec.DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		loaded, err := spec.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if cmd.Flags().Changed("config") {
		// An explicitly requested config file must exist.
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if v := os.Getenv(envTitle); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv(envVersion); v != "" {
		cfg.Version = v
	}
	if v := os.Getenv(envDescription); v != "" {
		cfg.Description = v
	}
	if v := os.Getenv(envOutput); v != "" {
		cfg.OutputPath = v
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputPath = output
	}
	return cfg, nil
}
