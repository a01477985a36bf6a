// Package commands implements the testswag CLI. The CLI is an external
// adapter over the core packages: it loads collected spec files through
// the sink, feeds them to the synthesizer, and writes the document.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dev-jwshin/testswag"
	"github.com/dev-jwshin/testswag/spec"
)

// Execute runs the testswag CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI
// easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "testswag",
		Short:         "Generate OpenAPI documentation from test-declared API specs",
		Long:          "testswag collects API declarations made inline in test code and synthesizes them into an OpenAPI document.",
		Version:       testswag.Version(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Accept snake_case flag spellings by normalizing to kebab-case.
	cmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	cmd.PersistentFlags().StringP("config", "c", defaultConfigFile, "Config file path (YAML)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging output")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newCleanCmd())

	return cmd
}

// loggerFromFlags builds the CLI logger; verbose enables debug-level
// output on stderr.
func loggerFromFlags(cmd *cobra.Command) spec.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return spec.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return spec.NewSlogAdapter(slog.New(handler))
}
