package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-jwshin/testswag/collector"
	"github.com/dev-jwshin/testswag/sink"
	"github.com/dev-jwshin/testswag/synth"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize the OpenAPI document from collected specs",
		Long:  "generate loads the spec files written during a test run, reconciles them, and writes the OpenAPI document to the configured output path.",
		RunE:  runGenerate,
	}
	cmd.Flags().String("dir", os.TempDir(), "Directory holding collected spec files")
	cmd.Flags().StringP("output", "o", "", "Output path override")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := loggerFromFlags(cmd)
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	specs, err := sink.LoadAll(dir, wd, logger)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to generate: no collected specs found")
		return nil
	}

	// Re-run the accumulator's key-based reconciliation over everything
	// loaded, so multi-process runs dedup the same way a single run does.
	c := collector.New(collector.WithLogger(logger))
	c.ImportSnapshot(specs)

	doc, err := synth.New(cfg, synth.WithLogger(logger)).Generate(c.Specs())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d paths, %d specs)\n",
		cfg.OutputPath, len(doc.Paths), c.Len())
	return nil
}
