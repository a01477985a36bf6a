package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-jwshin/testswag/sink"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove collected spec files",
		Long:  "clean deletes the spec files written for this working directory, across all test-run processes.",
		RunE:  runClean,
	}
	cmd.Flags().String("dir", os.TempDir(), "Directory holding collected spec files")
	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	files, err := sink.Glob(dir, wd)
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d spec file(s)\n", len(files))
	return nil
}
