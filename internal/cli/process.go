package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "process <video-file>",
		Short: "Summarize a single recording and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(deps, args[0])
		},
	}
}

func runProcess(deps *Dependencies, path string) error {
	ctx := context.Background()

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a recording", path)
	}

	// Pipeline failures surface in the log only, matching watch mode where
	// one bad recording never stops the service.
	if err := deps.Processor.Process(ctx, path); err != nil {
		deps.Logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
	return nil
}
