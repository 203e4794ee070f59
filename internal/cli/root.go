package cli

import (
	"github.com/spf13/cobra"

	"meetscribe/internal/config"
	"meetscribe/internal/logger"
	"meetscribe/internal/processor"
	"meetscribe/internal/version"
)

// Dependencies carries the wired pipeline into the commands.
type Dependencies struct {
	Config    *config.Config
	Logger    logger.Logger
	Processor processor.Processor
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meetscribe",
		Short: "Watch a folder for meeting recordings and summarize them",
		Long: "meetscribe monitors a directory for new meeting recordings, extracts their audio,\n" +
			"transcribes and summarizes it through a generative API, and writes an HTML\n" +
			"summary next to each video.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewProcessCmd(deps))

	return rootCmd
}
