package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "js-workspace",
		Short:   "Detect which manager governs a JavaScript workspace and where its root is",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(verbose)
		},
	}

	cmd.PersistentFlags().StringP("dir", "C", ".", "Directory to start the search from")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newDetectCmd(),
		newManagersCmd(),
		newExplainCmd(),
		newPickCmd(),
		newRunCmd(),
	)

	return cmd
}

// setupLogging configures the global logger. Diagnostics go to stderr so
// stdout stays clean for command output.
func setupLogging(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(console).Level(level).With().Timestamp().Logger()
}
