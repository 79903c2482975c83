package cli

import (
	"github.com/CNOCTAVE/srt-player/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srt-player",
	Short: "Terminal subtitle player and toolkit for SRT files",
	Long: `srt-player plays SRT subtitle files in the terminal, timed against a
wall clock, with keyboard controls for pausing and seeking.

It also ships companion tools to inspect, shift, and translate subtitle
files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
