package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CNOCTAVE/srt-player/internal/subtitle"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Shift every cue by a fixed offset",
	Long: `Shift every cue in a subtitle file by a fixed offset, to fix subtitles
that drift ahead of or behind the audio.

A positive offset moves cues later, a negative one earlier. Cues shifted
before zero are clamped to zero when written.

Examples:
  srt-player shift movie.srt --by 1.5s
  srt-player shift movie.srt --by -500ms -o fixed.srt
  srt-player shift movie.srt --by 2s --format vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Duration("by", 0, "Offset to apply (e.g. 1.5s, -500ms) (required)")
	shiftCmd.Flags().
		StringP("format", "f", "", "Output format (srt, vtt); defaults to the output extension")

	_ = shiftCmd.MarkFlagRequired("by")
}

func runShift(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	by, _ := cmd.Flags().GetDuration("by")
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}
	if by == 0 {
		return fmt.Errorf("shift offset must be non-zero")
	}

	var format subtitle.Format
	switch {
	case formatStr != "":
		switch strings.ToLower(formatStr) {
		case "srt":
			format = subtitle.FormatSRT
		case "vtt":
			format = subtitle.FormatVTT
		default:
			return fmt.Errorf("unsupported format %q: use srt or vtt", formatStr)
		}
	case outputPath != "":
		format = subtitle.GetFormatFromExtension(outputPath)
	default:
		format = subtitle.GetFormatFromExtension(subtitlePath)
	}

	if outputPath == "" {
		outputPath = defaultShiftOutput(subtitlePath, format)
	}

	cues, err := subtitle.ParseFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	if len(cues) == 0 {
		return fmt.Errorf("no playable cues found in %s", subtitlePath)
	}

	shifted := subtitle.Shift(cues, by)

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return fmt.Errorf("failed to create subtitle writer: %w", err)
	}
	if err := writer.Write(shifted, outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Infow("Shifted subtitles",
		"input", subtitlePath,
		"output", outputPath,
		"offset", by.String(),
		"cues", len(shifted),
	)

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles shifted successfully: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(shifted))
	fmt.Printf("  Offset: %s\n", by)

	return nil
}

func defaultShiftOutput(path string, format subtitle.Format) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ".shifted" + subtitle.GetExtensionForFormat(format)
}
