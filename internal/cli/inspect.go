package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/CNOCTAVE/srt-player/internal/subtitle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Show timing statistics for an SRT file",
	Long: `Parse an SRT subtitle file and report timing statistics: cue count,
time span, overlapping cues, out-of-order cues, and the longest silent gap.

Malformed blocks are skipped the same way the player skips them, so the
report reflects exactly what would play.

Examples:
  srt-player inspect movie.srt
  srt-player inspect movie.srt --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		Bool("plain", false, "Print plain text instead of a rendered report")
}

// fileStats summarizes cue timing across a parsed file.
type fileStats struct {
	Count        int
	FirstStart   time.Duration
	LastEnd      time.Duration
	Span         time.Duration // first cue start to last cue end
	TotalVisible time.Duration // sum of individual cue durations
	Overlaps     int           // cues that begin before their predecessor ends
	OutOfOrder   int           // cues that begin before their predecessor begins
	LongestGap   time.Duration
}

func computeStats(cues []subtitle.Cue) fileStats {
	s := fileStats{Count: len(cues)}
	if len(cues) == 0 {
		return s
	}

	s.FirstStart = cues[0].Start
	s.LastEnd = cues[0].End

	for i, c := range cues {
		if c.Start < s.FirstStart {
			s.FirstStart = c.Start
		}
		if c.End > s.LastEnd {
			s.LastEnd = c.End
		}
		s.TotalVisible += c.End - c.Start

		if i == 0 {
			continue
		}
		prev := cues[i-1]
		if c.Start < prev.Start {
			s.OutOfOrder++
		}
		if prev.End > c.Start {
			s.Overlaps++
		}
		if gap := c.Start - prev.End; gap > s.LongestGap {
			s.LongestGap = gap
		}
	}

	s.Span = s.LastEnd - s.FirstStart
	return s
}

func runInspect(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	plain, _ := cmd.Flags().GetBool("plain")

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	cues, err := subtitle.ParseFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	stats := computeStats(cues)

	logger.Infow("Inspected subtitle file",
		"input", subtitlePath,
		"cues", stats.Count,
	)

	if plain {
		fmt.Print(plainReport(subtitlePath, stats))
		return nil
	}

	report := markdownReport(subtitlePath, stats)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Print(plainReport(subtitlePath, stats))
		return nil
	}
	out, err := renderer.Render(report)
	if err != nil {
		fmt.Print(plainReport(subtitlePath, stats))
		return nil
	}

	fmt.Print(out)
	return nil
}

func markdownReport(path string, s fileStats) string {
	var sb strings.Builder

	sb.WriteString("# " + filepath.Base(path) + "\n\n")

	if s.Count == 0 {
		sb.WriteString("No playable cues found.\n")
		return sb.String()
	}

	sb.WriteString("| Stat | Value |\n")
	sb.WriteString("| --- | --- |\n")
	for _, row := range statRows(s) {
		sb.WriteString("| " + row[0] + " | " + row[1] + " |\n")
	}

	return sb.String()
}

func plainReport(path string, s fileStats) string {
	var sb strings.Builder

	sb.WriteString(filepath.Base(path) + "\n")
	if s.Count == 0 {
		sb.WriteString("  No playable cues found.\n")
		return sb.String()
	}
	for _, row := range statRows(s) {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", row[0], row[1]))
	}
	return sb.String()
}

func statRows(s fileStats) [][2]string {
	return [][2]string{
		{"Cues", fmt.Sprintf("%d", s.Count)},
		{"First cue starts", subtitle.FormatTimestamp(s.FirstStart)},
		{"Last cue ends", subtitle.FormatTimestamp(s.LastEnd)},
		{"Span", s.Span.Round(time.Millisecond).String()},
		{"Visible time", s.TotalVisible.Round(time.Millisecond).String()},
		{"Overlapping cues", fmt.Sprintf("%d", s.Overlaps)},
		{"Out-of-order cues", fmt.Sprintf("%d", s.OutOfOrder)},
		{"Longest gap", s.LongestGap.Round(time.Millisecond).String()},
	}
}
