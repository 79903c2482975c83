package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CNOCTAVE/srt-player/internal/media"
	"github.com/CNOCTAVE/srt-player/internal/player"
)

var playCmd = &cobra.Command{
	Use:   "play [subtitle_file]",
	Short: "Play an SRT file in the terminal",
	Long: `Play an SRT subtitle file in the terminal, timed against a wall clock.

Cues appear and disappear at their timestamps, the way they would over
video. With --media the progress bar is scaled to the media file's real
duration instead of the last cue's end time. With --watch the file is
reloaded whenever it changes on disk, keeping the playback position.

Keys:
  space          pause/resume
  left/right     seek 2 seconds
  shift+arrows   seek 10 seconds
  r              replay (resume from current position)
  0              jump to the start
  q              quit

Examples:
  srt-player play movie.srt
  srt-player play movie.srt --offset 12m30s
  srt-player play movie.srt --media movie.mkv
  srt-player play draft.srt --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().
		Duration("offset", 0, "Position to start playback from (e.g. 90s, 12m30s)")
	playCmd.Flags().
		StringP("media", "m", "", "Media file to take the timeline length from")
	playCmd.Flags().
		Duration("duration", 0, "Timeline length override (defaults to the last cue end)")
	playCmd.Flags().
		BoolP("watch", "w", false, "Reload the subtitle file when it changes on disk")
	playCmd.Flags().
		Duration("tick", 0, "Cue resolution interval (defaults to 16ms)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	offset, _ := cmd.Flags().GetDuration("offset")
	mediaPath, _ := cmd.Flags().GetString("media")
	total, _ := cmd.Flags().GetDuration("duration")
	watch, _ := cmd.Flags().GetBool("watch")
	tick, _ := cmd.Flags().GetDuration("tick")

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}
	if ext := strings.ToLower(filepath.Ext(subtitlePath)); ext != ".srt" {
		return fmt.Errorf("unsupported subtitle format %q: use .srt", ext)
	}
	if offset < 0 {
		return fmt.Errorf("offset must not be negative, got %s", offset)
	}
	if tick < 0 {
		return fmt.Errorf("tick must not be negative, got %s", tick)
	}

	if mediaPath != "" {
		probed, err := media.Duration(mediaPath)
		if err != nil {
			return fmt.Errorf("failed to probe media duration: %w", err)
		}
		total = probed
	}

	logger.Infow("Starting playback",
		"input", subtitlePath,
		"offset", offset.String(),
		"watch", watch,
	)

	return player.Run(subtitlePath, player.Options{
		Offset:       offset,
		Total:        total,
		Watch:        watch,
		TickInterval: tick,
	})
}
