package subtitle

import (
	"fmt"
	"time"
)

// single timed text cue
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// represents supported output formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// interface for writing cue lists to files
type Writer interface {
	Write(cues []Cue, path string) error
}

// TotalDuration reports the end time of the last cue in parse order, or
// zero for an empty list.
func TotalDuration(cues []Cue) time.Duration {
	if len(cues) == 0 {
		return 0
	}
	return cues[len(cues)-1].End
}

// Shift returns a copy of cues with every start and end moved by offset.
// Results may go negative; writers clamp negative times to zero.
func Shift(cues []Cue, offset time.Duration) []Cue {
	shifted := make([]Cue, len(cues))
	for i, c := range cues {
		c.Start += offset
		c.End += offset
		shifted[i] = c
	}
	return shifted
}

// FormatTimestamp renders a duration as a playback clock, mm:ss under an
// hour and h:mm:ss from there on.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
