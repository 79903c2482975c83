// Package player renders subtitles in the terminal, timed against the
// wall clock, with keyboard transport controls.
package player

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CNOCTAVE/srt-player/internal/subtitle"
	"github.com/CNOCTAVE/srt-player/internal/timeline"
)

type Options struct {
	Offset       time.Duration // playback position to start from
	Total        time.Duration // timeline length; 0 means last cue end
	Watch        bool          // reload the subtitle file when it changes
	TickInterval time.Duration // 0 means timeline.DefaultTickInterval
}

// Run plays the subtitle file until the user quits.
func Run(path string, opts Options) error {
	cues, err := subtitle.ParseFile(path)
	if err != nil {
		return err
	}

	m := newModel(path, cues, opts)

	if opts.Watch {
		w, werr := watchFile(path, m.events)
		if werr != nil {
			return fmt.Errorf("failed to watch %s: %w", path, werr)
		}
		defer w.Close()
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run player: %w", err)
	}
	if fm, ok := final.(model); ok && fm.eng != nil {
		fm.eng.Destroy()
	}
	return nil
}

// buildEngine wires a timeline engine to the UI event channel. Cue changes
// arrive as messages so the view updates the moment a cue goes live rather
// than on the next clock refresh.
func buildEngine(
	cues []subtitle.Cue,
	interval time.Duration,
	events chan<- tea.Msg,
) *timeline.Engine {
	return timeline.New(cues, timeline.Config{
		TickInterval: interval,
		OnCueChange: func(text string, cue subtitle.Cue) {
			select {
			case events <- cueMsg{text: text, cue: cue}:
			default:
			}
		},
	})
}
