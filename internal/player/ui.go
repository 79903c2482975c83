package player

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CNOCTAVE/srt-player/internal/subtitle"
	"github.com/CNOCTAVE/srt-player/internal/timeline"
)

const (
	clockRefresh = 100 * time.Millisecond
	seekStep     = 2 * time.Second
	seekStepBig  = 10 * time.Second
)

type (
	// tickMsg refreshes the clock and progress bar.
	tickMsg time.Time

	// cueMsg is posted by the timeline engine when the active cue changes.
	cueMsg struct {
		text string
		cue  subtitle.Cue
	}

	// fileChangedMsg is posted by the watcher after the subtitle file settles.
	fileChangedMsg struct{}

	// reloadedMsg carries the reparsed file back into the update loop.
	reloadedMsg struct {
		cues []subtitle.Cue
		err  error
	}

	watchErrMsg struct{ err error }
)

type model struct {
	path   string
	opts   Options
	events chan tea.Msg

	eng      *timeline.Engine
	total    time.Duration
	cueCount int

	text   string
	cue    subtitle.Cue
	hasCue bool

	bar      progress.Model
	width    int
	status   string
	quitting bool
}

func newModel(path string, cues []subtitle.Cue, opts Options) model {
	events := make(chan tea.Msg, 32)

	eng := buildEngine(cues, opts.TickInterval, events)
	eng.Seek(opts.Offset)

	return model{
		path:     path,
		opts:     opts,
		events:   events,
		eng:      eng,
		total:    totalFor(cues, opts),
		cueCount: len(cues),
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

func totalFor(cues []subtitle.Cue, opts Options) time.Duration {
	if opts.Total > 0 {
		return opts.Total
	}
	return subtitle.TotalDuration(cues)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tickCmd(), m.startCmd())
}

func (m model) startCmd() tea.Cmd {
	return func() tea.Msg {
		m.eng.Play()
		return nil
	}
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(clockRefresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func reloadFile(path string) tea.Cmd {
	return func() tea.Msg {
		cues, err := subtitle.ParseFile(path)
		return reloadedMsg{cues: cues, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 8
		if w < 10 {
			w = 10
		}
		if w > 80 {
			w = 80
		}
		m.bar.Width = w
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd()

	case cueMsg:
		m.text = msg.text
		m.cue = msg.cue
		m.hasCue = true
		return m, waitForEvent(m.events)

	case fileChangedMsg:
		return m, tea.Batch(waitForEvent(m.events), reloadFile(m.path))

	case reloadedMsg:
		return m.applyReload(msg), nil

	case watchErrMsg:
		m.status = errorStyle.Render("watch error: " + msg.err.Error())
		return m, waitForEvent(m.events)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.eng.Destroy()
		return m, tea.Quit

	case " ":
		if m.eng.Playing() {
			m.eng.Pause()
		} else {
			m.eng.Play()
		}

	case "left":
		m.seekBy(-seekStep)
	case "right":
		m.seekBy(seekStep)
	case "shift+left":
		m.seekBy(-seekStepBig)
	case "shift+right":
		m.seekBy(seekStepBig)

	case "r":
		m.eng.Replay()

	case "0":
		m.eng.Seek(0)
	}

	return m, nil
}

func (m model) seekBy(delta time.Duration) {
	target := m.eng.Elapsed() + delta
	if target < 0 {
		target = 0
	}
	m.eng.Seek(target)
}

// applyReload swaps in a fresh engine at the old playback position. The old
// engine is destroyed first so its ticks stop posting stale cues.
func (m model) applyReload(msg reloadedMsg) model {
	if msg.err != nil {
		m.status = errorStyle.Render("reload failed: " + msg.err.Error())
		return m
	}

	elapsed := m.eng.Elapsed()
	wasPlaying := m.eng.Playing()
	m.eng.Destroy()

	m.text = ""
	m.hasCue = false

	m.eng = buildEngine(msg.cues, m.opts.TickInterval, m.events)
	m.eng.Seek(elapsed)
	if wasPlaying {
		m.eng.Play()
	}

	m.total = totalFor(msg.cues, m.opts)
	m.cueCount = len(msg.cues)
	m.status = mutedStyle.Render(
		fmt.Sprintf("reloaded %d cues", len(msg.cues)),
	)
	return m
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93C5FD"))
	cueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(1, 2).Height(4)
	timeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF476F"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	state := "playing"
	if !m.eng.Playing() {
		state = "paused"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(filepath.Base(m.path)))
	b.WriteString(mutedStyle.Render("  [" + state + "]"))
	b.WriteString("\n")

	b.WriteString(cueStyle.Render(m.text))
	b.WriteString("\n")

	elapsed := m.eng.Elapsed()
	if m.total > 0 {
		percent := float64(elapsed) / float64(m.total)
		if percent > 1 {
			percent = 1
		}
		if percent < 0 {
			percent = 0
		}
		b.WriteString("  " + m.bar.ViewAs(percent))
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(timeStyle.Render(subtitle.FormatTimestamp(elapsed)))
	b.WriteString(mutedStyle.Render(" / " + subtitle.FormatTimestamp(m.total)))
	if m.hasCue {
		b.WriteString(mutedStyle.Render(
			fmt.Sprintf("   cue %d/%d", m.cue.Index, m.cueCount),
		))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(
		"  space: pause/resume • ←/→: seek 2s • shift+←/→: seek 10s • r: replay • 0: start • q: quit",
	))
	if m.status != "" {
		b.WriteString("\n  " + m.status)
	}
	b.WriteString("\n")

	return b.String()
}
