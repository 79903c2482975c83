package timeline

import (
	"sync"
	"time"

	"github.com/CNOCTAVE/srt-player/internal/subtitle"
)

// resolution pass spacing while playing, roughly one display refresh
const DefaultTickInterval = 16 * time.Millisecond

// Config carries the collaborators an Engine is built with. Zero values
// select the system clock, the timer scheduler, and DefaultTickInterval.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Scheduler    Scheduler

	// OnCueChange fires when playback crosses into a different cue. It
	// runs outside the engine lock, on the goroutine that detected the
	// change, so it may call back into the engine.
	OnCueChange func(text string, cue subtitle.Cue)
}

// Engine resolves a fixed cue list against a logical playback clock. The
// cue list is captured at construction and kept in file order; lookups
// scan that order and never reorder it. Engines are safe for concurrent
// use; ticks arrive on scheduler goroutines.
type Engine struct {
	mu       sync.Mutex
	cues     []subtitle.Cue
	interval time.Duration
	clock    Clock
	sched    Scheduler
	onChange func(text string, cue subtitle.Cue)

	playing   bool
	origin    time.Time     // clock origin; recomputed on play/resume/seek
	paused    time.Duration // frozen elapsed, meaningful once hasPaused
	hasPaused bool
	gen       uint64 // tick loop generation; stale ticks abandon
	cancel    func() // cancels the pending tick, nil when none
	current   int    // last resolved cue position, -1 for none
	destroyed bool
}

func New(cues []subtitle.Cue, cfg Config) *Engine {
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}
	sched := cfg.Scheduler
	if sched == nil {
		sched = timerScheduler{}
	}

	return &Engine{
		cues:     append([]subtitle.Cue(nil), cues...),
		interval: interval,
		clock:    clock,
		sched:    sched,
		onChange: cfg.OnCueChange,
		current:  -1,
	}
}

// Play starts the clock and the resolution loop. A fresh engine starts at
// zero; after a pause or a paused seek the clock continues from the
// recorded elapsed time. No-op while already playing.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.playLocked()
}

// Pause freezes the clock at the current elapsed time and stops the loop.
// No-op unless playing.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.pauseLocked()
}

// Resume continues from the elapsed time recorded by a pause or a paused
// seek. Without one, or while playing, it does nothing.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed || e.playing || !e.hasPaused {
		return
	}
	e.playLocked()
}

// Replay pauses and immediately plays again: the clock keeps its elapsed
// time and the loop restarts. Restarting from the beginning is Seek(0).
func (e *Engine) Replay() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.pauseLocked()
	e.playLocked()
}

// Seek jumps the clock to offset and resolves the active cue once, right
// away. While playing the pending tick is replaced and the loop carries
// on; while paused the frozen elapsed moves to offset and no loop starts.
func (e *Engine) Seek(offset time.Duration) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.stopTickLocked()
	e.origin = e.clock.Now().Add(-offset)
	if !e.playing {
		e.paused = offset
		e.hasPaused = true
	}
	fire, text, cue := e.resolveLocked(offset)
	if e.playing {
		e.scheduleTickLocked()
	}
	e.mu.Unlock()

	if fire {
		e.onChange(text, cue)
	}
}

// SeekSeconds is Seek with the offset given in fractional seconds.
func (e *Engine) SeekSeconds(seconds float64) {
	e.Seek(time.Duration(seconds * float64(time.Second)))
}

// Destroy cancels the loop and releases the cue list. Every later call on
// the engine is a no-op.
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.stopTickLocked()
	e.gen++
	e.playing = false
	e.cues = nil
	e.current = -1
	e.destroyed = true
}

// Elapsed reports the current playback position.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.playing {
		return e.clock.Now().Sub(e.origin)
	}
	return e.paused
}

// Playing reports whether the clock is running.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// Destroyed reports whether Destroy has run.
func (e *Engine) Destroyed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.destroyed
}

// Current returns the most recently resolved cue, if any.
func (e *Engine) Current() (subtitle.Cue, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current < 0 || e.current >= len(e.cues) {
		return subtitle.Cue{}, false
	}
	return e.cues[e.current], true
}

// Cues returns a copy of the engine's cue list.
func (e *Engine) Cues() []subtitle.Cue {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]subtitle.Cue(nil), e.cues...)
}

func (e *Engine) playLocked() {
	if e.playing {
		return
	}
	e.origin = e.clock.Now().Add(-e.paused)
	e.playing = true
	e.scheduleTickLocked()
}

func (e *Engine) pauseLocked() {
	if !e.playing {
		return
	}
	e.paused = e.clock.Now().Sub(e.origin)
	e.hasPaused = true
	e.playing = false
	e.stopTickLocked()
}

func (e *Engine) scheduleTickLocked() {
	e.gen++
	gen := e.gen
	e.cancel = e.sched.Schedule(e.interval, func() { e.tick(gen) })
}

func (e *Engine) stopTickLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// tick runs one resolution pass and books the next. A tick whose
// generation no longer matches lost a race with pause, seek, or destroy
// and must not reschedule.
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if e.destroyed || !e.playing || gen != e.gen {
		e.mu.Unlock()
		return
	}
	elapsed := e.clock.Now().Sub(e.origin)
	fire, text, cue := e.resolveLocked(elapsed)
	e.scheduleTickLocked()
	e.mu.Unlock()

	if fire {
		e.onChange(text, cue)
	}
}

// resolveLocked records the cue active at elapsed and reports whether the
// change callback should fire. Crossing into "no cue" updates the record
// silently; only a real new cue is announced.
func (e *Engine) resolveLocked(elapsed time.Duration) (bool, string, subtitle.Cue) {
	idx := resolveCue(e.cues, elapsed)
	if idx == e.current {
		return false, "", subtitle.Cue{}
	}
	e.current = idx
	if idx < 0 || e.onChange == nil {
		return false, "", subtitle.Cue{}
	}
	cue := e.cues[idx]
	return true, cue.Text, cue
}

// resolveCue scans in list order for the cue active at elapsed: the cue
// just before the first whose start exceeds elapsed. When no start
// exceeds elapsed the last cue is active; -1 means none.
func resolveCue(cues []subtitle.Cue, elapsed time.Duration) int {
	for i, c := range cues {
		if c.Start > elapsed {
			return i - 1
		}
	}
	return len(cues) - 1
}
