package timeline

import "time"

// Clock supplies the engine's time source. time.Time carries a monotonic
// reading on this platform, so elapsed math is immune to wall clock jumps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
