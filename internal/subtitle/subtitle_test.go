package subtitle

import (
	"testing"
	"time"
)

func TestShift(t *testing.T) {
	cues := []Cue{
		{Index: 1, Start: 1 * time.Second, End: 2 * time.Second, Text: "One."},
		{Index: 2, Start: 5 * time.Second, End: 7 * time.Second, Text: "Two."},
	}

	shifted := Shift(cues, 1500*time.Millisecond)
	if shifted[0].Start != 2500*time.Millisecond {
		t.Errorf("expected 2.5s, got %v", shifted[0].Start)
	}
	if shifted[1].End != 8500*time.Millisecond {
		t.Errorf("expected 8.5s, got %v", shifted[1].End)
	}

	// original list untouched
	if cues[0].Start != 1*time.Second {
		t.Errorf("original mutated: %v", cues[0].Start)
	}

	back := Shift(shifted, -1500*time.Millisecond)
	for i := range back {
		if back[i] != cues[i] {
			t.Errorf("cue %d: round trip mismatch: %+v vs %+v", i, back[i], cues[i])
		}
	}
}

func TestTotalDuration(t *testing.T) {
	if TotalDuration(nil) != 0 {
		t.Error("expected 0 for empty list")
	}

	cues := []Cue{
		{Start: 1 * time.Second, End: 2 * time.Second},
		{Start: 5 * time.Second, End: 42 * time.Second},
	}
	if TotalDuration(cues) != 42*time.Second {
		t.Errorf("expected 42s, got %v", TotalDuration(cues))
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "00:00"},
		{d: 59 * time.Second, want: "00:59"},
		{d: 61 * time.Second, want: "01:01"},
		{d: 59*time.Minute + 59*time.Second, want: "59:59"},
		{d: time.Hour, want: "1:00:00"},
		{d: time.Hour + 2*time.Minute + 3*time.Second, want: "1:02:03"},
		{d: -5 * time.Second, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimestamp(tt.d); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
