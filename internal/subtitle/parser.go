package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	lineBreakRegex = regexp.MustCompile(`\r\n|\r|\n`)
	blockGapRegex  = regexp.MustCompile(`\n{2,}`)
	timestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
	)
)

// Parse converts raw SRT text into a cue list ordered as encountered.
//
// Parsing is deliberately lenient: line endings are normalized, every
// line is trimmed, and each block stands on its own. A block without a
// valid timing line is dropped without disturbing its neighbors. Parse
// never fails; input with no usable blocks yields an empty list.
func Parse(raw string) []Cue {
	raw = strings.TrimPrefix(raw, "\ufeff")

	lines := lineBreakRegex.Split(raw, -1)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	blocks := blockGapRegex.Split(strings.Join(lines, "\n"), -1)

	cues := make([]Cue, 0, len(blocks))
	for _, block := range blocks {
		if cue, ok := parseBlock(block); ok {
			cue.Index = len(cues) + 1
			cues = append(cues, cue)
		}
	}
	return cues
}

// ParseFile reads and parses a subtitle file. The only errors are I/O;
// malformed content degrades per Parse.
func ParseFile(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	return Parse(string(data)), nil
}

func parseBlock(block string) (Cue, bool) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return Cue{}, false
	}

	// a leading bare integer is the optional sequence counter
	timeLine := 0
	if _, err := strconv.Atoi(lines[0]); err == nil {
		timeLine = 1
	}

	matches := timestampRegex.FindStringSubmatch(lines[timeLine])
	if len(matches) != 9 {
		return Cue{}, false
	}

	return Cue{
		Start: srtTimestamp(matches[1], matches[2], matches[3], matches[4]),
		End:   srtTimestamp(matches[5], matches[6], matches[7], matches[8]),
		Text:  strings.TrimSpace(strings.Join(lines[timeLine+1:], "\n")),
	}, true
}

// srtTimestamp builds a duration from regex-captured digit groups, so the
// conversions cannot fail.
func srtTimestamp(hours, minutes, seconds, millis string) time.Duration {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond
}
