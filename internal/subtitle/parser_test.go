package subtitle

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	content := `1
00:00:01,500 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
01:02:03,250 --> 01:02:05,000
Final subtitle.
`
	cues := Parse(content)
	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(cues))
	}

	if cues[0].Start != 1500*time.Millisecond {
		t.Errorf("cue 0: expected start 1.5s, got %v", cues[0].Start)
	}
	if cues[0].End != 4*time.Second {
		t.Errorf("cue 0: expected end 4s, got %v", cues[0].End)
	}
	if cues[0].Text != "Hello, world!" {
		t.Errorf("cue 0: expected 'Hello, world!', got %q", cues[0].Text)
	}
	if cues[0].Index != 1 {
		t.Errorf("cue 0: expected index 1, got %d", cues[0].Index)
	}

	expectedText := "This is a test.\nWith multiple lines."
	if cues[1].Text != expectedText {
		t.Errorf("cue 1: expected %q, got %q", expectedText, cues[1].Text)
	}

	wantStart := time.Hour + 2*time.Minute + 3*time.Second + 250*time.Millisecond
	if cues[2].Start != wantStart {
		t.Errorf("cue 2: expected start %v, got %v", wantStart, cues[2].Start)
	}
}

func TestParseWithoutCounterLines(t *testing.T) {
	numbered := `1
00:00:01,000 --> 00:00:02,000
First.

2
00:00:03,000 --> 00:00:04,000
Second.
`
	bare := `00:00:01,000 --> 00:00:02,000
First.

00:00:03,000 --> 00:00:04,000
Second.
`
	withCounters := Parse(numbered)
	withoutCounters := Parse(bare)

	if len(withCounters) != 2 || len(withoutCounters) != 2 {
		t.Fatalf(
			"expected 2 cues each, got %d and %d",
			len(withCounters),
			len(withoutCounters),
		)
	}
	for i := range withCounters {
		if withCounters[i] != withoutCounters[i] {
			t.Errorf(
				"cue %d: counter line changed result: %+v vs %+v",
				i,
				withCounters[i],
				withoutCounters[i],
			)
		}
	}
}

func TestParseLineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "crlf",
			content: "1\r\n00:00:01,000 --> 00:00:02,000\r\nFirst.\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\nSecond.\r\n",
		},
		{
			name:    "cr",
			content: "1\r00:00:01,000 --> 00:00:02,000\rFirst.\r\r2\r00:00:03,000 --> 00:00:04,000\rSecond.\r",
		},
		{
			name:    "mixed",
			content: "1\r\n00:00:01,000 --> 00:00:02,000\nFirst.\r\r\n2\n00:00:03,000 --> 00:00:04,000\r\nSecond.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cues := Parse(tt.content)
			if len(cues) != 2 {
				t.Fatalf("expected 2 cues, got %d", len(cues))
			}
			if cues[0].Text != "First." {
				t.Errorf("cue 0: expected 'First.', got %q", cues[0].Text)
			}
			if cues[1].Start != 3*time.Second {
				t.Errorf("cue 1: expected start 3s, got %v", cues[1].Start)
			}
		})
	}
}

func TestParseSkipsMalformedBlocks(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000
Good.

2
00:00:5,000 --> 00:00:06,000
Bad timestamp, single digit seconds.

not a cue at all

3
00:00:07,000 --> 00:00:08,000
Also good.
`
	cues := Parse(content)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Text != "Good." {
		t.Errorf("cue 0: expected 'Good.', got %q", cues[0].Text)
	}
	if cues[1].Text != "Also good." {
		t.Errorf("cue 1: expected 'Also good.', got %q", cues[1].Text)
	}

	// survivors are renumbered in encounter order
	if cues[0].Index != 1 || cues[1].Index != 2 {
		t.Errorf(
			"expected indexes 1 and 2, got %d and %d",
			cues[0].Index,
			cues[1].Index,
		)
	}
}

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace", content: "  \n\n \t \n"},
		{name: "garbage", content: "this is not\nan srt file\nin any way"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cues := Parse(tt.content)
			if cues == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(cues) != 0 {
				t.Errorf("expected 0 cues, got %d", len(cues))
			}
		})
	}
}

func TestParseKeepsFileOrder(t *testing.T) {
	content := `1
00:00:10,000 --> 00:00:12,000
Later first.

2
00:00:01,000 --> 00:00:03,000
Earlier second.
`
	cues := Parse(content)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Start != 10*time.Second {
		t.Errorf("cue 0: expected start 10s, got %v", cues[0].Start)
	}
	if cues[1].Start != 1*time.Second {
		t.Errorf("cue 1: expected start 1s, got %v", cues[1].Start)
	}
}

func TestParseTimingLineExtras(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000 X1:40 X2:600 Y1:20 Y2:50
Positioned cue.
`
	cues := Parse(content)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].End != 2*time.Second {
		t.Errorf("expected end 2s, got %v", cues[0].End)
	}
	if cues[0].Text != "Positioned cue." {
		t.Errorf("expected 'Positioned cue.', got %q", cues[0].Text)
	}
}

func TestParseBOM(t *testing.T) {
	content := "\ufeff1\n00:00:01,000 --> 00:00:02,000\nAfter BOM.\n"
	cues := Parse(content)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "After BOM." {
		t.Errorf("expected 'After BOM.', got %q", cues[0].Text)
	}
}

func TestParseDropsDotMillisecondTimestamps(t *testing.T) {
	content := "WEBVTT\n\n" +
		"00:00:01.000 --> 00:00:02.000\nDot milliseconds.\n\n" +
		"00:00:03,000 --> 00:00:04,000\nComma milliseconds.\n"
	cues := Parse(content)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Comma milliseconds." {
		t.Errorf("expected the comma-timestamp cue, got %q", cues[0].Text)
	}
}

func TestParseWhitespaceOnlySeparator(t *testing.T) {
	// the whitespace-only line trims to empty during normalization, so it
	// splits the block before the text line
	content := "1\n00:00:01,000 --> 00:00:02,000\n   \nOrphaned text.\n"
	cues := Parse(content)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "" {
		t.Errorf("expected empty text, got %q", cues[0].Text)
	}
}

func TestParseCueWithNoText(t *testing.T) {
	content := `42
00:00:01,000 --> 00:00:02,000

1
00:00:03,000 --> 00:00:04,000
Spoken line.
`
	cues := Parse(content)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Text != "" {
		t.Errorf("cue 0: expected empty text, got %q", cues[0].Text)
	}
	if cues[1].Text != "Spoken line." {
		t.Errorf("cue 1: expected 'Spoken line.', got %q", cues[1].Text)
	}
}

func TestParseFile(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000
From disk.
`
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cues, err := ParseFile(srtPath)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "From disk." {
		t.Errorf("expected 'From disk.', got %q", cues[0].Text)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.srt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
