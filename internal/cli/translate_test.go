package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranslateInputValidation(t *testing.T) {
	dir := t.TempDir()
	srtPath := filepath.Join(dir, "movie.srt")
	vttPath := filepath.Join(dir, "movie.vtt")
	content := "1\n00:00:01,000 --> 00:00:02,000\nHello.\n"
	for _, p := range []string{srtPath, vttPath} {
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "vtt input", path: vttPath, wantErr: "use .srt"},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.srt"),
			wantErr: "not found",
		},
		{
			name:    "srt clears the format check",
			path:    srtPath,
			wantErr: "target language is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runTranslate(translateCmd, []string{tt.path})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
