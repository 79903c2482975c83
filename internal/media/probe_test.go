package media

import (
	"os"
	"testing"
	"time"
)

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "valid",
			data: `{"format": {"duration": "4213.527000"}}`,
			want: time.Duration(4213.527 * float64(time.Second)),
		},
		{
			name: "integer seconds",
			data: `{"format": {"duration": "90"}}`,
			want: 90 * time.Second,
		},
		{
			name:    "missing duration",
			data:    `{"format": {}}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			data:    `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbeDuration(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDurationMissingFile(t *testing.T) {
	_, err := Duration("/nonexistent/clip.mkv")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

// integration test; point SRT_PLAYER_TEST_MEDIA at a real media file
func TestDuration(t *testing.T) {
	path := os.Getenv("SRT_PLAYER_TEST_MEDIA")
	if path == "" {
		t.Skip("SRT_PLAYER_TEST_MEDIA not set, skipping integration test")
	}

	d, err := Duration(path)
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if d <= 0 {
		t.Errorf("expected positive duration, got %v", d)
	}
}
