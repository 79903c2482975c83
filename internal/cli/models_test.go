package cli

import "testing"

func TestIsValidGeminiModel(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"gemini-2.5-flash", true},
		{"gemini-2.5-pro", true},
		{"gemini-3-pro-preview", true},
		{"gemini-1.5-flash", false},
		{"gpt-5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := isValidGeminiModel(tt.model); got != tt.want {
				t.Errorf(
					"isValidGeminiModel(%q) = %v, want %v",
					tt.model,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestIsValidOpenAIModel(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"gpt-5-mini", true},
		{"o3", true},
		{"gpt-5.2-pro", true},
		{"gpt-4o", false},
		{"gemini-2.5-flash", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := isValidOpenAIModel(tt.model); got != tt.want {
				t.Errorf(
					"isValidOpenAIModel(%q) = %v, want %v",
					tt.model,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestIsValidAnthropicModel(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"claude-haiku-4-5", true},
		{"claude-sonnet-4-5", true},
		{"claude-2", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := isValidAnthropicModel(tt.model); got != tt.want {
				t.Errorf(
					"isValidAnthropicModel(%q) = %v, want %v",
					tt.model,
					got,
					tt.want,
				)
			}
		})
	}
}
