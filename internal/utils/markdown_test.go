package utils

import (
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "vazio",
			input:    "",
			expected: "",
		},
		{
			name:     "texto puro",
			input:    "Final score",
			expected: "Final score",
		},
		{
			name:     "code span",
			input:    "normalize using `min_max` and then `sum`",
			expected: "normalize using min_max and then sum",
		},
		{
			name:     "negrito",
			input:    "**Final score** -> normalize",
			expected: "Final score -> normalize",
		},
		{
			name:     "lista",
			input:    "Parâmetros:\n\n- `min_score`: 1\n- `max_score`: 4\n",
			expected: "Parâmetros:\n- min_score: 1\n- max_score: 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("StripMarkdown(%q) = %q; expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
