package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "bold and list",
			input:    "**Snorkel gear**\n\n- Mask\n- Fins",
			contains: []string{"<strong>Snorkel gear</strong>", "<li>Mask</li>", "<li>Fins</li>"},
		},
		{
			name:     "hard wraps",
			input:    "line one\nline two",
			contains: []string{"<br"},
		},
		{
			name:   "raw html is not passed through",
			input:  "<script>alert(1)</script>",
			absent: []string{"<script>"},
		},
		{
			name:     "empty",
			input:    "",
			contains: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHTML(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.absent {
				if strings.Contains(got, bad) {
					t.Errorf("ToHTML(%q) = %q, must not contain %q", tt.input, got, bad)
				}
			}
		})
	}
}
