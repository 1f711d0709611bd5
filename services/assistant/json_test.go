package assistant

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"action":"create"}`,
			want:  `{"action":"create"}`,
		},
		{
			name:  "json fence",
			input: "Here you go:\n```json\n{\"action\":\"create\"}\n```\nDone.",
			want:  `{"action":"create"}`,
		},
		{
			name:  "plain fence",
			input: "```\n{\"should_update\":true}\n```",
			want:  `{"should_update":true}`,
		},
		{
			name:  "object inside prose",
			input: `Sure! The result is {"a":{"b":1}} as requested.`,
			want:  `{"a":{"b":1}}`,
		},
		{
			name:  "array inside prose",
			input: `Slots: [1, 2, 3] today.`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "no json at all",
			input: "I could not produce a structured answer.",
			want:  "I could not produce a structured answer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.input); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
