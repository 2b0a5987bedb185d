package textutil

import "testing"

func TestSingleLine(t *testing.T) {
	tests := map[string]string{
		"":                              "",
		"plain":                         "plain",
		"  Artificial\n\tIntelligence ": "Artificial Intelligence",
	}
	for in, want := range tests {
		if got := SingleLine(in); got != want {
			t.Errorf("SingleLine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "short", width: 10, want: "short"},
		{text: "Artificial Intelligence", width: 10, want: "Artificia…"},
		{text: "anything", width: 0, want: ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.text, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
