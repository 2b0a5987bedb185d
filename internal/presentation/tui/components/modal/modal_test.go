package modal

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		props     Props
		wantParts []string
		wantVis   bool
	}{
		{
			name:  "Hidden",
			props: Props{Visible: false},
		},
		{
			name: "Help Modal",
			props: Props{
				Visible: true,
				Kind:    Help,
				Body:    "HELP INFO",
				Width:   100,
				Height:  50,
			},
			wantParts: []string{"HELP INFO"},
			wantVis:   true,
		},
		{
			name: "Quit Modal",
			props: Props{
				Visible: true,
				Kind:    Quit,
				Title:   "Quit?",
				Body:    "(y/n)",
				Accent:  "208",
				Width:   100,
				Height:  50,
			},
			wantParts: []string{"Quit?", "(y/n)"},
			wantVis:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !tt.wantVis {
				if got != "" {
					t.Errorf("Render() = %q, want empty", got)
				}
				return
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Render() missing %q", part)
				}
			}
			if strings.Index(got, tt.wantParts[0]) > strings.Index(got, tt.wantParts[len(tt.wantParts)-1]) {
				t.Error("title should precede body")
			}
		})
	}
}
