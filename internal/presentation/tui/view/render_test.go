package view

import (
	"strings"
	"testing"

	"github.com/tesso57/slidegen/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/slidegen/internal/presentation/tui/components/main"
	"github.com/tesso57/slidegen/internal/presentation/tui/components/modal"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		props     Props
		wantParts []string
		notParts  []string
	}{
		{
			name: "Modal Overlay",
			props: Props{
				Header: header.Props{Visible: true},
				Main:   mainview.Props{Body: "FORM_BODY"},
				Modal: modal.Props{
					Visible: true,
					Kind:    modal.Help,
					Body:    "HELP_CONTENT",
					Width:   100,
					Height:  50,
				},
			},
			wantParts: []string{"HELP_CONTENT"},
			notParts:  []string{"FORM_BODY"},
		},
		{
			name: "Standard Layout",
			props: Props{
				Header: header.Props{Visible: true, Width: 80},
				Main:   mainview.Props{Width: 80, Height: 20, Body: "FORM_BODY"},
				Footer: "FOOTER_CONTENT",
			},
			wantParts: []string{header.Title, "FORM_BODY", "FOOTER_CONTENT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Render() missing %q", part)
				}
			}
			for _, part := range tt.notParts {
				if strings.Contains(got, part) {
					t.Errorf("Render() should not contain %q", part)
				}
			}
		})
	}
}
