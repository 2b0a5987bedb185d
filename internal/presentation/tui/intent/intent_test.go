package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/slidegen/internal/application/settings"
	"github.com/tesso57/slidegen/internal/presentation/tui/state"
)

func testKeys() state.KeyMap {
	return state.NewKeyMap(settings.KeyMapConfig{
		NextField: "tab",
		PrevField: "shift+tab",
		Up:        "up,k",
		Down:      "down,j",
		Left:      "left,h",
		Right:     "right,l",
		Toggle:    "space",
		Open:      "enter",
		Submit:    "ctrl+s",
		Back:      "esc",
		Browse:    "o",
		Quit:      "q",
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFromKeyMsg(t *testing.T) {
	keys := testKeys()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "submit", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, want: Submit},
		{name: "next field", msg: tea.KeyMsg{Type: tea.KeyTab}, want: NextField},
		{name: "prev field", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: PrevField},
		{name: "quit", msg: runes("q"), want: Quit},
		{name: "help", msg: runes("?"), want: ToggleHelp},
		{name: "up arrow", msg: tea.KeyMsg{Type: tea.KeyUp}, want: Up},
		{name: "down vim", msg: runes("j"), want: Down},
		{name: "left", msg: runes("h"), want: Left},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, want: Right},
		{name: "toggle", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: Toggle},
		{name: "open", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Open},
		{name: "back", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Back},
		{name: "browse", msg: runes("o"), want: Browse},
		{name: "unbound", msg: runes("x"), want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys).Type; got != tt.want {
				t.Fatalf("FromKeyMsg(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestFromTextKeyMsg(t *testing.T) {
	keys := testKeys()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "letters stay in the field", msg: runes("q"), want: None},
		{name: "question mark stays in the field", msg: runes("?"), want: None},
		{name: "space stays in the field", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: None},
		{name: "arrows stay in the field", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: None},
		{name: "tab leaves the field", msg: tea.KeyMsg{Type: tea.KeyTab}, want: NextField},
		{name: "enter submits", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Open},
		{name: "ctrl+s submits", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, want: Submit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTextKeyMsg(tt.msg, keys).Type; got != tt.want {
				t.Fatalf("FromTextKeyMsg(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
