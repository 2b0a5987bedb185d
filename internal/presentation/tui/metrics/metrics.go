// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines    = 3
	FormWidth      = 60
	FormMinWidth   = 30
	MainPaddingX   = 1
	ResultWrapSlop = 4
	RecentMaxLimit = 50
)
