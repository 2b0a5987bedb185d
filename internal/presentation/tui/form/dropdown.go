package form

// MenuState is the open/closed state of a dropdown.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

// Option is anything a dropdown can list.
type Option interface {
	Name() string
	Icon() string
}

// Dropdown holds one selected option out of a fixed list.
// The list is never empty, so exactly one option is always selected.
type Dropdown[T Option] struct {
	options  []T
	selected int
	cursor   int
	state    MenuState
}

// NewDropdown selects the first option and starts closed.
func NewDropdown[T Option](options []T) Dropdown[T] {
	if len(options) == 0 {
		panic("form: dropdown needs at least one option")
	}
	return Dropdown[T]{options: append([]T(nil), options...)}
}

// Options returns the listed options.
func (d *Dropdown[T]) Options() []T {
	return append([]T(nil), d.options...)
}

// Selected returns the chosen option.
func (d *Dropdown[T]) Selected() T {
	return d.options[d.selected]
}

// SelectedIndex returns the position of the chosen option.
func (d *Dropdown[T]) SelectedIndex() int {
	return d.selected
}

// Cursor returns the highlighted position while the menu is open.
func (d *Dropdown[T]) Cursor() int {
	return d.cursor
}

// State returns whether the menu is open.
func (d *Dropdown[T]) State() MenuState {
	return d.state
}

// IsOpen reports whether the menu is open.
func (d *Dropdown[T]) IsOpen() bool {
	return d.state == MenuOpen
}

// Toggle opens a closed menu and closes an open one.
// Opening highlights the current selection.
func (d *Dropdown[T]) Toggle() {
	if d.state == MenuOpen {
		d.state = MenuClosed
		return
	}
	d.state = MenuOpen
	d.cursor = d.selected
}

// Close closes the menu without changing the selection.
func (d *Dropdown[T]) Close() {
	d.state = MenuClosed
}

// Next moves the highlight down, wrapping around.
func (d *Dropdown[T]) Next() {
	d.cursor = (d.cursor + 1) % len(d.options)
}

// Prev moves the highlight up, wrapping around.
func (d *Dropdown[T]) Prev() {
	d.cursor = (d.cursor - 1 + len(d.options)) % len(d.options)
}

// Choose selects the highlighted option and closes the menu.
func (d *Dropdown[T]) Choose() {
	d.Select(d.cursor)
}

// Select chooses the option at index and closes the menu, whatever its prior state.
// Out of range indexes keep the current selection.
func (d *Dropdown[T]) Select(index int) bool {
	d.state = MenuClosed
	if index < 0 || index >= len(d.options) {
		return false
	}
	d.selected = index
	d.cursor = index
	return true
}
