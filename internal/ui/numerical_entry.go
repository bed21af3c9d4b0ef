package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits, up to MaxLength runes.
type NumericalEntry struct {
	widget.Entry

	// MaxLength caps typed input; 0 means unlimited.
	MaxLength int
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune filters keystrokes: digits only, and nothing past MaxLength
// unless a selection is being replaced.
// Pasted text bypasses this filter; the date builder rejects it later.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if e.MaxLength > 0 && len([]rune(e.Text)) >= e.MaxLength && e.SelectedText() == "" {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
