package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/tartampluch/go-age/internal/animate"
)

// textField adapts a canvas.Text counter to animate.Field.
// Writes are marshalled onto the UI goroutine.
type textField struct {
	text *canvas.Text
}

func newTextField(t *canvas.Text) animate.Field {
	if t == nil {
		return nil
	}
	return &textField{text: t}
}

func (f *textField) Text() string {
	return f.text.Text
}

func (f *textField) SetText(text string) {
	fyne.Do(func() {
		f.text.Text = text
		f.text.Refresh()
	})
}
