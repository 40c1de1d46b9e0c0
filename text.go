package nerf

import (
	"image"
)

// Text draws a single line of text in its rect. It takes whatever space it is
// given; wrap it in a SizedBox for a fixed size.
//
// Text is meant to be held by the widget that changes it, through SetText.
type Text[E any] struct {
	Style TextStyle

	text string
}

var _ Widget[struct{}] = &Text[struct{}]{}

func NewText[E any](text string, style TextStyle) *Text[E] {
	return &Text[E]{Style: style, text: text}
}

func (ui *Text[E]) Text() string {
	return ui.text
}

// SetText replaces the text. The caller should request a redraw.
func (ui *Text[E]) SetText(text string) {
	ui.text = text
}

func (ui *Text[E]) Measure() (width, height SizeRequirement) {
	return Flex(1), Flex(1)
}

func (ui *Text[E]) Draw(c Canvas, r image.Rectangle) {
	if ui.text == "" {
		return
	}
	c.DrawText(ui.text, r, ui.Style)
}

func (ui *Text[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return Response{}
}
