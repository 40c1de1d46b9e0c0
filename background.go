package nerf

import (
	"image"
	"image/color"
)

// Background fills its rect with a color, then draws its kid on top.
type Background[E any] struct {
	Kid Widget[E]

	color color.Color
}

var _ Widget[struct{}] = &Background[struct{}]{}

func NewBackground[E any](c color.Color, kid Widget[E]) *Background[E] {
	return &Background[E]{Kid: kid, color: c}
}

func (ui *Background[E]) Color() color.Color {
	return ui.color
}

// SetColor changes the fill. A nil color draws only the kid.
func (ui *Background[E]) SetColor(c color.Color) {
	ui.color = c
}

func (ui *Background[E]) Measure() (width, height SizeRequirement) {
	return ui.Kid.Measure()
}

func (ui *Background[E]) Draw(c Canvas, r image.Rectangle) {
	if ui.color != nil {
		c.FillRect(r, ui.color)
	}
	ui.Kid.Draw(c, r)
}

func (ui *Background[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return ui.Kid.HandleEvent(ev, r)
}
