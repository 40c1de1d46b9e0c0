package nerf

import (
	"image"
)

// Column places its kids top to bottom, the transpose of Row.
type Column[E any] struct {
	Kids []Widget[E]
}

var _ Widget[struct{}] = &Column[struct{}]{}

func NewColumn[E any](kids ...Widget[E]) *Column[E] {
	return &Column[E]{Kids: kids}
}

func (ui *Column[E]) Measure() (width, height SizeRequirement) {
	return linearMeasure(Vertical, ui.Kids)
}

func (ui *Column[E]) Draw(c Canvas, r image.Rectangle) {
	kidsDraw(ui.Kids, linearRects(Vertical, ui.Kids, r), c)
}

func (ui *Column[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return kidsEvent(ui.Kids, linearRects(Vertical, ui.Kids, r), ev)
}
