package nerf

import (
	"image"
)

// Row places its kids left to right. Width is distributed according to the
// kids' width requirements; every kid gets the full height.
type Row[E any] struct {
	Kids []Widget[E]
}

var _ Widget[struct{}] = &Row[struct{}]{}

func NewRow[E any](kids ...Widget[E]) *Row[E] {
	return &Row[E]{Kids: kids}
}

func (ui *Row[E]) Measure() (width, height SizeRequirement) {
	return linearMeasure(Horizontal, ui.Kids)
}

func (ui *Row[E]) Draw(c Canvas, r image.Rectangle) {
	kidsDraw(ui.Kids, linearRects(Horizontal, ui.Kids, r), c)
}

func (ui *Row[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return kidsEvent(ui.Kids, linearRects(Horizontal, ui.Kids, r), ev)
}
