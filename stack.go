package nerf

import (
	"image"
)

// Stack draws its kids on top of each other, each in the full rect. The
// first kid is at the bottom.
type Stack[E any] struct {
	Kids []Widget[E]
}

var _ Widget[struct{}] = &Stack[struct{}]{}

func NewStack[E any](kids ...Widget[E]) *Stack[E] {
	return &Stack[E]{Kids: kids}
}

func (ui *Stack[E]) Measure() (width, height SizeRequirement) {
	widths, heights := kidsMeasure(ui.Kids)
	return BesideAll(widths...), BesideAll(heights...)
}

func (ui *Stack[E]) rects(r image.Rectangle) []image.Rectangle {
	rects := make([]image.Rectangle, len(ui.Kids))
	for i := range rects {
		rects[i] = r
	}
	return rects
}

func (ui *Stack[E]) Draw(c Canvas, r image.Rectangle) {
	kidsDraw(ui.Kids, ui.rects(r), c)
}

func (ui *Stack[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return kidsEvent(ui.Kids, ui.rects(r), ev)
}
