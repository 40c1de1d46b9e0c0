package nerf

import (
	"image"
)

// Expanded makes its kid take a flex share of the space on both axes,
// ignoring what the kid asks for.
type Expanded[E any] struct {
	Kid  Widget[E]
	Flex int
}

var _ Widget[struct{}] = &Expanded[struct{}]{}

// NewExpanded panics if flex is not positive.
func NewExpanded[E any](flex int, kid Widget[E]) *Expanded[E] {
	Flex(flex) // panics on invalid weights
	return &Expanded[E]{Kid: kid, Flex: flex}
}

func (ui *Expanded[E]) Measure() (width, height SizeRequirement) {
	return Flex(ui.Flex), Flex(ui.Flex)
}

func (ui *Expanded[E]) Draw(c Canvas, r image.Rectangle) {
	ui.Kid.Draw(c, r)
}

func (ui *Expanded[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return ui.Kid.HandleEvent(ev, r)
}
