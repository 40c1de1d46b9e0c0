package nerf

import (
	"image"
)

// EmptyBehavior is how much space an Empty takes.
type EmptyBehavior uint8

const (
	Shrink = EmptyBehavior(iota) // No space.
	Expand                       // All the space it can get, Flex(1) on both axes.
)

// Empty draws nothing and ignores events. Use it as a placeholder or spacer.
type Empty[E any] struct {
	Behavior EmptyBehavior
}

var _ Widget[struct{}] = &Empty[struct{}]{}

func NewEmpty[E any](behavior EmptyBehavior) *Empty[E] {
	return &Empty[E]{Behavior: behavior}
}

func (ui *Empty[E]) Measure() (width, height SizeRequirement) {
	if ui.Behavior == Expand {
		return Flex(1), Flex(1)
	}
	return None, None
}

func (ui *Empty[E]) Draw(c Canvas, r image.Rectangle) {}

func (ui *Empty[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return Response{}
}
