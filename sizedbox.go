package nerf

import (
	"fmt"
	"image"
)

// SizedBox gives its kid a fixed width, height or both. Its size is not
// guaranteed: when the parent has less room, the kid is clamped to what is
// available.
type SizedBox[E any] struct {
	Kid Widget[E]

	width, height int // 0 leaves the axis to the kid
}

var _ Widget[struct{}] = &SizedBox[struct{}]{}

// NewSizedBox fixes both width and height. It panics unless both are positive.
func NewSizedBox[E any](width, height int, kid Widget[E]) *SizedBox[E] {
	checkSize("width", width)
	checkSize("height", height)
	return &SizedBox[E]{Kid: kid, width: width, height: height}
}

// SizedWidth fixes the width only.
func SizedWidth[E any](width int, kid Widget[E]) *SizedBox[E] {
	checkSize("width", width)
	return &SizedBox[E]{Kid: kid, width: width}
}

// SizedHeight fixes the height only.
func SizedHeight[E any](height int, kid Widget[E]) *SizedBox[E] {
	checkSize("height", height)
	return &SizedBox[E]{Kid: kid, height: height}
}

func checkSize(what string, n int) {
	if n <= 0 {
		panic(fmt.Sprintf("nerf: sized box %s must be positive, got %d", what, n))
	}
}

func (ui *SizedBox[E]) Measure() (width, height SizeRequirement) {
	if ui.width == 0 || ui.height == 0 {
		width, height = ui.Kid.Measure()
	}
	if ui.width > 0 {
		width = Fixed(ui.width)
	}
	if ui.height > 0 {
		height = Fixed(ui.height)
	}
	return
}

func (ui *SizedBox[E]) kidRect(r image.Rectangle) image.Rectangle {
	size := r.Size()
	if ui.width > 0 {
		if ui.width > size.X {
			logger.Debug("sized box short on width", "want", ui.width, "available", size.X)
		}
		size.X = min(size.X, ui.width)
	}
	if ui.height > 0 {
		if ui.height > size.Y {
			logger.Debug("sized box short on height", "want", ui.height, "available", size.Y)
		}
		size.Y = min(size.Y, ui.height)
	}
	return rect(size).Add(r.Min)
}

func (ui *SizedBox[E]) Draw(c Canvas, r image.Rectangle) {
	drawKid(ui.Kid, c, ui.kidRect(r))
}

func (ui *SizedBox[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return eventKid(ui.Kid, ev, ui.kidRect(r))
}
