package nerf

import (
	"fmt"
	"image"
)

// Space is padding on each side of a rect, in pixels.
type Space struct {
	Top, Right, Bottom, Left int
}

// SpaceAll is the same padding on every side.
func SpaceAll(n int) Space {
	return Space{n, n, n, n}
}

// SpaceXY is x padding left and right, y padding top and bottom.
func SpaceXY(x, y int) Space {
	return Space{y, x, y, x}
}

// Dx is the total horizontal padding.
func (s Space) Dx() int {
	return s.Left + s.Right
}

// Dy is the total vertical padding.
func (s Space) Dy() int {
	return s.Top + s.Bottom
}

// Inset shrinks r by the padding. The result is empty when the padding does not fit.
func (s Space) Inset(r image.Rectangle) image.Rectangle {
	// Not image.Rect: it would swap the corners of a padding that does not fit.
	return image.Rectangle{
		Min: image.Pt(r.Min.X+s.Left, r.Min.Y+s.Top),
		Max: image.Pt(r.Max.X-s.Right, r.Max.Y-s.Bottom),
	}
}

// Padder keeps Padding free around its kid.
type Padder[E any] struct {
	Kid     Widget[E]
	Padding Space
}

var _ Widget[struct{}] = &Padder[struct{}]{}

// NewPadder returns a Padder around kid. It panics on negative padding.
func NewPadder[E any](padding Space, kid Widget[E]) *Padder[E] {
	if padding.Top < 0 || padding.Right < 0 || padding.Bottom < 0 || padding.Left < 0 {
		panic(fmt.Sprintf("nerf: negative padding %+v", padding))
	}
	return &Padder[E]{Kid: kid, Padding: padding}
}

func (ui *Padder[E]) Measure() (width, height SizeRequirement) {
	width, height = ui.Kid.Measure()
	return width.Add(ui.Padding.Dx()), height.Add(ui.Padding.Dy())
}

// Draw skips the kid for this frame when the padding leaves no room.
func (ui *Padder[E]) Draw(c Canvas, r image.Rectangle) {
	drawKid(ui.Kid, c, ui.Padding.Inset(r))
}

func (ui *Padder[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return eventKid(ui.Kid, ev, ui.Padding.Inset(r))
}
