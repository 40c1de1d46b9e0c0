package nerf

import (
	"fmt"
	"image"
)

// Alignment places a smaller kid in a larger rect. X and Y are the fraction
// of the leftover space put before the kid, from 0 (left, top) to 1 (right, bottom).
type Alignment struct {
	X, Y float64
}

var (
	AlignTopLeft     = Alignment{0, 0}
	AlignTop         = Alignment{0.5, 0}
	AlignTopRight    = Alignment{1, 0}
	AlignLeft        = Alignment{0, 0.5}
	AlignCenter      = Alignment{0.5, 0.5}
	AlignRight       = Alignment{1, 0.5}
	AlignBottomLeft  = Alignment{0, 1}
	AlignBottom      = Alignment{0.5, 1}
	AlignBottomRight = Alignment{1, 1}
)

// Align lays out its kid at the size it wants, and positions it in the
// remaining space according to Alignment. It takes the same space as its kid.
type Align[E any] struct {
	Kid       Widget[E]
	Alignment Alignment
}

var _ Widget[struct{}] = &Align[struct{}]{}

// NewAlign panics if an alignment fraction is outside [0, 1].
func NewAlign[E any](alignment Alignment, kid Widget[E]) *Align[E] {
	if alignment.X < 0 || alignment.X > 1 || alignment.Y < 0 || alignment.Y > 1 {
		panic(fmt.Sprintf("nerf: alignment %+v outside [0, 1]", alignment))
	}
	return &Align[E]{Kid: kid, Alignment: alignment}
}

func (ui *Align[E]) Measure() (width, height SizeRequirement) {
	return ui.Kid.Measure()
}

// fit returns the extent a kid gets out of avail, and the slack around it.
// Kids with an upper bound get at most that bound; others get everything.
func fit(req SizeRequirement, avail int) (size, slack int) {
	hi, ok := req.MaxSize()
	if !ok || req.Kind() == KindNone || hi >= avail {
		return avail, 0
	}
	return hi, avail - hi
}

func (ui *Align[E]) kidRect(r image.Rectangle) image.Rectangle {
	wreq, hreq := ui.Kid.Measure()
	w, dx := fit(wreq, r.Dx())
	h, dy := fit(hreq, r.Dy())
	offset := image.Pt(int(float64(dx)*ui.Alignment.X), int(float64(dy)*ui.Alignment.Y))
	return rect(image.Pt(w, h)).Add(r.Min).Add(offset)
}

func (ui *Align[E]) Draw(c Canvas, r image.Rectangle) {
	drawKid(ui.Kid, c, ui.kidRect(r))
}

func (ui *Align[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	return eventKid(ui.Kid, ev, ui.kidRect(r))
}
