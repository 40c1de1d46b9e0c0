package nerf

import (
	"image"
)

// Side is where a Scaffold puts its bar.
type Side uint8

const (
	SideTop = Side(iota)
	SideBottom
	SideLeft
	SideRight
)

func (s Side) axis() Axis {
	if s == SideLeft || s == SideRight {
		return Horizontal
	}
	return Vertical
}

// Scaffold splits its rect between a bar on one Side and a body taking the
// rest. Both kids compete for space along the split direction like kids of a
// Row or Column; wrap the bar in a SizedBox to fix its size.
type Scaffold[E any] struct {
	Side Side
	Bar  Widget[E]
	Body Widget[E]
}

var _ Widget[struct{}] = &Scaffold[struct{}]{}

func NewScaffold[E any](side Side, bar, body Widget[E]) *Scaffold[E] {
	return &Scaffold[E]{Side: side, Bar: bar, Body: body}
}

func (ui *Scaffold[E]) Measure() (width, height SizeRequirement) {
	axis := ui.Side.axis()
	barMain, barCross := axis.split(ui.Bar.Measure())
	bodyMain, bodyCross := axis.split(ui.Body.Measure())
	return axis.join(Stacked(barMain, bodyMain), Beside(barCross, bodyCross))
}

// rects returns disjoint rects for bar and body, on either side of the split point.
func (ui *Scaffold[E]) rects(r image.Rectangle) (bar, body image.Rectangle) {
	axis := ui.Side.axis()
	barMain, _ := axis.split(ui.Bar.Measure())
	bodyMain, _ := axis.split(ui.Body.Measure())
	avail := axis.main(r.Size())
	switch ui.Side {
	case SideTop, SideLeft:
		sizes := Distribute([]SizeRequirement{barMain, bodyMain}, avail)
		bar = axis.span(r, 0, sizes[0])
		body = axis.span(r, sizes[0], sizes[1])
	default:
		sizes := Distribute([]SizeRequirement{bodyMain, barMain}, avail)
		body = axis.span(r, 0, sizes[0])
		bar = axis.span(r, sizes[0], sizes[1])
	}
	if bar.Empty() {
		logger.Debug("scaffold bar has no space", "rect", r)
	}
	if body.Empty() {
		logger.Debug("scaffold body has no space", "rect", r)
	}
	return
}

func (ui *Scaffold[E]) Draw(c Canvas, r image.Rectangle) {
	bar, body := ui.rects(r)
	drawKid(ui.Bar, c, bar)
	drawKid(ui.Body, c, body)
}

// HandleEvent always forwards to both kids, bar first.
func (ui *Scaffold[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	bar, body := ui.rects(r)
	resp := eventKid(ui.Bar, ev, bar)
	return resp.Merge(eventKid(ui.Body, ev, body))
}
