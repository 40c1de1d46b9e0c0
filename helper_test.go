package nerf

import (
	"fmt"
	"image"
	"image/color"
)

// recorder is a Canvas remembering what was drawn.
type recorder struct {
	bounds image.Rectangle
	ops    []string
}

func newRecorder(w, h int) *recorder {
	return &recorder{bounds: image.Rect(0, 0, w, h)}
}

func (c *recorder) Bounds() image.Rectangle {
	return c.bounds
}

func (c *recorder) FillRect(r image.Rectangle, col color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("fill %v %v", r, col))
}

func (c *recorder) DrawText(text string, r image.Rectangle, style TextStyle) {
	c.ops = append(c.ops, fmt.Sprintf("text %q %v", text, r))
}

// probe is a leaf with given requirements, remembering the rects it was drawn
// in and the events it got.
type probe struct {
	width, height SizeRequirement
	response      Response

	drawn  []image.Rectangle
	events []image.Rectangle
}

func newProbe(width, height SizeRequirement) *probe {
	return &probe{width: width, height: height}
}

func (p *probe) Measure() (width, height SizeRequirement) {
	return p.width, p.height
}

func (p *probe) Draw(c Canvas, r image.Rectangle) {
	p.drawn = append(p.drawn, r)
}

func (p *probe) HandleEvent(ev Event[string], r image.Rectangle) Response {
	p.events = append(p.events, r)
	return p.response
}

// lastDrawn returns the rect of the last draw, or the zero rect.
func (p *probe) lastDrawn() image.Rectangle {
	if len(p.drawn) == 0 {
		return image.Rectangle{}
	}
	return p.drawn[len(p.drawn)-1]
}

func mustPanic(fn func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	fn()
	return false
}
