package nerf

import (
	"image"
)

// linearMeasure combines kids placed in sequence along axis: their main-axis
// requirements are stacked, their cross-axis requirements are beside each other.
func linearMeasure[E any](axis Axis, kids []Widget[E]) (width, height SizeRequirement) {
	main, cross := None, None
	for _, k := range kids {
		m, c := axis.split(k.Measure())
		main = Stacked(main, m)
		cross = Beside(cross, c)
	}
	return axis.join(main, cross)
}

// linearRects distributes the main-axis extent of r between kids and returns
// their rects, in order, each spanning the full cross extent.
func linearRects[E any](axis Axis, kids []Widget[E], r image.Rectangle) []image.Rectangle {
	widths, heights := kidsMeasure(kids)
	reqs := widths
	if axis == Vertical {
		reqs = heights
	}
	sizes := Distribute(reqs, axis.main(r.Size()))
	rects := make([]image.Rectangle, len(kids))
	offset := 0
	for i, size := range sizes {
		rects[i] = axis.span(r, offset, size)
		offset += size
	}
	return rects
}
