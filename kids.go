package nerf

import (
	"image"
)

// kidsMeasure returns the width and height requirements of kids, in order.
func kidsMeasure[E any](kids []Widget[E]) (widths, heights []SizeRequirement) {
	widths = make([]SizeRequirement, len(kids))
	heights = make([]SizeRequirement, len(kids))
	for i, k := range kids {
		widths[i], heights[i] = k.Measure()
	}
	return
}

// kidsDraw draws each kid in its rect. Kids with an empty rect are skipped for this frame.
func kidsDraw[E any](kids []Widget[E], rects []image.Rectangle, c Canvas) {
	for i, k := range kids {
		drawKid(k, c, rects[i])
	}
}

// kidsEvent forwards ev to every kid with a non-empty rect and merges their responses.
func kidsEvent[E any](kids []Widget[E], rects []image.Rectangle, ev Event[E]) (r Response) {
	for i, k := range kids {
		r = r.Merge(eventKid(k, ev, rects[i]))
	}
	return
}

func drawKid[E any](k Widget[E], c Canvas, r image.Rectangle) {
	if r.Empty() {
		return
	}
	k.Draw(c, r)
}

func eventKid[E any](k Widget[E], ev Event[E], r image.Rectangle) Response {
	if r.Empty() {
		return Response{}
	}
	return k.HandleEvent(ev, r)
}
