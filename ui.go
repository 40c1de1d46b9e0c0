package nerf

import (
	"image"
	"image/color"
)

// Widget is a node in the UI tree. Containers hold their kids as Widgets.
//
// E is the application event payload, the same for the whole tree.
type Widget[E any] interface {
	// Measure returns the space wanted along both axes. It must not change
	// state, and returns the same for the same state.
	Measure() (width, height SizeRequirement)

	// Draw renders into c within r. It must not change widget state. r is never empty.
	Draw(c Canvas, r image.Rectangle)

	// HandleEvent processes ev with r the current rect of the widget, freshly
	// computed by the parent. Never reuse a rect from an earlier draw: a
	// previous event may have changed the layout.
	HandleEvent(ev Event[E], r image.Rectangle) Response
}

// Canvas is the drawing surface a tree is rendered to, bound to a pixel
// surface of Bounds size. Backends implement it.
type Canvas interface {
	Bounds() image.Rectangle
	FillRect(r image.Rectangle, c color.Color)
	DrawText(text string, r image.Rectangle, style TextStyle)
}

// TextAlign is the horizontal placement of text within its rect.
type TextAlign uint8

const (
	TextAlignLeft = TextAlign(iota)
	TextAlignCenter
	TextAlignRight
)

// TextOverflow is what happens to text wider than its rect.
type TextOverflow uint8

const (
	TextOverflowClip     = TextOverflow(iota) // Cut at the rect edge.
	TextOverflowEllipsis                      // Drop trailing characters and end with "…".
)

// TextStyle is how a Canvas draws text. Font selection and shaping are up to the backend.
type TextStyle struct {
	Size     float64 // In points. Zero means the backend default.
	Color    color.Color
	Align    TextAlign
	Overflow TextOverflow
}

func (s TextStyle) Sized(size float64) TextStyle {
	s.Size = size
	return s
}

func (s TextStyle) Colored(c color.Color) TextStyle {
	s.Color = c
	return s
}

func (s TextStyle) Aligned(a TextAlign) TextStyle {
	s.Align = a
	return s
}

func (s TextStyle) Overflowing(o TextOverflow) TextStyle {
	s.Overflow = o
	return s
}

// Offset returns the x offset of text width wide in a rect avail wide.
// Text wider than the rect starts at the left edge.
func (a TextAlign) Offset(width, avail int) int {
	if width >= avail {
		return 0
	}
	switch a {
	case TextAlignCenter:
		return (avail - width) / 2
	case TextAlignRight:
		return avail - width
	}
	return 0
}

// FitText returns the part of text to draw in avail units of width, with
// measure returning the width of a string. With TextOverflowClip text is
// returned unchanged, the canvas clips it.
func FitText(text string, avail int, overflow TextOverflow, measure func(string) int) string {
	if overflow != TextOverflowEllipsis || measure(text) <= avail {
		return text
	}
	const ellipsis = "…"
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		s := string(runes[:n]) + ellipsis
		if measure(s) <= avail {
			return s
		}
	}
	if measure(ellipsis) <= avail {
		return ellipsis
	}
	return ""
}
