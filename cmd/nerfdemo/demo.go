package main

import (
	"fmt"
	"image"

	"github.com/VirgileHenry/nerf"
)

// The demo has no application events.
type ev = struct{}

// sizes of the demo widgets, in canvas units.
type sizes struct {
	title        int
	row          int
	button       int
	reset        image.Point
	padding      int
	titlePadding int
}

var (
	pixels = sizes{title: 32, row: 40, button: 60, reset: image.Pt(120, 40), padding: 20, titlePadding: 8}
	cells  = sizes{title: 1, row: 3, button: 5, reset: image.Pt(9, 3), padding: 1, titlePadding: 1}
)

// counter shows a count with buttons to change it. It consumes the clicks of
// its buttons, the rest of the tree only sees redraws.
type counter struct {
	nerf.Widget[ev]

	count int
	label *nerf.Text[ev]
}

func newCounter(theme nerf.Theme, sz sizes) *counter {
	c := &counter{}
	c.label = nerf.NewText[ev]("0", theme.TextStyle().Aligned(nerf.TextAlignCenter))

	buttonStyle := theme.TextStyle().Colored(theme.Background).Aligned(nerf.TextAlignCenter)
	button := func(text string, click func()) *nerf.Button[ev] {
		b := nerf.NewButton[ev](nerf.NewText[ev](text, buttonStyle))
		b.Colors = theme.Button
		b.Click = click
		return b
	}
	minus := button("-", func() { c.set(c.count - 1) })
	plus := button("+", func() { c.set(c.count + 1) })
	reset := button("reset", func() { c.set(0) })

	c.Widget = nerf.NewColumn[ev](
		nerf.SizedHeight[ev](sz.row, nerf.NewRow[ev](
			nerf.SizedWidth[ev](sz.button, minus),
			nerf.NewExpanded[ev](1, c.label),
			nerf.SizedWidth[ev](sz.button, plus),
		)),
		nerf.NewCenter[ev](nerf.NewSizedBox[ev](sz.reset.X, sz.reset.Y, reset)),
	)
	return c
}

func (c *counter) set(n int) {
	c.count = n
	c.label.SetText(fmt.Sprint(n))
}

func (c *counter) HandleEvent(e nerf.Event[ev], r image.Rectangle) nerf.Response {
	resp := c.Widget.HandleEvent(e, r)
	return resp.Without(nerf.Response{Clicked: true})
}

// demo is the tree shown by all commands: a title bar above a padded counter.
func demo(theme nerf.Theme, sz sizes) (nerf.Widget[ev], *counter) {
	c := newCounter(theme, sz)
	title := nerf.NewBackground[ev](theme.Button.Idle,
		nerf.NewPadder[ev](nerf.SpaceXY(sz.titlePadding, 0), nerf.NewText[ev]("nerf demo", theme.TextStyle().Colored(theme.Background))),
	)
	body := nerf.NewPadder[ev](nerf.SpaceAll(sz.padding), c)
	return nerf.NewScaffold[ev](nerf.SideTop, nerf.SizedHeight[ev](sz.title, title), body), c
}
