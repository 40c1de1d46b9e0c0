// Package term runs a nerf App in a terminal, one cell per layout unit.
package term

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/VirgileHenry/nerf"
)

type cell struct {
	r      rune
	fg, bg color.Color
}

// Canvas is a grid of terminal cells. Text takes one cell per rune, on the
// middle row of its rect. TextStyle.Size is ignored.
type Canvas struct {
	width, height int
	cells         []cell
}

var _ nerf.Canvas = &Canvas{}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) at(x, y int) *cell {
	return &c.cells[y*c.width+x]
}

// FillRect sets the background of the cells in r and clears their text.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			*c.at(x, y) = cell{r: ' ', bg: col}
		}
	}
}

func (c *Canvas) DrawText(text string, r image.Rectangle, style nerf.TextStyle) {
	r = r.Intersect(c.Bounds())
	if r.Empty() {
		return
	}
	text = nerf.FitText(text, r.Dx(), style.Overflow, func(s string) int {
		return len([]rune(s))
	})
	runes := []rune(text)
	x := r.Min.X + style.Align.Offset(len(runes), r.Dx())
	y := r.Min.Y + (r.Dy()-1)/2
	for _, ch := range runes {
		if x >= r.Max.X {
			break
		}
		cl := c.at(x, y)
		cl.r = ch
		cl.fg = style.Color
		x++
	}
}

// Rune returns the rune in cell (x, y), for tests.
func (c *Canvas) Rune(x, y int) rune {
	return c.at(x, y).r
}

// String renders the cells as lines of styled text, consecutive cells with the
// same colors sharing a style.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run []rune
		var cur cell
		flush := func() {
			if len(run) > 0 {
				b.WriteString(cellStyle(cur.fg, cur.bg).Render(string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < c.width; x++ {
			cl := *c.at(x, y)
			if len(run) > 0 && (!sameColor(cl.fg, cur.fg) || !sameColor(cl.bg, cur.bg)) {
				flush()
			}
			cur = cl
			run = append(run, cl.r)
		}
		flush()
	}
	return b.String()
}

// cellStyle leaves nil and fully transparent colors to the terminal.
func cellStyle(fg, bg color.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := hex(fg); ok {
		st = st.Foreground(c)
	}
	if c, ok := hex(bg); ok {
		st = st.Background(c)
	}
	return st
}

func hex(col color.Color) (lipgloss.Color, bool) {
	if col == nil {
		return "", false
	}
	c, ok := colorful.MakeColor(col)
	if !ok {
		return "", false
	}
	return lipgloss.Color(c.Hex()), true
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return color.RGBAModel.Convert(a) == color.RGBAModel.Convert(b)
}
