package devdraw

import (
	"image"
	"image/color"

	"9fans.net/go/draw"

	"github.com/VirgileHenry/nerf"
)

// Canvas draws on a devdraw image, typically the screen image.
//
// Text is drawn in a single font, TextStyle.Size is ignored.
type Canvas struct {
	display *draw.Display
	img     *draw.Image
	font    *draw.Font
	colors  map[color.RGBA]*draw.Image
}

var _ nerf.Canvas = &Canvas{}

// NewCanvas returns a canvas drawing on img with font, or the display default font if nil.
func NewCanvas(display *draw.Display, img *draw.Image, font *draw.Font) *Canvas {
	if font == nil {
		font = display.DefaultFont
	}
	return &Canvas{
		display: display,
		img:     img,
		font:    font,
		colors:  map[color.RGBA]*draw.Image{},
	}
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.R
}

// color returns a replicated 1x1 image of col, allocated once per color.
func (c *Canvas) color(col color.Color) (*draw.Image, error) {
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	if img, ok := c.colors[rgba]; ok {
		return img, nil
	}
	v := draw.Color(uint32(rgba.R)<<24 | uint32(rgba.G)<<16 | uint32(rgba.B)<<8 | uint32(rgba.A))
	img, err := c.display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, v)
	if err != nil {
		return nil, err
	}
	c.colors[rgba] = img
	return img, nil
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	src, err := c.color(col)
	if err != nil {
		nerf.Logger().Error("allocating color", "color", col, "err", err)
		return
	}
	c.img.Draw(r.Intersect(c.img.R), src, nil, image.ZP)
}

// DrawText draws text on one line, vertically centered in r and clipped to it.
func (c *Canvas) DrawText(text string, r image.Rectangle, style nerf.TextStyle) {
	if style.Color == nil {
		return
	}
	src, err := c.color(style.Color)
	if err != nil {
		nerf.Logger().Error("allocating color", "color", style.Color, "err", err)
		return
	}
	text = nerf.FitText(text, r.Dx(), style.Overflow, func(s string) int {
		return c.font.StringWidth(s)
	})
	size := c.font.StringSize(text)
	p := image.Pt(r.Min.X+style.Align.Offset(size.X, r.Dx()), r.Min.Y+(r.Dy()-c.font.Height)/2)

	clipr := c.img.Clipr
	c.img.ReplClipr(false, r.Intersect(clipr))
	c.img.String(p, src, image.ZP, c.font, text)
	c.img.ReplClipr(false, clipr)
}

// Free releases the color images.
func (c *Canvas) Free() {
	for k, img := range c.colors {
		img.Free()
		delete(c.colors, k)
	}
}
