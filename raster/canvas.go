// Package raster draws nerf widget trees into in-memory images, with text in
// the Go Regular font. Use it to render to PNG, or in tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/VirgileHenry/nerf"
)

// DefaultTextSize is used for text styles without a size, in points.
const DefaultTextSize = 14

var (
	regOnce sync.Once
	regular *opentype.Font
)

func loadRegular() *opentype.Font {
	regOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Errorf("parsing go regular font: %v", err))
		}
		regular = f
	})
	return regular
}

// Canvas draws into an *image.RGBA. Drawing is clipped to the rect passed to
// each call, and to the image bounds.
type Canvas struct {
	img   *image.RGBA
	faces map[float64]font.Face
}

var _ nerf.Canvas = &Canvas{}

// New returns a canvas with a transparent image of size.
func New(size image.Point) *Canvas {
	return NewCanvas(image.NewRGBA(image.Rectangle{Max: size}))
}

// NewCanvas returns a canvas drawing into img.
func NewCanvas(img *image.RGBA) *Canvas {
	return &Canvas{img: img, faces: map[float64]font.Face{}}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Over)
}

// face returns the font face for size in points, at 72 dpi so points are pixels.
func (c *Canvas) face(size float64) font.Face {
	if size <= 0 {
		size = DefaultTextSize
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(loadRegular(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Errorf("making face of size %v: %v", size, err))
	}
	c.faces[size] = f
	return f
}

// MeasureText returns the width in pixels of text drawn with style.
func (c *Canvas) MeasureText(text string, style nerf.TextStyle) int {
	return font.MeasureString(c.face(style.Size), text).Ceil()
}

// DrawText draws text on one line, vertically centered in r.
func (c *Canvas) DrawText(text string, r image.Rectangle, style nerf.TextStyle) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() || style.Color == nil {
		return
	}
	face := c.face(style.Size)
	text = nerf.FitText(text, r.Dx(), style.Overflow, func(s string) int {
		return font.MeasureString(face, s).Ceil()
	})
	width := font.MeasureString(face, text).Ceil()
	m := face.Metrics()
	height := (m.Ascent + m.Descent).Ceil()
	x := r.Min.X + style.Align.Offset(width, r.Dx())
	y := r.Min.Y + (r.Dy()-height)/2 + m.Ascent.Ceil()

	d := font.Drawer{
		Dst:  c.img.SubImage(r).(*image.RGBA),
		Src:  &image.Uniform{style.Color},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the image as PNG to path.
func (c *Canvas) SavePNG(path string) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing png: %w", err)
		}
	}()
	return c.WritePNG(f)
}

// Close releases the font faces.
func (c *Canvas) Close() error {
	for size, f := range c.faces {
		f.Close()
		delete(c.faces, size)
	}
	return nil
}
