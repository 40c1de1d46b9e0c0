package nerf

import "image"

// Axis is the direction along which a container places its kids.
type Axis uint8

const (
	Horizontal = Axis(iota)
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// main returns the extent of p along the axis.
func (a Axis) main(p image.Point) int {
	if a == Vertical {
		return p.Y
	}
	return p.X
}

// split returns the main- and cross-axis requirements from a width/height pair.
func (a Axis) split(width, height SizeRequirement) (main, cross SizeRequirement) {
	if a == Vertical {
		return height, width
	}
	return width, height
}

// join is the inverse of split.
func (a Axis) join(main, cross SizeRequirement) (width, height SizeRequirement) {
	if a == Vertical {
		return cross, main
	}
	return main, cross
}

// span returns the part of r starting offset units along the axis, size units long, with r's full cross extent.
func (a Axis) span(r image.Rectangle, offset, size int) image.Rectangle {
	if a == Vertical {
		return image.Rect(r.Min.X, r.Min.Y+offset, r.Max.X, r.Min.Y+offset+size)
	}
	return image.Rect(r.Min.X+offset, r.Min.Y, r.Min.X+offset+size, r.Max.Y)
}

func rect(p image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, p}
}
