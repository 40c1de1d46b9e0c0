package nerf

// NewCenter returns an Align showing kid in the middle of the available space,
// both vertically and horizontally. A kid taking all the space is not moved.
func NewCenter[E any](kid Widget[E]) *Align[E] {
	return NewAlign(AlignCenter, kid)
}
