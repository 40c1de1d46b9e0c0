package nerf

// Response is what handling an event produced. Responses from a subtree are
// merged bottom-up; the zero value means nothing happened.
type Response struct {
	Redraw         bool // Tree needs to be drawn again.
	AnimationFrame bool // Draw again, then deliver an EventAnimationFrame.
	Clicked        bool // A button completed a click.
}

// Merge returns the union of both responses. It is associative and
// commutative, with the zero Response as identity.
func (r Response) Merge(o Response) Response {
	return Response{
		Redraw:         r.Redraw || o.Redraw,
		AnimationFrame: r.AnimationFrame || o.AnimationFrame,
		Clicked:        r.Clicked || o.Clicked,
	}
}

// Without clears the flags set in o, for a widget consuming a signal of its kids.
func (r Response) Without(o Response) Response {
	return Response{
		Redraw:         r.Redraw && !o.Redraw,
		AnimationFrame: r.AnimationFrame && !o.AnimationFrame,
		Clicked:        r.Clicked && !o.Clicked,
	}
}

func (r Response) IsZero() bool {
	return r == Response{}
}
