package nerf

import (
	"image"
	"time"
)

// App drives a widget tree for a host: it renders frames and dispatches input.
//
// App is not safe for concurrent use. Hosts read their inputs from a single
// channel and call App from the goroutine reading it.
type App[E any] struct {
	Root  Widget[E]
	Theme Theme

	LogTiming bool // Log render and dispatch durations at debug level.

	bounds        image.Rectangle
	redraw        bool
	animationWant bool
}

// NewApp returns an App for root. The first Render always draws.
func NewApp[E any](root Widget[E], theme Theme) *App[E] {
	return &App[E]{Root: root, Theme: theme, redraw: true}
}

// Bounds is the rect the tree is laid out in, as set by the last Resize or Render.
func (a *App[E]) Bounds() image.Rectangle {
	return a.bounds
}

// Resize sets the window size. The tree is drawn at the origin.
func (a *App[E]) Resize(size image.Point) {
	r := rect(size)
	if r == a.bounds {
		return
	}
	logger.Debug("resize", "size", size)
	a.bounds = r
	a.redraw = true
}

// NeedsRedraw reports whether an event asked for a redraw since the last Render.
func (a *App[E]) NeedsRedraw() bool {
	return a.redraw
}

// WantsAnimationFrame reports whether a widget asked for an animation frame.
// The host should render and then Dispatch an AnimationFrame event, which
// clears the request.
func (a *App[E]) WantsAnimationFrame() bool {
	return a.animationWant
}

// Render clears c with the theme background and draws the tree in c's bounds.
func (a *App[E]) Render(c Canvas) {
	var t0 time.Time
	if a.LogTiming {
		t0 = time.Now()
	}
	a.bounds = c.Bounds()
	a.redraw = false
	if a.bounds.Empty() {
		return
	}
	if a.Theme.Background != nil {
		c.FillRect(a.bounds, a.Theme.Background)
	}
	a.Root.Draw(c, a.bounds)
	if a.LogTiming {
		logger.Debug("time render", "duration", time.Since(t0))
	}
}

// Dispatch delivers ev to the tree with the current bounds and returns the
// merged response of all widgets. Events are dropped while the bounds are empty.
func (a *App[E]) Dispatch(ev Event[E]) Response {
	if ev.Type == EventAnimationFrame {
		a.animationWant = false
	}
	if a.bounds.Empty() {
		return Response{}
	}
	var t0 time.Time
	if a.LogTiming {
		t0 = time.Now()
	}
	r := a.Root.HandleEvent(ev, a.bounds)
	a.redraw = a.redraw || r.Redraw
	a.animationWant = a.animationWant || r.AnimationFrame
	if a.LogTiming {
		logger.Debug("time dispatch", "event", ev, "duration", time.Since(t0))
	}
	return r
}
