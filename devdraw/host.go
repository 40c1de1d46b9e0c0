// Package devdraw runs a nerf App in a window through devdraw, the plan9port
// graphics server.
//
// Create a Host with New, then run the event loop yourself:
//
//	for {
//		select {
//		case in := <-host.Inputs:
//			host.Input(in)
//		case <-host.Done:
//			return
//		}
//	}
//
// Or call Run, which does the same.
package devdraw

import (
	"fmt"
	"io"
	"sync"
	"time"

	"9fans.net/go/draw"

	"github.com/VirgileHenry/nerf"
)

// FrameDelay is the time between a requested animation frame and its delivery.
const FrameDelay = 16 * time.Millisecond

// InputType tells which field of an Input is set.
type InputType byte

const (
	InputMouse = InputType(iota)
	InputKey
	InputFunc
	InputResize
	InputFrame
	InputError
)

// Input is a message from the devdraw reader goroutine to the event loop.
type Input struct {
	Type  InputType
	Mouse draw.Mouse
	Key   rune
	Func  func()
	Error error
}

// Host is a devdraw window showing an App.
type Host[E any] struct {
	Inputs  chan Input
	Call    chan func()   // Functions sent here are run from Input, for changing widgets from other goroutines.
	Done    chan struct{} // Closed when the window is gone.
	Display *draw.Display // Nil after Close.
	App     *nerf.App[E]

	canvas   *Canvas
	stop     chan struct{}
	frames   chan struct{}
	mousectl *draw.Mousectl
	keyctl   *draw.Keyboardctl
	mouse    draw.Mouse
	logInput bool
	doneOnce sync.Once
}

// New opens a window titled name, with dim the initial size like "800x600" or
// empty for the default, and renders app in it.
func New[E any](name, dim string, app *nerf.App[E]) (*Host[E], error) {
	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", name, dim)
	if err != nil {
		return nil, fmt.Errorf("devdraw init: %w", err)
	}

	h := &Host[E]{
		Inputs:   make(chan Input, 1),
		Call:     make(chan func(), 1),
		Done:     make(chan struct{}),
		Display:  display,
		App:      app,
		canvas:   NewCanvas(display, display.ScreenImage, nil),
		stop:     make(chan struct{}, 1),
		frames:   make(chan struct{}, 1),
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
	}

	go func() {
		for {
			select {
			case m := <-h.mousectl.C:
				h.Inputs <- Input{Type: InputMouse, Mouse: m}
			case k := <-h.keyctl.C:
				h.Inputs <- Input{Type: InputKey, Key: k}
			case <-h.mousectl.Resize:
				h.Inputs <- Input{Type: InputResize}
			case fn := <-h.Call:
				h.Inputs <- Input{Type: InputFunc, Func: fn}
			case <-h.frames:
				h.Inputs <- Input{Type: InputFrame}
			case <-h.stop:
				return
			case e := <-errch:
				if e == io.EOF {
					// devdraw is gone, typically because the window was closed.
					h.finish()
					return
				}
				h.Inputs <- Input{Type: InputError, Error: e}
			}
		}
	}()

	h.render()
	return h, nil
}

// Run handles inputs until the window is closed or devdraw reports an error.
func (h *Host[E]) Run() error {
	for {
		select {
		case in := <-h.Inputs:
			if in.Type == InputError {
				return fmt.Errorf("devdraw: %w", in.Error)
			}
			h.Input(in)
		case <-h.Done:
			return nil
		}
	}
}

// Input handles one input, dispatching it to the App and rendering if needed.
// Inputs arriving after Close are dropped.
func (h *Host[E]) Input(in Input) {
	if h.Display == nil {
		return
	}
	switch in.Type {
	case InputMouse:
		h.mouseInput(in.Mouse)
	case InputKey:
		h.key(in.Key)
	case InputResize:
		h.resize()
	case InputFunc:
		in.Func()
	case InputFrame:
		h.App.Dispatch(nerf.AnimationFrame[E]())
	case InputError:
		nerf.Logger().Error("devdraw", "err", in.Error)
		return
	}
	if h.Display != nil && (h.App.NeedsRedraw() || h.App.WantsAnimationFrame()) {
		h.render()
	}
}

// mouseButtons maps devdraw button bits to nerf buttons.
var mouseButtons = []nerf.MouseButton{nerf.ButtonPrimary, nerf.ButtonMiddle, nerf.ButtonSecondary, nerf.ButtonBack, nerf.ButtonForward}

func (h *Host[E]) mouseInput(m draw.Mouse) {
	if h.logInput {
		nerf.Logger().Info("mouse", "point", m.Point, "buttons", fmt.Sprintf("%b", m.Buttons))
	}
	for _, ev := range mouseEvents[E](h.mouse, m) {
		h.App.Dispatch(ev)
	}
	h.mouse = m
}

// mouseEvents returns the events for a mouse change from prev to m: a cursor
// move if the point changed, then a press or release per changed button.
func mouseEvents[E any](prev, m draw.Mouse) []nerf.Event[E] {
	var evs []nerf.Event[E]
	if m.Point != prev.Point {
		evs = append(evs, nerf.CursorMoved[E](m.Point))
	}
	for i, b := range mouseButtons {
		bit := 1 << i
		switch {
		case m.Buttons&bit != 0 && prev.Buttons&bit == 0:
			evs = append(evs, nerf.MouseDown[E](b))
		case m.Buttons&bit == 0 && prev.Buttons&bit != 0:
			evs = append(evs, nerf.MouseUp[E](b))
		}
	}
	return evs
}

func (h *Host[E]) key(k rune) {
	switch k {
	case draw.KeyFn + 1:
		h.logInput = !h.logInput
		nerf.Logger().Info("toggled input logging", "on", h.logInput)
	case draw.KeyFn + 2:
		h.App.LogTiming = !h.App.LogTiming
		nerf.Logger().Info("toggled timing logging", "on", h.App.LogTiming)
	case draw.KeyCmd + 'w':
		h.Close()
	}
}

func (h *Host[E]) resize() {
	if err := h.Display.Attach(draw.Refmesg); err != nil {
		nerf.Logger().Error("attach after resize", "err", err)
		return
	}
	// The screen image is reallocated, and its rect may have moved.
	h.canvas.img = h.Display.ScreenImage
	h.render()
}

func (h *Host[E]) render() {
	h.App.Render(h.canvas)
	if err := h.Display.Flush(); err != nil {
		nerf.Logger().Error("flush", "err", err)
	}
	if h.App.WantsAnimationFrame() {
		time.AfterFunc(FrameDelay, func() {
			select {
			case h.frames <- struct{}{}:
			default:
			}
		})
	}
}

// Close stops reading input, closes the display and closes Done. Closing
// again does nothing.
func (h *Host[E]) Close() {
	select {
	case h.stop <- struct{}{}:
	default:
	}
	if h.Display != nil {
		h.canvas.Free()
		if err := h.Display.Close(); err != nil {
			nerf.Logger().Debug("closing display", "err", err)
		}
		h.Display = nil
	}
	h.finish()
}

func (h *Host[E]) finish() {
	h.doneOnce.Do(func() {
		close(h.Done)
	})
}
