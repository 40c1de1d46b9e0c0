package nerf

import (
	"fmt"
	"image"
	"image/color"
)

// ButtonState is where a Button is in its press cycle.
type ButtonState uint8

const (
	StateIdle        = ButtonState(iota)
	StateHovered                        // Pointer over the button.
	StatePressed                        // Primary button held, pointer over the button.
	StatePressedLeft                    // Primary button held, pointer moved away. Releasing now does not click.
)

func (s ButtonState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovered:
		return "hovered"
	case StatePressed:
		return "pressed"
	case StatePressedLeft:
		return "pressed-left"
	}
	return fmt.Sprintf("ButtonState(%d)", uint8(s))
}

// ButtonColors are filled behind the kid of a Button, per state. A nil color draws nothing.
type ButtonColors struct {
	Idle        color.Color
	Hovered     color.Color
	Pressed     color.Color
	PressedLeft color.Color
}

func (c ButtonColors) color(s ButtonState) color.Color {
	switch s {
	case StateHovered:
		return c.Hovered
	case StatePressed:
		return c.Pressed
	case StatePressedLeft:
		return c.PressedLeft
	}
	return c.Idle
}

// Button makes its kid clickable with the primary mouse button.
// A click is a press followed by a release, both with the pointer inside the
// button. Responses of clicks have Clicked set, and Click is called if not nil.
type Button[E any] struct {
	Kid    Widget[E]
	Colors ButtonColors
	Click  func()

	state ButtonState
}

var _ Widget[struct{}] = &Button[struct{}]{}

func NewButton[E any](kid Widget[E]) *Button[E] {
	return &Button[E]{Kid: kid}
}

func (ui *Button[E]) State() ButtonState {
	return ui.state
}

func (ui *Button[E]) Measure() (width, height SizeRequirement) {
	return ui.Kid.Measure()
}

func (ui *Button[E]) Draw(c Canvas, r image.Rectangle) {
	if col := ui.Colors.color(ui.state); col != nil {
		c.FillRect(r, col)
	}
	ui.Kid.Draw(c, r)
}

func (ui *Button[E]) HandleEvent(ev Event[E], r image.Rectangle) Response {
	resp := ui.transition(ev, r)
	if resp.Clicked && ui.Click != nil {
		ui.Click()
	}
	return resp.Merge(ui.Kid.HandleEvent(ev, r))
}

// transition updates the state for ev and returns the button's own response.
func (ui *Button[E]) transition(ev Event[E], r image.Rectangle) Response {
	from := ui.state
	switch ev.Type {
	case EventCursorMoved, EventCursorLeft:
		inside := ev.Type == EventCursorMoved && ev.Position.In(r)
		switch {
		case inside && from == StateIdle:
			ui.state = StateHovered
		case !inside && from == StateHovered:
			ui.state = StateIdle
		case !inside && from == StatePressed:
			ui.state = StatePressedLeft
		case inside && from == StatePressedLeft:
			ui.state = StatePressed
		default:
			return Response{}
		}
	case EventMouseButton:
		switch {
		case ev.Pressed(ButtonPrimary) && from == StateHovered:
			ui.state = StatePressed
		case ev.Released(ButtonPrimary) && from == StatePressed:
			ui.state = StateHovered
			return Response{Redraw: true, Clicked: true}
		case ev.Released(ButtonPrimary) && from == StatePressedLeft:
			ui.state = StateIdle
		default:
			return Response{}
		}
	default:
		return Response{}
	}
	return Response{Redraw: true}
}
