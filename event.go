package nerf

import (
	"fmt"
	"image"
)

// EventType tells which fields of an Event are set.
type EventType byte

const (
	EventCursorMoved    = EventType(iota) // Pointer moved to Position.
	EventCursorLeft                       // Pointer left the window.
	EventMouseButton                      // Button changed to State.
	EventAnimationFrame                   // A frame requested through Response.AnimationFrame was drawn.
	EventUser                             // Application payload in User.
)

func (t EventType) String() string {
	switch t {
	case EventCursorMoved:
		return "cursor-moved"
	case EventCursorLeft:
		return "cursor-left"
	case EventMouseButton:
		return "mouse-button"
	case EventAnimationFrame:
		return "animation-frame"
	case EventUser:
		return "user"
	}
	return fmt.Sprintf("EventType(%d)", byte(t))
}

// MouseButton identifies a pointer button, numbered like plan9 mouse buttons.
type MouseButton int

const (
	ButtonPrimary   = MouseButton(1 + iota) // Left.
	ButtonMiddle                            // Middle, or wheel press.
	ButtonSecondary                         // Right.
	ButtonBack
	ButtonForward
)

// MouseState is whether a button went down or up.
type MouseState byte

const (
	MousePressed = MouseState(iota)
	MouseReleased
)

// Event is an input delivered top-down through the widget tree.
// E is the application payload type, carried by EventUser events.
type Event[E any] struct {
	Type     EventType
	Position image.Point // For EventCursorMoved, in window coordinates.
	Button   MouseButton // For EventMouseButton.
	State    MouseState  // For EventMouseButton.
	User     E           // For EventUser.
}

func CursorMoved[E any](p image.Point) Event[E] {
	return Event[E]{Type: EventCursorMoved, Position: p}
}

func CursorLeft[E any]() Event[E] {
	return Event[E]{Type: EventCursorLeft}
}

func MouseDown[E any](b MouseButton) Event[E] {
	return Event[E]{Type: EventMouseButton, Button: b, State: MousePressed}
}

func MouseUp[E any](b MouseButton) Event[E] {
	return Event[E]{Type: EventMouseButton, Button: b, State: MouseReleased}
}

func AnimationFrame[E any]() Event[E] {
	return Event[E]{Type: EventAnimationFrame}
}

func UserEvent[E any](user E) Event[E] {
	return Event[E]{Type: EventUser, User: user}
}

// Pressed reports whether the event is button b going down.
func (e Event[E]) Pressed(b MouseButton) bool {
	return e.Type == EventMouseButton && e.Button == b && e.State == MousePressed
}

// Released reports whether the event is button b going up.
func (e Event[E]) Released(b MouseButton) bool {
	return e.Type == EventMouseButton && e.Button == b && e.State == MouseReleased
}

func (e Event[E]) String() string {
	switch e.Type {
	case EventCursorMoved:
		return fmt.Sprintf("cursor-moved %v", e.Position)
	case EventMouseButton:
		state := "down"
		if e.State == MouseReleased {
			state = "up"
		}
		return fmt.Sprintf("mouse-button %d %s", e.Button, state)
	case EventUser:
		return fmt.Sprintf("user %v", e.User)
	}
	return e.Type.String()
}
