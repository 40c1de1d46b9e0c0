package term

import (
	"fmt"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VirgileHenry/nerf"
)

// FrameDelay is the time between a requested animation frame and its delivery.
const FrameDelay = 33 * time.Millisecond

type frameMsg struct{}

// Model is a bubbletea model showing an App. Quit with q, esc or ctrl+c.
type Model[E any] struct {
	App *nerf.App[E]

	mouse Mouse[E]
	size  image.Point
}

var _ tea.Model = &Model[struct{}]{}

func NewModel[E any](app *nerf.App[E]) *Model[E] {
	return &Model[E]{App: app}
}

func (m *Model[E]) Init() tea.Cmd {
	return nil
}

func (m *Model[E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.size = image.Pt(msg.Width, msg.Height)
		m.App.Resize(m.size)
	case tea.MouseMsg:
		for _, ev := range m.mouse.Events(msg) {
			m.App.Dispatch(ev)
		}
	case frameMsg:
		m.App.Dispatch(nerf.AnimationFrame[E]())
	}
	if m.App.WantsAnimationFrame() {
		return m, tea.Tick(FrameDelay, func(time.Time) tea.Msg {
			return frameMsg{}
		})
	}
	return m, nil
}

func (m *Model[E]) View() string {
	if m.size.X <= 0 || m.size.Y <= 0 {
		return ""
	}
	c := NewCanvas(m.size.X, m.size.Y)
	m.App.Render(c)
	return c.String()
}

// Run shows app in the terminal until the user quits.
func Run[E any](app *nerf.App[E]) error {
	p := tea.NewProgram(NewModel(app), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal program: %w", err)
	}
	return nil
}

// Mouse turns bubbletea mouse messages into nerf events. It remembers held
// buttons, terminals do not always say which button was released.
type Mouse[E any] struct {
	held []nerf.MouseButton
}

var teaButtons = map[tea.MouseButton]nerf.MouseButton{
	tea.MouseButtonLeft:     nerf.ButtonPrimary,
	tea.MouseButtonMiddle:   nerf.ButtonMiddle,
	tea.MouseButtonRight:    nerf.ButtonSecondary,
	tea.MouseButtonBackward: nerf.ButtonBack,
	tea.MouseButtonForward:  nerf.ButtonForward,
}

// Events returns the events for msg: a cursor move to the message position,
// followed by a button change if any. Wheel messages only move the cursor.
func (t *Mouse[E]) Events(msg tea.MouseMsg) []nerf.Event[E] {
	evs := []nerf.Event[E]{nerf.CursorMoved[E](image.Pt(msg.X, msg.Y))}
	b, known := teaButtons[msg.Button]
	switch msg.Action {
	case tea.MouseActionPress:
		if known && !t.holds(b) {
			t.held = append(t.held, b)
			evs = append(evs, nerf.MouseDown[E](b))
		}
	case tea.MouseActionRelease:
		if known {
			if t.release(b) {
				evs = append(evs, nerf.MouseUp[E](b))
			}
			break
		}
		for _, hb := range t.held {
			evs = append(evs, nerf.MouseUp[E](hb))
		}
		t.held = nil
	}
	return evs
}

func (t *Mouse[E]) holds(b nerf.MouseButton) bool {
	for _, hb := range t.held {
		if hb == b {
			return true
		}
	}
	return false
}

func (t *Mouse[E]) release(b nerf.MouseButton) bool {
	for i, hb := range t.held {
		if hb == b {
			t.held = append(t.held[:i], t.held[i+1:]...)
			return true
		}
	}
	return false
}
