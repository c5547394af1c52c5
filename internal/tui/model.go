package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/setanarut/phys2d"
	"github.com/setanarut/phys2d/internal/scenario"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options configures the viewer.
type Options struct {
	// TickRate is the number of frames per second.
	TickRate int
	// Substeps is the number of world steps per frame; each advances 1/(TickRate*Substeps).
	Substeps int
	// Scale overrides the automatic fit of the scenario view, in rows per world unit.
	Scale float64
	Width  int
	Height int
}

const statusLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// contactLog collects the contacts of the current frame. It is shared by
// every copy of the model, so it lives behind a pointer.
type contactLog struct {
	events []phys2d.CollisionEvent
}

// Model is the Bubble Tea model for viewing a scenario.
type Model struct {
	scn      *scenario.Scenario
	canvas   *Canvas
	contacts *contactLog
	opts     Options
	paused   bool
	steps    int
	simTime  float64
	err      error
	quitting bool
}

// NewModel creates a viewer for scn. The world's OnCollision callback is
// wrapped to record contacts for the status line.
func NewModel(scn *scenario.Scenario, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Substeps <= 0 {
		opts.Substeps = 10
	}

	rec := &contactLog{}
	w := scn.World
	prev := w.OnCollision
	w.OnCollision = func(w *phys2d.World, ev phys2d.CollisionEvent) {
		rec.events = append(rec.events, ev)
		if prev != nil {
			prev(w, ev)
		}
	}

	m := Model{
		scn:      scn,
		contacts: rec,
		opts:     opts,
	}
	m.canvas = NewCanvas(0, 0, 1)
	m.canvas.ColorOf = scn.ColorOf
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.paused && m.err == nil {
			m.advance()
		}
		return m, tickCmd(m.opts.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case " ", "space", "p":
		m.paused = !m.paused
	case "n":
		if m.paused && m.err == nil {
			m.advance()
		}
	case "+", "=":
		m.canvas.Scale *= 1.25
	case "-":
		m.canvas.Scale /= 1.25
	}
	return m, nil
}

// advance runs one frame worth of world steps.
func (m *Model) advance() {
	m.contacts.events = m.contacts.events[:0]
	dt := 1 / float64(m.opts.TickRate*m.opts.Substeps)
	for range m.opts.Substeps {
		if err := m.scn.World.Step(dt); err != nil {
			m.err = err
			return
		}
		m.steps++
		m.simTime += dt
	}
}

// resize fits the scenario view into the terminal, keeping room for the status line.
func (m *Model) resize(width, height int) {
	rows := max(height-statusLines, 0)
	m.canvas.Resize(width, rows)
	if m.opts.Scale > 0 {
		m.canvas.Scale = m.opts.Scale
		return
	}
	view := m.scn.View
	if width <= 0 || rows <= 0 || view.Width() <= 0 || view.Height() <= 0 {
		return
	}
	m.canvas.Scale = min(float64(width)/(2*view.Width()), float64(rows)/view.Height())
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Steps returns the number of world steps taken.
func (m Model) Steps() int {
	return m.steps
}

// Contacts returns the contacts of the last frame.
func (m Model) Contacts() []phys2d.CollisionEvent {
	return m.contacts.events
}

// View draws the world and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.canvas.Clear()
	phys2d.DrawWorld(m.scn.World, m.canvas.View(), m.canvas)
	phys2d.DrawContacts(m.contacts.events, m.canvas)

	state := "running"
	if m.paused {
		state = "paused"
	}
	status := statusStyle.Render(fmt.Sprintf("%s | %s | t=%.2fs steps=%d contacts=%d | space pause, n step, +/- zoom, q quit",
		m.scn.Name, state, m.simTime, m.steps, len(m.contacts.events)))
	if m.err != nil {
		status = errorStyle.Render("error: " + m.err.Error())
	}
	return m.canvas.Render() + "\n" + m.contactSummary() + "\n" + status
}

// contactSummary describes the first contact of the last frame.
func (m Model) contactSummary() string {
	if len(m.contacts.events) == 0 {
		return ""
	}
	ev := m.contacts.events[0]
	return statusStyle.Render(fmt.Sprintf("%s x %s at (%.2f, %.2f) n=(%.2f, %.2f) vA=(%.2f, %.2f) vB=(%.2f, %.2f)",
		m.scn.NameOf(ev.A), m.scn.NameOf(ev.B), ev.Point.X, ev.Point.Y, ev.Normal.X, ev.Normal.Y,
		ev.VelocityA.X, ev.VelocityA.Y, ev.VelocityB.X, ev.VelocityB.Y))
}

// Run starts the viewer in the alternate screen and blocks until it quits.
func Run(scn *scenario.Scenario, opts Options) error {
	p := tea.NewProgram(NewModel(scn, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
