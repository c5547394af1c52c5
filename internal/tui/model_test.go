package tui_test

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/phys2d/internal/scenario"
	"github.com/setanarut/phys2d/internal/tui"
)

const resting = `
name: resting
view: {width: 20, height: 10}
world:
  global_acceleration: {x: 0, y: -9.81}
colliders:
  - {kind: line, name: floor, position: {x: 0, y: 1}, direction: {x: 1, y: 0}, fixed: true}
  - {kind: circle, name: ball, position: {x: 5, y: 2}, radius: 1, mass: 1}
`

func newModel(t *testing.T) tui.Model {
	t.Helper()
	f, err := scenario.Parse([]byte(resting))
	require.NoError(t, err)
	scn, err := scenario.Build(f, log.New(io.Discard))
	require.NoError(t, err)
	return tui.NewModel(scn, tui.Options{TickRate: 10, Substeps: 3, Width: 40, Height: 12})
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok)
	return model, cmd
}

func TestTickAdvances(t *testing.T) {
	m := newModel(t)
	require.NotNil(t, m.Init())

	m, cmd := update(t, m, tui.TickMsg{})
	require.NotNil(t, cmd)
	require.Equal(t, 3, m.Steps())
	require.NotEmpty(t, m.Contacts(), "the ball rests on the floor")
}

func TestPauseAndSingleStep(t *testing.T) {
	m := newModel(t)

	m, _ = update(t, m, key('p'))
	require.True(t, m.Paused())

	m, _ = update(t, m, tui.TickMsg{})
	require.Equal(t, 0, m.Steps())

	m, _ = update(t, m, key('n'))
	require.Equal(t, 3, m.Steps())

	m, _ = update(t, m, key('p'))
	require.False(t, m.Paused())

	// n only steps while paused
	m, _ = update(t, m, key('n'))
	require.Equal(t, 3, m.Steps())
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	m, cmd := update(t, m, key('q'))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}

func TestView(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = update(t, m, tui.TickMsg{})

	view := m.View()
	require.Contains(t, view, "resting")
	require.Contains(t, view, "floor x ball")
	require.Contains(t, view, "o")
	require.Equal(t, 11, strings.Count(view, "\n"))
}
