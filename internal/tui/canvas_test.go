package tui

import (
	"strings"
	"testing"

	"github.com/setanarut/vec"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/phys2d"
)

func TestCanvasSetGet(t *testing.T) {
	cv := NewCanvas(4, 3, 1)
	cv.Set(1, 2, 'x', "red")
	require.Equal(t, 'x', cv.Get(1, 2))
	require.Equal(t, ' ', cv.Get(0, 0))

	// out of bounds is ignored
	cv.Set(-1, 0, 'x', "")
	cv.Set(4, 0, 'x', "")
	require.Equal(t, ' ', cv.Get(4, 0))
	require.Equal(t, "    \n    \n x  ", cv.String())

	cv.Clear()
	require.Equal(t, ' ', cv.Get(1, 2))
}

func TestCanvasMapping(t *testing.T) {
	cv := NewCanvas(20, 10, 1)
	x, y := cv.ToCell(vec.Vec2{X: 1, Y: 0})
	require.Equal(t, 2, x)
	require.Equal(t, 9, y)

	x, y = cv.ToCell(vec.Vec2{X: 3, Y: 9})
	require.Equal(t, 6, x)
	require.Equal(t, 0, y)

	require.Equal(t, phys2d.NewBB(0, 0, 10, 10), cv.View())
	require.Equal(t, phys2d.BB{}, NewCanvas(20, 10, 0).View())
}

func TestCanvasDraw(t *testing.T) {
	cv := NewCanvas(10, 5, 1)

	cv.DrawSegment(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}, nil)
	require.Equal(t, ".........", strings.Split(cv.String(), "\n")[4][:9])
	require.Equal(t, ' ', cv.Get(9, 4))

	cv.DrawDot(vec.Vec2{X: 1, Y: 2})
	require.Equal(t, '*', cv.Get(2, 2))

	cv.DrawCircle(vec.Vec2{X: 3, Y: 3}, 0.2, nil)
	require.Equal(t, 'o', cv.Get(6, 1))

	cv.Clear()
	cv.DrawCircle(vec.Vec2{X: 2.5, Y: 2}, 1, nil)
	require.Equal(t, 'o', cv.Get(7, 2), "rightmost point")
	require.Equal(t, 'o', cv.Get(3, 2), "leftmost point")
	require.Equal(t, 'o', cv.Get(5, 1), "top")
	require.Equal(t, ' ', cv.Get(5, 2), "center stays empty")
}

func TestCanvasDrawWorld(t *testing.T) {
	w := phys2d.NewWorld()
	floor, err := phys2d.NewLine(vec.Vec2{Y: 1}, vec.Vec2{X: 1}, 0, true)
	require.NoError(t, err)
	ball, err := phys2d.NewCircle(vec.Vec2{X: 2, Y: 3}, 0.25, 1, false)
	require.NoError(t, err)
	require.NoError(t, w.Add(floor, ball))

	cv := NewCanvas(10, 5, 1)
	cv.ColorOf = func(c *phys2d.Collider) string {
		if c == ball.Collider {
			return "red"
		}
		return ""
	}
	phys2d.DrawWorld(w, cv.View(), cv)

	lines := strings.Split(cv.String(), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, strings.Repeat(".", 10), lines[3])
	require.Equal(t, 'o', cv.Get(4, 1))
	require.Contains(t, cv.Render(), "o")
}
