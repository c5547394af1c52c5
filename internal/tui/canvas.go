// Package tui renders a phys2d world in the terminal with Bubble Tea.
package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/setanarut/vec"

	"github.com/setanarut/phys2d"
)

// colorStyles maps scenario color names to lipgloss styles.
var colorStyles = map[string]lipgloss.Style{
	"":        lipgloss.NewStyle(),
	"red":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"white":   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	"orange":  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"gray":    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

const (
	circleRune  = 'o'
	segmentRune = '.'
	contactRune = '*'

	contactColor = "orange"
)

type cell struct {
	r     rune
	color string
}

// Canvas is a rune grid that implements phys2d.Drawer.
//
// World y grows upward, rows grow downward. One world unit is Scale rows
// high and 2*Scale columns wide, which keeps circles round in most fonts.
type Canvas struct {
	Scale float64
	// ColorOf returns the color name of a collider. May be nil.
	ColorOf func(c *phys2d.Collider) string

	width, height int
	cells         [][]cell
}

// NewCanvas creates a cleared canvas of width x height cells.
func NewCanvas(width, height int, scale float64) *Canvas {
	cv := &Canvas{Scale: scale}
	cv.Resize(width, height)
	return cv
}

func (cv *Canvas) Width() int {
	return cv.width
}

func (cv *Canvas) Height() int {
	return cv.height
}

// Resize reallocates the grid. Content is cleared.
func (cv *Canvas) Resize(width, height int) {
	cv.width = max(width, 0)
	cv.height = max(height, 0)
	cv.cells = make([][]cell, cv.height)
	for y := range cv.cells {
		cv.cells[y] = make([]cell, cv.width)
	}
	cv.Clear()
}

// Clear fills the canvas with spaces.
func (cv *Canvas) Clear() {
	for y := range cv.cells {
		for x := range cv.cells[y] {
			cv.cells[y][x] = cell{r: ' '}
		}
	}
}

// Set writes a rune; out of bounds writes are ignored.
func (cv *Canvas) Set(x, y int, r rune, color string) {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return
	}
	cv.cells[y][x] = cell{r: r, color: color}
}

// Get returns the rune at x, y, or a space when out of bounds.
func (cv *Canvas) Get(x, y int) rune {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return ' '
	}
	return cv.cells[y][x].r
}

// ToCell maps a world position to a column and row.
func (cv *Canvas) ToCell(p vec.Vec2) (int, int) {
	x := int(math.Round(p.X * cv.Scale * 2))
	y := cv.height - 1 - int(math.Round(p.Y*cv.Scale))
	return x, y
}

// View returns the world region covered by the canvas.
func (cv *Canvas) View() phys2d.BB {
	if cv.Scale <= 0 {
		return phys2d.BB{}
	}
	return phys2d.NewBB(0, 0, float64(cv.width)/(2*cv.Scale), float64(cv.height)/cv.Scale)
}

func (cv *Canvas) colorOf(c *phys2d.Collider) string {
	if cv.ColorOf == nil || c == nil {
		return ""
	}
	return cv.ColorOf(c)
}

// DrawCircle plots the outline of a circle. Circles smaller than a cell
// become a single rune.
func (cv *Canvas) DrawCircle(pos vec.Vec2, radius float64, c *phys2d.Collider) {
	color := cv.colorOf(c)
	cells := radius * cv.Scale * 2
	if cells < 1 {
		x, y := cv.ToCell(pos)
		cv.Set(x, y, circleRune, color)
		return
	}
	n := max(16, int(2*math.Pi*cells))
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := cv.ToCell(vec.Vec2{X: pos.X + radius*math.Cos(a), Y: pos.Y + radius*math.Sin(a)})
		cv.Set(x, y, circleRune, color)
	}
}

// DrawSegment plots a straight run of cells from a to b.
func (cv *Canvas) DrawSegment(a, b vec.Vec2, c *phys2d.Collider) {
	color := cv.colorOf(c)
	x0, y0 := cv.ToCell(a)
	x1, y1 := cv.ToCell(b)
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		cv.Set(x0, y0, segmentRune, color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		cv.Set(x, y, segmentRune, color)
	}
}

// DrawDot marks a contact point.
func (cv *Canvas) DrawDot(pos vec.Vec2) {
	x, y := cv.ToCell(pos)
	cv.Set(x, y, contactRune, contactColor)
}

// String returns the canvas without styling.
func (cv *Canvas) String() string {
	var sb strings.Builder
	for y := range cv.cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range cv.cells[y] {
			sb.WriteRune(cv.cells[y][x].r)
		}
	}
	return sb.String()
}

// Render converts the canvas to a styled string for display.
// Adjacent cells with the same color share one style run.
func (cv *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(cv.width*cv.height*2 + cv.height)

	for y := range cv.cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < cv.width {
			startColor := cv.cells[y][x].color
			var run strings.Builder
			for x < cv.width && cv.cells[y][x].color == startColor {
				run.WriteRune(cv.cells[y][x].r)
				x++
			}
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[""]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
