package phys2d_test

import (
	"fmt"
	"testing"

	"github.com/setanarut/vec"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/phys2d"
)

type recordingDrawer struct {
	calls []string
}

func (d *recordingDrawer) DrawCircle(pos vec.Vec2, radius float64, c *phys2d.Collider) {
	d.calls = append(d.calls, fmt.Sprintf("circle %v %v %v r=%v", c.ID(), pos.X, pos.Y, radius))
}

func (d *recordingDrawer) DrawSegment(a, b vec.Vec2, c *phys2d.Collider) {
	d.calls = append(d.calls, fmt.Sprintf("segment %v %v,%v %v,%v", c.ID(), a.X, a.Y, b.X, b.Y))
}

func (d *recordingDrawer) DrawDot(pos vec.Vec2) {
	d.calls = append(d.calls, fmt.Sprintf("dot %v,%v", pos.X, pos.Y))
}

func TestDrawWorld(t *testing.T) {
	w := phys2d.NewWorld()
	ball := mustCircle(t, vec.Vec2{X: 2, Y: 2}, 1, 1, false)
	floor := mustLine(t, vec.Vec2{Y: 5}, vec.Vec2{X: 1}, 0, true)
	offscreen := mustLine(t, vec.Vec2{Y: 20}, vec.Vec2{X: 1}, 0, true)
	farBall := mustCircle(t, vec.Vec2{X: 30, Y: 2}, 1, 1, false)
	edgeBall := mustCircle(t, vec.Vec2{X: 10.5, Y: 2}, 1, 1, false)
	require.NoError(t, w.Add(ball, floor, offscreen, farBall, edgeBall))

	d := &recordingDrawer{}
	phys2d.DrawWorld(w, phys2d.NewBB(0, 0, 10, 10), d)
	require.Equal(t, []string{
		fmt.Sprintf("segment %v 0,5 10,5", floor.ID()),
		fmt.Sprintf("circle %v 2 2 r=1", ball.ID()),
		fmt.Sprintf("circle %v 10.5 2 r=1", edgeBall.ID()),
	}, d.calls)
}

func TestDrawContacts(t *testing.T) {
	d := &recordingDrawer{}
	phys2d.DrawContacts([]phys2d.CollisionEvent{
		{Point: vec.Vec2{X: 1, Y: 2}},
		{Point: vec.Vec2{X: 3, Y: 4}},
	}, d)
	require.Equal(t, []string{"dot 1,2", "dot 3,4"}, d.calls)
}
