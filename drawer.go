package phys2d

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Drawer is implemented by renderers. Positions are in world units; c is
// the collider being drawn so the renderer can look up its own styling.
type Drawer interface {
	DrawCircle(pos vec.Vec2, radius float64, c *Collider)
	DrawSegment(a, b vec.Vec2, c *Collider)
	DrawDot(pos vec.Vec2)
}

// DrawCollider draws a collider with the drawer implementation.
//
// Circles whose bounding box misses view are skipped. Lines are clipped to
// view; a line that misses or only touches it is skipped.
func DrawCollider(c *Collider, view BB, drawer Drawer) {
	switch shape := c.Class.(type) {
	case *Circle:
		if !shape.BB().Intersects(view) {
			return
		}
		drawer.DrawCircle(c.Position, shape.radius, c)
	case *Line:
		res := view.ClipLine(c.Position, shape.direction)
		if res.Count < 2 {
			return
		}
		drawer.DrawSegment(res.Points[0], res.Points[1], c)
	default:
		panic(fmt.Sprintf("Unknown shape type: %T", c.Class))
	}
}

// DrawWorld draws all colliders in world with the drawer implementation, fixed ones first.
func DrawWorld(w *World, view BB, drawer Drawer) {
	for _, c := range w.Colliders() {
		DrawCollider(c, view, drawer)
	}
}

// DrawContacts draws the contact points of events as dots.
func DrawContacts(events []CollisionEvent, drawer Drawer) {
	for _, ev := range events {
		drawer.DrawDot(ev.Point)
	}
}
