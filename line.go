package phys2d

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Line is an infinite line through Position along a unit direction.
type Line struct {
	*Collider
	direction vec.Vec2
}

// NewLine returns a line collider through pos.
//
// direction is normalized; it must not be (near) zero.
func NewLine(pos, direction vec.Vec2, mass float64, fixed bool) (*Line, error) {
	if magSq(direction) < DivEpsilon {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDirection, direction)
	}
	line := &Line{direction: Normalize(direction)}
	c, err := newCollider(line, pos, mass, fixed)
	if err != nil {
		return nil, err
	}
	line.Collider = c
	return line, nil
}

func (line *Line) Kind() Kind {
	return KindLine
}

// Direction returns the unit direction of the line.
func (line *Line) Direction() vec.Vec2 {
	return line.direction
}

// Normal returns the left-hand unit normal of the line.
func (line *Line) Normal() vec.Vec2 {
	return Rotate90(line.direction)
}

// ClipToRect returns the intersections of the line with the rectangle
// whose corners are (0, 0) and (w, h).
func (line *Line) ClipToRect(w, h float64) ClipResult {
	return NewBB(0, 0, w, h).ClipLine(line.Position, line.direction)
}

// ClosestPoint returns the foot of the perpendicular from p onto the line.
func (line *Line) ClosestPoint(p vec.Vec2) vec.Vec2 {
	d := line.direction
	return line.Position.Add(d.Scale(d.Dot(p.Sub(line.Position))))
}
