package phys2d

import (
	"fmt"

	"github.com/setanarut/vec"
)

type Circle struct {
	*Collider
	radius float64
}

// NewCircle returns a circle collider centered at pos.
//
// Movable circles need mass > DivEpsilon. Fixed circles may have zero mass.
func NewCircle(pos vec.Vec2, radius, mass float64, fixed bool) (*Circle, error) {
	if !(radius > DivEpsilon) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	circle := &Circle{radius: radius}
	c, err := newCollider(circle, pos, mass, fixed)
	if err != nil {
		return nil, err
	}
	circle.Collider = c
	return circle, nil
}

func (circle *Circle) Kind() Kind {
	return KindCircle
}

func (circle *Circle) Radius() float64 {
	return circle.radius
}

// BB returns the bounding box of the circle at its current position.
func (circle *Circle) BB() BB {
	return NewBBForCircle(circle.Position, circle.radius)
}
