package phys2d

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

var colliderCur int = 0

// Shape is the closed set of collider shapes: *Circle and *Line.
type Shape interface {
	Kind() Kind
}

// Object is anything that carries a Collider. *Collider, *Circle and *Line all do.
type Object interface {
	collider() *Collider
}

// Collider holds the body state shared by every shape.
type Collider struct {
	// Class is the shape of the collider, *Circle or *Line.
	Class Shape
	// World is the world this collider is a member of, nil if none.
	World *World

	// Position is the circle center, or a point on the line.
	Position          vec.Vec2
	Velocity          vec.Vec2
	ExtraForce        vec.Vec2
	ExtraAcceleration vec.Vec2

	// PrevPosition is the position before the last integration.
	// It is only recorded while continuous sampling is enabled.
	PrevPosition vec.Vec2

	// EnergyLoss is the fraction (0-1 range) of normal kinetic energy removed on collision.
	// 0 means no loss, 1 means all of it. Values outside the range are clamped.
	EnergyLoss float64

	// OnCollision is called after World.OnCollision for every contact of this collider.
	OnCollision CollisionFunc

	id      int
	mass    float64
	fixed   bool
	hasPrev bool
}

func newCollider(class Shape, pos vec.Vec2, mass float64, fixed bool) (*Collider, error) {
	if !validMass(mass, fixed) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}
	c := &Collider{
		Class:    class,
		Position: pos,
		id:       colliderCur,
		mass:     mass,
		fixed:    fixed,
	}
	colliderCur++
	return c, nil
}

// validMass reports whether mass is finite and, for movable colliders,
// greater than DivEpsilon. Fixed colliders may be massless.
func validMass(mass float64, fixed bool) bool {
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return false
	}
	return fixed || mass > DivEpsilon
}

func (c *Collider) collider() *Collider {
	return c
}

// String returns kind and id of the collider
func (c Collider) String() string {
	return fmt.Sprint(c.Kind(), " ", c.id)
}

// ID returns the identity of the collider. IDs are unique for the process lifetime.
func (c *Collider) ID() int {
	return c.id
}

// Kind returns the shape kind of the collider.
func (c *Collider) Kind() Kind {
	return c.Class.Kind()
}

// Mass returns mass of the collider
func (c *Collider) Mass() float64 {
	return c.mass
}

// SetMass sets mass of the collider. Movable colliders need a positive mass.
func (c *Collider) SetMass(mass float64) error {
	if !validMass(mass, c.fixed) {
		return fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}
	c.mass = mass
	return nil
}

// Fixed reports whether the collider is immovable.
func (c *Collider) Fixed() bool {
	return c.fixed
}

// SetFixed changes the fixed state of the collider.
//
// If the collider belongs to a world, the world moves it between its
// fixed and active collections.
func (c *Collider) SetFixed(fixed bool) error {
	if c.World != nil {
		return c.World.SetFixed(c, fixed)
	}
	if !validMass(c.mass, fixed) {
		return fmt.Errorf("%w: %v has mass %v", ErrInvalidMass, c, c.mass)
	}
	c.fixed = fixed
	return nil
}

// Previous returns the recorded position before the last integration.
func (c *Collider) Previous() (vec.Vec2, bool) {
	return c.PrevPosition, c.hasPrev
}

// Circle returns the circle shape of c.
func (c *Collider) Circle() (*Circle, bool) {
	circle, ok := c.Class.(*Circle)
	return circle, ok
}

// Line returns the line shape of c.
func (c *Collider) Line() (*Line, bool) {
	line, ok := c.Class.(*Line)
	return line, ok
}
