package phys2d

import "fmt"

// DivEpsilon is the smallest length or determinant the package divides by.
const DivEpsilon float64 = 1e-10

// Kind is the shape class of a collider; Circle or Line
type Kind uint8

const (
	KindCircle Kind = 0
	KindLine   Kind = 1

	kindNum = 2
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindLine:
		return "Line"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// CollisionFunc is collision event function callback type.
//
// It is called after the velocities of both colliders have been resolved.
// The event still carries the velocities from before the response.
type CollisionFunc func(w *World, ev CollisionEvent)

// StepFunc is called at the start of every World.Step, before integration.
// It may change forces, velocities or fixed state of any collider.
type StepFunc func(w *World, dt float64)
