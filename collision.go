package phys2d

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

// CollisionEvent describes one detected contact. It is created per contact
// and handed to the resolver and the callbacks; the world does not keep it.
type CollisionEvent struct {
	A, B *Collider
	// Point is the contact point.
	Point vec.Vec2
	// Normal is the unit contact normal, pointing from A toward B.
	Normal vec.Vec2
	// VelocityA and VelocityB are the velocities before the response.
	VelocityA, VelocityB vec.Vec2
}

func newCollisionEvent(a, b *Collider, point, normal vec.Vec2) CollisionEvent {
	return CollisionEvent{
		A:         a,
		B:         b,
		Point:     point,
		Normal:    normal,
		VelocityA: a.Velocity,
		VelocityB: b.Velocity,
	}
}

// IntersectLineSegment intersects the infinite line through linePoint along
// the unit vector lineDir with the segment from segStart to segEnd.
//
// Parallel and coincident pairs report no intersection.
func IntersectLineSegment(linePoint, lineDir, segStart, segEnd vec.Vec2) (vec.Vec2, bool) {
	segDir := segEnd.Sub(segStart)
	det := lineDir.Cross(segDir)
	if math.Abs(det) < DivEpsilon {
		return vec.Vec2{}, false
	}
	diff := segStart.Sub(linePoint)
	t := diff.Cross(segDir) / det
	u := diff.Cross(lineDir) / det
	if u < 0 || u > 1 {
		return vec.Vec2{}, false
	}
	return linePoint.Add(lineDir.Scale(t)), true
}

type collisionFunc func(w *World, a, b *Collider) (CollisionEvent, bool, error)

// indexed by a.Kind() + b.Kind()*kindNum
var builtinCollisionFuncs = [kindNum * kindNum]collisionFunc{
	circleToCircle,
	lineToCircle,
	circleToLine,
	collisionError,
}

// Collide tests a and b for contact using the world's correction settings.
//
// On contact the penetration correction has already been applied to the
// positions; velocities are untouched. The event's A is the line for
// circle-line pairs.
func (w *World) Collide(a, b Object) (CollisionEvent, bool, error) {
	ca, cb := a.collider(), b.collider()
	return builtinCollisionFuncs[ca.Kind()+cb.Kind()*kindNum](w, ca, cb)
}

func collisionError(_ *World, a, b *Collider) (CollisionEvent, bool, error) {
	return CollisionEvent{}, false, fmt.Errorf("%w: %v and %v", ErrUnsupportedCollision, a, b)
}

func circleToCircle(w *World, a, b *Collider) (CollisionEvent, bool, error) {
	c1 := a.Class.(*Circle)
	c2 := b.Class.(*Circle)

	delta := b.Position.Sub(a.Position) // toward b
	radiusSum := c1.radius + c2.radius
	distSq := magSq(delta)
	if distSq >= radiusSum*radiusSum {
		return CollisionEvent{}, false, nil
	}
	normal := Normalize(delta)

	// one side fixed: on the fixed boundary, else radius weighted between the centers
	var point vec.Vec2
	switch {
	case a.fixed:
		point = a.Position.Add(normal.Scale(c1.radius))
	case b.fixed:
		point = b.Position.Sub(normal.Scale(c2.radius))
	default:
		point = a.Position.Add(delta.Scale(c1.radius / radiusSum))
	}

	if w.BasicCorrection {
		switch {
		case a.fixed:
			b.Position = point.Add(normal.Scale(c2.radius))
		case b.fixed:
			a.Position = point.Sub(normal.Scale(c1.radius))
		case w.ExtendedCorrection:
			penetration := radiusSum - math.Sqrt(distSq)
			a.Position = a.Position.Sub(normal.Scale(penetration * (c2.radius / radiusSum)))
			b.Position = b.Position.Add(normal.Scale(penetration * (c1.radius / radiusSum)))
		}
	}
	return newCollisionEvent(a, b, point, normal), true, nil
}

func circleToLine(w *World, a, b *Collider) (CollisionEvent, bool, error) {
	return lineToCircle(w, b, a)
}

func lineToCircle(w *World, a, b *Collider) (CollisionEvent, bool, error) {
	line := a.Class.(*Line)
	circle := b.Class.(*Circle)

	p := a.Position
	d := line.direction

	// swept test: did the center cross the line since the last step
	if w.ContinuousSampling && b.hasPrev {
		if hit, ok := IntersectLineSegment(p, d, b.PrevPosition, b.Position); ok {
			toPrev := b.PrevPosition.Sub(p)
			normal := Normalize(toPrev.Sub(d.Scale(d.Dot(toPrev))))
			if w.BasicCorrection && a.fixed {
				b.Position = hit.Add(normal.Scale(circle.radius))
			}
			return newCollisionEvent(a, b, hit, normal), true, nil
		}
	}

	foot := line.ClosestPoint(b.Position)
	offset := b.Position.Sub(foot)
	distSq := magSq(offset)
	if distSq >= circle.radius*circle.radius {
		return CollisionEvent{}, false, nil
	}

	var normal vec.Vec2
	if distSq == 0 {
		normal = Rotate90(d)
	} else {
		normal = Normalize(offset)
	}

	if w.BasicCorrection && a.fixed {
		b.Position = foot.Add(normal.Scale(circle.radius))
	}
	return newCollisionEvent(a, b, foot, normal), true, nil
}
