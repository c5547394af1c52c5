package phys2d

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/setanarut/vec"
)

// World is the simulation context. It owns the fixed and active collider
// collections and advances them with Step.
type World struct {
	// GlobalForce is applied to every active collider, divided by its mass.
	GlobalForce vec.Vec2
	// GlobalAcceleration is added to every active collider (gravity).
	GlobalAcceleration vec.Vec2

	// BasicCorrection moves movable colliders out of fixed ones on contact.
	// It keeps most scenes free of visible penetration.
	BasicCorrection bool
	// ExtendedCorrection also separates two movable circles, split by radius.
	// It only applies while BasicCorrection is enabled. May misbehave in extreme scenes.
	ExtendedCorrection bool
	// ContinuousSampling tests the path of each circle center since the last step
	// against lines, so fast circles cannot tunnel through them.
	ContinuousSampling bool

	// OnCollision is called for every contact, before the colliders' own callbacks.
	OnCollision CollisionFunc
	// OnStep is called at the start of every step.
	OnStep StepFunc

	fixed  []*Collider
	active []*Collider
	stamp  uint
	logger *log.Logger
}

// NewWorld allocates and initializes a World with basic correction and
// continuous sampling enabled.
func NewWorld() *World {
	return &World{
		BasicCorrection:    true,
		ExtendedCorrection: false,
		ContinuousSampling: true,
		fixed:              []*Collider{},
		active:             []*Collider{},
		logger:             log.Default(),
	}
}

// SetLogger replaces the world logger. A nil logger restores log.Default().
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	w.logger = l
}

// Stamp returns the number of completed steps.
func (w *World) Stamp() uint {
	return w.stamp
}

// FixedCount returns the total number of fixed colliders in world
func (w *World) FixedCount() int {
	return len(w.fixed)
}

// ActiveCount returns the total number of movable colliders in world
func (w *World) ActiveCount() int {
	return len(w.active)
}

// ActiveColliders returns a copy of the active collection.
func (w *World) ActiveColliders() []*Collider {
	return slices.Clone(w.active)
}

// Colliders returns all colliders, fixed ones first.
func (w *World) Colliders() []*Collider {
	return slices.Concat(w.fixed, w.active)
}

// Add inserts colliders into the fixed or active collection according to
// their fixed flag. If any of them is already in a world, or appears twice
// in objs, nothing is added.
func (w *World) Add(objs ...Object) error {
	seen := make(map[*Collider]bool, len(objs))
	for _, obj := range objs {
		c := obj.collider()
		if c.World != nil {
			return fmt.Errorf("%w: %v is already in a world", ErrMembership, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: %v given twice", ErrMembership, c)
		}
		seen[c] = true
	}
	for _, obj := range objs {
		c := obj.collider()
		c.World = w
		if c.fixed {
			w.fixed = append(w.fixed, c)
		} else {
			w.active = append(w.active, c)
		}
		w.lg().Debug("collider added", "collider", c, "fixed", c.fixed)
	}
	return nil
}

// Remove removes a collider from the collection it currently belongs to.
func (w *World) Remove(obj Object) error {
	c := obj.collider()
	if err := w.unlink(c); err != nil {
		return err
	}
	c.World = nil
	c.hasPrev = false
	w.lg().Debug("collider removed", "collider", c)
	return nil
}

// SetFixed changes the fixed state of a member collider and moves it
// between the two collections. Unchanged state is a no-op.
func (w *World) SetFixed(obj Object, fixed bool) error {
	c := obj.collider()
	if c.World != w {
		return fmt.Errorf("%w: %v is not in this world", ErrMembership, c)
	}
	if c.fixed == fixed {
		return nil
	}
	if !validMass(c.mass, fixed) {
		return fmt.Errorf("%w: %v has mass %v", ErrInvalidMass, c, c.mass)
	}
	if err := w.unlink(c); err != nil {
		return err
	}
	c.fixed = fixed
	if fixed {
		w.fixed = append(w.fixed, c)
	} else {
		w.active = append(w.active, c)
	}
	w.lg().Debug("collider fixed state changed", "collider", c, "fixed", fixed)
	return nil
}

func (w *World) unlink(c *Collider) error {
	list := &w.active
	if c.fixed {
		list = &w.fixed
	}
	i := slices.Index(*list, c)
	if i < 0 {
		return fmt.Errorf("%w: %v not found (fixed=%v)", ErrMembership, c, c.fixed)
	}
	*list = slices.Delete(*list, i, i+1)
	return nil
}

// Step advances the world by dt.
//
// The order is fixed: OnStep, integration of every active collider, then
// collision handling of all (fixed, active) pairs followed by all
// (active, active) pairs with i < j. Each contact is resolved before the
// next pair is tested.
//
// Collection changes made by callbacks during collision handling take
// effect on the next step. Until then, colliders removed mid-step are
// skipped and pairs that are now fixed on both sides are not tested.
func (w *World) Step(dt float64) error {
	if w.OnStep != nil {
		w.OnStep(w, dt)
	}

	for _, c := range w.active {
		if w.ContinuousSampling {
			c.PrevPosition = c.Position
			c.hasPrev = true
		}
		if err := w.integrate(c, dt); err != nil {
			w.lg().Debug("step failed", "stamp", w.stamp, "err", err)
			return err
		}
	}

	if err := w.collide(); err != nil {
		w.lg().Debug("step failed", "stamp", w.stamp, "err", err)
		return err
	}
	w.stamp++
	return nil
}

func (w *World) integrate(c *Collider, dt float64) error {
	if c.fixed {
		return nil
	}
	acc, err := Div(w.GlobalForce.Add(c.ExtraForce), c.mass)
	if err != nil {
		return fmt.Errorf("integrate %v: %w", c, err)
	}
	acc = acc.Add(c.ExtraAcceleration.Add(w.GlobalAcceleration))
	c.Velocity = c.Velocity.Add(acc.Scale(dt))
	c.Position = c.Position.Add(c.Velocity.Scale(dt))
	return nil
}

func (w *World) collide() error {
	fixed := slices.Clone(w.fixed)
	active := slices.Clone(w.active)

	for _, a := range fixed {
		for _, b := range active {
			if err := w.handlePair(a, b); err != nil {
				return err
			}
		}
	}
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			if err := w.handlePair(active[i], active[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *World) handlePair(a, b *Collider) error {
	// either side may have been removed or frozen by a callback earlier in the scan
	if a.World != w || b.World != w || (a.fixed && b.fixed) {
		return nil
	}
	ev, ok, err := w.Collide(a, b)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	w.lg().Debug("contact", "a", ev.A, "b", ev.B, "point", ev.Point, "normal", ev.Normal)
	w.resolve(ev)
	return nil
}

// resolve splits both velocities into normal and tangential parts, removes
// each collider's energy loss from its normal part and exchanges momentum
// along the normal.
func (w *World) resolve(ev CollisionEvent) {
	a, b := ev.A, ev.B
	normal := ev.Normal
	tangent := Rotate90(normal)

	// kinetic energy retention
	pa := retention(a.EnergyLoss)
	pb := retention(b.EnergyLoss)

	v1n := a.Velocity.Dot(normal) * pa
	v1t := a.Velocity.Dot(tangent)
	v2n := b.Velocity.Dot(normal) * pb
	v2t := b.Velocity.Dot(tangent)

	switch {
	case a.fixed:
		// bounce, and lose the energy absorbed by the fixed side
		v2n = -v2n * pa
	case b.fixed:
		v1n = -v1n * pb
	default:
		m1, m2 := a.mass, b.mass
		sum := m1 + m2
		v1n, v2n = (v1n*(m1-m2)+2*m2*v2n)/sum, (v2n*(m2-m1)+2*m1*v1n)/sum
	}

	if !a.fixed {
		a.Velocity = normal.Scale(v1n).Add(tangent.Scale(v1t))
	}
	if !b.fixed {
		b.Velocity = normal.Scale(v2n).Add(tangent.Scale(v2t))
	}

	if w.OnCollision != nil {
		w.OnCollision(w, ev)
	}
	if a.OnCollision != nil {
		a.OnCollision(w, ev)
	}
	if b.OnCollision != nil {
		b.OnCollision(w, ev)
	}
}

// retention is the kept fraction of normal velocity for an energy loss,
// clamped to [0, 1].
func retention(loss float64) float64 {
	return 1 - min(max(loss, 0), 1)
}

func (w *World) lg() *log.Logger {
	if w.logger == nil {
		return log.Default()
	}
	return w.logger
}
