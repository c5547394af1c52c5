package phys2d_test

import (
	"errors"
	"math"
	"testing"

	"github.com/setanarut/vec"

	"github.com/setanarut/phys2d"
)

func TestNewCircleValidation(t *testing.T) {
	if _, err := phys2d.NewCircle(vec.Vec2{}, 1, 0, false); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("massless movable circle: got %v", err)
	}
	if _, err := phys2d.NewCircle(vec.Vec2{}, 1, 1e-11, false); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("mass below epsilon: got %v", err)
	}
	if _, err := phys2d.NewCircle(vec.Vec2{}, 1, math.Inf(1), false); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("infinite mass: got %v", err)
	}
	if _, err := phys2d.NewCircle(vec.Vec2{}, 1, math.NaN(), true); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("NaN mass on fixed circle: got %v", err)
	}
	if _, err := phys2d.NewLine(vec.Vec2{}, vec.Vec2{X: 1}, math.Inf(1), true); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("infinite mass on fixed line: got %v", err)
	}
	if _, err := phys2d.NewCircle(vec.Vec2{}, 0, 1, false); !errors.Is(err, phys2d.ErrInvalidRadius) {
		t.Errorf("zero radius: got %v", err)
	}
	if _, err := phys2d.NewCircle(vec.Vec2{}, -1, 1, false); !errors.Is(err, phys2d.ErrConstruction) {
		t.Errorf("negative radius should be a construction error: got %v", err)
	}
	c, err := phys2d.NewCircle(vec.Vec2{X: 1, Y: 2}, 2, 0, true)
	if err != nil {
		t.Fatalf("fixed massless circle: %v", err)
	}
	if c.Radius() != 2 || c.Position != (vec.Vec2{X: 1, Y: 2}) || !c.Fixed() {
		t.Errorf("unexpected circle %v radius %v", c.Position, c.Radius())
	}
	if c.Velocity != (vec.Vec2{}) || c.ExtraForce != (vec.Vec2{}) || c.ExtraAcceleration != (vec.Vec2{}) {
		t.Error("vectors should start at zero")
	}
	if _, ok := c.Previous(); ok {
		t.Error("previous position should be absent before the first step")
	}
}

func TestNewLineValidation(t *testing.T) {
	if _, err := phys2d.NewLine(vec.Vec2{}, vec.Vec2{}, 0, true); !errors.Is(err, phys2d.ErrInvalidDirection) {
		t.Errorf("zero direction: got %v", err)
	}
	if _, err := phys2d.NewLine(vec.Vec2{}, vec.Vec2{X: 1}, 0, false); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("massless movable line: got %v", err)
	}
	line, err := phys2d.NewLine(vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 3, Y: 4}, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if line.Direction() != (vec.Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("direction should be normalized, got %v", line.Direction())
	}
	if line.Kind() != phys2d.KindLine || line.Collider.Kind() != phys2d.KindLine {
		t.Error("wrong kind")
	}
}

func TestColliderIdentity(t *testing.T) {
	a, _ := phys2d.NewCircle(vec.Vec2{}, 1, 1, false)
	b, _ := phys2d.NewCircle(vec.Vec2{}, 1, 1, false)
	if a.ID() == b.ID() {
		t.Error("ids must be unique")
	}
	if circle, ok := a.Collider.Circle(); !ok || circle != a {
		t.Error("Circle() should return the shape")
	}
	if _, ok := a.Collider.Line(); ok {
		t.Error("a circle is not a line")
	}
}

func TestColliderSetFixedOutsideWorld(t *testing.T) {
	c, _ := phys2d.NewCircle(vec.Vec2{}, 1, 0, true)
	if err := c.SetFixed(false); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("releasing a massless collider: got %v", err)
	}
	if err := c.SetMass(2); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFixed(false); err != nil || c.Fixed() {
		t.Errorf("SetFixed(false) = %v, fixed %v", err, c.Fixed())
	}
	if err := c.SetMass(0); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("zero mass on movable collider: got %v", err)
	}
	if err := c.SetMass(math.Inf(1)); !errors.Is(err, phys2d.ErrInvalidMass) {
		t.Errorf("infinite mass: got %v", err)
	}
	if c.Mass() != 2 {
		t.Errorf("rejected mass must not be stored, got %v", c.Mass())
	}
}
