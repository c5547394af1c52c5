// Package scenario builds simulation worlds from YAML descriptions.
//
// Per-collider annotations such as names and colors are kept in side tables
// keyed by collider id; the physics types never carry them.
package scenario

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/setanarut/vec"

	"github.com/setanarut/phys2d"
)

// File is the YAML form of a scenario.
type File struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	World       phys2d.WorldConfig `yaml:"world"`
	View        ViewSpec           `yaml:"view"`
	Colliders   []ColliderSpec     `yaml:"colliders"`

	// Bounds freezes movable circles that leave the rectangle.
	Bounds *BoundsSpec `yaml:"bounds"`
	// Magnetic applies a Lorentz-style force to the named colliders every step.
	Magnetic *MagneticSpec `yaml:"magnetic"`
	// CountCollisions names the colliders whose contacts are counted.
	CountCollisions []string `yaml:"count_collisions"`
}

// ViewSpec is the size of the region viewers show, in world units, with
// its lower-left corner at the origin.
type ViewSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ColliderSpec describes one collider.
type ColliderSpec struct {
	Kind              string   `yaml:"kind"` // circle or line
	Name              string   `yaml:"name"`
	Position          vec.Vec2 `yaml:"position"`
	Radius            float64  `yaml:"radius"`
	Direction         vec.Vec2 `yaml:"direction"`
	Mass              float64  `yaml:"mass"`
	Fixed             bool     `yaml:"fixed"`
	Velocity          vec.Vec2 `yaml:"velocity"`
	EnergyLoss        float64  `yaml:"energy_loss"`
	ExtraForce        vec.Vec2 `yaml:"extra_force"`
	ExtraAcceleration vec.Vec2 `yaml:"extra_acceleration"`
	Color             string   `yaml:"color"`
}

type BoundsSpec struct {
	L     float64 `yaml:"l"`
	B     float64 `yaml:"b"`
	R     float64 `yaml:"r"`
	T     float64 `yaml:"t"`
	Color string  `yaml:"color"`
}

type MagneticSpec struct {
	Charge  float64  `yaml:"charge"`
	Scale   float64  `yaml:"scale"`
	Targets []string `yaml:"targets"`
}

const (
	defaultViewWidth  = 40
	defaultViewHeight = 25
)

// Scenario is a built world plus the side tables viewers and runners use.
type Scenario struct {
	Name        string
	Description string
	World       *phys2d.World
	// View is the region viewers show.
	View phys2d.BB

	// Names, Colors, Frozen and Counts are keyed by collider id.
	Names  map[int]string
	Colors map[int]string
	Frozen map[int]bool
	Counts map[int]int

	byName map[string]*phys2d.Collider
	logger *log.Logger
}

// Build creates the world described by f. A nil logger uses log.Default().
func Build(f File, logger *log.Logger) (*Scenario, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	w := phys2d.NewWorldFromConfig(f.World)
	w.SetLogger(logger)

	view := f.View
	if view.Width <= 0 {
		view.Width = defaultViewWidth
	}
	if view.Height <= 0 {
		view.Height = defaultViewHeight
	}

	s := &Scenario{
		Name:        f.Name,
		Description: f.Description,
		World:       w,
		View:        phys2d.NewBB(0, 0, view.Width, view.Height),
		Names:       map[int]string{},
		Colors:      map[int]string{},
		Frozen:      map[int]bool{},
		Counts:      map[int]int{},
		byName:      map[string]*phys2d.Collider{},
		logger:      logger,
	}

	for i, spec := range f.Colliders {
		c, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("collider %d (%s): %w", i, spec.Name, err)
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", spec.Kind, i)
		}
		s.Names[c.ID()] = name
		if spec.Color != "" {
			s.Colors[c.ID()] = spec.Color
		}
		s.byName[name] = c
		if err := w.Add(c); err != nil {
			return nil, err
		}
	}

	var steps []phys2d.StepFunc
	if f.Bounds != nil {
		steps = append(steps, s.boundsRule(*f.Bounds))
	}
	if f.Magnetic != nil {
		steps = append(steps, s.magneticRule(*f.Magnetic))
	}
	if len(steps) > 0 {
		w.OnStep = func(w *phys2d.World, dt float64) {
			for _, step := range steps {
				step(w, dt)
			}
		}
	}

	for _, name := range f.CountCollisions {
		c := s.byName[name]
		id := c.ID()
		c.OnCollision = func(_ *phys2d.World, _ phys2d.CollisionEvent) {
			s.Counts[id]++
			s.logger.Debug("counted collision", "name", s.Names[id], "count", s.Counts[id])
		}
	}

	logger.Debug("scenario built", "name", f.Name, "fixed", w.FixedCount(), "active", w.ActiveCount())
	return s, nil
}

// Validate checks the file for unknown kinds, out of range values and
// references to missing colliders. Collider geometry is validated by the
// phys2d constructors during Build.
func (f File) Validate() error {
	names := map[string]bool{}
	for i, spec := range f.Colliders {
		switch spec.Kind {
		case "circle", "line":
		default:
			return fmt.Errorf("collider %d: unknown kind %q", i, spec.Kind)
		}
		if spec.EnergyLoss < 0 || spec.EnergyLoss > 1 {
			return fmt.Errorf("collider %d: energy_loss %v out of range [0, 1]", i, spec.EnergyLoss)
		}
		if spec.Name == "" {
			continue
		}
		if names[spec.Name] {
			return fmt.Errorf("collider %d: duplicate name %q", i, spec.Name)
		}
		names[spec.Name] = true
	}
	if f.Magnetic != nil {
		for _, t := range f.Magnetic.Targets {
			if !names[t] {
				return fmt.Errorf("magnetic: unknown collider %q", t)
			}
		}
	}
	for _, n := range f.CountCollisions {
		if !names[n] {
			return fmt.Errorf("count_collisions: unknown collider %q", n)
		}
	}
	return nil
}

func (spec ColliderSpec) build() (*phys2d.Collider, error) {
	var c *phys2d.Collider
	switch spec.Kind {
	case "circle":
		circle, err := phys2d.NewCircle(spec.Position, spec.Radius, spec.Mass, spec.Fixed)
		if err != nil {
			return nil, err
		}
		c = circle.Collider
	case "line":
		line, err := phys2d.NewLine(spec.Position, spec.Direction, spec.Mass, spec.Fixed)
		if err != nil {
			return nil, err
		}
		c = line.Collider
	default:
		return nil, fmt.Errorf("unknown kind %q", spec.Kind)
	}
	c.Velocity = spec.Velocity
	c.EnergyLoss = spec.EnergyLoss
	c.ExtraForce = spec.ExtraForce
	c.ExtraAcceleration = spec.ExtraAcceleration
	return c, nil
}

// Collider returns the collider with the given name.
func (s *Scenario) Collider(name string) (*phys2d.Collider, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// NameOf returns the scenario name of c.
func (s *Scenario) NameOf(c *phys2d.Collider) string {
	if name, ok := s.Names[c.ID()]; ok {
		return name
	}
	return c.String()
}

// ColorOf returns the color name of c, empty for the default color.
func (s *Scenario) ColorOf(c *phys2d.Collider) string {
	return s.Colors[c.ID()]
}

// boundsRule freezes movable circles whose center left the box.
func (s *Scenario) boundsRule(b BoundsSpec) phys2d.StepFunc {
	box := phys2d.NewBB(b.L, b.B, b.R, b.T)
	return func(w *phys2d.World, _ float64) {
		for _, c := range w.ActiveColliders() {
			if c.Kind() != phys2d.KindCircle || s.Frozen[c.ID()] || box.ContainsVect(c.Position) {
				continue
			}
			s.logger.Info("out of bounds", "name", s.NameOf(c), "x", c.Position.X, "y", c.Position.Y)
			s.Frozen[c.ID()] = true
			if b.Color != "" {
				s.Colors[c.ID()] = b.Color
			}
			if err := w.SetFixed(c, true); err != nil {
				s.logger.Error("could not freeze collider", "name", s.NameOf(c), "err", err)
			}
		}
	}
}

// magneticRule sets a force perpendicular to the velocity of each target.
func (s *Scenario) magneticRule(m MagneticSpec) phys2d.StepFunc {
	targets := make([]*phys2d.Collider, 0, len(m.Targets))
	for _, name := range m.Targets {
		targets = append(targets, s.byName[name])
	}
	return func(_ *phys2d.World, _ float64) {
		for _, c := range targets {
			k := m.Charge * m.Charge / c.Mass() * m.Scale
			c.ExtraForce = phys2d.Rotate90(c.Velocity).Scale(k)
		}
	}
}
