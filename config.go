package phys2d

import "github.com/setanarut/vec"

// WorldConfig holds the tunable settings of a World.
// Vectors are written as {x: .., y: ..} in YAML.
type WorldConfig struct {
	GlobalForce        vec.Vec2 `yaml:"global_force"`
	GlobalAcceleration vec.Vec2 `yaml:"global_acceleration"`
	BasicCorrection    bool     `yaml:"basic_correction"`
	ExtendedCorrection bool     `yaml:"extended_correction"`
	ContinuousSampling bool     `yaml:"continuous_sampling"`
}

// DefaultWorldConfig returns the settings NewWorld starts with.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		BasicCorrection:    true,
		ExtendedCorrection: false,
		ContinuousSampling: true,
	}
}

// NewWorldFromConfig creates a world and applies cfg to it.
func NewWorldFromConfig(cfg WorldConfig) *World {
	w := NewWorld()
	w.ApplyConfig(cfg)
	return w
}

// ApplyConfig copies cfg into the world. Safe to call between steps.
func (w *World) ApplyConfig(cfg WorldConfig) {
	w.GlobalForce = cfg.GlobalForce
	w.GlobalAcceleration = cfg.GlobalAcceleration
	w.BasicCorrection = cfg.BasicCorrection
	w.ExtendedCorrection = cfg.ExtendedCorrection
	w.ContinuousSampling = cfg.ContinuousSampling
}

// Config returns the current settings of the world.
func (w *World) Config() WorldConfig {
	return WorldConfig{
		GlobalForce:        w.GlobalForce,
		GlobalAcceleration: w.GlobalAcceleration,
		BasicCorrection:    w.BasicCorrection,
		ExtendedCorrection: w.ExtendedCorrection,
		ContinuousSampling: w.ContinuousSampling,
	}
}
