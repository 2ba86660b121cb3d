// Package config provides YAML/TOML-based tuning for the flight game:
// embedded defaults, a file search path and hot reloading.
package config

import (
	"errors"
	"fmt"
)

// FlightConfig contains every tuning value of the game.
type FlightConfig struct {
	World     WorldConfig    `yaml:"world" toml:"world"`
	Speeds    SpeedConfig    `yaml:"speeds" toml:"speeds"`
	Rocks     RockConfig     `yaml:"rocks" toml:"rocks"`
	Plane     PlaneConfig    `yaml:"plane" toml:"plane"`
	Particles ParticleConfig `yaml:"particles" toml:"particles"`
	Timing    TimingConfig   `yaml:"timing" toml:"timing"`
	Loading   LoadingConfig  `yaml:"loading" toml:"loading"`
	Assets    AssetConfig    `yaml:"assets" toml:"assets"`
}

// WorldConfig defines the logical play field.
type WorldConfig struct {
	Width   float64 `yaml:"width" toml:"width"`     // Logical screen width in pixels
	Height  float64 `yaml:"height" toml:"height"`   // Logical screen height in pixels
	Gravity float64 `yaml:"gravity" toml:"gravity"` // Downward acceleration in px/s²
}

// SpeedConfig defines horizontal and vertical speeds.
type SpeedConfig struct {
	Scroll     float64 `yaml:"scroll" toml:"scroll"`         // Ground and rock speed in px/s
	Background float64 `yaml:"background" toml:"background"` // Mountains and clouds in px/s
	Ascend     float64 `yaml:"ascend" toml:"ascend"`         // Upward speed given per ascend
}

// RockConfig defines the obstacle layout.
type RockConfig struct {
	Gap      float64 `yaml:"gap" toml:"gap"`           // Vertical play in the pair offset
	Distance float64 `yaml:"distance" toml:"distance"` // Horizontal distance between pairs
}

// PlaneConfig defines the player body.
type PlaneConfig struct {
	Scale       float64 `yaml:"scale" toml:"scale"`
	Bounce      float64 `yaml:"bounce" toml:"bounce"`
	FrictionAir float64 `yaml:"friction_air" toml:"friction_air"`
	HoverX      float64 `yaml:"hover_x" toml:"hover_x"` // Fraction of world width
	HoverY      float64 `yaml:"hover_y" toml:"hover_y"` // Fraction of world height
	FrameRate   float64 `yaml:"frame_rate" toml:"frame_rate"`
}

// ParticleConfig defines the exhaust and smoke emitter.
type ParticleConfig struct {
	PuffFrequency        float64 `yaml:"puff_frequency" toml:"puff_frequency"`                 // ms between puffs in flight
	PuffFrequencyCrashed float64 `yaml:"puff_frequency_crashed" toml:"puff_frequency_crashed"` // ms between puffs after a crash
	Lifespan             float64 `yaml:"lifespan" toml:"lifespan"`                             // ms
	SpeedMin             float64 `yaml:"speed_min" toml:"speed_min"`
	SpeedMax             float64 `yaml:"speed_max" toml:"speed_max"`
	AlphaStart           float64 `yaml:"alpha_start" toml:"alpha_start"`
	ScaleStart           float64 `yaml:"scale_start" toml:"scale_start"`
	ScaleEnd             float64 `yaml:"scale_end" toml:"scale_end"`
	MaxParticles         int     `yaml:"max_particles" toml:"max_particles"`
}

// TimingConfig defines frame and cooldown timing.
type TimingConfig struct {
	CrashCooldown float64 `yaml:"crash_cooldown_ms" toml:"crash_cooldown_ms"`
	MaxDelta      float64 `yaml:"max_delta_ms" toml:"max_delta_ms"`
}

// LoadingConfig defines the loading indicator.
type LoadingConfig struct {
	Text     string  `yaml:"text" toml:"text"`
	DotDelay float64 `yaml:"dot_delay_ms" toml:"dot_delay_ms"`
	MaxDots  int     `yaml:"max_dots" toml:"max_dots"`
}

// AssetConfig defines where images and shapes are read from.
type AssetConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// Validate reports the first tuning value that cannot produce a playable game.
func (c FlightConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("speeds.scroll", c.Speeds.Scroll)
	positive("speeds.ascend", c.Speeds.Ascend)
	positive("rocks.distance", c.Rocks.Distance)
	positive("plane.scale", c.Plane.Scale)
	positive("plane.frame_rate", c.Plane.FrameRate)
	positive("particles.puff_frequency", c.Particles.PuffFrequency)
	positive("particles.puff_frequency_crashed", c.Particles.PuffFrequencyCrashed)
	positive("particles.lifespan", c.Particles.Lifespan)
	positive("timing.max_delta_ms", c.Timing.MaxDelta)
	positive("loading.dot_delay_ms", c.Loading.DotDelay)

	if c.Speeds.Background < 0 {
		errs = append(errs, fmt.Errorf("speeds.background must not be negative, got %v", c.Speeds.Background))
	}
	if c.Rocks.Gap < 0 {
		errs = append(errs, fmt.Errorf("rocks.gap must not be negative, got %v", c.Rocks.Gap))
	}
	if c.Timing.CrashCooldown < 0 {
		errs = append(errs, fmt.Errorf("timing.crash_cooldown_ms must not be negative, got %v", c.Timing.CrashCooldown))
	}
	if c.Particles.SpeedMax < c.Particles.SpeedMin {
		errs = append(errs, fmt.Errorf("particles.speed_max (%v) is below speed_min (%v)", c.Particles.SpeedMax, c.Particles.SpeedMin))
	}
	if c.Particles.MaxParticles <= 0 {
		errs = append(errs, fmt.Errorf("particles.max_particles must be positive, got %d", c.Particles.MaxParticles))
	}
	if c.Loading.MaxDots < 0 {
		errs = append(errs, fmt.Errorf("loading.max_dots must not be negative, got %d", c.Loading.MaxDots))
	}

	return errors.Join(errs...)
}
