package config

import (
	_ "embed"
)

//go:embed defaults/flight.yaml
var defaultFlightYAML []byte

// DefaultFlightConfig returns the built-in tuning.
func DefaultFlightConfig() FlightConfig {
	return FlightConfig{
		World: WorldConfig{
			Width:   800,
			Height:  480,
			Gravity: 1000,
		},
		Speeds: SpeedConfig{
			Scroll:     200,
			Background: 40,
			Ascend:     450,
		},
		Rocks: RockConfig{
			Gap:      120,
			Distance: 200,
		},
		Plane: PlaneConfig{
			Scale:       0.5,
			Bounce:      0.25,
			FrictionAir: 0,
			HoverX:      0.5,
			HoverY:      0.4,
			FrameRate:   20,
		},
		Particles: ParticleConfig{
			PuffFrequency:        150,
			PuffFrequencyCrashed: 400,
			Lifespan:             750,
			SpeedMin:             40,
			SpeedMax:             80,
			AlphaStart:           0.5,
			ScaleStart:           1,
			ScaleEnd:             2,
			MaxParticles:         32,
		},
		Timing: TimingConfig{
			CrashCooldown: 1000,
			MaxDelta:      100,
		},
		Loading: LoadingConfig{
			Text:     "Loading",
			DotDelay: 200,
			MaxDots:  3,
		},
		Assets: AssetConfig{
			Path: "assets",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultFlightYAML
}
