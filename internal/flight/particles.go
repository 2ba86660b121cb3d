package flight

import (
	"math/rand"

	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/core"
)

// Particle is one puff of smoke.
type Particle struct {
	X, Y   float64 // World position
	VX, VY float64 // Velocity in px/s
	Age    float64 // ms since emission
	Life   float64 // Lifespan in ms
	alive  bool
}

// Progress returns how far through its life the particle is, 0..1.
func (p Particle) Progress() float64 {
	if p.Life <= 0 {
		return 1
	}
	return core.ClampF(p.Age/p.Life, 0, 1)
}

// Positioner is anything an emitter can follow.
type Positioner interface {
	Position() (x, y float64)
}

// Emitter releases particles at a fixed frequency from a followed target.
// Particles live in a fixed set of slots; when every slot is busy new puffs
// are dropped.
type Emitter struct {
	lifespan   float64
	speedMin   float64
	speedMax   float64
	alphaStart float64
	scaleStart float64
	scaleEnd   float64

	frequency float64 // ms between emissions
	angleMin  float64 // Degrees, clockwise from +X
	angleMax  float64
	target    Positioner
	offsetX   float64
	offsetY   float64
	counter   float64

	slots []Particle
	rng   *rand.Rand
	On    bool
}

// NewEmitter creates an emitter from the particle settings.
func NewEmitter(cfg config.ParticleConfig, rng *rand.Rand) *Emitter {
	return &Emitter{
		lifespan:   cfg.Lifespan,
		speedMin:   cfg.SpeedMin,
		speedMax:   cfg.SpeedMax,
		alphaStart: cfg.AlphaStart,
		scaleStart: cfg.ScaleStart,
		scaleEnd:   cfg.ScaleEnd,
		frequency:  cfg.PuffFrequency,
		angleMin:   160,
		angleMax:   200,
		slots:      make([]Particle, max(cfg.MaxParticles, 1)),
		rng:        rng,
		On:         true,
	}
}

// Follow makes the emitter track target with a fixed offset.
func (e *Emitter) Follow(target Positioner, offsetX, offsetY float64) {
	e.target = target
	e.offsetX = offsetX
	e.offsetY = offsetY
}

// Offset returns the follow offset.
func (e *Emitter) Offset() (float64, float64) {
	return e.offsetX, e.offsetY
}

// SetAngle sets the emission angle range in degrees.
func (e *Emitter) SetAngle(minDeg, maxDeg float64) {
	e.angleMin = minDeg
	e.angleMax = maxDeg
}

// Angle returns the emission angle range in degrees.
func (e *Emitter) Angle() (float64, float64) {
	return e.angleMin, e.angleMax
}

// SetFrequency sets the ms between emissions.
func (e *Emitter) SetFrequency(ms float64) {
	e.frequency = ms
}

// Frequency returns the ms between emissions.
func (e *Emitter) Frequency() float64 {
	return e.frequency
}

// Update ages live particles and emits new ones.
func (e *Emitter) Update(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	dt := deltaMs / 1000
	for i := range e.slots {
		p := &e.slots[i]
		if !p.alive {
			continue
		}
		p.Age += deltaMs
		if p.Age >= p.Life {
			p.alive = false
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}

	if !e.On || e.target == nil || e.frequency <= 0 {
		return
	}
	e.counter -= deltaMs
	for e.counter <= 0 {
		e.emit()
		e.counter += e.frequency
	}
}

func (e *Emitter) emit() {
	slot := -1
	for i := range e.slots {
		if !e.slots[i].alive {
			slot = i
			break
		}
	}
	if slot < 0 {
		return
	}

	x, y := e.target.Position()
	angle := e.angleMin + e.rng.Float64()*(e.angleMax-e.angleMin)
	speed := e.speedMin + e.rng.Float64()*(e.speedMax-e.speedMin)
	v := core.FromAngle(angle, speed)
	e.slots[slot] = Particle{
		X:     x + e.offsetX,
		Y:     y + e.offsetY,
		VX:    v.X,
		VY:    v.Y,
		Life:  e.lifespan,
		alive: true,
	}
}

// Alpha returns the particle's opacity, fading to zero.
func (e *Emitter) Alpha(p Particle) float64 {
	return core.Lerp(e.alphaStart, 0, p.Progress())
}

// Scale returns the particle's size multiplier.
func (e *Emitter) Scale(p Particle) float64 {
	return core.Lerp(e.scaleStart, e.scaleEnd, p.Progress())
}

// Each calls fn for every live particle.
func (e *Emitter) Each(fn func(p Particle)) {
	for _, p := range e.slots {
		if p.alive {
			fn(p)
		}
	}
}

// Alive returns the number of live particles.
func (e *Emitter) Alive() int {
	n := 0
	for _, p := range e.slots {
		if p.alive {
			n++
		}
	}
	return n
}

// Capacity returns the number of particle slots.
func (e *Emitter) Capacity() int {
	return len(e.slots)
}
