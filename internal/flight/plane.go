package flight

import (
	"math/rand"

	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/physics"
)

// PlaneLabel is the physics label of the plane.
const PlaneLabel = "plane"

// Plane is the player's body. It holds the fly animation and the exhaust
// emitter and reports crashes through the callback it was built with.
type Plane struct {
	Body    *physics.Body
	Anim    *Animation
	Emitter *Emitter

	frameW  float64 // Unscaled frame size
	frameH  float64
	scale   float64
	hoverX  float64
	hoverY  float64
	ascend  float64
	puff    float64
	crashed float64

	state State
	crash func()
}

// NewPlane creates the plane at its hover position and adds it to world.
func NewPlane(world *physics.World, x, y, frameW, frameH float64, parts []physics.Polygon, cfg config.FlightConfig, rng *rand.Rand, crash func()) *Plane {
	body := physics.NewBody(PlaneLabel, x, y, frameW, frameH, cfg.Plane.Scale, parts)
	body.Bounce = cfg.Plane.Bounce
	body.FrictionAir = cfg.Plane.FrictionAir
	world.Add(body)

	p := &Plane{
		Body:    body,
		Anim:    NewAnimation([]int{0, 1, 2}, cfg.Plane.FrameRate, true, 1),
		Emitter: NewEmitter(cfg.Particles, rng),
		frameW:  frameW,
		frameH:  frameH,
		scale:   cfg.Plane.Scale,
		hoverX:  x,
		hoverY:  y,
		ascend:  cfg.Speeds.Ascend,
		puff:    cfg.Particles.PuffFrequency,
		crashed: cfg.Particles.PuffFrequencyCrashed,
		crash:   crash,
	}
	body.OnCollide(p.handleCollide)
	return p
}

// handleCollide runs for every part contact; only a flying plane crashes.
func (p *Plane) handleCollide(physics.Contact) {
	if p.state == Flying && p.crash != nil {
		p.crash()
	}
}

// Position returns the body center.
func (p *Plane) Position() (float64, float64) {
	return p.Body.X, p.Body.Y
}

// Scale returns the sprite scale the body was built with.
func (p *Plane) Scale() float64 {
	return p.scale
}

// State returns the state the plane was last given.
func (p *Plane) State() State {
	return p.state
}

// Ascend gives the plane an upward velocity for a frame of deltaMs.
func (p *Plane) Ascend(deltaMs float64) {
	p.Body.VY = -p.ascend * deltaMs / physics.BaseDeltaMs
}

// OnStateChanged resets the plane for a new flight or switches it to the
// crashed look.
func (p *Plane) OnStateChanged(_, next State) {
	p.state = next
	switch next {
	case Hovering, Flying:
		p.Anim.Play()
		p.Body.IgnoreGravity = next == Hovering
		p.Body.SetPosition(p.hoverX, p.hoverY)
		p.Body.SetVelocity(0, 0)
		p.Body.AngularVelocity = 0
		p.Body.Rotation = 0
		p.Emitter.Follow(p, -p.frameW*0.42, 0)
		p.Emitter.SetAngle(140, 220)
		p.Emitter.SetFrequency(p.puff)
	case Crashed:
		p.Anim.Stop()
		p.Emitter.Follow(p, 0, -p.frameH*0.42)
		p.Emitter.SetAngle(250, 290)
		p.Emitter.SetFrequency(p.crashed)
	}
}

// Update advances the animation and the exhaust.
func (p *Plane) Update(deltaMs float64) {
	p.Anim.Update(deltaMs)
	p.Emitter.Update(deltaMs)
}

func (p *Plane) setTuning(cfg config.FlightConfig) {
	p.ascend = cfg.Speeds.Ascend
	p.puff = cfg.Particles.PuffFrequency
	p.crashed = cfg.Particles.PuffFrequencyCrashed
	p.Body.Bounce = cfg.Plane.Bounce
	p.Body.FrictionAir = cfg.Plane.FrictionAir
}
