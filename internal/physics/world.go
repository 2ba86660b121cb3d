package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	// WallThickness is the depth of the walls added by SetBounds.
	WallThickness = 64.0

	spaceMargin   = 2 * WallThickness
	spaceCellSize = 32

	// Angular velocity retained per reference frame.
	angularDamping = 0.98
	// Spin picked up per px/s of impact speed.
	impactSpin = 0.004
	// Separation below which a contact is considered to persist.
	contactSlop = 1.0
)

// BoundsLabel is the label of the walls created by SetBounds.
const BoundsLabel = "bounds"

type pairKey struct {
	a, b *Part
}

// World owns bodies and advances them in explicit steps.
type World struct {
	Gravity float64 // px/s², positive is down

	space    *resolv.Space
	bodies   []*Body
	walls    []*Body
	touching map[pairKey]bool
}

// NewWorld creates a world sized for a width x height view.
func NewWorld(width, height, gravity float64) *World {
	sw := int(math.Ceil(width + 2*spaceMargin))
	sh := int(math.Ceil(height + 2*spaceMargin))
	return &World{
		Gravity:  gravity,
		space:    resolv.NewSpace(sw, sh, spaceCellSize, spaceCellSize),
		touching: make(map[pairKey]bool),
	}
}

// Add registers a body with the world.
func (w *World) Add(b *Body) {
	if b.world == w {
		return
	}
	b.world = w
	b.offset = spaceMargin
	for _, p := range b.parts {
		w.space.Add(p.obj)
	}
	b.sync()
	w.bodies = append(w.bodies, b)
}

// Remove unregisters a body.
func (w *World) Remove(b *Body) {
	if b.world != w {
		return
	}
	for _, p := range b.parts {
		w.space.Remove(p.obj)
		for k := range w.touching {
			if k.a == p || k.b == p {
				delete(w.touching, k)
			}
		}
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
	b.offset = 0
	b.sync()
}

// Bodies returns the registered bodies.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// SetBounds surrounds the rectangle with static walls that sit just outside
// it. Calling it again replaces the previous walls.
func (w *World) SetBounds(x, y, width, height float64) {
	for _, wall := range w.walls {
		w.Remove(wall)
	}
	t := WallThickness
	w.walls = []*Body{
		NewStaticBox(BoundsLabel, x+width/2, y-t/2, width+2*t, t),
		NewStaticBox(BoundsLabel, x+width/2, y+height+t/2, width+2*t, t),
		NewStaticBox(BoundsLabel, x-t/2, y+height/2, t, height),
		NewStaticBox(BoundsLabel, x+width+t/2, y+height/2, t, height),
	}
	for _, wall := range w.walls {
		w.Add(wall)
	}
}

// Step advances the simulation by deltaMs milliseconds. Non-positive deltas
// are ignored.
func (w *World) Step(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	dt := deltaMs / 1000
	frames := deltaMs / BaseDeltaMs

	current := make(map[pairKey]bool)
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		prevX, prevY := b.X, b.Y

		if !b.IgnoreGravity {
			b.VY += w.Gravity * dt
		}
		if b.FrictionAir > 0 {
			keep := math.Pow(1-b.FrictionAir, frames)
			b.VX *= keep
			b.VY *= keep
		}
		b.AngularVelocity *= math.Pow(angularDamping, frames)
		b.Rotation += b.AngularVelocity * dt
		b.SetPosition(b.X+b.VX*dt, b.Y+b.VY*dt)

		w.collide(b, prevX, prevY, current)
	}

	// A pair that separated by less than the slop is still in contact, so
	// a body resting on static geometry does not restart contacts.
	for k := range w.touching {
		if !current[k] && k.a.body.world == w && k.b.body.world == w && near(k.a, k.b) {
			current[k] = true
		}
	}
	w.touching = current
}

// collide separates b from the static bodies it overlaps and fires callbacks
// for contacts that started during this step. Dynamic bodies do not collide
// with each other.
func (w *World) collide(b *Body, prevX, prevY float64, current map[pairKey]bool) {
	var started []pairKey
	hit := false
	for _, p := range b.parts {
		c := p.obj.Check(0, 0)
		if c == nil {
			continue
		}
		for _, o := range c.Objects {
			other, ok := o.Data.(*Part)
			if !ok || other.body == b || !other.body.Static {
				continue
			}
			if !p.overlaps(other) {
				continue
			}
			k := pairKey{a: p, b: other}
			if current[k] {
				continue
			}
			current[k] = true
			hit = true
			if !w.touching[k] {
				started = append(started, k)
			}
		}
	}
	if !hit {
		return
	}

	w.separate(b, prevX, prevY)

	for _, k := range started {
		if k.a.OnCollide != nil {
			k.a.OnCollide(Contact{Part: k.a, Other: k.b})
		}
		if k.b.OnCollide != nil {
			k.b.OnCollide(Contact{Part: k.b, Other: k.a})
		}
	}
}

// separate moves b out of static geometry. It first tries undoing the
// step's movement one axis at a time, then both, and finally pushes the
// body out along the axis of least bounding-box overlap.
func (w *World) separate(b *Body, prevX, prevY float64) {
	newX, newY := b.X, b.Y
	impact := math.Hypot(b.VX, b.VY)

	b.SetPosition(newX, prevY)
	if !w.overlapsStatic(b) {
		b.VY = -b.VY * b.Bounce
		b.AngularVelocity -= impact * impactSpin
		return
	}
	b.SetPosition(prevX, newY)
	if !w.overlapsStatic(b) {
		b.VX = -b.VX * b.Bounce
		b.AngularVelocity += impact * impactSpin
		return
	}
	b.SetPosition(prevX, prevY)
	if !w.overlapsStatic(b) {
		b.VX = -b.VX * b.Bounce
		b.VY = -b.VY * b.Bounce
		return
	}

	// Static geometry moved into the body.
	b.SetPosition(newX, newY)
	for i := 0; i < 4 && w.overlapsStatic(b); i++ {
		w.pushOut(b)
	}
}

func (w *World) pushOut(b *Body) {
	for _, p := range b.parts {
		for _, other := range w.bodies {
			if !other.Static || other == b {
				continue
			}
			for _, q := range other.parts {
				if !p.overlaps(q) {
					continue
				}
				pb, qb := p.Bounds(), q.Bounds()
				left := pb.Right() - qb.X
				right := qb.Right() - pb.X
				up := pb.Bottom() - qb.Y
				down := qb.Bottom() - pb.Y
				dx := left
				if right < left {
					dx = -right
				}
				dy := up
				if down < up {
					dy = -down
				}
				if math.Abs(dx) < math.Abs(dy) {
					b.SetPosition(b.X-dx, b.Y)
					if (dx > 0 && b.VX > 0) || (dx < 0 && b.VX < 0) {
						b.VX = -b.VX * b.Bounce
					}
				} else {
					b.SetPosition(b.X, b.Y-dy)
					if (dy > 0 && b.VY > 0) || (dy < 0 && b.VY < 0) {
						b.VY = -b.VY * b.Bounce
					}
				}
				return
			}
		}
	}
}

func (w *World) overlapsStatic(b *Body) bool {
	for _, p := range b.parts {
		c := p.obj.Check(0, 0)
		if c == nil {
			continue
		}
		for _, o := range c.Objects {
			other, ok := o.Data.(*Part)
			if ok && other.body != b && other.body.Static && p.overlaps(other) {
				return true
			}
		}
	}
	return false
}

func near(p, q *Part) bool {
	pb := p.Bounds()
	pb.X -= contactSlop
	pb.Y -= contactSlop
	pb.W += 2 * contactSlop
	pb.H += 2 * contactSlop
	return pb.Intersects(q.Bounds())
}
