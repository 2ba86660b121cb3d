// Package physics is a small rigid-body layer for the flight game. Bodies are
// made of convex parts whose overlap tests are delegated to resolv; the world
// integrates velocities, applies gravity and separates dynamic bodies from
// static ones. It is stepped explicitly with the frame delta.
package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/rockflight/internal/core"
)

// BaseDeltaMs is the reference frame duration that per-frame tuning values
// (ascend impulse, angular damping) are expressed against.
const BaseDeltaMs = 1000.0 / 60.0

// Polygon is a convex outline in sprite-local pixels (origin top-left).
type Polygon []core.Vec2

// Rectangle returns a rectangular polygon of the given size.
func Rectangle(w, h float64) Polygon {
	return Polygon{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}

// Contact is passed to collision callbacks.
type Contact struct {
	Part  *Part // The part the callback was registered on
	Other *Part // The part it touched
}

// Part is one convex collider of a body. The resolv object covers the
// part's bounds for the broadphase; the polygon is the narrowphase shape.
type Part struct {
	body      *Body
	obj       *resolv.Object
	shape     *resolv.ConvexPolygon
	local     []core.Vec2 // Outline relative to the body center
	minX      float64 // Local bounds relative to the body center
	minY      float64
	maxX      float64
	maxY      float64
	OnCollide func(Contact)
}

// Body returns the owning body.
func (p *Part) Body() *Body {
	return p.body
}

// Bounds returns the part's bounding box in world pixels.
func (p *Part) Bounds() core.Box {
	return core.Box{
		X: p.body.X + p.minX,
		Y: p.body.Y + p.minY,
		W: p.maxX - p.minX,
		H: p.maxY - p.minY,
	}
}

// Outline returns the part's vertices in world pixels.
func (p *Part) Outline() []core.Vec2 {
	out := make([]core.Vec2, len(p.local))
	for i, v := range p.local {
		out[i] = core.Vec2{X: p.body.X + v.X, Y: p.body.Y + v.Y}
	}
	return out
}

// Contains reports whether the world point (x, y) lies inside the part.
func (p *Part) Contains(x, y float64) bool {
	if !p.Bounds().Contains(x, y) {
		return false
	}
	sign := 0.0
	n := len(p.local)
	for i := range p.local {
		a, b := p.local[i], p.local[(i+1)%n]
		ax, ay := p.body.X+a.X, p.body.Y+a.Y
		bx, by := p.body.X+b.X, p.body.Y+b.Y
		cross := (bx-ax)*(y-ay) - (by-ay)*(x-ax)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// overlaps reports whether the two parts intersect.
func (p *Part) overlaps(o *Part) bool {
	if !p.Bounds().Intersects(o.Bounds()) {
		return false
	}
	return p.shape.Intersection(0, 0, o.shape) != nil
}

// Body is a collection of parts moving together. X and Y are the body
// center in world pixels; velocities are in px/s.
type Body struct {
	Label           string
	X, Y            float64
	VX, VY          float64
	Rotation        float64 // Radians, visual only
	AngularVelocity float64 // Radians per second
	Bounce          float64 // Restitution against static bodies
	FrictionAir     float64 // Velocity loss per reference frame
	Static          bool
	IgnoreGravity   bool

	width  float64 // Unscaled sprite size the outlines are expressed in
	height float64
	scale  float64
	offset float64 // Space margin of the owning world
	parts  []*Part
	world  *World
}

// NewBody creates a body centered on (x, y) from outlines given in the
// pixel space of a spriteW x spriteH image, scaled by scale.
func NewBody(label string, x, y, spriteW, spriteH, scale float64, outlines []Polygon) *Body {
	b := &Body{
		Label:  label,
		X:      x,
		Y:      y,
		width:  spriteW,
		height: spriteH,
		scale:  scale,
	}
	for _, outline := range outlines {
		if len(outline) < 3 {
			continue
		}
		b.parts = append(b.parts, b.newPart(outline))
	}
	b.sync()
	return b
}

// NewStaticBox creates a static rectangular body centered on (x, y).
func NewStaticBox(label string, x, y, w, h float64) *Body {
	b := NewBody(label, x, y, w, h, 1, []Polygon{Rectangle(w, h)})
	b.Static = true
	return b
}

func (b *Body) newPart(outline Polygon) *Part {
	part := &Part{body: b, minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}

	local := make([]core.Vec2, len(outline))
	for i, v := range outline {
		local[i] = core.Vec2{
			X: (v.X - b.width*0.5) * b.scale,
			Y: (v.Y - b.height*0.5) * b.scale,
		}
		part.minX = math.Min(part.minX, local[i].X)
		part.minY = math.Min(part.minY, local[i].Y)
		part.maxX = math.Max(part.maxX, local[i].X)
		part.maxY = math.Max(part.maxY, local[i].Y)
	}

	part.local = local

	// resolv points are relative to the polygon position, which tracks the
	// top-left of the part's bounds.
	points := make([]float64, 0, len(local)*2)
	for _, v := range local {
		points = append(points, v.X-part.minX, v.Y-part.minY)
	}
	part.shape = resolv.NewConvexPolygon(0, 0, points...)
	part.obj = resolv.NewObject(0, 0, part.maxX-part.minX, part.maxY-part.minY, b.Label)
	part.obj.SetShape(part.shape)
	part.obj.Data = part
	return part
}

// Parts returns the body's colliders.
func (b *Body) Parts() []*Part {
	return b.parts
}

// Width returns the scaled sprite width.
func (b *Body) Width() float64 {
	return b.width * b.scale
}

// Height returns the scaled sprite height.
func (b *Body) Height() float64 {
	return b.height * b.scale
}

// Left returns the x-coordinate of the sprite's left edge.
func (b *Body) Left() float64 {
	return b.X - b.Width()*0.5
}

// Right returns the x-coordinate of the sprite's right edge.
func (b *Body) Right() float64 {
	return b.X + b.Width()*0.5
}

// SetPosition moves the body and its colliders.
func (b *Body) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
	b.sync()
}

// SetVelocity sets both velocity components in px/s.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// OnCollide registers fn on every part of the body.
func (b *Body) OnCollide(fn func(Contact)) {
	for _, p := range b.parts {
		p.OnCollide = fn
	}
}

// Overlaps reports whether any part of b intersects any part of o.
func (b *Body) Overlaps(o *Body) bool {
	for _, p := range b.parts {
		for _, q := range o.parts {
			if p.overlaps(q) {
				return true
			}
		}
	}
	return false
}

// sync moves the collider shapes to the body position. Space coordinates
// are shifted by the world margin so that walls outside the view still
// land in the spatial hash.
func (b *Body) sync() {
	for _, p := range b.parts {
		x := b.X + p.minX + b.offset
		y := b.Y + p.minY + b.offset
		p.obj.X = x
		p.obj.Y = y
		p.shape.SetPosition(x, y)
		p.obj.Update()
	}
}
