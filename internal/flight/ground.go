package flight

import "github.com/vovakirdan/rockflight/internal/physics"

// GroundLabel is the physics label of ground segments.
const GroundLabel = "ground"

// Ground is an endless floor built from two static segments. The left
// segment scrolls; the right one stays glued to its right edge, and the two
// swap roles once the left one leaves the screen.
type Ground struct {
	left   *physics.Body
	right  *physics.Body
	Speed  float64 // px/s
	Active bool
}

// NewGround creates both segments with the left one centered on (x, y).
func NewGround(world *physics.World, x, y, spriteW, spriteH float64, parts []physics.Polygon, speed float64) *Ground {
	left := physics.NewBody(GroundLabel, x, y, spriteW, spriteH, 1, parts)
	left.Static = true
	right := physics.NewBody(GroundLabel, x+left.Width(), y, spriteW, spriteH, 1, parts)
	right.Static = true
	world.Add(left)
	world.Add(right)

	return &Ground{
		left:   left,
		right:  right,
		Speed:  speed,
		Active: true,
	}
}

// Update scrolls the segments while active.
func (g *Ground) Update(deltaMs float64) {
	if !g.Active {
		return
	}
	g.left.SetPosition(g.left.X-g.Speed*deltaMs/1000, g.left.Y)
	g.right.SetPosition(g.left.X+g.left.Width(), g.right.Y)

	if g.left.Right() <= 0 {
		g.left, g.right = g.right, g.left
		g.right.SetPosition(g.left.X+g.left.Width(), g.right.Y)
	}
}

// Segments returns the left and right segments.
func (g *Ground) Segments() (left, right *physics.Body) {
	return g.left, g.right
}

// OnStateChanged stops scrolling while crashed.
func (g *Ground) OnStateChanged(_, next State) {
	g.Active = next != Crashed
}
