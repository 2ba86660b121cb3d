package flight

import (
	"math/rand"

	"github.com/vovakirdan/rockflight/internal/physics"
)

// Rock physics labels.
const (
	RockTopLabel    = "rockTop"
	RockBottomLabel = "rockBottom"
)

// Rock is a top and bottom obstacle pair the plane flies between.
type Rock struct {
	Top     *physics.Body
	Bottom  *physics.Body
	Active  bool
	Visible bool

	playerX float64 // Crossing this x scores a point
	speed   float64
	gap     float64
	screenW float64
	screenH float64
	pass    func()
}

// RockSprites holds the sizes and outlines rocks are built from.
type RockSprites struct {
	TopW, TopH       float64
	BottomW, BottomH float64
	TopParts         []physics.Polygon
	BottomParts      []physics.Polygon
}

func newRock(world *physics.World, s RockSprites, screenW, screenH, playerX, speed, gap float64, pass func()) *Rock {
	top := physics.NewBody(RockTopLabel, 0, 0, s.TopW, s.TopH, 1, s.TopParts)
	top.Static = true
	bottom := physics.NewBody(RockBottomLabel, 0, 0, s.BottomW, s.BottomH, 1, s.BottomParts)
	bottom.Static = true
	world.Add(top)
	world.Add(bottom)

	return &Rock{
		Top:     top,
		Bottom:  bottom,
		playerX: playerX,
		speed:   speed,
		gap:     gap,
		screenW: screenW,
		screenH: screenH,
		pass:    pass,
	}
}

// Update moves the pair left, reports a pass when the pair crosses the
// player's x during this step and deactivates once fully off-screen.
func (r *Rock) Update(deltaMs float64) {
	step := r.speed * deltaMs / 1000
	passed := r.Top.X > r.playerX && r.Top.X-step <= r.playerX

	r.Top.SetPosition(r.Top.X-step, r.Top.Y)
	r.Bottom.SetPosition(r.Top.X, r.Bottom.Y)

	if passed && r.pass != nil {
		r.pass()
	}
	if r.Top.Right() <= 0 {
		r.Active = false
	}
}

// MoveOffScreen parks both rocks just past the right edge.
func (r *Rock) MoveOffScreen() {
	r.Top.SetPosition(r.screenW+r.Top.Width()*0.5, r.Top.Y)
	r.Bottom.SetPosition(r.screenW+r.Bottom.Width()*0.5, r.Bottom.Y)
}

// Spawn places the pair at the right edge with a random vertical offset
// in [-gap/2, gap/2) and activates it.
func (r *Rock) Spawn(rng *rand.Rand) {
	offset := rng.Float64()*r.gap - r.gap*0.5

	r.Top.SetPosition(
		r.screenW+r.Top.Width()*0.5,
		r.Top.Height()*0.5-r.gap*0.5+offset,
	)
	r.Bottom.SetPosition(
		r.screenW+r.Bottom.Width()*0.5,
		r.screenH-r.Bottom.Height()*0.5+r.gap*0.5+offset,
	)
	r.Active = true
	r.Visible = true
}
