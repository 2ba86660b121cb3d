package flight

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rockflight/internal/physics"
)

// Rocks is a fixed pool of rock pairs reused as they scroll off-screen.
type Rocks struct {
	rocks           []*Rock
	distance        float64 // Horizontal spacing between pairs
	speed           float64
	distanceToSpawn float64
	rng             *rand.Rand
	Active          bool
}

// PoolCapacity returns how many pairs are needed to cover a screen of the
// given width at the given spacing.
func PoolCapacity(screenW, distance float64) int {
	return int(math.Ceil(screenW/distance)) + 2
}

// NewRocks creates the pool in the hovering state.
func NewRocks(world *physics.World, sprites RockSprites, screenW, screenH, playerX, speed, gap, distance float64, rng *rand.Rand, pass func()) *Rocks {
	n := PoolCapacity(screenW, distance)
	rs := &Rocks{
		rocks:           make([]*Rock, 0, n),
		distance:        distance,
		speed:           speed,
		distanceToSpawn: distance,
		rng:             rng,
	}
	for i := 0; i < n; i++ {
		rs.rocks = append(rs.rocks, newRock(world, sprites, screenW, screenH, playerX, speed, gap, pass))
	}
	rs.OnStateChanged(Hovering, Hovering)
	return rs
}

// Update moves the active rocks and spawns a new pair every distance
// pixels of travel while the pool is active.
func (rs *Rocks) Update(deltaMs float64) {
	for _, r := range rs.rocks {
		if r.Active {
			r.Update(deltaMs)
		}
	}

	if !rs.Active {
		return
	}
	rs.distanceToSpawn -= rs.speed * deltaMs / 1000
	if rs.distanceToSpawn <= 0 {
		rs.SpawnRock()
	}
}

// SpawnRock activates the first inactive pair, if any, and restarts the
// spawn distance either way. It reports whether a pair was spawned.
func (rs *Rocks) SpawnRock() bool {
	rs.distanceToSpawn = rs.distance
	for _, r := range rs.rocks {
		if !r.Active {
			r.Spawn(rs.rng)
			return true
		}
	}
	return false
}

// OnStateChanged parks the pool while hovering, runs it while flying and
// freezes it in place after a crash.
func (rs *Rocks) OnStateChanged(_, next State) {
	switch next {
	case Hovering:
		rs.Active = false
		for _, r := range rs.rocks {
			r.Active = false
			r.Visible = false
			r.MoveOffScreen()
		}
	case Flying:
		rs.Active = true
		rs.distanceToSpawn = rs.distance
	case Crashed:
		rs.Active = false
		for _, r := range rs.rocks {
			r.Active = false
		}
	}
}

// Rocks returns every pair in the pool.
func (rs *Rocks) Rocks() []*Rock {
	return rs.rocks
}

// Capacity returns the pool size.
func (rs *Rocks) Capacity() int {
	return len(rs.rocks)
}

// ActiveCount returns the number of pairs in play.
func (rs *Rocks) ActiveCount() int {
	n := 0
	for _, r := range rs.rocks {
		if r.Active {
			n++
		}
	}
	return n
}

// DistanceToSpawn returns the travel left before the next spawn.
func (rs *Rocks) DistanceToSpawn() float64 {
	return rs.distanceToSpawn
}

func (rs *Rocks) setTuning(speed, gap, distance float64) {
	rs.speed = speed
	rs.distance = distance
	for _, r := range rs.rocks {
		r.speed = speed
		r.gap = gap
	}
}
