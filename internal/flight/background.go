package flight

import "math"

// Background is the decorative mountain and cloud strip. It has no physics
// body; the renderer tiles its image starting at TileX.
type Background struct {
	Width  float64 // Tile width in pixels
	Height float64
	Speed  float64 // px/s
	Offset float64 // Accumulated scroll in pixels
	Active bool
}

// NewBackground creates an active background strip.
func NewBackground(width, height, speed float64) *Background {
	return &Background{
		Width:  width,
		Height: height,
		Speed:  speed,
		Active: true,
	}
}

// Update scrolls the strip while active.
func (b *Background) Update(deltaMs float64) {
	if b.Active {
		b.Offset += b.Speed * deltaMs / 1000
	}
}

// TileX returns the scroll offset wrapped to one tile.
func (b *Background) TileX() float64 {
	if b.Width <= 0 {
		return 0
	}
	return math.Mod(b.Offset, b.Width)
}

// OnStateChanged stops scrolling while crashed.
func (b *Background) OnStateChanged(_, next State) {
	b.Active = next != Crashed
}
