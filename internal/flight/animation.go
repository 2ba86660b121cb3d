package flight

// Animation steps through spritesheet frame indices at a fixed rate.
type Animation struct {
	frames    []int
	frameRate float64 // Frames per second
	repeat    bool

	playing bool
	elapsed float64
	index   int
	current int // Shown frame, kept after Stop
}

// NewAnimation creates a stopped animation showing initial.
func NewAnimation(frames []int, frameRate float64, repeat bool, initial int) *Animation {
	return &Animation{
		frames:    frames,
		frameRate: frameRate,
		repeat:    repeat,
		current:   initial,
	}
}

// Play restarts the animation from its first frame.
func (a *Animation) Play() {
	if len(a.frames) == 0 {
		return
	}
	a.playing = true
	a.elapsed = 0
	a.index = 0
	a.current = a.frames[0]
}

// Stop freezes the animation on its current frame.
func (a *Animation) Stop() {
	a.playing = false
}

// Playing reports whether the animation is advancing.
func (a *Animation) Playing() bool {
	return a.playing
}

// Frame returns the spritesheet frame to draw.
func (a *Animation) Frame() int {
	return a.current
}

// Update advances the animation by deltaMs.
func (a *Animation) Update(deltaMs float64) {
	if !a.playing || a.frameRate <= 0 || deltaMs <= 0 {
		return
	}
	step := 1000 / a.frameRate
	a.elapsed += deltaMs
	for a.elapsed >= step {
		a.elapsed -= step
		a.index++
		if a.index >= len(a.frames) {
			if !a.repeat {
				a.index = len(a.frames) - 1
				a.playing = false
				break
			}
			a.index = 0
		}
	}
	a.current = a.frames[a.index]
}
