// Package assets describes the game's named resources and loads them from
// disk in one batch. Images that are missing or unreadable are replaced by
// generated placeholder art so the game stays playable without an assets
// directory.
package assets

import "image/color"

// DefaultPath is the asset directory relative to the working directory.
const DefaultPath = "assets"

// Resource keys.
const (
	KeyBackground = "background"
	KeyGround     = "ground"
	KeyPlane      = "plane"
	KeyPuff       = "puff"
	KeyRockBottom = "rockBottom"
	KeyRockTop    = "rockTop"
	KeyGameOver   = "gameOver"
	KeyStart      = "start"
	KeyFullscreen = "fullscreen"
	KeyShapes     = "shapes"
)

// Kind is the type of a manifest entry.
type Kind int

const (
	KindImage Kind = iota
	KindSpritesheet
	KindJSON
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSpritesheet:
		return "spritesheet"
	case KindJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Entry is one named resource.
type Entry struct {
	Key  string
	File string
	Kind Kind

	// Spritesheet layout
	FrameWidth  int
	FrameHeight int
	Spacing     int
	Frames      int

	// Placeholder size and tint used when the file cannot be loaded
	Width  int
	Height int
	Tint   color.RGBA
}

// Manifest returns every resource the game needs.
func Manifest() []Entry {
	return []Entry{
		{Key: KeyBackground, File: "background.png", Kind: KindImage, Width: 800, Height: 480, Tint: color.RGBA{R: 120, G: 190, B: 235, A: 255}},
		{Key: KeyGround, File: "ground.png", Kind: KindImage, Width: 808, Height: 71, Tint: color.RGBA{R: 150, G: 110, B: 70, A: 255}},
		{
			Key: KeyPlane, File: "plane.png", Kind: KindSpritesheet,
			FrameWidth: 88, FrameHeight: 73, Spacing: 2, Frames: 3,
			Width: 3*88 + 2*2, Height: 73, Tint: color.RGBA{R: 220, G: 60, B: 50, A: 255},
		},
		{Key: KeyPuff, File: "puff.png", Kind: KindImage, Width: 32, Height: 32, Tint: color.RGBA{R: 240, G: 240, B: 240, A: 255}},
		{Key: KeyRockBottom, File: "rockBottom.png", Kind: KindImage, Width: 108, Height: 239, Tint: color.RGBA{R: 125, G: 120, B: 115, A: 255}},
		{Key: KeyRockTop, File: "rockTop.png", Kind: KindImage, Width: 108, Height: 239, Tint: color.RGBA{R: 125, G: 120, B: 115, A: 255}},
		{Key: KeyGameOver, File: "gameOver.png", Kind: KindImage, Width: 412, Height: 78, Tint: color.RGBA{R: 200, G: 40, B: 40, A: 255}},
		{Key: KeyStart, File: "start.png", Kind: KindImage, Width: 508, Height: 100, Tint: color.RGBA{R: 40, G: 140, B: 60, A: 255}},
		{Key: KeyFullscreen, File: "fullscreen.png", Kind: KindImage, Width: 64, Height: 64, Tint: color.RGBA{R: 60, G: 60, B: 60, A: 255}},
		{Key: KeyShapes, File: "shapes.json", Kind: KindJSON},
	}
}

// Lookup returns the manifest entry for key.
func Lookup(key string) (Entry, bool) {
	for _, e := range Manifest() {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
