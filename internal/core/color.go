package core

// Color is the palette slot of a screen cell. Terminal frontends map each
// slot to a concrete style.
type Color uint8

// Palette slots used by the scenes.
const (
	ColorDefault     Color = iota // Sky, terminal background
	ColorRed                      // Plane
	ColorGreen                    // Hills
	ColorCyan                     // Score text
	ColorWhite                    // Smoke, prompts
	ColorBrightRed                // Crashed plane, game over
	ColorBrightGreen              // Start prompt
	ColorOrange                   // Ground
	ColorGray                     // Rocks, buttons
)
