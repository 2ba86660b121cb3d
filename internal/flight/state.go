// Package flight implements the rock flight game: a plane weaving between
// pairs of rocks above a scrolling ground. The package holds the game's
// state machine, object pools and scenes; frontends drive it through the
// scene director and draw what it exposes.
package flight

// State is the phase of a flight shared by the scene and its objects.
type State int

const (
	Hovering State = iota // Waiting for the first ascend, plane held in place
	Flying                // Plane under gravity, rocks spawning
	Crashed               // Plane hit something, world frozen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Flying:
		return "flying"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}
