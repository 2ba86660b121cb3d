package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rockflight/internal/core"
)

// pointer is a press or release of the mouse or a touch, in world pixels.
type pointer struct {
	X, Y float64
	Down bool // false for a release
}

// mapPointers applies the pointer rules: a press anywhere except the
// fullscreen button ascends, a release on the button toggles fullscreen.
func mapPointers(button core.Box, events []pointer, in *core.InputFrame) {
	for _, e := range events {
		onButton := button.Contains(e.X, e.Y)
		switch {
		case e.Down && !onButton:
			in.Set(core.ActionAscend)
		case !e.Down && onButton:
			in.Set(core.ActionFullscreen)
		}
	}
}

// pollPointers collects this tick's mouse and touch presses and releases.
func pollPointers() []pointer {
	var events []pointer

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, pointer{X: float64(x), Y: float64(y), Down: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, pointer{X: float64(x), Y: float64(y)})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, pointer{X: float64(x), Y: float64(y), Down: true})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, pointer{X: float64(x), Y: float64(y)})
	}
	return events
}

// pollKeys maps keyboard input. Space acts on release.
func pollKeys(in *core.InputFrame) {
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		in.Set(core.ActionAscend)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		in.Set(core.ActionFullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}
}
