package desktop

import (
	"testing"

	"github.com/vovakirdan/rockflight/internal/core"
)

func TestMapPointers(t *testing.T) {
	button := core.Box{X: 758, Y: 10, W: 32, H: 32}

	tests := []struct {
		name       string
		events     []pointer
		ascend     bool
		fullscreen bool
	}{
		{"press in the sky", []pointer{{X: 100, Y: 200, Down: true}}, true, false},
		{"release in the sky", []pointer{{X: 100, Y: 200}}, false, false},
		{"press on the button", []pointer{{X: 770, Y: 20, Down: true}}, false, false},
		{"click on the button", []pointer{{X: 770, Y: 20, Down: true}, {X: 770, Y: 20}}, false, true},
		{"drag off the button", []pointer{{X: 770, Y: 20, Down: true}, {X: 700, Y: 20}}, false, false},
		{"button edge is exclusive", []pointer{{X: 790, Y: 20, Down: true}}, true, false},
		{"no events", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			mapPointers(button, tt.events, &in)
			if got := in.Has(core.ActionAscend); got != tt.ascend {
				t.Errorf("ascend = %v, want %v", got, tt.ascend)
			}
			if got := in.Has(core.ActionFullscreen); got != tt.fullscreen {
				t.Errorf("fullscreen = %v, want %v", got, tt.fullscreen)
			}
		})
	}
}
