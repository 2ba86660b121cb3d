// Package desktop runs rockflight in a window with Ebitengine.
package desktop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/core"
	"github.com/vovakirdan/rockflight/internal/flight"
	"github.com/vovakirdan/rockflight/internal/logging"
	"github.com/vovakirdan/rockflight/internal/scene"
)

// Options configures the window.
type Options struct {
	Runtime       core.RuntimeConfig
	Flight        config.FlightConfig
	AssetDir      string
	Logger        *log.Logger
	ConfigUpdates <-chan config.FlightConfig
	Title         string
}

// Game implements ebiten.Game on top of the scene director.
type Game struct {
	director *scene.Director
	logger   *log.Logger
	width    int
	height   int
	frameMs  float64
	lastTick time.Time
	input    core.InputFrame
	sprites  *spriteCache
	face     *text.GoXFace
}

// New creates the director and starts the loading scene.
func New(opts Options) (*Game, error) {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	d := scene.NewDirector(scene.Context{
		Config:        opts.Flight,
		Logger:        logger,
		Rand:          rand.New(rand.NewSource(seed)),
		AssetDir:      opts.AssetDir,
		ConfigUpdates: opts.ConfigUpdates,
	})
	if err := d.Start(flight.SceneLoad); err != nil {
		return nil, fmt.Errorf("cannot start %s scene: %w", flight.SceneLoad, err)
	}

	return &Game{
		director: d,
		logger:   logger,
		width:    int(opts.Flight.World.Width),
		height:   int(opts.Flight.World.Height),
		frameMs:  opts.Runtime.FrameDeltaMs(),
		input:    core.NewInputFrame(),
		sprites:  newSpriteCache(),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// Update polls input and advances the current scene by the time since the
// previous tick.
func (g *Game) Update() error {
	now := time.Now()
	delta := g.frameMs
	if !g.lastTick.IsZero() {
		delta = float64(now.Sub(g.lastTick)) / float64(time.Millisecond)
	}
	g.lastTick = now

	g.input.Clear()
	pollKeys(&g.input)
	if g.input.Has(core.ActionQuit) {
		g.director.Stop()
		return ebiten.Termination
	}

	current := g.director.Current()
	if gs, ok := current.(*flight.GameScene); ok {
		mapPointers(gs.FullscreenButton(), pollPointers(), &g.input)
		gs.HandleInput(g.input)
	}

	g.director.Update(delta)

	if gs, ok := g.director.Current().(*flight.GameScene); ok && gs.Fullscreen() != ebiten.IsFullscreen() {
		ebiten.SetFullscreen(gs.Fullscreen())
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	switch s := g.director.Current().(type) {
	case *flight.GameScene:
		g.drawGame(screen, s)
	case *flight.LoadScene:
		g.drawLoading(screen, s)
	}
}

// Layout keeps the logical world size and lets Ebitengine scale it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = "rockflight"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	g.logger.Info("window opened", "width", g.width, "height", g.height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
