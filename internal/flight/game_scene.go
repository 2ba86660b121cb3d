package flight

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/rockflight/internal/assets"
	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/core"
	"github.com/vovakirdan/rockflight/internal/physics"
	"github.com/vovakirdan/rockflight/internal/scene"
)

// Scene keys.
const (
	SceneLoad = "load"
	SceneGame = "game"
)

// GameScene runs one play session: it owns the physics world and every
// game object, maps input to the state machine and keeps the score.
type GameScene struct {
	ctx     *scene.Context
	cfg     config.FlightConfig
	logger  *log.Logger
	session string

	width  float64
	height float64

	world      *physics.World
	sched      *core.Scheduler
	background *Background
	ground     *Ground
	rocks      *Rocks
	plane      *Plane

	state        State
	score        int
	highScore    int
	gameOverWait bool
	cooldownID   uint64
	lastDelta    float64
	fullscreen   bool

	startVisible    bool
	gameOverVisible bool
}

// NewGameScene builds the world from the loaded assets and enters Hovering.
func NewGameScene(ctx *scene.Context) (*GameScene, error) {
	bundle := ctx.Assets
	if bundle == nil {
		b, err := assets.Fallback()
		if err != nil {
			return nil, err
		}
		ctx.Logger.Warn("no assets loaded, using placeholders")
		bundle = b
		ctx.Assets = b
	}
	if err := bundle.Shapes.Require(assets.ShapeKeys...); err != nil {
		return nil, fmt.Errorf("invalid shapes: %w", err)
	}

	cfg := ctx.Config
	session := uuid.NewString()
	g := &GameScene{
		ctx:       ctx,
		cfg:       cfg,
		logger:    ctx.Logger.With("session", session),
		session:   session,
		width:     cfg.World.Width,
		height:    cfg.World.Height,
		sched:     core.NewScheduler(),
		lastDelta: physics.BaseDeltaMs,
	}

	g.world = physics.NewWorld(g.width, g.height, cfg.World.Gravity)
	g.world.SetBounds(0, 0, g.width, g.height)

	bgW, bgH := bundle.Size(assets.KeyBackground)
	g.background = NewBackground(float64(bgW), float64(bgH), cfg.Speeds.Background)

	centerX := g.width * cfg.Plane.HoverX
	sprites := RockSprites{TopParts: bundle.Shapes[assets.KeyRockTop], BottomParts: bundle.Shapes[assets.KeyRockBottom]}
	tw, th := bundle.Size(assets.KeyRockTop)
	bw, bh := bundle.Size(assets.KeyRockBottom)
	sprites.TopW, sprites.TopH = float64(tw), float64(th)
	sprites.BottomW, sprites.BottomH = float64(bw), float64(bh)
	g.rocks = NewRocks(g.world, sprites, g.width, g.height, centerX,
		cfg.Speeds.Scroll, cfg.Rocks.Gap, cfg.Rocks.Distance, ctx.Rand, g.IncrementScore)

	gw, gh := bundle.Size(assets.KeyGround)
	g.ground = NewGround(g.world, g.width*0.5, g.height-float64(gh)*0.5,
		float64(gw), float64(gh), bundle.Shapes[assets.KeyGround], cfg.Speeds.Scroll)

	pw, ph := bundle.Size(assets.KeyPlane)
	g.plane = NewPlane(g.world, centerX, g.height*cfg.Plane.HoverY,
		float64(pw), float64(ph), bundle.Shapes[assets.KeyPlane], cfg, ctx.Rand,
		func() { g.setState(Crashed) })

	g.state = Hovering
	g.setState(Hovering)
	g.logger.Info("session started", "width", g.width, "height", g.height, "rocks", g.rocks.Capacity())
	return g, nil
}

// Key implements scene.Scene.
func (g *GameScene) Key() string {
	return SceneGame
}

// HandleInput applies the actions of one frame.
func (g *GameScene) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionFullscreen) {
		g.ToggleFullscreen()
	}
	if in.Has(core.ActionAscend) {
		g.Ascend()
	}
}

// Ascend starts a flight, climbs, or leaves the game over screen once the
// cooldown has passed.
func (g *GameScene) Ascend() {
	switch g.state {
	case Hovering:
		g.setState(Flying)
		g.plane.Ascend(g.lastDelta)
	case Flying:
		g.plane.Ascend(g.lastDelta)
	case Crashed:
		if !g.gameOverWait {
			g.setState(Hovering)
		}
	}
}

// ToggleFullscreen flips the fullscreen flag the frontend mirrors.
func (g *GameScene) ToggleFullscreen() {
	g.fullscreen = !g.fullscreen
	g.logger.Debug("fullscreen toggled", "fullscreen", g.fullscreen)
}

// Fullscreen button placement: top-right corner, half-size sprite.
const (
	buttonMargin = 10
	buttonScale  = 0.5
)

// FullscreenButton returns the area of the fullscreen button in world pixels.
func (g *GameScene) FullscreenButton() core.Box {
	w, h := g.ctx.Assets.Size(assets.KeyFullscreen)
	bw, bh := float64(w)*buttonScale, float64(h)*buttonScale
	return core.Box{X: g.width - buttonMargin - bw, Y: buttonMargin, W: bw, H: bh}
}

// IncrementScore adds a point for a passed rock pair.
func (g *GameScene) IncrementScore() {
	g.setScore(g.score + 1)
}

func (g *GameScene) setScore(score int) {
	g.score = score
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

func (g *GameScene) setState(next State) {
	prev := g.state
	if next == Hovering {
		g.applyPendingConfig()
	}

	g.state = next
	g.plane.OnStateChanged(prev, next)
	g.rocks.OnStateChanged(prev, next)
	g.background.OnStateChanged(prev, next)
	g.ground.OnStateChanged(prev, next)

	switch next {
	case Hovering:
		g.startVisible = true
		g.gameOverVisible = false
		g.setScore(0)
	case Flying:
		g.startVisible = false
		g.gameOverVisible = false
	case Crashed:
		g.startVisible = false
		g.gameOverVisible = true
		g.gameOverWait = true
		g.sched.Cancel(g.cooldownID)
		g.cooldownID = g.sched.After(g.cfg.Timing.CrashCooldown, func() {
			g.gameOverWait = false
		})
	}

	if prev != next {
		g.logger.Info("state changed", "from", prev, "to", next, "score", g.score, "high", g.highScore)
	}
}

// applyPendingConfig adopts a hot-reloaded config between flights. World
// size and pool capacity stay as built.
func (g *GameScene) applyPendingConfig() {
	cfg, ok := g.ctx.PendingConfig()
	if !ok {
		return
	}
	g.cfg = cfg
	g.ctx.Config = cfg
	g.world.Gravity = cfg.World.Gravity
	g.background.Speed = cfg.Speeds.Background
	g.ground.Speed = cfg.Speeds.Scroll
	g.rocks.setTuning(cfg.Speeds.Scroll, cfg.Rocks.Gap, cfg.Rocks.Distance)
	g.plane.setTuning(cfg)
	g.logger.Info("config reloaded")
}

// Update advances the session by one frame: timers, then physics, then
// background, ground, rocks and plane.
func (g *GameScene) Update(deltaMs float64) {
	if deltaMs < 0 {
		deltaMs = 0
	}
	if g.cfg.Timing.MaxDelta > 0 && deltaMs > g.cfg.Timing.MaxDelta {
		deltaMs = g.cfg.Timing.MaxDelta
	}
	g.lastDelta = deltaMs

	g.sched.Advance(deltaMs)
	g.world.Step(deltaMs)

	g.background.Update(deltaMs)
	g.ground.Update(deltaMs)
	g.rocks.Update(deltaMs)
	g.plane.Update(deltaMs)
}

// State returns the current state.
func (g *GameScene) State() State { return g.state }

// Score returns the score of the current flight.
func (g *GameScene) Score() int { return g.score }

// HighScore returns the best score since the process started.
func (g *GameScene) HighScore() int { return g.highScore }

// CooldownActive reports whether ascend is still ignored after a crash.
func (g *GameScene) CooldownActive() bool { return g.gameOverWait }

// Fullscreen returns the fullscreen flag.
func (g *GameScene) Fullscreen() bool { return g.fullscreen }

// StartVisible reports whether the "tap to start" overlay is shown.
func (g *GameScene) StartVisible() bool { return g.startVisible }

// GameOverVisible reports whether the game over overlay is shown.
func (g *GameScene) GameOverVisible() bool { return g.gameOverVisible }

// Session returns the session identifier used in logs.
func (g *GameScene) Session() string { return g.session }

// Size returns the world size in pixels.
func (g *GameScene) Size() (float64, float64) { return g.width, g.height }

// Assets returns the bundle the scene was built from.
func (g *GameScene) Assets() *assets.Bundle { return g.ctx.Assets }

// Background returns the background strip.
func (g *GameScene) Background() *Background { return g.background }

// Ground returns the ground.
func (g *GameScene) Ground() *Ground { return g.ground }

// Rocks returns the rock pool.
func (g *GameScene) Rocks() *Rocks { return g.rocks }

// Plane returns the plane.
func (g *GameScene) Plane() *Plane { return g.plane }
