package flight

import (
	"context"
	"strings"

	"github.com/vovakirdan/rockflight/internal/assets"
	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/scene"
)

// LoadScene shows an animated "Loading..." line while the asset batch
// loads, then starts the game scene.
type LoadScene struct {
	ctx    *scene.Context
	cfg    config.LoadingConfig
	loader *assets.Loader
	cancel context.CancelFunc

	dotTime  float64
	dotCount int
	done     bool
}

// NewLoadScene starts loading the asset manifest in the background.
func NewLoadScene(ctx *scene.Context) (*LoadScene, error) {
	loadCtx, cancel := context.WithCancel(context.Background())
	l := &LoadScene{
		ctx:    ctx,
		cfg:    ctx.Config.Loading,
		loader: assets.NewLoader(ctx.AssetDir, ctx.Logger),
		cancel: cancel,
	}
	l.loader.Start(loadCtx)
	return l, nil
}

// Key implements scene.Scene.
func (l *LoadScene) Key() string {
	return SceneLoad
}

// Update animates the dots and hands over to the game once loading is done.
func (l *LoadScene) Update(deltaMs float64) {
	l.dotTime += deltaMs
	if l.dotTime >= l.cfg.DotDelay {
		l.dotTime -= l.cfg.DotDelay
		if l.dotCount+1 <= l.cfg.MaxDots {
			l.dotCount++
		} else {
			l.dotCount = 0
		}
	}

	if l.done {
		return
	}
	select {
	case res := <-l.loader.Done():
		l.complete(res)
	default:
	}
}

func (l *LoadScene) complete(res assets.Result) {
	l.done = true
	bundle := res.Bundle
	if res.Err != nil {
		l.ctx.Logger.Error("asset load failed, using placeholders", "err", res.Err)
		fallback, err := assets.Fallback()
		if err != nil {
			l.ctx.Logger.Error("placeholder assets unavailable", "err", err)
			return
		}
		bundle = fallback
	}
	l.ctx.Assets = bundle

	if err := l.ctx.Director.Start(SceneGame); err != nil {
		l.ctx.Logger.Error("failed to start game", "err", err)
	}
}

// Text returns the loading line with its current dots.
func (l *LoadScene) Text() string {
	return l.cfg.Text + strings.Repeat(".", l.dotCount)
}

// Dots returns the number of dots shown.
func (l *LoadScene) Dots() int {
	return l.dotCount
}

// Stop cancels a load still in progress.
func (l *LoadScene) Stop() {
	l.cancel()
}
