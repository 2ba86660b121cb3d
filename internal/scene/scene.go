// Package scene provides a global registry of scene factories and a
// director that runs one scene at a time. Scenes register themselves in
// init() functions so frontends can start them by key without importing
// their packages directly.
package scene

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockflight/internal/assets"
	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/logging"
)

// Scene is a unit of game flow driven by the director's update loop.
// Scenes contain logic only; frontends own timing, input and drawing.
type Scene interface {
	// Key returns the key the scene was registered under.
	Key() string

	// Update advances the scene by deltaMs milliseconds.
	Update(deltaMs float64)
}

// Stopper is implemented by scenes that hold resources to release when
// another scene replaces them.
type Stopper interface {
	Stop()
}

// Context is shared by every scene a director starts.
type Context struct {
	Director *Director
	Config   config.FlightConfig
	Logger   *log.Logger
	Rand     *rand.Rand
	AssetDir string

	// Assets is set by the loading scene once the batch load completes.
	Assets *assets.Bundle

	// ConfigUpdates delivers hot-reloaded configs; nil when not watching.
	ConfigUpdates <-chan config.FlightConfig
}

// PendingConfig returns the newest reloaded config, if one arrived.
func (c *Context) PendingConfig() (config.FlightConfig, bool) {
	var (
		latest config.FlightConfig
		ok     bool
	)
	for {
		select {
		case cfg, open := <-c.ConfigUpdates:
			if !open {
				c.ConfigUpdates = nil
				return latest, ok
			}
			latest, ok = cfg, true
		default:
			return latest, ok
		}
	}
}

// Factory creates a scene bound to the director's context.
type Factory func(ctx *Context) (Scene, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same key is already registered.
func Register(key string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[key]; exists {
		panic(fmt.Sprintf("scene: %q already registered", key))
	}
	factories[key] = f
}

// Keys returns the registered scene keys, sorted.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()

	keys := make([]string, 0, len(factories))
	for key := range factories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Exists checks if a scene with the given key is registered.
func Exists(key string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[key]
	return ok
}

func lookup(key string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[key]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", key)
	}
	return f, nil
}

// Director owns the active scene.
type Director struct {
	ctx     *Context
	current Scene
}

// NewDirector creates a director with its own copy of ctx.
func NewDirector(ctx Context) *Director {
	if ctx.Logger == nil {
		ctx.Logger = logging.Discard()
	}
	if ctx.Rand == nil {
		ctx.Rand = rand.New(rand.NewSource(1))
	}
	if ctx.AssetDir == "" {
		ctx.AssetDir = assets.DefaultPath
	}
	d := &Director{ctx: &ctx}
	d.ctx.Director = d
	return d
}

// Context returns the shared scene context.
func (d *Director) Context() *Context {
	return d.ctx
}

// Start creates a fresh instance of the scene registered under key and
// makes it current, stopping the previous one.
func (d *Director) Start(key string) error {
	f, err := lookup(key)
	if err != nil {
		return err
	}
	s, err := f(d.ctx)
	if err != nil {
		return fmt.Errorf("scene: failed to start %q: %w", key, err)
	}

	if stopper, ok := d.current.(Stopper); ok {
		stopper.Stop()
	}
	d.current = s
	d.ctx.Logger.Debug("scene started", "scene", key)
	return nil
}

// Current returns the running scene, or nil before the first Start.
func (d *Director) Current() Scene {
	return d.current
}

// Update forwards the frame delta to the current scene.
func (d *Director) Update(deltaMs float64) {
	if d.current != nil {
		d.current.Update(deltaMs)
	}
}

// Stop stops the current scene.
func (d *Director) Stop() {
	if stopper, ok := d.current.(Stopper); ok {
		stopper.Stop()
	}
	d.current = nil
}
