package scene

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/rockflight/internal/config"
)

type testScene struct {
	key     string
	updates []float64
	stopped bool
}

func (s *testScene) Key() string            { return s.key }
func (s *testScene) Update(deltaMs float64) { s.updates = append(s.updates, deltaMs) }
func (s *testScene) Stop()                  { s.stopped = true }

var created []*testScene

func init() {
	for _, key := range []string{"test-a", "test-b"} {
		Register(key, func(ctx *Context) (Scene, error) {
			s := &testScene{key: key}
			created = append(created, s)
			return s, nil
		})
	}
	Register("test-broken", func(ctx *Context) (Scene, error) {
		return nil, errors.New("boom")
	})
}

func TestRegisterAndKeys(t *testing.T) {
	keys := Keys()
	for _, key := range []string{"test-a", "test-b", "test-broken"} {
		if !slices.Contains(keys, key) {
			t.Errorf("Keys() is missing %q", key)
		}
		if !Exists(key) {
			t.Errorf("Exists(%q) = false", key)
		}
	}
	if !slices.IsSorted(keys) {
		t.Errorf("Keys() not sorted: %v", keys)
	}
	if Exists("nonexistent") {
		t.Error("Exists should be false for unknown keys")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate key")
		}
	}()
	Register("test-a", func(ctx *Context) (Scene, error) { return nil, nil })
}

func TestDirectorStartUnknown(t *testing.T) {
	d := NewDirector(Context{})
	if err := d.Start("nonexistent"); err == nil {
		t.Error("expected error for unknown scene")
	}
	if d.Current() != nil {
		t.Error("no scene should be current")
	}
}

func TestDirectorStartBuildsFreshScene(t *testing.T) {
	created = nil
	d := NewDirector(Context{})

	if err := d.Start("test-a"); err != nil {
		t.Fatal(err)
	}
	first := d.Current().(*testScene)
	d.Update(16)

	if err := d.Start("test-a"); err != nil {
		t.Fatal(err)
	}
	second := d.Current().(*testScene)

	if first == second {
		t.Error("Start should build a new scene instance")
	}
	if !first.stopped {
		t.Error("replaced scene was not stopped")
	}
	if len(first.updates) != 1 || first.updates[0] != 16 {
		t.Errorf("first scene updates = %v, want [16]", first.updates)
	}
	if len(created) != 2 {
		t.Errorf("expected 2 scenes created, got %d", len(created))
	}
}

func TestDirectorFactoryError(t *testing.T) {
	d := NewDirector(Context{})
	if err := d.Start("test-a"); err != nil {
		t.Fatal(err)
	}
	current := d.Current()

	if err := d.Start("test-broken"); err == nil {
		t.Fatal("expected factory error")
	}
	if d.Current() != current {
		t.Error("failed start should keep the current scene")
	}
}

func TestDirectorContextDefaults(t *testing.T) {
	d := NewDirector(Context{})
	ctx := d.Context()
	if ctx.Director != d {
		t.Error("context should point back at its director")
	}
	if ctx.Logger == nil || ctx.Rand == nil {
		t.Error("expected logger and rand defaults")
	}
	if ctx.AssetDir == "" {
		t.Error("expected default asset dir")
	}
}

func TestPendingConfigKeepsNewest(t *testing.T) {
	updates := make(chan config.FlightConfig, 3)
	ctx := &Context{ConfigUpdates: updates}

	if _, ok := ctx.PendingConfig(); ok {
		t.Error("no config should be pending")
	}

	a := config.DefaultFlightConfig()
	a.Speeds.Scroll = 100
	b := config.DefaultFlightConfig()
	b.Speeds.Scroll = 300
	updates <- a
	updates <- b

	got, ok := ctx.PendingConfig()
	if !ok || got.Speeds.Scroll != 300 {
		t.Errorf("PendingConfig() = %v, %v; want scroll 300", got.Speeds.Scroll, ok)
	}

	close(updates)
	if _, ok := ctx.PendingConfig(); ok {
		t.Error("closed channel should report nothing pending")
	}
	if ctx.ConfigUpdates != nil {
		t.Error("closed channel should be dropped")
	}
}
