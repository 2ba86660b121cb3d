package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/rockflight/internal/core"
)

func newBox(label string, x, y, w, h float64) *Body {
	return NewBody(label, x, y, w, h, 1, []Polygon{Rectangle(w, h)})
}

func TestBodyPartBounds(t *testing.T) {
	b := NewBody("plane", 100, 50, 88, 73, 0.5, []Polygon{Rectangle(88, 73)})
	parts := b.Parts()
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	got := parts[0].Bounds()
	want := core.Box{X: 100 - 22, Y: 50 - 18.25, W: 44, H: 36.5}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 ||
		math.Abs(got.W-want.W) > 1e-9 || math.Abs(got.H-want.H) > 1e-9 {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if b.Left() != 78 || b.Right() != 122 {
		t.Errorf("Left/Right = %v/%v, want 78/122", b.Left(), b.Right())
	}
}

func TestNewBodySkipsDegenerateOutlines(t *testing.T) {
	b := NewBody("x", 0, 0, 10, 10, 1, []Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}, Rectangle(10, 10)})
	if len(b.Parts()) != 1 {
		t.Errorf("expected degenerate outline to be dropped, got %d parts", len(b.Parts()))
	}
}

func TestGravityIntegration(t *testing.T) {
	w := NewWorld(800, 480, 1000)
	b := newBox("ball", 400, 100, 10, 10)
	w.Add(b)

	w.Step(100)

	if math.Abs(b.VY-100) > 1e-9 {
		t.Errorf("VY = %v, want 100", b.VY)
	}
	if math.Abs(b.Y-110) > 1e-9 {
		t.Errorf("Y = %v, want 110", b.Y)
	}
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	w := NewWorld(800, 480, 1000)
	b := newBox("ball", 400, 100, 10, 10)
	w.Add(b)

	w.Step(0)
	w.Step(-16)

	if b.Y != 100 || b.VY != 0 {
		t.Errorf("body moved on non-positive delta: y=%v vy=%v", b.Y, b.VY)
	}
}

func TestIgnoreGravityAndStatic(t *testing.T) {
	w := NewWorld(800, 480, 1000)
	floating := newBox("float", 100, 100, 10, 10)
	floating.IgnoreGravity = true
	wall := NewStaticBox("wall", 300, 100, 10, 10)
	w.Add(floating)
	w.Add(wall)

	w.Step(BaseDeltaMs)

	if floating.Y != 100 {
		t.Errorf("gravity applied to IgnoreGravity body: y=%v", floating.Y)
	}
	if wall.Y != 100 {
		t.Errorf("static body moved: y=%v", wall.Y)
	}
}

func TestFrictionAirSlowsBody(t *testing.T) {
	w := NewWorld(800, 480, 0)
	b := newBox("ball", 400, 240, 10, 10)
	b.FrictionAir = 0.1
	b.SetVelocity(100, 0)
	w.Add(b)

	w.Step(BaseDeltaMs)

	if math.Abs(b.VX-90) > 1e-9 {
		t.Errorf("VX = %v, want 90", b.VX)
	}
}

func TestLandingBouncesAndFiresOnce(t *testing.T) {
	w := NewWorld(800, 480, 1000)
	floor := NewStaticBox("floor", 400, 400, 800, 20)
	ball := newBox("ball", 400, 375, 20, 20)
	ball.Bounce = 0.25
	ball.SetVelocity(0, 300)
	w.Add(floor)
	w.Add(ball)

	calls := 0
	var other string
	ball.OnCollide(func(c Contact) {
		calls++
		other = c.Other.Body().Label
	})
	floorCalls := 0
	floor.OnCollide(func(Contact) { floorCalls++ })

	w.Step(BaseDeltaMs)

	if calls != 1 || floorCalls != 1 {
		t.Fatalf("expected one callback per side, got ball=%d floor=%d", calls, floorCalls)
	}
	if other != "floor" {
		t.Errorf("contact other = %q, want floor", other)
	}
	if ball.VY >= 0 {
		t.Errorf("expected upward velocity after bounce, got %v", ball.VY)
	}
	wantVY := -(300 + 1000*BaseDeltaMs/1000) * 0.25
	if math.Abs(ball.VY-wantVY) > 1e-6 {
		t.Errorf("VY = %v, want %v", ball.VY, wantVY)
	}
	if ball.Overlaps(floor) {
		t.Error("ball still overlaps floor after separation")
	}
}

func TestRestingContactFiresOnlyOnStart(t *testing.T) {
	w := NewWorld(800, 480, 1000)
	floor := NewStaticBox("floor", 400, 400, 800, 20)
	ball := newBox("ball", 400, 379.5, 20, 20)
	w.Add(floor)
	w.Add(ball)

	calls := 0
	ball.OnCollide(func(Contact) { calls++ })

	for i := 0; i < 30; i++ {
		w.Step(BaseDeltaMs)
	}

	if calls != 1 {
		t.Errorf("expected a single contact start while resting, got %d", calls)
	}
	if ball.Y > 380 {
		t.Errorf("ball sank into the floor: y=%v", ball.Y)
	}
}

func TestBoundsStopBody(t *testing.T) {
	w := NewWorld(800, 480, 0)
	w.SetBounds(0, 0, 800, 480)
	ball := newBox("ball", 400, 8, 10, 10)
	ball.SetVelocity(0, -600)
	w.Add(ball)

	var hit string
	ball.OnCollide(func(c Contact) { hit = c.Other.Body().Label })

	w.Step(BaseDeltaMs)

	if hit != BoundsLabel {
		t.Fatalf("expected contact with bounds, got %q", hit)
	}
	if ball.Y-5 < 0 {
		t.Errorf("ball escaped through top bound: y=%v", ball.Y)
	}
}

func TestSetBoundsReplacesWalls(t *testing.T) {
	w := NewWorld(800, 480, 0)
	w.SetBounds(0, 0, 800, 480)
	w.SetBounds(0, 0, 800, 480)

	walls := 0
	for _, b := range w.Bodies() {
		if b.Label == BoundsLabel {
			walls++
		}
	}
	if walls != 4 {
		t.Errorf("expected 4 walls, got %d", walls)
	}
}

func TestMovingStaticPushesBody(t *testing.T) {
	w := NewWorld(800, 480, 0)
	ball := newBox("ball", 400, 240, 20, 20)
	rock := NewStaticBox("rock", 430, 240, 40, 200)
	w.Add(ball)
	w.Add(rock)

	calls := 0
	ball.OnCollide(func(Contact) { calls++ })

	rock.SetPosition(415, 240)
	w.Step(BaseDeltaMs)

	if calls != 1 {
		t.Errorf("expected one contact, got %d", calls)
	}
	if ball.Overlaps(rock) {
		t.Error("ball still overlaps rock")
	}
	if ball.X >= 400 {
		t.Errorf("expected ball pushed left, x=%v", ball.X)
	}
}

func TestRemoveDetachesBody(t *testing.T) {
	w := NewWorld(800, 480, 1000)
	b := newBox("ball", 400, 100, 10, 10)
	w.Add(b)
	w.Remove(b)

	w.Step(100)

	if b.Y != 100 {
		t.Errorf("removed body was stepped: y=%v", b.Y)
	}
	if len(w.Bodies()) != 0 {
		t.Errorf("expected no bodies, got %d", len(w.Bodies()))
	}
}

func TestPartContains(t *testing.T) {
	tri := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	b := NewBody("tri", 100, 100, 10, 10, 1, []Polygon{tri})
	p := b.Parts()[0]

	tests := []struct {
		x, y float64
		want bool
	}{
		{96, 96, true},
		{104, 104, false}, // Beyond the hypotenuse
		{110, 96, false},
		{95.5, 95.5, true},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if len(p.Outline()) != 3 || p.Outline()[0] != (core.Vec2{X: 95, Y: 95}) {
		t.Errorf("unexpected outline %v", p.Outline())
	}
}
