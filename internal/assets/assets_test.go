package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/rockflight/internal/logging"
)

func TestManifestKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Manifest() {
		if seen[e.Key] {
			t.Errorf("duplicate manifest key %q", e.Key)
		}
		seen[e.Key] = true
	}
	for _, key := range []string{
		KeyBackground, KeyGround, KeyPlane, KeyPuff, KeyRockBottom,
		KeyRockTop, KeyGameOver, KeyStart, KeyFullscreen, KeyShapes,
	} {
		if !seen[key] {
			t.Errorf("manifest is missing %q", key)
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(KeyPlane)
	if !ok {
		t.Fatal("plane not found")
	}
	if e.Kind != KindSpritesheet || e.FrameWidth != 88 || e.FrameHeight != 73 || e.Spacing != 2 || e.Frames != 3 {
		t.Errorf("unexpected plane entry: %+v", e)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("expected unknown key to be missing")
	}
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		parts   int
	}{
		{
			name:  "two parts in one fixture",
			data:  `{"a":{"fixtures":[{"vertices":[[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1}],[{"x":0,"y":0},{"x":2,"y":0},{"x":2,"y":2}]]}]}}`,
			parts: 2,
		},
		{
			name:    "too few vertices",
			data:    `{"a":{"fixtures":[{"vertices":[[{"x":0,"y":0},{"x":1,"y":0}]]}]}}`,
			wantErr: true,
		},
		{
			name:    "no fixtures",
			data:    `{"a":{"fixtures":[]}}`,
			wantErr: true,
		},
		{
			name:    "malformed",
			data:    `{"a":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes, err := ParseShapes([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			parts, err := shapes.Parts("a")
			if err != nil {
				t.Fatal(err)
			}
			if len(parts) != tt.parts {
				t.Errorf("got %d parts, want %d", len(parts), tt.parts)
			}
		})
	}
}

func TestEmbeddedShapesCoverColliders(t *testing.T) {
	shapes, err := ParseShapes(embeddedShapes)
	if err != nil {
		t.Fatalf("embedded shapes: %v", err)
	}
	if err := shapes.Require(ShapeKeys...); err != nil {
		t.Error(err)
	}
	if _, err := shapes.Parts("missing"); err == nil {
		t.Error("expected error for missing shape")
	}
}

func TestPlaceholderSizes(t *testing.T) {
	for _, e := range Manifest() {
		if e.Kind == KindJSON {
			continue
		}
		img := Placeholder(e)
		if img.Bounds().Dx() != e.Width || img.Bounds().Dy() != e.Height {
			t.Errorf("%s placeholder is %v, want %dx%d", e.Key, img.Bounds().Size(), e.Width, e.Height)
		}
	}
}

func TestPlaceholderRockShape(t *testing.T) {
	e, _ := Lookup(KeyRockTop)
	img := Placeholder(e)
	if _, _, _, a := img.At(54, 2).RGBA(); a == 0 {
		t.Error("expected rock top to be filled near its base")
	}
	if _, _, _, a := img.At(2, 230).RGBA(); a != 0 {
		t.Error("expected rock top to be transparent beside its tip")
	}
}

func TestLoadAllFallsBack(t *testing.T) {
	b, err := LoadAll(context.Background(), t.TempDir(), logging.Discard())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(b.Fallbacks) != len(Manifest()) {
		t.Errorf("expected every entry to fall back, got %v", b.Fallbacks)
	}
	if frames := b.Frames[KeyPlane]; len(frames) != 3 {
		t.Fatalf("expected 3 plane frames, got %d", len(frames))
	}
	if w, h := b.Size(KeyPlane); w != 88 || h != 73 {
		t.Errorf("plane frame size = %dx%d, want 88x73", w, h)
	}
	if w, h := b.Size(KeyGround); w != 808 || h != 71 {
		t.Errorf("ground size = %dx%d, want 808x71", w, h)
	}
	if err := b.Shapes.Require(ShapeKeys...); err != nil {
		t.Error(err)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 1, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAllReadsFiles(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "background.png"), 640, 360)
	writePNG(t, filepath.Join(dir, "plane.png"), 268, 73)
	if err := os.WriteFile(filepath.Join(dir, "puff.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	shapes := `{
		"plane":{"fixtures":[{"vertices":[[{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10}]]}]},
		"rockTop":{"fixtures":[{"vertices":[[{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10}]]}]},
		"rockBottom":{"fixtures":[{"vertices":[[{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10}]]}]},
		"ground":{"fixtures":[{"vertices":[[{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10}]]}]}
	}`
	if err := os.WriteFile(filepath.Join(dir, "shapes.json"), []byte(shapes), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadAll(context.Background(), dir, logging.Discard())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if w, h := b.Size(KeyBackground); w != 640 || h != 360 {
		t.Errorf("background size = %dx%d, want file size 640x360", w, h)
	}
	for _, key := range []string{KeyBackground, KeyPlane, KeyShapes} {
		if slices.Contains(b.Fallbacks, key) {
			t.Errorf("%s should have been read from disk", key)
		}
	}
	if !slices.Contains(b.Fallbacks, KeyPuff) {
		t.Error("corrupt puff should fall back to a placeholder")
	}
	if parts, _ := b.Shapes.Parts(KeyPlane); len(parts[0]) != 3 {
		t.Errorf("expected plane shape from disk, got %v", parts)
	}
}

func TestLoadAllRejectsSmallSpritesheet(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "plane.png"), 88, 73)

	b, err := LoadAll(context.Background(), dir, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(b.Fallbacks, KeyPlane) {
		t.Error("undersized spritesheet should fall back")
	}
}

func TestLoadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadAll(ctx, t.TempDir(), logging.Discard()); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestLoaderDeliversOnce(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)
	l.Start(context.Background())

	select {
	case res := <-l.Done():
		if res.Err != nil || res.Bundle == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loader did not finish")
	}

	select {
	case <-l.Done():
		t.Error("loader delivered a second result")
	default:
	}
}

func TestFallbackBundle(t *testing.T) {
	b, err := Fallback()
	if err != nil {
		t.Fatal(err)
	}
	if b.Image(KeyStart) == nil || b.Frame(KeyPlane, 2) == nil {
		t.Error("fallback bundle is missing images")
	}
	if b.Frame(KeyPlane, 9) != b.Frame(KeyPlane, 0) {
		t.Error("out of range frame should clamp to the first frame")
	}
}

func TestExportRoundTrip(t *testing.T) {
	dir := t.TempDir()

	written, err := Export(dir, false)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(written) != len(Manifest()) {
		t.Fatalf("wrote %d files, want %d", len(written), len(Manifest()))
	}

	// Exported files load without any fallback.
	b, err := LoadAll(context.Background(), dir, logging.Discard())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(b.Fallbacks) != 0 {
		t.Errorf("unexpected fallbacks after export: %v", b.Fallbacks)
	}
	if w, h := b.Size(KeyPlane); w != 88 || h != 73 {
		t.Errorf("plane frame size = %dx%d, want 88x73", w, h)
	}
}

func TestExportKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, mustLookup(t, KeyPuff).File)
	writePNG(t, custom, 16, 16)

	written, err := Export(dir, false)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if slices.Contains(written, custom) {
		t.Error("existing file was overwritten")
	}

	written, err = Export(dir, true)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !slices.Contains(written, custom) {
		t.Error("overwrite should replace existing files")
	}
}

func mustLookup(t *testing.T, key string) Entry {
	t.Helper()
	e, ok := Lookup(key)
	if !ok {
		t.Fatalf("no manifest entry %q", key)
	}
	return e
}
