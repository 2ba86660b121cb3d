package assets

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/rockflight/internal/logging"
)

//go:embed embedded/shapes.json
var embeddedShapes []byte

// ShapeKeys are the sprites that need collider outlines.
var ShapeKeys = []string{KeyPlane, KeyRockTop, KeyRockBottom, KeyGround}

// Bundle holds every loaded resource.
type Bundle struct {
	Images map[string]image.Image   // Whole images, including spritesheets
	Frames map[string][]image.Image // Spritesheet frames
	Shapes Shapes

	// Keys served by generated or embedded fallbacks
	Fallbacks []string
}

// Image returns the image for key, or nil.
func (b *Bundle) Image(key string) image.Image {
	return b.Images[key]
}

// Frame returns frame i of a spritesheet, or the whole image for plain
// images.
func (b *Bundle) Frame(key string, i int) image.Image {
	frames := b.Frames[key]
	if len(frames) == 0 {
		return b.Images[key]
	}
	if i < 0 || i >= len(frames) {
		i = 0
	}
	return frames[i]
}

// Size returns the display size of key; for spritesheets, one frame.
func (b *Bundle) Size(key string) (int, int) {
	img := b.Frame(key, 0)
	if img == nil {
		return 0, 0
	}
	r := img.Bounds()
	return r.Dx(), r.Dy()
}

// Result is delivered once a batch load finishes.
type Result struct {
	Bundle *Bundle
	Err    error
}

// Loader loads the manifest in the background.
type Loader struct {
	dir    string
	logger *log.Logger
	done   chan Result
}

// NewLoader creates a loader reading from dir.
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{
		dir:    dir,
		logger: logger,
		done:   make(chan Result, 1),
	}
}

// Start begins loading. The result arrives on Done exactly once.
func (l *Loader) Start(ctx context.Context) {
	go func() {
		b, err := LoadAll(ctx, l.dir, l.logger)
		l.done <- Result{Bundle: b, Err: err}
	}()
}

// Done returns the completion channel.
func (l *Loader) Done() <-chan Result {
	return l.done
}

// LoadAll reads every manifest entry from dir. Unreadable images fall back
// to placeholders and an unreadable shapes file falls back to the embedded
// document; only a cancelled context or a broken embedded document is an
// error.
func LoadAll(ctx context.Context, dir string, logger *log.Logger) (*Bundle, error) {
	b := &Bundle{
		Images: make(map[string]image.Image),
		Frames: make(map[string][]image.Image),
	}

	for _, e := range Manifest() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch e.Kind {
		case KindJSON:
			shapes, fallback, err := loadShapes(dir, e, logger)
			if err != nil {
				return nil, err
			}
			b.Shapes = shapes
			if fallback {
				b.Fallbacks = append(b.Fallbacks, e.Key)
			}
		default:
			img, err := loadImage(filepath.Join(dir, e.File), e)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					logger.Debug("asset missing, using placeholder", "key", e.Key)
				} else {
					logger.Warn("asset unreadable, using placeholder", "key", e.Key, "err", err)
				}
				img = Placeholder(e)
				b.Fallbacks = append(b.Fallbacks, e.Key)
			}
			b.Images[e.Key] = img
			if e.Kind == KindSpritesheet {
				b.Frames[e.Key] = sliceFrames(img, e)
			}
		}
	}

	logger.Info("assets loaded", "dir", dir, "fallbacks", len(b.Fallbacks))
	return b, nil
}

// Fallback builds a bundle from placeholders and the embedded shapes alone.
func Fallback() (*Bundle, error) {
	shapes, err := ParseShapes(embeddedShapes)
	if err != nil {
		return nil, fmt.Errorf("embedded shapes: %w", err)
	}
	b := &Bundle{
		Images: make(map[string]image.Image),
		Frames: make(map[string][]image.Image),
		Shapes: shapes,
	}
	for _, e := range Manifest() {
		b.Fallbacks = append(b.Fallbacks, e.Key)
		if e.Kind == KindJSON {
			continue
		}
		img := Placeholder(e)
		b.Images[e.Key] = img
		if e.Kind == KindSpritesheet {
			b.Frames[e.Key] = sliceFrames(img, e)
		}
	}
	return b, nil
}

func loadImage(path string, e Entry) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if e.Kind == KindSpritesheet {
		need := e.Frames*e.FrameWidth + (e.Frames-1)*e.Spacing
		if img.Bounds().Dx() < need || img.Bounds().Dy() < e.FrameHeight {
			return nil, fmt.Errorf("spritesheet %s is %dx%d, need at least %dx%d",
				path, img.Bounds().Dx(), img.Bounds().Dy(), need, e.FrameHeight)
		}
	}
	return img, nil
}

func loadShapes(dir string, e Entry, logger *log.Logger) (Shapes, bool, error) {
	path := filepath.Join(dir, e.File)
	data, err := os.ReadFile(path)
	if err == nil {
		shapes, perr := ParseShapes(data)
		if perr == nil {
			perr = shapes.Require(ShapeKeys...)
		}
		if perr == nil {
			return shapes, false, nil
		}
		logger.Warn("shapes unreadable, using embedded copy", "path", path, "err", perr)
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("shapes unreadable, using embedded copy", "path", path, "err", err)
	}

	shapes, err := ParseShapes(embeddedShapes)
	if err != nil {
		return nil, false, fmt.Errorf("embedded shapes: %w", err)
	}
	if err := shapes.Require(ShapeKeys...); err != nil {
		return nil, false, fmt.Errorf("embedded shapes: %w", err)
	}
	return shapes, true, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// sliceFrames cuts a horizontal spritesheet into frames.
func sliceFrames(img image.Image, e Entry) []image.Image {
	src, ok := img.(subImager)
	if !ok {
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		src = rgba
	}

	origin := img.Bounds().Min
	frames := make([]image.Image, 0, e.Frames)
	for i := 0; i < e.Frames; i++ {
		x := origin.X + i*(e.FrameWidth+e.Spacing)
		r := image.Rect(x, origin.Y, x+e.FrameWidth, origin.Y+e.FrameHeight)
		frames = append(frames, src.SubImage(r))
	}
	return frames
}
