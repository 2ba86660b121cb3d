package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/rockflight/internal/assets"
	"github.com/vovakirdan/rockflight/internal/flight"
	"github.com/vovakirdan/rockflight/internal/physics"
)

// HUD layout in world pixels.
const (
	hudMargin      = 20
	hudTextScale   = 1.5
	scoreValueX    = 85
	highScoreX     = 140
	highScoreFromY = 40
	startScale     = 0.5
)

var hudColor = color.RGBA{R: 0x18, G: 0x67, B: 0x82, A: 0xff}

// spriteCache converts bundle images to GPU images on first use.
type spriteCache struct {
	bundle *assets.Bundle
	images map[string]*ebiten.Image
	frames map[string][]*ebiten.Image
}

func newSpriteCache() *spriteCache {
	return &spriteCache{}
}

func (c *spriteCache) use(b *assets.Bundle) {
	if c.bundle == b {
		return
	}
	c.bundle = b
	c.images = make(map[string]*ebiten.Image)
	c.frames = make(map[string][]*ebiten.Image)
}

func (c *spriteCache) image(key string) *ebiten.Image {
	if img, ok := c.images[key]; ok {
		return img
	}
	src := c.bundle.Image(key)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[key] = img
	return img
}

func (c *spriteCache) frame(key string, i int) *ebiten.Image {
	frames, ok := c.frames[key]
	if !ok {
		for _, f := range c.bundle.Frames[key] {
			frames = append(frames, ebiten.NewImageFromImage(f))
		}
		c.frames[key] = frames
	}
	if len(frames) == 0 {
		return c.image(key)
	}
	if i < 0 || i >= len(frames) {
		i = 0
	}
	return frames[i]
}

// drawCentered draws img with its center at (x, y), scaled and rotated
// about that center.
func drawCentered(dst, img *ebiten.Image, x, y, scale, rotation float64, op *ebiten.DrawImageOptions) {
	if img == nil {
		return
	}
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}
	b := img.Bounds()
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

func (g *Game) drawBody(dst, img *ebiten.Image, b *physics.Body) {
	drawCentered(dst, img, b.X, b.Y, 1, b.Rotation, nil)
}

// drawGame draws background, rocks, ground, overlays, plane, particles,
// button and HUD in that order.
func (g *Game) drawGame(dst *ebiten.Image, gs *flight.GameScene) {
	g.sprites.use(gs.Assets())
	w, h := gs.Size()

	if bg := g.sprites.image(assets.KeyBackground); bg != nil {
		bw := float64(bg.Bounds().Dx())
		for x := -gs.Background().TileX(); x < w; x += bw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, (h-float64(bg.Bounds().Dy()))/2)
			dst.DrawImage(bg, op)
		}
	}

	top, bottom := g.sprites.image(assets.KeyRockTop), g.sprites.image(assets.KeyRockBottom)
	for _, r := range gs.Rocks().Rocks() {
		if !r.Visible {
			continue
		}
		g.drawBody(dst, top, r.Top)
		g.drawBody(dst, bottom, r.Bottom)
	}

	ground := g.sprites.image(assets.KeyGround)
	left, right := gs.Ground().Segments()
	g.drawBody(dst, ground, left)
	g.drawBody(dst, ground, right)

	if gs.StartVisible() {
		drawCentered(dst, g.sprites.image(assets.KeyStart), w/2, h*0.6, startScale, 0, nil)
	}
	if gs.GameOverVisible() {
		drawCentered(dst, g.sprites.image(assets.KeyGameOver), w/2, h/2, 1, 0, nil)
	}

	p := gs.Plane()
	drawCentered(dst, g.sprites.frame(assets.KeyPlane, p.Anim.Frame()),
		p.Body.X, p.Body.Y, p.Scale(), p.Body.Rotation, nil)

	puff := g.sprites.image(assets.KeyPuff)
	p.Emitter.Each(func(pt flight.Particle) {
		op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
		op.ColorScale.ScaleAlpha(float32(p.Emitter.Alpha(pt)))
		drawCentered(dst, puff, pt.X, pt.Y, p.Emitter.Scale(pt), 0, op)
	})

	if btn := g.sprites.image(assets.KeyFullscreen); btn != nil {
		box := gs.FullscreenButton()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(box.W/float64(btn.Bounds().Dx()), box.H/float64(btn.Bounds().Dy()))
		op.GeoM.Translate(box.X, box.Y)
		dst.DrawImage(btn, op)
	}

	g.drawText(dst, "Score:", hudMargin, hudMargin)
	g.drawText(dst, fmt.Sprint(gs.Score()), scoreValueX, hudMargin)
	g.drawText(dst, "High Score:", hudMargin, h-highScoreFromY)
	g.drawText(dst, fmt.Sprint(gs.HighScore()), highScoreX, h-highScoreFromY)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(dst, s, g.face, op)
}

// drawLoading draws the loading line centered on a black screen.
func (g *Game) drawLoading(dst *ebiten.Image, l *flight.LoadScene) {
	dst.Fill(color.Black)
	s := l.Text()
	tw, th := text.Measure(s, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate((float64(g.width)-tw*hudTextScale)/2, (float64(g.height)-th*hudTextScale)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, s, g.face, op)
}
