package assets

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/rockflight/internal/core"
)

// Placeholder generates stand-in art for an image or spritesheet entry.
func Placeholder(e Entry) *image.RGBA {
	w, h := e.Width, e.Height
	if w <= 0 || h <= 0 {
		w, h = 32, 32
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch e.Key {
	case KeyBackground:
		drawSky(img, e.Tint)
	case KeyGround:
		drawGround(img, e.Tint)
	case KeyPlane:
		for i := 0; i < max(e.Frames, 1); i++ {
			x := i * (e.FrameWidth + e.Spacing)
			drawPlaneFrame(img, x, i, e.Tint)
		}
	case KeyPuff:
		drawPuff(img, e.Tint)
	case KeyRockTop:
		fillPolygon(img, []core.Vec2{{X: 0, Y: 0}, {X: 108, Y: 0}, {X: 62, Y: 239}, {X: 46, Y: 239}}, e.Tint)
	case KeyRockBottom:
		fillPolygon(img, []core.Vec2{{X: 46, Y: 0}, {X: 62, Y: 0}, {X: 108, Y: 239}, {X: 0, Y: 239}}, e.Tint)
	case KeyGameOver:
		drawBanner(img, "GAME OVER", e.Tint)
	case KeyStart:
		drawBanner(img, "TAP TO START", e.Tint)
	case KeyFullscreen:
		drawFullscreenIcon(img, e.Tint)
	default:
		fillRect(img, img.Bounds(), e.Tint)
	}
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillPolygon fills a convex outline by testing pixel centers.
func fillPolygon(img *image.RGBA, poly []core.Vec2, c color.RGBA) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for y := int(minY); y <= int(maxY); y++ {
		for x := int(minX); x <= int(maxX); x++ {
			if insideConvex(poly, float64(x)+0.5, float64(y)+0.5) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func insideConvex(poly []core.Vec2, x, y float64) bool {
	sign := 0.0
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(core.ClampF(float64(c.R)*f, 0, 255)),
		G: uint8(core.ClampF(float64(c.G)*f, 0, 255)),
		B: uint8(core.ClampF(float64(c.B)*f, 0, 255)),
		A: c.A,
	}
}

func drawSky(img *image.RGBA, tint color.RGBA) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := shade(tint, core.Lerp(0.8, 1.15, float64(y)/h))
		for x := 0; x < b.Dx(); x++ {
			img.SetRGBA(x, y, row)
		}
	}
	// Two hill layers whose periods divide the width so the strip tiles.
	hills := []struct {
		base, amp float64
		waves     float64
		c         color.RGBA
	}{
		{base: h * 0.72, amp: h * 0.06, waves: 3, c: color.RGBA{R: 150, G: 200, B: 170, A: 255}},
		{base: h * 0.8, amp: h * 0.05, waves: 5, c: color.RGBA{R: 110, G: 170, B: 120, A: 255}},
	}
	for _, hill := range hills {
		for x := 0; x < b.Dx(); x++ {
			top := hill.base - hill.amp*math.Sin(2*math.Pi*hill.waves*float64(x)/w)
			for y := int(top); y < b.Dy(); y++ {
				img.SetRGBA(x, y, hill.c)
			}
		}
	}
}

func drawGround(img *image.RGBA, tint color.RGBA) {
	b := img.Bounds()
	fillRect(img, image.Rect(0, 14, b.Dx(), b.Dy()), tint)
	fillRect(img, image.Rect(0, 14, b.Dx(), 22), color.RGBA{R: 90, G: 160, B: 60, A: 255})
	dark := shade(tint, 0.8)
	for x := 0; x < b.Dx(); x += 16 {
		fillRect(img, image.Rect(x, 30, x+8, 34), dark)
	}
}

func drawPlaneFrame(img *image.RGBA, ox, frame int, tint color.RGBA) {
	at := func(pts ...float64) []core.Vec2 {
		poly := make([]core.Vec2, 0, len(pts)/2)
		for i := 0; i+1 < len(pts); i += 2 {
			poly = append(poly, core.Vec2{X: pts[i] + float64(ox), Y: pts[i+1]})
		}
		return poly
	}
	fillPolygon(img, at(4, 8, 20, 8, 30, 30, 8, 30), shade(tint, 0.8))
	fillPolygon(img, at(8, 30, 70, 24, 86, 38, 74, 56, 12, 52), tint)
	fillPolygon(img, at(30, 40, 60, 40, 54, 60, 36, 60), shade(tint, 0.7))

	// The propeller blade changes length per frame.
	blade := []int{26, 14, 4}[frame%3]
	fillRect(img, image.Rect(ox+84, 40-blade/2, ox+87, 40+blade/2+1), color.RGBA{R: 50, G: 50, B: 50, A: 255})
}

func drawPuff(img *image.RGBA, tint color.RGBA) {
	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	r := math.Min(cx, cy)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / r
			if d >= 1 {
				continue
			}
			a := 1 - d*d
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(tint.R) * a),
				G: uint8(float64(tint.G) * a),
				B: uint8(float64(tint.B) * a),
				A: uint8(255 * a),
			})
		}
	}
}

func drawBanner(img *image.RGBA, text string, tint color.RGBA) {
	b := img.Bounds()
	fillRect(img, b, shade(tint, 0.6))
	fillRect(img, b.Inset(4), tint)

	face := basicfont.Face7x13
	label := image.NewRGBA(image.Rect(0, 0, font.MeasureString(face, text).Ceil(), face.Height))
	d := &font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	// Scale the text up by an integer factor that fits the banner.
	lw, lh := label.Bounds().Dx(), label.Bounds().Dy()
	scale := max(1, min((b.Dx()-16)/max(lw, 1), (b.Dy()-8)/max(lh, 1)))
	dw, dh := lw*scale, lh*scale
	x0 := (b.Dx() - dw) / 2
	y0 := (b.Dy() - dh) / 2
	draw.NearestNeighbor.Scale(img, image.Rect(x0, y0, x0+dw, y0+dh), label, label.Bounds(), draw.Over, nil)
}

func drawFullscreenIcon(img *image.RGBA, tint color.RGBA) {
	b := img.Bounds()
	fillRect(img, b, color.RGBA{A: 0})
	fillRect(img, b.Inset(2), color.RGBA{R: tint.R, G: tint.G, B: tint.B, A: 160})
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	w, h := b.Dx(), b.Dy()
	arm, t, m := w/4, 4, 10
	corners := []image.Point{{X: m, Y: m}, {X: w - m, Y: m}, {X: m, Y: h - m}, {X: w - m, Y: h - m}}
	for i, c := range corners {
		dx := 1
		if i%2 == 1 {
			dx = -1
		}
		dy := 1
		if i >= 2 {
			dy = -1
		}
		fillRect(img, image.Rect(c.X, c.Y, c.X+dx*arm, c.Y+dy*t), white)
		fillRect(img, image.Rect(c.X, c.Y, c.X+dx*t, c.Y+dy*arm), white)
	}
}
