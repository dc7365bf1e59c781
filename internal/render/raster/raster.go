// Package raster is a software framebuffer backend for the renderer. It
// draws into an *image.RGBA, which makes it usable headless and in tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/olivierh59500/particle-network-go/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Surface is a render.Surface backed by an RGBA image.
type Surface struct {
	render.Pen

	// Background is what ClearRect paints. Nil clears to transparent.
	Background color.Color

	img *image.RGBA
	ras *vector.Rasterizer
}

// New creates a w×h framebuffer.
func New(w, h int) *Surface {
	s := &Surface{ras: vector.NewRasterizer(w, h)}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	return s
}

// Image returns the framebuffer. It is reused across frames.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Resize reallocates the framebuffer. The old contents are dropped.
func (s *Surface) Resize(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.ras = vector.NewRasterizer(w, h)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := render.PixelRect(x, y, w, h).Intersect(s.img.Bounds())

	bg := s.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(s.img, r, image.NewUniform(bg), image.Point{}, draw.Src)
}

// Stroke draws each path segment as a quad LineWidth wide.
func (s *Surface) Stroke() {
	half := float32(s.LineWidth / 2)
	if half <= 0 {
		return
	}
	src := image.NewUniform(s.StrokeColor)

	s.Segments(func(a, b render.Point) {
		dx, dy := float32(b.X-a.X), float32(b.Y-a.Y)
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			return
		}
		// Unit normal scaled to half the line width.
		nx, ny := -dy/l*half, dx/l*half
		ax, ay := float32(a.X), float32(a.Y)
		bx, by := float32(b.X), float32(b.Y)

		s.begin()
		s.ras.MoveTo(ax+nx, ay+ny)
		s.ras.LineTo(bx+nx, by+ny)
		s.ras.LineTo(bx-nx, by-ny)
		s.ras.LineTo(ax-nx, ay-ny)
		s.ras.ClosePath()
		s.ras.Draw(s.img, s.img.Bounds(), src, image.Point{})
	})
}

// FillCircle fills a disc approximated by four cubic Béziers.
func (s *Surface) FillCircle(x, y, r float64) {
	b := s.img.Bounds()
	if r <= 0 || x+r < float64(b.Min.X) || x-r > float64(b.Max.X) || y+r < float64(b.Min.Y) || y-r > float64(b.Max.Y) {
		return
	}

	cx, cy, rr := float32(x), float32(y), float32(r)
	k := float32(kappa) * rr

	s.begin()
	s.ras.MoveTo(cx+rr, cy)
	s.ras.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	s.ras.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	s.ras.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	s.ras.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	s.ras.ClosePath()
	s.ras.Draw(s.img, b, image.NewUniform(s.FillColor), image.Point{})
}

// FillText draws s with its baseline at y. The 7x13 bitmap face is used
// when no face was set.
func (s *Surface) FillText(text string, x, y float64) {
	face := s.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.FillColor),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(text)
}

func (s *Surface) begin() {
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over
}
