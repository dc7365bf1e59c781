// Package window hosts the particle network in an Ebitengine window.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivierh59500/particle-network-go/internal/render"
	"golang.org/x/image/font/basicfont"
)

// Surface is a render.Surface drawing onto an ebiten image.
type Surface struct {
	render.Pen
	dst *ebiten.Image
}

// SetTarget points the surface at the image to draw on, normally the
// screen handed to Game.Draw.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := render.PixelRect(x, y, w, h).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	if r == s.dst.Bounds() {
		s.dst.Clear()
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) Stroke() {
	w := float32(s.LineWidth)
	s.Segments(func(a, b render.Point) {
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, s.StrokeColor, true)
	})
}

func (s *Surface) FillCircle(x, y, r float64) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), s.FillColor, true)
}

func (s *Surface) FillText(str string, x, y float64) {
	face := s.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	text.Draw(s.dst, str, face, int(x), int(y), s.FillColor)
}
