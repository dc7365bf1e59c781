// Package render draws the particle network onto an immediate-mode 2D
// surface and drives the step/draw frame loop.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/olivierh59500/particle-network-go/internal/network"
	"golang.org/x/image/font"
)

// Surface is the minimal canvas-style drawing contract the renderer needs.
// Coordinates are in viewport units with the origin at the top-left.
type Surface interface {
	ClearRect(x, y, w, h float64)
	SetLineWidth(w float64)
	SetStrokeColor(c color.NRGBA)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	SetFillColor(c color.NRGBA)
	FillCircle(x, y, r float64)
	SetFont(face font.Face)
	FillText(s string, x, y float64)
}

// Flusher is implemented by surfaces that need an explicit present step
// after a frame is drawn.
type Flusher interface {
	Flush()
}

// Layer draws something under the links and particles, after the clear.
type Layer interface {
	Draw(s Surface, viewport network.Size)
}

// Point is a path vertex.
type Point struct {
	X, Y float64
}

// Pen carries the canvas state shared by every backend: stroke and fill
// settings, the current face and the path under construction. Backends
// embed it and implement ClearRect, Stroke, FillCircle and FillText.
type Pen struct {
	LineWidth   float64
	StrokeColor color.NRGBA
	FillColor   color.NRGBA
	Face        font.Face

	subpaths [][]Point
}

func (p *Pen) SetLineWidth(w float64)       { p.LineWidth = w }
func (p *Pen) SetStrokeColor(c color.NRGBA) { p.StrokeColor = c }
func (p *Pen) SetFillColor(c color.NRGBA)   { p.FillColor = c }
func (p *Pen) SetFont(face font.Face)       { p.Face = face }

// BeginPath discards the current path.
func (p *Pen) BeginPath() {
	p.subpaths = p.subpaths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (p *Pen) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, []Point{{x, y}})
}

// LineTo extends the current subpath. Without a current subpath it behaves
// like MoveTo.
func (p *Pen) LineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], Point{x, y})
}

// Segments calls fn for every line segment of the current path.
func (p *Pen) Segments(fn func(a, b Point)) {
	for _, sp := range p.subpaths {
		for i := 1; i < len(sp); i++ {
			fn(sp[i-1], sp[i])
		}
	}
}

// PixelRect returns the smallest integer rectangle covering the given
// rectangle in viewport units.
func PixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
