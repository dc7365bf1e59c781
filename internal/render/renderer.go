package render

import (
	"image/color"
	"math"

	"github.com/olivierh59500/particle-network-go/internal/network"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Style holds the fixed look of a frame.
type Style struct {
	LineWidth    float64
	LinkColor    color.NRGBA // Alpha is replaced per link
	MaxLinkAlpha float64     // Alpha of a link between coincident particles
	NodeRadius   float64
	NodeColor    color.NRGBA
	LabelColor   color.NRGBA
	LabelOffset  network.Vec
	Face         font.Face
}

// DefaultStyle returns the stock look: faint white links, coral nodes and
// peach labels.
func DefaultStyle() Style {
	return Style{
		LineWidth:    1,
		LinkColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		MaxLinkAlpha: 0.08,
		NodeRadius:   3.2,
		NodeColor:    color.NRGBA{R: 0xff, G: 0x75, B: 0x55, A: 0xff},
		LabelColor:   color.NRGBA{R: 0xf6, G: 0xc9, B: 0xa3, A: 0xff},
		LabelOffset:  network.Vec{X: 8, Y: -8},
		Face:         basicfont.Face7x13,
	}
}

// LinkAlpha fades linearly from maxAlpha at distance 0 to 0 at threshold.
func LinkAlpha(dist, threshold, maxAlpha float64) float64 {
	return maxAlpha * (1 - dist/threshold)
}

// Renderer draws particle snapshots onto a Surface.
type Renderer struct {
	Surface            Surface
	Style              Style
	ConnectionDistance float64
	Layers             []Layer
}

// NewRenderer creates a renderer linking particles closer than connectionDistance.
func NewRenderer(s Surface, style Style, connectionDistance float64) *Renderer {
	return &Renderer{
		Surface:            s,
		Style:              style,
		ConnectionDistance: connectionDistance,
	}
}

// Frame clears the surface and draws one frame: layers, then links, then
// particles and their labels. It returns the number of links drawn.
//
// Links are found by scanning every pair, which is fine for a few hundred
// particles.
func (r *Renderer) Frame(particles []*network.Particle, viewport network.Size) int {
	s := r.Surface
	st := r.Style

	s.ClearRect(0, 0, viewport.W, viewport.H)
	for _, l := range r.Layers {
		l.Draw(s, viewport)
	}

	links := 0
	s.SetLineWidth(st.LineWidth)
	for i, a := range particles {
		for j := i + 1; j < len(particles); j++ {
			b := particles[j]
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if dist >= r.ConnectionDistance {
				continue
			}
			s.SetStrokeColor(withAlpha(st.LinkColor, LinkAlpha(dist, r.ConnectionDistance, st.MaxLinkAlpha)))
			s.BeginPath()
			s.MoveTo(a.X, a.Y)
			s.LineTo(b.X, b.Y)
			s.Stroke()
			links++
		}
	}

	for _, p := range particles {
		s.SetFillColor(st.NodeColor)
		s.FillCircle(p.X, p.Y, st.NodeRadius)

		if p.Labeled() {
			s.SetFont(st.Face)
			s.SetFillColor(st.LabelColor)
			s.FillText(p.Label, p.X+st.LabelOffset.X, p.Y+st.LabelOffset.Y)
		}
	}

	if f, ok := s.(Flusher); ok {
		f.Flush()
	}
	return links
}

// withAlpha scales c's alpha by a in [0,1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}
