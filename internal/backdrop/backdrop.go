// Package backdrop draws the soft glow blobs behind the network. They drift
// against the pointer for a parallax effect and breathe on Perlin noise.
package backdrop

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render"
)

const (
	breathSpeed = 0.004 // Noise units advanced per frame
	breathDepth = 0.12  // Max relative radius change
	hueDrift    = 12.0  // Max hue shift in degrees
)

// Glow is one blob. Position is a fraction of the viewport, radius a
// fraction of its shorter side.
type Glow struct {
	X, Y   float64
	Radius float64
	Hue    float64
	Alpha  uint8
}

// DefaultGlows are a coral blob upper left and a peach one lower right.
var DefaultGlows = []Glow{
	{X: 0.22, Y: 0.28, Radius: 0.34, Hue: 12, Alpha: 22},
	{X: 0.78, Y: 0.72, Radius: 0.28, Hue: 28, Alpha: 18},
}

// Backdrop is a render.Layer.
type Backdrop struct {
	Glows    []Glow
	Strength float64 // Parallax: offset per unit of pointer distance from center

	pointer *network.Pointer
	noise   *perlin.Perlin
	t       float64
}

// New creates a backdrop following pointer. seed fixes the breathing pattern.
func New(pointer *network.Pointer, strength float64, seed int64) *Backdrop {
	return &Backdrop{
		Glows:    DefaultGlows,
		Strength: strength,
		pointer:  pointer,
		noise:    perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Offset is how far the glows are pushed for the current pointer.
func (b *Backdrop) Offset(viewport network.Size) network.Vec {
	p := b.pointer.Get()
	c := viewport.Center()
	return network.Vec{X: (p.X - c.X) * b.Strength, Y: (p.Y - c.Y) * b.Strength}
}

// Draw paints the glows and advances the breathing phase by one frame.
func (b *Backdrop) Draw(s render.Surface, viewport network.Size) {
	off := b.Offset(viewport)
	short := math.Min(viewport.W, viewport.H)

	for i, g := range b.Glows {
		n := b.noise.Noise1D(b.t + float64(i)*7.3)
		r, gr, bl := hsvToRGB(g.Hue+n*hueDrift, 0.65, 1)
		s.SetFillColor(color.NRGBA{R: r, G: gr, B: bl, A: g.Alpha})
		s.FillCircle(g.X*viewport.W+off.X, g.Y*viewport.H+off.Y, g.Radius*short*(1+n*breathDepth))
	}
	b.t += breathSpeed
}

// hsvToRGB converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}
