// Package network simulates the ambient particle field: a fixed set of
// drifting particles pulled gently toward a pointer and wrapped at the edges.
package network

import (
	"math"
	"math/rand"
	"time"
)

// Simulation constants
const (
	MinSpeed   = 0.05    // Spawn speed floor, no particle starts stationary
	Attraction = 0.00002 // Velocity gained per unit of offset from the pointer, per tick
	MinMass    = 0.4
	MaxMass    = 1.0
)

// Vec is a point or offset in viewport units.
type Vec struct {
	X, Y float64
}

// Size is a viewport extent in the same units as particle positions.
type Size struct {
	W, H float64
}

// Center returns the midpoint of the viewport.
func (s Size) Center() Vec {
	return Vec{X: s.W / 2, Y: s.H / 2}
}

// Particle struct: Represents a single node of the network
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Mass   float64 // Not used by Step
	Label  string  // Empty when unlabeled
}

// Labeled reports whether the particle carries a label.
func (p *Particle) Labeled() bool {
	return p.Label != ""
}

// Params are the construction inputs for NewSimulation.
//
// They are trusted: Count must be non-negative, Width and Height positive,
// and MaxSpeed greater than MinSpeed. Violating these yields unspecified
// (possibly NaN) positions.
type Params struct {
	Count            int
	Width, Height    float64
	MaxSpeed         float64
	Labels           []string
	LabelProbability float64
}

// Simulation owns the particle field and the bounds used for wrapping.
type Simulation struct {
	Width, Height float64
	Particles     []*Particle
}

// NewSimulation creates p.Count particles using rng. A nil rng is seeded
// from the clock.
func NewSimulation(p Params, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Simulation{
		Width:     p.Width,
		Height:    p.Height,
		Particles: make([]*Particle, p.Count),
	}
	for i := range s.Particles {
		s.Particles[i] = spawn(p, rng)
	}
	return s
}

func spawn(p Params, rng *rand.Rand) *Particle {
	angle := rng.Float64() * 2 * math.Pi
	// Float64 is in [0,1), so speed lands in (MinSpeed, MaxSpeed]
	speed := p.MaxSpeed - rng.Float64()*(p.MaxSpeed-MinSpeed)

	n := &Particle{
		X:    rng.Float64() * p.Width,
		Y:    rng.Float64() * p.Height,
		VX:   math.Cos(angle) * speed,
		VY:   math.Sin(angle) * speed,
		Mass: MinMass + rng.Float64()*(MaxMass-MinMass),
	}
	if len(p.Labels) > 0 && rng.Float64() < p.LabelProbability {
		n.Label = p.Labels[rng.Intn(len(p.Labels))]
	}
	return n
}

// Step advances the simulation by one tick toward target.
func (s *Simulation) Step(target Vec) {
	Step(s.Particles, target, s.Width, s.Height)
}

// Resize changes the wrap bounds. Existing positions are left alone; a
// particle outside the new bounds wraps on its next Step.
func (s *Simulation) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// Bounds returns the current wrap bounds.
func (s *Simulation) Bounds() Size {
	return Size{W: s.Width, H: s.Height}
}

// Step moves every particle by its current velocity, then accelerates it
// toward target and wraps it into [0,width)×[0,height). The velocity change
// only shows up in the position on the following tick.
//
// There is no damping: a particle tracking a still pointer keeps speeding up.
func Step(particles []*Particle, target Vec, width, height float64) {
	for _, p := range particles {
		p.X += p.VX
		p.Y += p.VY

		p.VX += (target.X - p.X) * Attraction
		p.VY += (target.Y - p.Y) * Attraction

		p.X = wrap(p.X, width)
		p.Y = wrap(p.Y, height)
	}
}

// wrap is a strict toroidal wrap: leaving past the high edge re-enters at 0,
// leaving past 0 re-enters just inside the high edge.
func wrap(v, limit float64) float64 {
	switch {
	case v >= limit:
		return 0
	case v < 0:
		return math.Nextafter(limit, 0)
	}
	return v
}
