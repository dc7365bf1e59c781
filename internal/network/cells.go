package network

import "sync"

// Pointer holds the most recent pointer position. Input handlers write it
// from whatever goroutine delivers events; the frame loop reads it once per
// tick and hands the value to Step.
type Pointer struct {
	mu  sync.Mutex
	pos Vec
}

// NewPointer returns a pointer cell parked at start, normally the viewport center.
func NewPointer(start Vec) *Pointer {
	return &Pointer{pos: start}
}

// Set records a new pointer position. Any value is accepted, including
// positions outside the viewport.
func (p *Pointer) Set(x, y float64) {
	p.mu.Lock()
	p.pos = Vec{X: x, Y: y}
	p.mu.Unlock()
}

// Get returns the last recorded position.
func (p *Pointer) Get() Vec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

// Viewport carries size changes from the host to the frame loop. Only the
// latest size published before a tick is applied.
type Viewport struct {
	mu      sync.Mutex
	size    Size
	pending bool
}

// NewViewport returns a cell holding the initial size with nothing pending.
func NewViewport(initial Size) *Viewport {
	return &Viewport{size: initial}
}

// Set publishes a new size. Publishing the current size again is a no-op.
func (v *Viewport) Set(size Size) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if size == v.size {
		return
	}
	v.size = size
	v.pending = true
}

// Size returns the latest published size.
func (v *Viewport) Size() Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size
}

// Changed returns the latest size and clears the pending flag. ok is false
// when nothing changed since the previous call.
func (v *Viewport) Changed() (size Size, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	ok = v.pending
	v.pending = false
	return v.size, ok
}
