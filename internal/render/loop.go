package render

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/olivierh59500/particle-network-go/internal/network"
)

// StatsEvery is how many frames pass between debug stat lines.
const StatsEvery = 600

// State is the loop's scheduling state.
type State int32

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Loop advances the simulation and redraws it once per frame.
type Loop struct {
	sim      *network.Simulation
	renderer *Renderer
	pointer  *network.Pointer
	viewport *network.Viewport
	log      *slog.Logger

	state  atomic.Int32
	frames uint64
	links  int
}

// NewLoop wires a loop. viewport may be nil when the host never resizes.
func NewLoop(sim *network.Simulation, r *Renderer, pointer *network.Pointer, viewport *network.Viewport, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		sim:      sim,
		renderer: r,
		pointer:  pointer,
		viewport: viewport,
		log:      logger,
	}
}

// State returns the current scheduling state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Start marks the loop Running. Hosts that own their own frame callback
// (ebiten) call Start once and then Tick from the callback.
func (l *Loop) Start() {
	if l.state.Swap(int32(Running)) != int32(Running) {
		l.log.Debug("frame loop started", "particles", len(l.sim.Particles))
	}
}

// Stop marks the loop Stopped.
func (l *Loop) Stop() {
	if l.state.Swap(int32(Stopped)) != int32(Stopped) {
		l.log.Debug("frame loop stopped", "frames", l.frames)
	}
}

// Frames returns how many ticks have completed.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Tick runs one iteration: apply a pending resize, step once, draw once.
// Panics from the step or the draw are not recovered.
func (l *Loop) Tick() {
	if l.viewport != nil {
		if size, ok := l.viewport.Changed(); ok {
			l.sim.Resize(size.W, size.H)
			l.log.Debug("viewport resized", "width", size.W, "height", size.H)
		}
	}

	l.sim.Step(l.pointer.Get())
	l.links = l.renderer.Frame(l.sim.Particles, l.sim.Bounds())
	l.frames++

	if l.frames%StatsEvery == 0 {
		l.log.Debug("frame stats", "frames", l.frames, "links", l.links)
	}
}

// Run ticks once per scheduler wakeup until ctx is cancelled or the
// scheduler reports ErrDone. Cancellation is checked at every iteration
// boundary. The loop is Stopped on return, including when a tick panics.
func (l *Loop) Run(ctx context.Context, sched Scheduler) error {
	l.Start()
	defer l.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sched.Wait(ctx); err != nil {
			if errors.Is(err, ErrDone) {
				return nil
			}
			return err
		}
		l.Tick()
	}
}
