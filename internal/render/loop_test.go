package render

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/olivierh59500/particle-network-go/internal/network"
)

func newTestLoop(t *testing.T, count int) (*Loop, *network.Simulation, *network.Pointer, *network.Viewport, *recorder) {
	t.Helper()
	sim := network.NewSimulation(network.Params{
		Count:    count,
		Width:    800,
		Height:   600,
		MaxSpeed: 0.4,
	}, rand.New(rand.NewSource(5)))
	pointer := network.NewPointer(sim.Bounds().Center())
	vp := network.NewViewport(sim.Bounds())
	rec := &recorder{}
	loop := NewLoop(sim, NewRenderer(rec, DefaultStyle(), 180), pointer, vp, nil)
	return loop, sim, pointer, vp, rec
}

func TestLoopRunFrames(t *testing.T) {
	loop, _, _, _, rec := newTestLoop(t, 10)

	if loop.State() != Stopped {
		t.Fatalf("expected initial state Stopped, got %v", loop.State())
	}

	frames := Frames(3)
	if err := loop.Run(context.Background(), &frames); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if loop.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", loop.Frames())
	}
	if rec.flushed != 3 {
		t.Errorf("expected 3 rendered frames, got %d", rec.flushed)
	}
	if loop.State() != Stopped {
		t.Errorf("expected Stopped after Run, got %v", loop.State())
	}
}

// blockingScheduler reports the loop state while it waits, then blocks
// until the context is cancelled.
type blockingScheduler struct {
	waiting chan State
	loop    *Loop
}

func (b *blockingScheduler) Wait(ctx context.Context) error {
	b.waiting <- b.loop.State()
	<-ctx.Done()
	return ctx.Err()
}

func TestLoopRunCancel(t *testing.T) {
	loop, _, _, _, _ := newTestLoop(t, 10)
	sched := &blockingScheduler{waiting: make(chan State, 1), loop: loop}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx, sched) }()

	if st := <-sched.waiting; st != Running {
		t.Errorf("expected Running while scheduled, got %v", st)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if loop.State() != Stopped {
		t.Errorf("expected Stopped after cancel, got %v", loop.State())
	}
}

func TestLoopRunCancelledBeforeStart(t *testing.T) {
	loop, _, _, _, _ := newTestLoop(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := Frames(10)
	if err := loop.Run(ctx, &frames); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if loop.Frames() != 0 {
		t.Errorf("expected no frames, got %d", loop.Frames())
	}
}

type panicLayer struct{}

func (panicLayer) Draw(Surface, network.Size) { panic("boom") }

func TestLoopPanicPropagates(t *testing.T) {
	loop, _, _, _, _ := newTestLoop(t, 2)
	loop.renderer.Layers = []Layer{panicLayer{}}

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected panic boom to propagate, got %v", r)
		}
		if loop.State() != Stopped {
			t.Errorf("expected Stopped after a crashed tick, got %v", loop.State())
		}
	}()

	frames := Frames(5)
	_ = loop.Run(context.Background(), &frames)
	t.Error("Run returned instead of panicking")
}

func TestLoopTickUsesPointer(t *testing.T) {
	loop, sim, pointer, _, _ := newTestLoop(t, 0)
	p := &network.Particle{X: 10, Y: 10}
	sim.Particles = []*network.Particle{p}

	pointer.Set(0, 0)
	loop.Tick()

	want := 10 * -1 * network.Attraction
	if p.VX != want || p.VY != want {
		t.Errorf("expected velocity (%v, %v), got (%v, %v)", want, want, p.VX, p.VY)
	}
}

func TestLoopTickAppliesResize(t *testing.T) {
	loop, sim, _, vp, rec := newTestLoop(t, 0)

	vp.Set(network.Size{W: 320, H: 200})
	loop.Tick()

	if got := sim.Bounds(); got != (network.Size{W: 320, H: 200}) {
		t.Errorf("expected bounds 320x200, got %+v", got)
	}
	if rec.calls[0] != "clear 0 0 320 200" {
		t.Errorf("expected frame cleared at new size, got %q", rec.calls[0])
	}
}

func TestTickerWaitCancelled(t *testing.T) {
	tk := NewTicker(60)
	defer tk.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tk.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Stopped.String() != "stopped" {
		t.Errorf("unexpected state names %q %q", Running, Stopped)
	}
}
