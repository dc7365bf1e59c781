package term

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render"
)

// Input turns tcell events into pointer and viewport updates.
type Input struct {
	Surface  *Surface
	Pointer  *network.Pointer
	Viewport *network.Viewport
}

// Handle applies one event. It returns false when the event asks to quit.
func (in *Input) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.Pointer.Set(in.Surface.CellCenter(x, y))
	case *tcell.EventResize:
		w, h := ev.Size()
		in.Viewport.Set(in.Surface.CellsToViewport(w, h))
	}
	return true
}

// Run drives loop at fps until ctx is cancelled or the user quits. Events
// are read on their own goroutine; the pointer and viewport cells carry
// them to the loop. The caller owns the screen and calls Fini afterwards,
// which also stops the event goroutine.
func Run(ctx context.Context, screen tcell.Screen, loop *render.Loop, in *Input, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen.EnableMouse()
	screen.HideCursor()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !in.Handle(ev) {
				cancel()
			}
		}
	}()

	tk := render.NewTicker(fps)
	defer tk.Stop()

	if err := loop.Run(ctx, tk); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
