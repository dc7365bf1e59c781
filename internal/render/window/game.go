package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render"
)

// Options configures the window.
type Options struct {
	Title         string
	Width, Height int
	TPS           int
}

// Game adapts a frame loop to ebiten.Game. Ebitengine calls Draw once per
// display refresh, so one Draw is one loop iteration.
type Game struct {
	ctx      context.Context
	loop     *render.Loop
	surface  *Surface
	pointer  *network.Pointer
	viewport *network.Viewport

	cursorSeen       bool
	cursorX, cursorY int
}

// NewGame creates a game drawing loop frames through surface. The loop's
// renderer must have been built on the same surface.
func NewGame(ctx context.Context, loop *render.Loop, surface *Surface, pointer *network.Pointer, viewport *network.Viewport) *Game {
	return &Game{
		ctx:      ctx,
		loop:     loop,
		surface:  surface,
		pointer:  pointer,
		viewport: viewport,
	}
}

// Update is called each tick by Ebitengine. It only gathers input; the
// simulation steps in Draw.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Stop()
		return ebiten.Termination
	}

	// Only movement counts, so the pointer stays centered until the
	// cursor actually moves.
	mx, my := ebiten.CursorPosition()
	if !g.cursorSeen {
		g.cursorX, g.cursorY, g.cursorSeen = mx, my, true
	} else if mx != g.cursorX || my != g.cursorY {
		g.cursorX, g.cursorY = mx, my
		g.pointer.Set(float64(mx), float64(my))
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.loop.Tick()
}

// Layout tracks the window size one-to-one and publishes changes to the loop.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.Set(network.Size{W: float64(outsideWidth), H: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(g *Game, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	g.loop.Start()
	defer g.loop.Stop()
	return ebiten.RunGame(g)
}
