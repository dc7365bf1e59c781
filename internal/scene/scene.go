// Package scene assembles a runnable particle network from configuration:
// the simulation, the shared pointer and viewport cells, the renderer and
// the frame loop around it.
package scene

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/olivierh59500/particle-network-go/internal/backdrop"
	"github.com/olivierh59500/particle-network-go/internal/config"
	"github.com/olivierh59500/particle-network-go/internal/logging"
	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render"
)

// Scene is one wired particle network.
type Scene struct {
	Simulation *network.Simulation
	Pointer    *network.Pointer
	Viewport   *network.Viewport
	Renderer   *render.Renderer
	Backdrop   *backdrop.Backdrop // nil when disabled
	Loop       *render.Loop
	Seed       int64
}

// New builds a scene drawing onto surface at the given initial size. cfg
// is expected to have passed Validate.
func New(cfg *config.Config, surface render.Surface, size network.Size, logger *slog.Logger) *Scene {
	if logger == nil {
		logger = logging.Discard()
	}
	seed := cfg.Network.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := network.NewSimulation(network.Params{
		Count:            cfg.Network.Count,
		Width:            size.W,
		Height:           size.H,
		MaxSpeed:         cfg.Network.MaxSpeed,
		Labels:           cfg.Network.Labels,
		LabelProbability: cfg.Network.LabelProbability,
	}, rand.New(rand.NewSource(seed)))

	sc := &Scene{
		Simulation: sim,
		Pointer:    network.NewPointer(size.Center()),
		Viewport:   network.NewViewport(size),
		Seed:       seed,
	}

	sc.Renderer = render.NewRenderer(surface, cfg.RenderStyle(), cfg.Network.ConnectionDistance)
	if cfg.Chrome.Backdrop {
		sc.Backdrop = backdrop.New(sc.Pointer, cfg.Chrome.ParallaxStrength, seed)
		sc.Renderer.Layers = append(sc.Renderer.Layers, sc.Backdrop)
	}

	sc.Loop = render.NewLoop(sim, sc.Renderer, sc.Pointer, sc.Viewport, logger)

	logger.Info("scene ready",
		"particles", cfg.Network.Count,
		"width", size.W,
		"height", size.H,
		"seed", seed,
		"backdrop", cfg.Chrome.Backdrop)
	return sc
}
