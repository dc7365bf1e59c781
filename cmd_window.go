package main

import (
	"os"

	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render/window"
	"github.com/olivierh59500/particle-network-go/internal/scene"
	"github.com/spf13/cobra"
)

func newWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the network in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg, os.Stderr)

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			surface := &window.Surface{}
			size := network.Size{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
			sc := scene.New(cfg, surface, size, logger)

			g := window.NewGame(ctx, sc.Loop, surface, sc.Pointer, sc.Viewport)
			err = window.Run(g, window.Options{
				Title:  cfg.Window.Title,
				Width:  cfg.Window.Width,
				Height: cfg.Window.Height,
				TPS:    cfg.Window.FPS,
			})
			logger.Info("window closed", "frames", sc.Loop.Frames())
			return err
		},
	}
}
