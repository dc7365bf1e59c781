package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render"
	"github.com/olivierh59500/particle-network-go/internal/render/raster"
	"github.com/olivierh59500/particle-network-go/internal/scene"
	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	var (
		frames        int
		out           string
		width, height int
		pointerX      float64
		pointerY      float64
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames headless and save the last one as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg, os.Stderr)

			if width <= 0 {
				width = cfg.Window.Width
			}
			if height <= 0 {
				height = cfg.Window.Height
			}
			if frames < 1 {
				return fmt.Errorf("frames must be at least 1, got %d", frames)
			}

			surface := raster.New(width, height)
			surface.Background = cfg.BackgroundColor()
			sc := scene.New(cfg, surface, network.Size{W: float64(width), H: float64(height)}, logger)

			if cmd.Flags().Changed("pointer-x") || cmd.Flags().Changed("pointer-y") {
				p := sc.Pointer.Get()
				if cmd.Flags().Changed("pointer-x") {
					p.X = pointerX
				}
				if cmd.Flags().Changed("pointer-y") {
					p.Y = pointerY
				}
				sc.Pointer.Set(p.X, p.Y)
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			n := render.Frames(frames)
			if err := sc.Loop.Run(ctx, &n); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			if err := png.Encode(f, surface.Image()); err != nil {
				f.Close()
				return fmt.Errorf("encoding png: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing output: %w", err)
			}

			logger.Info("snapshot written", "path", out, "frames", sc.Loop.Frames(), "seed", sc.Seed)
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 120, "Number of frames to simulate before saving")
	cmd.Flags().StringVarP(&out, "out", "o", "network.png", "Output PNG path")
	cmd.Flags().IntVar(&width, "width", 0, "Image width (defaults to window.width)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height (defaults to window.height)")
	cmd.Flags().Float64Var(&pointerX, "pointer-x", 0, "Pointer x held for the whole run (defaults to center)")
	cmd.Flags().Float64Var(&pointerY, "pointer-y", 0, "Pointer y held for the whole run (defaults to center)")
	return cmd
}
