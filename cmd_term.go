package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/olivierh59500/particle-network-go/internal/render/term"
	"github.com/olivierh59500/particle-network-go/internal/scene"
	"github.com/spf13/cobra"
)

func newTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the network in the terminal",
		Long: `Run the network in the terminal. Move the mouse to steer the particles;
press q, Esc or Ctrl-C to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// The glow blobs have no terminal rendering.
			cfg.Chrome.Backdrop = false

			// Logging to stderr would tear the screen.
			var logOut io.Writer = io.Discard
			if path, _ := cmd.Flags().GetString("log-file"); path != "" {
				f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			logger := newLogger(cfg, logOut)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			surface := term.New(screen)
			sc := scene.New(cfg, surface, surface.Viewport(), logger)
			in := &term.Input{Surface: surface, Pointer: sc.Pointer, Viewport: sc.Viewport}

			err = term.Run(ctx, screen, sc.Loop, in, cfg.Window.FPS)
			logger.Info("terminal closed", "frames", sc.Loop.Frames())
			return err
		},
	}

	cmd.Flags().String("log-file", "", "Append logs to this file instead of discarding them")
	return cmd
}
