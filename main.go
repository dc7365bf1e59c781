package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/olivierh59500/particle-network-go/internal/config"
	"github.com/olivierh59500/particle-network-go/internal/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	windowCmd := newWindowCmd()

	rootCmd := &cobra.Command{
		Use:   "pnet",
		Short: "Ambient particle network",
		Long: `pnet draws a drifting network of particles that lean toward the pointer,
linking neighbours with faint lines.

Without a subcommand it opens a window.`,
		SilenceUsage: true,
		RunE:         windowCmd.RunE,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().Int64("seed", 0, "Layout seed (0 seeds from the clock)")

	rootCmd.AddCommand(
		newVersionCmd(),
		windowCmd,
		newTermCmd(),
		newSnapshotCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pnet version %s\n", version)
		},
	}
}

// loadConfig resolves defaults, the config file, the environment and the
// global flags, in that order, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Network.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, w)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
