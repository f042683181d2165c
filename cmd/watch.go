package cmd

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/meetingbar/internal/statusbar"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Render continuously, one JSON line per cycle",
		Long: `Run render cycles on a timer (interval = cache_timeout) and print one
JSON block per line, for hosts that keep the module process running instead
of re-invoking it. Stops on SIGINT or SIGTERM.

A failed cycle is logged to stderr and skipped; the host keeps showing the
previous block until the next successful cycle.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			renderer, err := newRenderer(ctx, cfg)
			if err != nil {
				return err
			}

			ticker := time.NewTicker(time.Duration(cfg.CacheTimeout) * time.Second)
			defer ticker.Stop()

			return runWatch(ctx, renderer.Render, ticker.C, cmd.OutOrStdout())
		},
	}
}

// runWatch renders once immediately and then on every tick until ctx is
// canceled. A failed cycle is logged and skipped so the host keeps showing
// the previous block.
func runWatch(ctx context.Context, render func(context.Context) (statusbar.Block, error), ticks <-chan time.Time, w io.Writer) error {
	emit := func() {
		block, err := render(ctx)
		if err != nil {
			slog.Error("render cycle failed", "error", err)
			return
		}
		if err := statusbar.Write(w, block); err != nil {
			slog.Error("failed to write block", "error", err)
		}
	}

	emit()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			emit()
		}
	}
}

func writeBlock(cmd *cobra.Command, block statusbar.Block) error {
	return statusbar.Write(cmd.OutOrStdout(), block)
}
