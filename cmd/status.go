package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/teemow/meetingbar/internal/agenda"
	"github.com/teemow/meetingbar/internal/calendar"
	"github.com/teemow/meetingbar/internal/config"
	"github.com/teemow/meetingbar/internal/logging"
	"github.com/teemow/meetingbar/internal/status"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Render the next-meeting block once and exit",
		Long: `Perform one render cycle: fetch upcoming events from the tracked
calendars and print a single JSON block to stdout for the status-bar host.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime()
			if err != nil {
				return err
			}

			renderer, err := newRenderer(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			block, err := renderer.Render(cmd.Context())
			if err != nil {
				return fmt.Errorf("render cycle failed: %w", err)
			}

			return writeBlock(cmd, block)
		},
	}
}

// loadRuntime resolves configuration and installs the logger.
func loadRuntime() (config.Runtime, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Runtime{}, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if err := logging.Setup(level); err != nil {
		return config.Runtime{}, err
	}

	if cfg.ConfigFile != "" {
		slog.Debug("loaded configuration", "file", cfg.ConfigFile)
	}

	return cfg, nil
}

// newRenderer wires the calendar client, event source, and urgency policy
// into a renderer for the configured account and calendars.
func newRenderer(ctx context.Context, cfg config.Runtime) (*status.Renderer, error) {
	client, err := calendar.NewClientForAccount(ctx, cfg.Account)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", cfg.Account, err)
	}

	source := calendar.NewSource(client, calendar.Options{
		Window:       cfg.Window,
		MaxResults:   cfg.MaxResults,
		StrictNames:  cfg.StrictCalendars,
		AllowPartial: cfg.AllowPartial,
		ForceUTC:     cfg.ForceUTC,
	})

	policy := agenda.NewUrgencyPolicy(cfg.UrgentMinutes, cfg.SoonMinutes, cfg.UrgentColor, cfg.SoonColor)

	return status.NewRenderer(source, policy, cfg.Calendars, cfg.CacheTimeout), nil
}
