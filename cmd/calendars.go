package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/teemow/meetingbar/internal/calendar"
)

func newCalendarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendars",
		Short: "List the calendars visible to the configured account",
		Long: `Print every calendar the authenticated account can see, with its
display name, color, and id. Use the display names to populate the
"calendars" config key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime()
			if err != nil {
				return err
			}

			client, err := calendar.NewClientForAccount(cmd.Context(), cfg.Account)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client for account %s: %w", cfg.Account, err)
			}

			calendars, err := client.ListCalendars(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOLOR\tID")
			for _, cal := range calendars {
				name := cal.Summary
				if cal.Primary {
					name += " (primary)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, cal.Color, cal.ID)
			}
			return w.Flush()
		},
	}
}
