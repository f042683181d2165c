package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/meetingbar/internal/calendar"
	"github.com/teemow/meetingbar/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize meetingbar against Google Calendar",
		Long: `Run the OAuth authorization flow: open the printed URL in a browser,
approve read-only calendar access, and paste the authorization code back.
The resulting token is stored in the user cache directory and refreshed
automatically on later runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime()
			if err != nil {
				return err
			}
			if account == "" {
				account = cfg.Account
			}

			if calendar.HasTokenForAccount(account) {
				fmt.Fprintf(cmd.OutOrStdout(), "A token already exists for account %s and will be replaced.\n", account)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Visit the following URL to authorize meetingbar:")
			fmt.Fprintln(cmd.OutOrStdout(), google.GetAuthURL())
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), "Enter the authorization code: ")

			reader := bufio.NewReader(cmd.InOrStdin())
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := google.SaveTokenForAccount(cmd.Context(), account, code); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved for account %s\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Google account name to store the token under (default: the configured account)")
	return cmd
}
