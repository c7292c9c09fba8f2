package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/admin"
)

var (
	sessionClient string
	sessionUser   string
)

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionStartCmd, sessionEndCmd, sessionListCmd)
	sessionStartCmd.Flags().StringVar(&sessionClient, "client", "", "Client IP address to attribute (required)")
	sessionStartCmd.Flags().StringVar(&sessionUser, "user", "", "Username recorded with the session")
	_ = sessionStartCmd.MarkFlagRequired("client")
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Attribute devices to household profiles",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <profile>",
	Short: "Bind a client address to a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			s, err := c.StartSession(ctx, sessionClient, args[0], sessionUser)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s: %s is %s until %s\n",
				s.ID, s.ClientAddr, s.Profile, s.ExpiresAt.Local().Format(time.Kitchen))
			return nil
		})
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end <id>",
	Short: "End a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			if err := c.EndSession(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ended %s\n", args[0])
			return nil
		})
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			list, err := c.ListSessions(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			headColor.Fprintln(tw, "ID\tCLIENT\tPROFILE\tUSER\tEXPIRES")
			for _, s := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.ClientAddr, s.Profile, s.Username,
					s.ExpiresAt.Local().Format("15:04 Jan 2"))
			}
			return tw.Flush()
		})
	},
}
