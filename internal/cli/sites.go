package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/admin"
	"github.com/ppiankov/chatwarden/internal/sites"
)

var (
	siteName     string
	siteCategory string
	siteParser   string
	sitePriority int
)

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesListCmd, sitesAddCmd, sitesRemoveCmd, sitesEnableCmd, sitesDisableCmd, sitesRestoreCmd)
	sitesAddCmd.Flags().StringVar(&siteName, "name", "", "Display name (default: derived from the domain)")
	sitesAddCmd.Flags().StringVar(&siteCategory, "category", "chat", "Site category")
	sitesAddCmd.Flags().StringVar(&siteParser, "parser", "", "Body parser id (openai, anthropic, gemini, chatgpt-web, prompt)")
	sitesAddCmd.Flags().IntVar(&sitePriority, "priority", 0, "Higher wins when patterns overlap")
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage monitored AI services",
	Long:  "Lists and edits the registry of monitored hosts on a running proxy.",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored sites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			list, err := c.ListSites(ctx)
			if err != nil {
				return err
			}
			printSites(cmd.OutOrStdout(), list)
			return nil
		})
	},
}

var sitesAddCmd = &cobra.Command{
	Use:   "add <pattern>",
	Short: "Add a custom site (exact host or *.domain)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := sites.Entry{
			Pattern:     args[0],
			DisplayName: siteName,
			Category:    siteCategory,
			ParserID:    siteParser,
			Priority:    sitePriority,
			Enabled:     true,
		}
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			added, err := c.AddSite(ctx, e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", added.Pattern, added.DisplayName)
			return nil
		})
	},
}

var sitesRemoveCmd = &cobra.Command{
	Use:   "remove <pattern>",
	Short: "Remove a custom site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			if err := c.RemoveSite(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		})
	},
}

var sitesEnableCmd = &cobra.Command{
	Use:   "enable <pattern>",
	Short: "Enable a site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleSite(cmd, args[0], true)
	},
}

var sitesDisableCmd = &cobra.Command{
	Use:   "disable <pattern>",
	Short: "Stop monitoring a site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleSite(cmd, args[0], false)
	},
}

var sitesRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Re-enable every bundled site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			if err := c.RestoreSites(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Bundled sites restored")
			return nil
		})
	},
}

func toggleSite(cmd *cobra.Command, pattern string, enable bool) error {
	return withAdmin(func(ctx context.Context, c *admin.Client) error {
		toggle := c.DisableSite
		if enable {
			toggle = c.EnableSite
		}
		e, err := toggle(ctx, pattern)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.Pattern, onOff(e.Enabled))
		return nil
	})
}

func printSites(w io.Writer, entries []sites.Entry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headColor.Fprintln(tw, "PATTERN\tSERVICE\tSOURCE\tPARSER\tSTATE")
	for _, e := range entries {
		parser := e.ParserID
		if parser == "" {
			parser = "-"
		}
		st := okColor.Sprint("enabled")
		if !e.Enabled {
			st = dimColor.Sprint("disabled")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Pattern, e.DisplayName, e.Source, parser, st)
	}
	tw.Flush()
}
