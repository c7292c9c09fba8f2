package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	eventsLimit int
	eventsJSON  bool
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntVarP(&eventsLimit, "limit", "n", 20, "Number of recent events to show")
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "Print events as JSON")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent inspection events",
	Long: `Reads recent events from the local database. Prompts are never stored;
each event carries a hash and a redacted preview.`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	if eventsLimit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	evs, err := st.RecentEvents(context.Background(), eventsLimit)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if eventsJSON {
		return printJSON(w, evs)
	}
	if len(evs) == 0 {
		dimColor.Fprintln(w, "No events recorded.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headColor.Fprintln(tw, "TIME\tSERVICE\tPROFILE\tACTION\tCATEGORY\tSOURCE\tPREVIEW")
	for _, e := range evs {
		cat := e.Category
		if cat != "" {
			cat = fmt.Sprintf("%s %.2f", cat, e.Confidence)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Local().Format("Jan 2 15:04:05"), e.Service, e.Profile,
			actionColor(e.Action).Sprint(e.Action), cat, e.Source, e.Preview)
	}
	return tw.Flush()
}
