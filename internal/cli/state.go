package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/ca"
	"github.com/ppiankov/chatwarden/internal/state"
	"github.com/ppiankov/chatwarden/internal/store"
)

var (
	pauseFor   time.Duration
	statusJSON bool
)

func init() {
	rootCmd.AddCommand(statusCmd, pauseCmd, resumeCmd, disableCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print status as JSON")
	pauseCmd.Flags().DurationVar(&pauseFor, "for", 0, "Resume automatically after this long (e.g. 30m); 0 pauses until resume")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show filtering state and recent activity",
	RunE:  runStatus,
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause filtering",
	Long: `Suspends filtering. With --for the pause expires on its own.
The change is written to the state database and picked up by a running
proxy within one poll interval.`,
	Args: cobra.NoArgs,
	RunE: runPause,
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume filtering",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeState(cmd, func(ctx context.Context, c *state.Controller) (state.Status, error) {
			return c.Resume(ctx, actor())
		})
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable filtering until resumed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeState(cmd, func(ctx context.Context, c *state.Controller) (state.Status, error) {
			return c.Disable(ctx, actor())
		})
	},
}

type statusReport struct {
	Mode          string           `json:"mode"`
	Until         *time.Time       `json:"until,omitempty"`
	Seq           int64            `json:"seq"`
	CAFingerprint string           `json:"ca_fingerprint,omitempty"`
	Last24h       store.EventStats `json:"last_24h"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cur, err := state.NewController(st, nil, nil).Current(ctx)
	if err != nil {
		return err
	}
	seq, err := st.CurrentSeq(ctx)
	if err != nil {
		return err
	}
	stats, err := st.EventStats(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return err
	}
	rep := statusReport{Mode: string(cur.Mode), Until: cur.Until, Seq: seq, Last24h: stats}
	if der, err := ca.ReadRootDER(cfg.DataDir); err == nil {
		rep.CAFingerprint = ca.Fingerprint(der)
	}

	w := cmd.OutOrStdout()
	if statusJSON {
		return printJSON(w, rep)
	}
	fmt.Fprint(w, "Filtering: ")
	modeColor(rep.Mode).Fprintf(w, "%s", rep.Mode)
	fmt.Fprintf(w, "%s\n", formatUntil(rep.Until))
	dimColor.Fprintf(w, "State seq: %d\n", rep.Seq)
	if rep.CAFingerprint != "" {
		fmt.Fprintf(w, "CA:        %s\n", rep.CAFingerprint)
	} else {
		warnColor.Fprintln(w, "CA:        not generated (run chatwarden init)")
	}
	fmt.Fprintf(w, "Last 24h:  %d inspected", stats.Total)
	for _, a := range []string{"block", "warn"} {
		if n := stats.ByAction[a]; n > 0 {
			fmt.Fprint(w, ", ")
			actionColor(a).Fprintf(w, "%d %s", n, a)
		}
	}
	fmt.Fprintln(w)
	return nil
}

func runPause(cmd *cobra.Command, args []string) error {
	if pauseFor < 0 {
		return fmt.Errorf("--for must not be negative")
	}
	return changeState(cmd, func(ctx context.Context, c *state.Controller) (state.Status, error) {
		var until *time.Time
		if pauseFor > 0 {
			t := time.Now().Add(pauseFor)
			until = &t
		}
		return c.Pause(ctx, until, actor())
	})
}

// changeState applies a transition straight to the state database so it
// works whether or not a proxy is running.
func changeState(cmd *cobra.Command, fn func(ctx context.Context, c *state.Controller) (state.Status, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	al, err := openAudit(cfg)
	if err != nil {
		return err
	}
	defer al.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cache := state.NewCache(st, nil)
	to, err := fn(ctx, state.NewController(st, cache, al))
	if err != nil {
		errorColor.Fprintf(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprint(w, "Filtering ")
	modeColor(string(to.Mode)).Fprintf(w, "%s", to.Mode)
	fmt.Fprintf(w, "%s (seq %d)\n", formatUntil(to.Until), cache.Seq())
	return nil
}
