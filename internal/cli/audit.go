package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/audit"
)

var tailLines int

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditVerifyCmd, auditTailCmd)
	auditTailCmd.Flags().IntVarP(&tailLines, "lines", "n", 10, "Number of recent entries to show")
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the administrative audit trail",
	Long:  "Every pause, resume, site change, rule change, and session is appended to a hash-chained JSONL log.",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Verify hash chain integrity of the audit log",
	Long:  "Walks the audit log and checks every entry's prev_hash against the SHA-256\nof the line before it. Exits 0 if valid, 1 if tampered.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuditVerify,
}

var auditTailCmd = &cobra.Command{
	Use:   "tail [path]",
	Short: "Show recent audit entries",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuditTail,
}

func auditPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.DataDir, audit.FileName), nil
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	path, err := auditPath(args)
	if err != nil {
		return err
	}
	result := audit.Verify(path)
	if result.Valid {
		okColor.Fprint(cmd.OutOrStdout(), "OK")
		fmt.Fprintf(cmd.OutOrStdout(), ": %d entries verified\n", result.Lines)
		return nil
	}
	errorColor.Fprint(os.Stderr, "FAILED")
	fmt.Fprintf(os.Stderr, " at line %d: %s\n", result.ErrorLine, result.Error)
	os.Exit(1)
	return nil
}

func runAuditTail(cmd *cobra.Command, args []string) error {
	path, err := auditPath(args)
	if err != nil {
		return err
	}
	entries, err := audit.Tail(path, tailLines)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, e := range entries {
		dimColor.Fprintf(w, "%s ", e.Timestamp)
		fmt.Fprintf(w, "%-10s %-16s %s ", e.Actor, e.Operation, e.Target)
		if e.Result == audit.ResultFailed {
			errorColor.Fprint(w, e.Result)
		} else {
			okColor.Fprint(w, e.Result)
		}
		if e.Detail != "" {
			fmt.Fprintf(w, " %s", e.Detail)
		}
		fmt.Fprintln(w)
	}
	return nil
}
