package cli

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ppiankov/chatwarden/internal/ca"
)

var (
	caDER    bool
	caOutput string
)

func init() {
	rootCmd.AddCommand(caCmd)
	caCmd.AddCommand(caExportCmd, caPathCmd)
	caExportCmd.Flags().BoolVar(&caDER, "der", false, "Export in DER form (for Android and Windows)")
	caExportCmd.Flags().StringVarP(&caOutput, "output", "o", "", "Write to file instead of stdout")
}

var caCmd = &cobra.Command{
	Use:   "ca",
	Short: "Root certificate for device setup",
	Long: `Devices must trust the chatwarden root certificate before encrypted chat
traffic can be inspected. The certificate is also served by the info pages
at /ca.pem and /ca.der.`,
}

var caExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the root certificate",
	Args:  cobra.NoArgs,
	RunE:  runCAExport,
}

var caPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the root certificate file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfg.DataDir, ca.CertFile))
		return nil
	},
}

func runCAExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	der, err := ca.ReadRootDER(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("%w (run chatwarden init first)", err)
	}
	data := der
	if !caDER {
		data = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	}

	if caOutput != "" {
		if err := os.WriteFile(caOutput, data, 0644); err != nil {
			return fmt.Errorf("write certificate: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (SHA-256 %s)\n", caOutput, ca.Fingerprint(der))
		return nil
	}

	w := cmd.OutOrStdout()
	if f, ok := w.(*os.File); ok && caDER && term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("refusing to write binary DER to a terminal; use -o or redirect output")
	}
	_, err = w.Write(data)
	return err
}
