package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/ca"
	"github.com/ppiankov/chatwarden/internal/config"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/store"
)

var (
	initDir   string
	initForce bool
)

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", "", "Data directory (default ~/.chatwarden)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config and rules files")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create configuration, default rules, and the root certificate",
	Long: `Creates the data directory with:
  config.yaml   proxy configuration
  rules.yaml    default content rules, ready for time rules and profiles
  ca.pem        root certificate to install on household devices
  chatwarden.db state and event database

Existing files are kept unless --force is given. The root key is never
overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := initDir
	if dir == "" {
		dir = config.DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	w := cmd.OutOrStdout()
	var created []string

	cfgPath := filepath.Join(dir, "config.yaml")
	cfgYAML := config.DefaultYAML()
	if initDir != "" {
		cfgYAML += fmt.Sprintf("\ndata_dir: %q\n", dir)
	}
	if wrote, err := writeIfMissing(cfgPath, []byte(cfgYAML)); err != nil {
		return err
	} else if wrote {
		created = append(created, cfgPath)
	}

	rulesPath := filepath.Join(dir, "rules.yaml")
	if _, err := os.Stat(rulesPath); os.IsNotExist(err) || initForce {
		if err := rules.Save(rulesPath, rules.DefaultConfig()); err != nil {
			return err
		}
		created = append(created, rulesPath)
	}

	hadCA := ca.Present(dir)
	auth, err := ca.Ensure(dir)
	if err != nil {
		return err
	}
	if !hadCA {
		created = append(created, filepath.Join(dir, ca.CertFile))
	}

	st, err := store.Open(filepath.Join(dir, store.FileName))
	if err != nil {
		return err
	}
	_ = st.Close()

	if len(created) == 0 {
		fmt.Fprintf(w, "chatwarden already initialized in %s\n", dir)
	} else {
		okColor.Fprintln(w, "Created:")
		for _, p := range created {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	fmt.Fprintf(w, "\nRoot certificate SHA-256: %s\n", auth.Fingerprint())
	fmt.Fprintln(w, "Install it on each device, then point the device proxy at this machine.")
	return nil
}

func writeIfMissing(path string, data []byte) (bool, error) {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
