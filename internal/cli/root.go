// Package cli holds the chatwarden cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/admin"
	"github.com/ppiankov/chatwarden/internal/audit"
	"github.com/ppiankov/chatwarden/internal/config"
	"github.com/ppiankov/chatwarden/internal/store"
)

var (
	configPath string
	adminAddr  string
	actorName  string
)

var rootCmd = &cobra.Command{
	Use:   "chatwarden",
	Short: "Household safety proxy for AI chat services",
	Long: `Intercepts prompts sent to AI chat services, classifies them for harmful
content, and blocks, warns, or allows them according to household rules.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML (default ~/.chatwarden/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&adminAddr, "admin", "", "Admin service address (default from config)")
	rootCmd.PersistentFlags().StringVar(&actorName, "actor", "", "Name recorded in the audit trail (default $USER)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*store.Store, error) {
	st, err := store.Open(filepath.Join(cfg.DataDir, store.FileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

func openAudit(cfg *config.Config) (*audit.Log, error) {
	l, err := audit.Open(filepath.Join(cfg.DataDir, audit.FileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return l, nil
}

func actor() string {
	if actorName != "" {
		return actorName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return admin.DefaultActor
}

// dialAdmin connects to the admin service of a running `chatwarden serve`.
func dialAdmin(cfg *config.Config) (*admin.Client, error) {
	addr := adminAddr
	if addr == "" {
		addr = cfg.Admin.Listen
	}
	c, err := admin.Dial(addr, actor())
	if err != nil {
		return nil, fmt.Errorf("failed to reach admin service at %s (is chatwarden serve running?): %w", addr, err)
	}
	return c, nil
}

func withAdmin(fn func(ctx context.Context, c *admin.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := dialAdmin(cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), adminTimeout)
	defer cancel()
	return fn(ctx, c)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
