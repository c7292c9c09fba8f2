package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/mcp"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/sites"
	"github.com/ppiankov/chatwarden/internal/state"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP tool server for agent integration",
	Long: `Runs chatwarden as an MCP (Model Context Protocol) server over stdio.
Exposes tools: chatwarden_classify, chatwarden_check_site, chatwarden_status.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// stdout carries the protocol; logs go to stderr.
	log := cfg.NewLogger(os.Stderr)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := signalContext()
	defer cancel()

	c, err := buildClassifier(cfg, log)
	if err != nil {
		return err
	}
	eng, err := rules.Open(cfg.Rules.Path)
	if err != nil {
		return err
	}
	reg, err := sites.Open(ctx, st)
	if err != nil {
		return fmt.Errorf("failed to load sites: %w", err)
	}

	srv := mcp.New(mcp.Config{
		Classifier: c,
		Rules:      eng,
		Sites:      reg,
		State:      state.NewController(st, nil, nil),
		Version:    Version,
	})
	log.Info("chatwarden MCP server running on stdio", "classifier", c.Mode())
	return srv.Run(ctx)
}
