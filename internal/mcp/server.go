// Package mcp exposes read-only chatwarden tools to MCP clients over stdio:
// a dry-run classification, a site check, and the protection status.
package mcp

import (
	"context"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/sites"
	"github.com/ppiankov/chatwarden/internal/state"
)

// Classifier is the part of *classify.Classifier the tools use.
type Classifier interface {
	Classify(text string) classify.Result
	Mode() classify.Mode
	KeywordRuleCount() int
}

// Evaluator decides actions. *rules.Engine implements it.
type Evaluator interface {
	Evaluate(res classify.Result, now time.Time, profile string) rules.Result
}

// StateReader reads the durable protection state. *state.Controller
// implements it.
type StateReader interface {
	Current(ctx context.Context) (state.Status, error)
}

// Config holds what the tools read from.
type Config struct {
	Classifier Classifier
	Rules      Evaluator
	Sites      *sites.Registry
	State      StateReader
	Version    string
}

// Server wraps the MCP SDK server with chatwarden tools.
type Server struct {
	mcpServer *mcpsdk.Server
	cfg       Config
	now       func() time.Time
}

// New creates an MCP server with the chatwarden tools registered.
func New(cfg Config) *Server {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	s := &Server{cfg: cfg, now: time.Now}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "chatwarden",
			Version: cfg.Version,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// registerTools adds all chatwarden tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "chatwarden_classify",
		Description: "Classify a prompt and report the action household policy would take, without sending it anywhere (dry-run).",
	}, s.handleClassify)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "chatwarden_check_site",
		Description: "Check whether traffic to a host is inspected, and which service it belongs to.",
	}, s.handleCheckSite)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "chatwarden_status",
		Description: "Report whether protection is active, paused, or disabled, and which classifier tiers are running.",
	}, s.handleStatus)
}
