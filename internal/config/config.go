// Package config loads the chatwarden configuration file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/chatwarden/internal/alert"
	"github.com/ppiankov/chatwarden/internal/redact"
)

// Config is the whole configuration file. Every field has a default.
type Config struct {
	Listen     string           `yaml:"listen"`
	DataDir    string           `yaml:"data_dir"`
	Proxy      ProxyConfig      `yaml:"proxy"`
	State      StateConfig      `yaml:"state"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Rules      RulesConfig      `yaml:"rules"`
	Events     EventsConfig     `yaml:"events"`
	Sessions   SessionsConfig   `yaml:"sessions"`
	Admin      ListenConfig     `yaml:"admin"`
	Web        ListenConfig     `yaml:"web"`
	Log        LogConfig        `yaml:"log"`
	Redact     redact.Config    `yaml:"redact"`
	Alerts     []alert.Config   `yaml:"alerts"`
}

type ProxyConfig struct {
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
}

type StateConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

type ClassifierConfig struct {
	ShortCircuitThreshold float32 `yaml:"short_circuit_threshold"`
	UnsafeThreshold       float32 `yaml:"unsafe_threshold"`
	ModelPath             string  `yaml:"model_path"`
	TokenizerPath         string  `yaml:"tokenizer_path"`
	MaxSequenceLength     int     `yaml:"max_sequence_length"`
	KeywordsPath          string  `yaml:"keywords_path"`
}

// RulesConfig points at the rules file. Rules and profiles live in their
// own file so they can be edited and hot-reloaded independently.
type RulesConfig struct {
	Path string `yaml:"path"`
}

type EventsConfig struct {
	QueueSize     int           `yaml:"queue_size"`
	PreviewLength int           `yaml:"preview_length"`
	Retention     time.Duration `yaml:"retention"`
}

type SessionsConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type ListenConfig struct {
	Listen string `yaml:"listen"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultDir is ~/.chatwarden.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chatwarden"
	}
	return filepath.Join(home, ".chatwarden")
}

// DefaultPath is ~/.chatwarden/config.yaml.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Default returns the built-in configuration. File paths stay empty until
// Load resolves them against DataDir.
func Default() *Config {
	dir := DefaultDir()
	return &Config{
		Listen:  "127.0.0.1:8080",
		DataDir: dir,
		Proxy: ProxyConfig{
			MaxBodyBytes: 10 << 20,
			DialTimeout:  10 * time.Second,
		},
		State: StateConfig{PollInterval: 500 * time.Millisecond},
		Classifier: ClassifierConfig{
			ShortCircuitThreshold: 0.85,
			UnsafeThreshold:       0.7,
			MaxSequenceLength:     128,
		},
		Events:   EventsConfig{QueueSize: 1024, PreviewLength: 120, Retention: 30 * 24 * time.Hour},
		Sessions: SessionsConfig{TTL: 8 * time.Hour},
		Admin:    ListenConfig{Listen: "127.0.0.1:8081"},
		Web:      ListenConfig{Listen: "127.0.0.1:8082"},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration file. Empty path falls back to
// ~/.chatwarden/config.yaml. Missing file returns defaults. Invalid YAML
// returns an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.resolvePaths()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Start with defaults, YAML overwrites only specified fields
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.resolvePaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePaths expands ~ and fills unset file paths under DataDir.
func (c *Config) resolvePaths() {
	c.DataDir = expandHome(c.DataDir)
	fill := func(p *string, rel ...string) {
		if *p == "" {
			*p = filepath.Join(append([]string{c.DataDir}, rel...)...)
		}
		*p = expandHome(*p)
	}
	fill(&c.Classifier.ModelPath, "model", "model.onnx")
	fill(&c.Classifier.TokenizerPath, "model", "tokenizer.json")
	fill(&c.Classifier.KeywordsPath, "keywords.yaml")
	fill(&c.Rules.Path, "rules.yaml")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Validate rejects values the components cannot run with.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if c.State.PollInterval <= 0 {
		return fmt.Errorf("config: state.poll_interval must be positive")
	}
	if t := c.Classifier.ShortCircuitThreshold; t < 0 || t > 1 {
		return fmt.Errorf("config: classifier.short_circuit_threshold must be within [0,1]")
	}
	if t := c.Classifier.UnsafeThreshold; t < 0 || t > 1 {
		return fmt.Errorf("config: classifier.unsafe_threshold must be within [0,1]")
	}
	if c.Events.QueueSize < 0 || c.Events.PreviewLength < 0 {
		return fmt.Errorf("config: events sizes must not be negative")
	}
	for i, a := range c.Alerts {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("config: alerts[%d]: %w", i, err)
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// ParseLevel maps debug, info, warn, or error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return l, nil
}

// NewLogger builds the process logger from the log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// DefaultYAML returns a commented configuration for `chatwarden init`.
func DefaultYAML() string {
	return `# chatwarden configuration
# Generated by: chatwarden init
#
# File paths default to data_dir. Omitted fields keep their defaults.

# data_dir: ~/.chatwarden

# Proxy listen address. Point household devices at this host:port.
listen: "127.0.0.1:8080"

proxy:
  max_body_bytes: 10485760   # larger request bodies are forwarded uninspected
  dial_timeout: 10s

state:
  poll_interval: 500ms       # how fast pause/resume from another process is seen

classifier:
  short_circuit_threshold: 0.85
  unsafe_threshold: 0.7
  max_sequence_length: 128
  # model_path: <data_dir>/model/model.onnx
  # tokenizer_path: <data_dir>/model/tokenizer.json
  # keywords_path: <data_dir>/keywords.yaml

# rules:
#   path: <data_dir>/rules.yaml

events:
  queue_size: 1024
  preview_length: 120
  retention: 720h

sessions:
  ttl: 8h

admin:
  listen: "127.0.0.1:8081"

web:
  listen: "127.0.0.1:8082"

log:
  level: info                # debug | info | warn | error
  format: text               # text | json

# Webhook notifications. Alerts carry the service, profile, category, and
# rule, never the prompt.
# alerts:
#   - url: https://hooks.slack.com/services/...
#     format: slack            # generic | slack
#     actions: [block, warn]   # default: block
#     cooldown: 10m
`
}
