// Package alert notifies parents through webhooks when a request is
// blocked or warned. Alerts carry the decision, never the prompt.
package alert

import (
	"fmt"
	"time"
)

// DefaultCooldown suppresses repeat alerts for the same profile, service,
// and rule.
const DefaultCooldown = 10 * time.Minute

// Config defines a webhook alert destination.
type Config struct {
	URL      string            `yaml:"url"      json:"url"`
	Format   string            `yaml:"format"   json:"format"`  // "generic", "slack"
	Actions  []string          `yaml:"actions"  json:"actions"` // ["block", "warn"]; empty means block
	Headers  map[string]string `yaml:"headers"  json:"headers,omitempty"`
	Cooldown time.Duration     `yaml:"cooldown" json:"cooldown,omitempty"`
}

// Validate rejects destinations that could never be delivered.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("alert: url is required")
	}
	switch c.Format {
	case "", "generic", "slack":
	default:
		return fmt.Errorf("alert: unknown format %q", c.Format)
	}
	for _, a := range c.Actions {
		if a != "block" && a != "warn" {
			return fmt.Errorf("alert: actions must be block or warn, got %q", a)
		}
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("alert: cooldown must not be negative")
	}
	return nil
}

func (c Config) wants(action string) bool {
	if len(c.Actions) == 0 {
		return action == "block"
	}
	for _, a := range c.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Event is the payload sent to webhook endpoints.
type Event struct {
	Timestamp  string  `json:"timestamp"`
	Service    string  `json:"service"`
	Host       string  `json:"host"`
	Profile    string  `json:"profile,omitempty"`
	Action     string  `json:"action"`
	Category   string  `json:"category,omitempty"`
	Confidence float32 `json:"confidence,omitempty"`
	Source     string  `json:"source"`
}
