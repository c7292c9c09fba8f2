package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/chatwarden/internal/classify"
)

// Kind separates the two rule families.
type Kind string

const (
	KindTime    Kind = "time"
	KindContent Kind = "content"
)

// Rule is a time rule or a content rule. Fields of the other family are
// ignored.
type Rule struct {
	ID     string `yaml:"id" json:"id"`
	Kind   Kind   `yaml:"kind" json:"kind"`
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Action Action `yaml:"action" json:"action"`

	// Time rules: active on Days (empty means every day) between Start and
	// End, local "HH:MM". End before Start wraps past midnight.
	Days  []string `yaml:"days,omitempty" json:"days,omitempty"`
	Start string   `yaml:"start,omitempty" json:"start,omitempty"`
	End   string   `yaml:"end,omitempty" json:"end,omitempty"`

	// Content rules: a match of Category at or above MinConfidence.
	Category      classify.Category `yaml:"category,omitempty" json:"category,omitempty"`
	MinConfidence float32           `yaml:"min_confidence,omitempty" json:"min_confidence,omitempty"`
}

// Profile is a household member with rules of their own.
type Profile struct {
	Name      string   `yaml:"name" json:"name"`
	Usernames []string `yaml:"usernames,omitempty" json:"usernames,omitempty"`
	Rules     []Rule   `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Config holds the installation default rules and the profiles.
type Config struct {
	Rules    []Rule    `yaml:"rules" json:"rules"`
	Profiles []Profile `yaml:"profiles,omitempty" json:"profiles,omitempty"`
}

// DefaultConfig blocks every category at 0.5 confidence, except adult
// content which warns from 0.5 and blocks from 0.8.
func DefaultConfig() *Config {
	cfg := &Config{}
	for _, c := range classify.Categories {
		if c == classify.Adult {
			cfg.Rules = append(cfg.Rules,
				Rule{ID: "warn-adult", Kind: KindContent, Name: "Warn on adult content", Category: c, MinConfidence: 0.5, Action: Warn},
				Rule{ID: "block-adult", Kind: KindContent, Name: "Block explicit adult content", Category: c, MinConfidence: 0.8, Action: Block},
			)
			continue
		}
		cfg.Rules = append(cfg.Rules, Rule{
			ID:            "block-" + string(c),
			Kind:          KindContent,
			Name:          "Block " + strings.ReplaceAll(string(c), "_", " "),
			Category:      c,
			MinConfidence: 0.5,
			Action:        Block,
		})
	}
	return cfg
}

// DefaultPath is ~/.chatwarden/rules.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chatwarden", "rules.yaml")
}

// LoadConfig reads rules from a YAML file. Missing file returns defaults.
// Invalid YAML or an invalid rule returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg, _, err := LoadConfigWithHash(path)
	return cfg, err
}

// LoadConfigWithHash loads rules and returns the SHA-256 of the file bytes.
// When no file exists the hash is that of empty input.
func LoadConfigWithHash(path string) (*Config, string, error) {
	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || path == "" {
			return DefaultConfig(), hashOf(nil), nil
		}
		return nil, "", fmt.Errorf("failed to read rules: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse rules: %w", err)
	}
	// A file that only defines profiles keeps the default rules.
	if cfg.Rules == nil {
		cfg.Rules = DefaultConfig().Rules
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, hashOf(data), nil
}

// Save writes cfg to path atomically.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create rules dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace rules: %w", err)
	}
	return nil
}

func hashOf(data []byte) string {
	h := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(h[:])
}

// normalize names rules loaded without an id after their position and
// canonicalizes category spellings.
func (c *Config) normalize() {
	fill := func(prefix string, rs []Rule) {
		for i := range rs {
			if rs[i].ID == "" {
				rs[i].ID = fmt.Sprintf("%s%s-%d", prefix, rs[i].Kind, i+1)
			}
			rs[i].canonical()
		}
	}
	fill("", c.Rules)
	for i := range c.Profiles {
		fill(c.Profiles[i].Name+"-", c.Profiles[i].Rules)
	}
}

// Validate checks every rule and that ids and profile names are unique.
func (c *Config) Validate() error {
	ids := make(map[string]bool)
	check := func(scope string, rs []Rule) error {
		for _, r := range rs {
			if ids[r.ID] {
				return fmt.Errorf("%s: duplicate rule id %q", scope, r.ID)
			}
			ids[r.ID] = true
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%s: %w", scope, err)
			}
		}
		return nil
	}
	if err := check("rules", c.Rules); err != nil {
		return err
	}
	names := make(map[string]bool)
	for _, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile without a name")
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate profile %q", p.Name)
		}
		names[p.Name] = true
		if err := check("profile "+p.Name, p.Rules); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the fields of the rule's family.
func (r Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule without an id")
	}
	if r.Action < Allow || r.Action > Block {
		return fmt.Errorf("rule %s: invalid action", r.ID)
	}
	switch r.Kind {
	case KindTime:
		if _, err := parseClock(r.Start); err != nil {
			return fmt.Errorf("rule %s: start: %w", r.ID, err)
		}
		if _, err := parseClock(r.End); err != nil {
			return fmt.Errorf("rule %s: end: %w", r.ID, err)
		}
		for _, d := range r.Days {
			if _, ok := parseWeekday(d); !ok {
				return fmt.Errorf("rule %s: unknown day %q", r.ID, d)
			}
		}
	case KindContent:
		if _, ok := classify.ParseCategory(string(r.Category)); !ok {
			return fmt.Errorf("rule %s: unknown category %q", r.ID, r.Category)
		}
		if r.MinConfidence < 0 || r.MinConfidence > 1 {
			return fmt.Errorf("rule %s: min_confidence must be within [0,1]", r.ID)
		}
	default:
		return fmt.Errorf("rule %s: kind must be time or content, got %q", r.ID, r.Kind)
	}
	return nil
}

func (r *Rule) canonical() {
	r.Kind = Kind(strings.ToLower(string(r.Kind)))
	if c, ok := classify.ParseCategory(string(r.Category)); ok {
		r.Category = c
	}
	for i, d := range r.Days {
		r.Days[i] = strings.ToLower(strings.TrimSpace(d))
	}
}

// parseClock returns minutes after midnight for "HH:MM".
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > 3 {
		s = s[:3]
	}
	d, ok := weekdays[s]
	return d, ok
}
