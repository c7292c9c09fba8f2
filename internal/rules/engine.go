// Package rules turns a classification into an action.
//
// Two rule families are evaluated independently: time rules restrict use
// during windows of the week, content rules act on classifier matches. The
// most severe outcome binds. Evaluation never fails: with nothing matching
// the result is Allow with source "none".
package rules

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/chatwarden/internal/classify"
)

var (
	ErrNotFound    = errors.New("rule not found")
	ErrDuplicate   = errors.New("rule id already exists")
	ErrNoProfile   = errors.New("profile not found")
	ErrInvalidRule = errors.New("invalid rule")
)

// SourceNone is the source of a decision no rule produced.
const SourceNone = "none"

// Result is the binding decision and the rule that produced it.
type Result struct {
	Action Action `json:"action"`
	Source string `json:"source"`
}

// Engine evaluates rules. Safe for concurrent use; evaluation takes only
// the read lock.
type Engine struct {
	mu   sync.RWMutex
	cfg  *Config
	hash string
	path string // rules file written on mutation; empty keeps changes in memory
}

// NewEngine wraps cfg. A nil cfg uses DefaultConfig.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.normalize()
	return &Engine{cfg: cfg, hash: hashOf(nil)}
}

// Open loads the rules file at path. Mutations are written back to it.
func Open(path string) (*Engine, error) {
	cfg, hash, err := LoadConfigWithHash(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultPath()
	}
	return &Engine{cfg: cfg, hash: hash, path: path}, nil
}

// Reload re-reads the rules file. On error the current rules stay.
func (e *Engine) Reload() (string, error) {
	e.mu.RLock()
	path := e.path
	e.mu.RUnlock()
	if path == "" {
		return "", fmt.Errorf("rules engine has no file")
	}
	cfg, hash, err := LoadConfigWithHash(path)
	if err != nil {
		return "", err
	}
	e.SetConfig(cfg, hash)
	return hash, nil
}

// SetConfig swaps the whole rule set.
func (e *Engine) SetConfig(cfg *Config, hash string) {
	e.mu.Lock()
	e.cfg = cfg
	e.hash = hash
	e.mu.Unlock()
}

// Hash identifies the loaded rules file content.
func (e *Engine) Hash() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hash
}

// Path is the rules file, if any.
func (e *Engine) Path() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.path
}

// Evaluate decides what to do with a classified request at now for the
// given profile. Unknown or empty profiles use the defaults; a known
// profile overrides each rule family it defines.
func (e *Engine) Evaluate(res classify.Result, now time.Time, profile string) Result {
	e.mu.RLock()
	timeRules, contentRules := e.effective(profile)
	e.mu.RUnlock()

	best := Result{Action: Allow, Source: SourceNone}
	matched := false
	consider := func(a Action, source string) {
		// Strictly more severe replaces; ties keep the first rule seen.
		if !matched || a > best.Action {
			best = Result{Action: a, Source: source}
			matched = true
		}
	}

	for _, r := range timeRules {
		if r.activeAt(now) {
			consider(r.Action, "time:"+r.ID)
		}
	}
	for _, r := range contentRules {
		for _, m := range res.Matches {
			if m.Category == r.Category && m.Confidence >= r.MinConfidence {
				consider(r.Action, "content:"+r.ID)
				break
			}
		}
	}
	return best
}

// effective picks the rule lists for profile. Caller holds e.mu.
func (e *Engine) effective(profile string) (timeRules, contentRules []Rule) {
	timeRules, contentRules = split(e.cfg.Rules)
	if profile == "" {
		return
	}
	for _, p := range e.cfg.Profiles {
		if p.Name != profile {
			continue
		}
		pt, pc := split(p.Rules)
		if len(pt) > 0 {
			timeRules = pt
		}
		if len(pc) > 0 {
			contentRules = pc
		}
		break
	}
	return
}

func split(rs []Rule) (timeRules, contentRules []Rule) {
	for _, r := range rs {
		switch r.Kind {
		case KindTime:
			timeRules = append(timeRules, r)
		case KindContent:
			contentRules = append(contentRules, r)
		}
	}
	return
}

// activeAt reports whether now falls inside the rule's window. A window
// that wraps midnight belongs to the day it starts on. Start equal to End
// covers the whole day.
func (r Rule) activeAt(now time.Time) bool {
	start, err := parseClock(r.Start)
	if err != nil {
		return false
	}
	end, err := parseClock(r.End)
	if err != nil {
		return false
	}
	minute := now.Hour()*60 + now.Minute()
	today := now.Weekday()
	yesterday := (today + 6) % 7

	switch {
	case start == end:
		return r.onDay(today)
	case start < end:
		return minute >= start && minute < end && r.onDay(today)
	default:
		if minute >= start {
			return r.onDay(today)
		}
		return minute < end && r.onDay(yesterday)
	}
}

func (r Rule) onDay(d time.Weekday) bool {
	if len(r.Days) == 0 {
		return true
	}
	for _, s := range r.Days {
		if wd, ok := parseWeekday(s); ok && wd == d {
			return true
		}
	}
	return false
}

// Rules returns a copy of the rules for profile; empty means defaults.
func (e *Engine) Rules(profile string) ([]Rule, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if profile == "" {
		return append([]Rule(nil), e.cfg.Rules...), nil
	}
	for _, p := range e.cfg.Profiles {
		if p.Name == profile {
			return append([]Rule(nil), p.Rules...), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoProfile, profile)
}

// CreateRule adds r to profile (empty means defaults). An empty id is
// generated.
func (e *Engine) CreateRule(profile string, r Rule) (Rule, error) {
	if r.ID == "" {
		r.ID = string(r.Kind) + "-" + uuid.NewString()[:8]
	}
	r.canonical()
	if err := r.Validate(); err != nil {
		return Rule{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	err := e.mutate(func(cfg *Config) error {
		if _, _, ok := cfg.find(r.ID); ok {
			return fmt.Errorf("%w: %s", ErrDuplicate, r.ID)
		}
		list, err := cfg.rulesOf(profile)
		if err != nil {
			return err
		}
		*list = append(*list, r)
		return nil
	})
	if err != nil {
		return Rule{}, err
	}
	return r, nil
}

// UpdateRule replaces the rule with id, wherever it lives.
func (e *Engine) UpdateRule(id string, r Rule) (Rule, error) {
	r.ID = id
	r.canonical()
	if err := r.Validate(); err != nil {
		return Rule{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	err := e.mutate(func(cfg *Config) error {
		list, i, ok := cfg.find(id)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		(*list)[i] = r
		return nil
	})
	if err != nil {
		return Rule{}, err
	}
	return r, nil
}

// DeleteRule removes the rule with id.
func (e *Engine) DeleteRule(id string) error {
	return e.mutate(func(cfg *Config) error {
		list, i, ok := cfg.find(id)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		*list = append((*list)[:i], (*list)[i+1:]...)
		return nil
	})
}

// SetProfiles replaces the profile list.
func (e *Engine) SetProfiles(profiles []Profile) error {
	return e.mutate(func(cfg *Config) error {
		cfg.Profiles = profiles
		cfg.normalize()
		return cfg.Validate()
	})
}

// Profiles returns a copy of the profiles.
func (e *Engine) Profiles() []Profile {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Profile, len(e.cfg.Profiles))
	for i, p := range e.cfg.Profiles {
		p.Usernames = append([]string(nil), p.Usernames...)
		p.Rules = append([]Rule(nil), p.Rules...)
		out[i] = p
	}
	return out
}

// ProfileForUser maps an OS or proxy username to a profile name.
func (e *Engine) ProfileForUser(username string) (string, bool) {
	if username == "" {
		return "", false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range e.cfg.Profiles {
		if strings.EqualFold(p.Name, username) {
			return p.Name, true
		}
		for _, u := range p.Usernames {
			if strings.EqualFold(u, username) {
				return p.Name, true
			}
		}
	}
	return "", false
}

// HasProfile reports whether a profile is configured.
func (e *Engine) HasProfile(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range e.cfg.Profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// mutate applies fn to a copy of the config, persists it, then swaps it
// in. On any error the engine is unchanged.
func (e *Engine) mutate(fn func(*Config) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.cfg.clone()
	if err := fn(next); err != nil {
		return err
	}
	if e.path != "" {
		if err := Save(e.path, next); err != nil {
			return err
		}
	}
	e.cfg = next
	return nil
}

func (c *Config) clone() *Config {
	out := &Config{Rules: cloneRules(c.Rules)}
	for _, p := range c.Profiles {
		p.Usernames = append([]string(nil), p.Usernames...)
		p.Rules = cloneRules(p.Rules)
		out.Profiles = append(out.Profiles, p)
	}
	return out
}

func cloneRules(rs []Rule) []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, len(rs))
	for i, r := range rs {
		r.Days = append([]string(nil), r.Days...)
		out[i] = r
	}
	return out
}

func (c *Config) find(id string) (*[]Rule, int, bool) {
	for i := range c.Rules {
		if c.Rules[i].ID == id {
			return &c.Rules, i, true
		}
	}
	for p := range c.Profiles {
		for i := range c.Profiles[p].Rules {
			if c.Profiles[p].Rules[i].ID == id {
				return &c.Profiles[p].Rules, i, true
			}
		}
	}
	return nil, 0, false
}

func (c *Config) rulesOf(profile string) (*[]Rule, error) {
	if profile == "" {
		return &c.Rules, nil
	}
	for p := range c.Profiles {
		if c.Profiles[p].Name == profile {
			return &c.Profiles[p].Rules, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoProfile, profile)
}
