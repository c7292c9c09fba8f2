// Package sites decides which destinations are inspected.
//
// A Registry holds bundled entries compiled into the binary and custom
// entries added at runtime. Lookups are read-mostly and cached per
// normalized host; every mutation clears the cache.
package sites

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound     = errors.New("site not found")
	ErrDuplicate    = errors.New("site pattern already registered")
	ErrBundled      = errors.New("bundled sites cannot be removed, disable them instead")
	ErrInvalidEntry = errors.New("invalid site pattern")
)

// UnknownService is the display name for unmatched hosts.
const UnknownService = "Unknown"

// Source records where an entry came from.
type Source string

const (
	SourceBundled Source = "bundled"
	SourceCustom  Source = "custom"
)

// Entry is one monitored destination pattern.
type Entry struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Category    string `json:"category" yaml:"category"`
	ParserID    string `json:"parser_id,omitempty" yaml:"parser_id,omitempty"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Source      Source `json:"source" yaml:"source"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// Persister stores custom entries and bundled-entry disables.
type Persister interface {
	LoadSites(ctx context.Context) (custom []Entry, disabled []string, err error)
	SaveCustomSite(ctx context.Context, e Entry) error
	DeleteCustomSite(ctx context.Context, pattern string) error
	SetSiteDisabled(ctx context.Context, pattern string, disabled bool) error
}

type lookupResult struct {
	entry Entry
	ok    bool
}

// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*Entry // keyed by pattern
	disabled map[string]bool   // bundled patterns switched off
	persist  Persister

	cache sync.Map // normalized host -> lookupResult
}

// New builds a registry from bundled entries.
func New(bundled []Entry) *Registry {
	r := &Registry{
		entries:  make(map[string]*Entry, len(bundled)),
		disabled: make(map[string]bool),
	}
	for _, e := range bundled {
		e.Pattern = strings.ToLower(e.Pattern)
		e.Source = SourceBundled
		e.Enabled = true
		r.entries[e.Pattern] = &e
	}
	return r
}

// NewDefault builds a registry with the bundled chat services.
func NewDefault() *Registry {
	return New(DefaultEntries)
}

// Open builds the default registry and applies the persisted custom
// entries and disables. p may be nil.
func Open(ctx context.Context, p Persister) (*Registry, error) {
	r := NewDefault()
	r.persist = p
	if p == nil {
		return r, nil
	}
	custom, disabled, err := p.LoadSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sites: %w", err)
	}
	for _, e := range custom {
		e.Pattern = strings.ToLower(e.Pattern)
		if err := ValidatePattern(e.Pattern); err != nil {
			// A bad row must not keep the proxy down.
			continue
		}
		if _, exists := r.entries[e.Pattern]; exists {
			continue
		}
		e.Source = SourceCustom
		r.entries[e.Pattern] = &e
	}
	for _, pattern := range disabled {
		if e, ok := r.entries[strings.ToLower(pattern)]; ok && e.Source == SourceBundled {
			r.disabled[e.Pattern] = true
		}
	}
	return r, nil
}

// Lookup returns the entry governing host.
func (r *Registry) Lookup(host string) (Entry, bool) {
	h := Normalize(host)
	if h == "" {
		return Entry{}, false
	}
	if v, ok := r.cache.Load(h); ok {
		res := v.(lookupResult)
		return res.entry, res.ok
	}

	// The cache is filled under the read lock so a concurrent mutation
	// cannot be overwritten by a stale result.
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.match(h)
	r.cache.Store(h, lookupResult{entry: e, ok: ok})
	return e, ok
}

// IsMonitored reports whether traffic to host is inspected.
func (r *Registry) IsMonitored(host string) bool {
	_, ok := r.Lookup(host)
	return ok
}

// ServiceName returns the display name for host, or UnknownService.
func (r *Registry) ServiceName(host string) string {
	if e, ok := r.Lookup(host); ok && e.DisplayName != "" {
		return e.DisplayName
	}
	return UnknownService
}

// ParserID returns the extraction parser hint for host.
func (r *Registry) ParserID(host string) (string, bool) {
	e, ok := r.Lookup(host)
	if !ok || e.ParserID == "" {
		return "", false
	}
	return e.ParserID, true
}

// match resolves a normalized host. Caller holds r.mu.
func (r *Registry) match(h string) (Entry, bool) {
	if e := r.usable(h); e != nil {
		return *e, true
	}

	if i := strings.IndexByte(h, '.'); i > 0 {
		if e := r.usable("*." + h[i+1:]); e != nil {
			return *e, true
		}
	}

	// Multi-level: the host itself and every parent domain.
	var best *Entry
	for suffix := h; suffix != ""; {
		if e := r.usable("**." + suffix); e != nil {
			if best == nil || e.Priority > best.Priority {
				best = e
			}
		}
		i := strings.IndexByte(suffix, '.')
		if i < 0 {
			break
		}
		suffix = suffix[i+1:]
	}
	if best != nil {
		return *best, true
	}
	return Entry{}, false
}

func (r *Registry) usable(pattern string) *Entry {
	e, ok := r.entries[pattern]
	if !ok || !e.Enabled || r.disabled[pattern] {
		return nil
	}
	return e
}

// Add registers a custom entry.
func (r *Registry) Add(ctx context.Context, e Entry) (Entry, error) {
	e.Pattern = strings.ToLower(strings.TrimSpace(e.Pattern))
	if err := ValidatePattern(e.Pattern); err != nil {
		return Entry{}, err
	}
	e.Source = SourceCustom
	e.Enabled = true
	if e.DisplayName == "" {
		e.DisplayName = PrimaryDomain(strings.TrimLeft(e.Pattern, "*."))
	}
	if e.Category == "" {
		e.Category = "custom"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.Pattern]; exists {
		return Entry{}, fmt.Errorf("%w: %s", ErrDuplicate, e.Pattern)
	}
	if r.persist != nil {
		if err := r.persist.SaveCustomSite(ctx, e); err != nil {
			return Entry{}, fmt.Errorf("save site: %w", err)
		}
	}
	r.entries[e.Pattern] = &e
	r.invalidate()
	return e, nil
}

// Remove deletes a custom entry. Bundled entries return ErrBundled.
func (r *Registry) Remove(ctx context.Context, pattern string) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[pattern]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, pattern)
	}
	if e.Source == SourceBundled {
		return fmt.Errorf("%w: %s", ErrBundled, pattern)
	}
	if r.persist != nil {
		if err := r.persist.DeleteCustomSite(ctx, pattern); err != nil {
			return fmt.Errorf("delete site: %w", err)
		}
	}
	delete(r.entries, pattern)
	r.invalidate()
	return nil
}

// Enable switches an entry back on.
func (r *Registry) Enable(ctx context.Context, pattern string) error {
	return r.setEnabled(ctx, pattern, true)
}

// Disable excludes an entry from lookups without deleting it.
func (r *Registry) Disable(ctx context.Context, pattern string) error {
	return r.setEnabled(ctx, pattern, false)
}

func (r *Registry) setEnabled(ctx context.Context, pattern string, enabled bool) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[pattern]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, pattern)
	}

	if e.Source == SourceBundled {
		if r.persist != nil {
			if err := r.persist.SetSiteDisabled(ctx, pattern, !enabled); err != nil {
				return fmt.Errorf("persist site state: %w", err)
			}
		}
		if enabled {
			delete(r.disabled, pattern)
		} else {
			r.disabled[pattern] = true
		}
	} else {
		updated := *e
		updated.Enabled = enabled
		if r.persist != nil {
			if err := r.persist.SaveCustomSite(ctx, updated); err != nil {
				return fmt.Errorf("persist site state: %w", err)
			}
		}
		*e = updated
	}
	r.invalidate()
	return nil
}

// RestoreDefaults re-enables every bundled entry. Custom entries are kept.
func (r *Registry) RestoreDefaults(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pattern := range r.disabled {
		if r.persist != nil {
			if err := r.persist.SetSiteDisabled(ctx, pattern, false); err != nil {
				return fmt.Errorf("persist site state: %w", err)
			}
		}
		delete(r.disabled, pattern)
	}
	r.invalidate()
	return nil
}

// List returns all entries, highest priority first, with Enabled
// reflecting administrative disables.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		c := *e
		if r.disabled[c.Pattern] {
			c.Enabled = false
		}
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}

// Get returns the entry registered under pattern.
func (r *Registry) Get(pattern string) (Entry, error) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[pattern]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, pattern)
	}
	c := *e
	if r.disabled[pattern] {
		c.Enabled = false
	}
	return c, nil
}

// invalidate clears the lookup cache. Caller holds the write lock.
func (r *Registry) invalidate() {
	r.cache.Range(func(k, _ any) bool {
		r.cache.Delete(k)
		return true
	})
}

// Normalize lowercases host and strips a port and trailing dot. IPv6
// literals may be bracketed.
func Normalize(host string) string {
	h := strings.TrimSpace(host)
	if h == "" {
		return ""
	}
	if strings.HasPrefix(h, "[") {
		if end := strings.IndexByte(h, ']'); end > 0 {
			h = h[1:end]
		}
	} else if strings.Count(h, ":") == 1 {
		if hh, _, err := net.SplitHostPort(h); err == nil {
			h = hh
		}
	}
	return strings.TrimSuffix(strings.ToLower(h), ".")
}

// ValidatePattern checks an exact host or wildcard pattern.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: empty", ErrInvalidEntry)
	}
	base := pattern
	wildcard := false
	switch {
	case strings.HasPrefix(pattern, "**."):
		base, wildcard = pattern[3:], true
	case strings.HasPrefix(pattern, "*."):
		base, wildcard = pattern[2:], true
	}
	if strings.ContainsAny(base, "*/:@ ?#") {
		if net.ParseIP(base) == nil {
			return fmt.Errorf("%w: %q", ErrInvalidEntry, pattern)
		}
	}
	if net.ParseIP(base) != nil {
		if wildcard {
			return fmt.Errorf("%w: wildcard on an IP address %q", ErrInvalidEntry, pattern)
		}
		return nil
	}
	labels := strings.Split(base, ".")
	if wildcard && len(labels) < 2 {
		return fmt.Errorf("%w: wildcard needs a domain with at least two labels: %q", ErrInvalidEntry, pattern)
	}
	for _, l := range labels {
		if !validLabel(l) {
			return fmt.Errorf("%w: bad label %q in %q", ErrInvalidEntry, l, pattern)
		}
	}
	return nil
}

func validLabel(l string) bool {
	if l == "" || len(l) > 63 || l[0] == '-' || l[len(l)-1] == '-' {
		return false
	}
	for _, c := range l {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_') {
			return false
		}
	}
	return true
}

// twoLevelSuffixes lists public suffixes that take three labels.
var twoLevelSuffixes = map[string]bool{
	"co.uk": true, "com.au": true, "co.jp": true, "com.br": true, "co.in": true,
}

// PrimaryDomain shortens host for display. "www." is dropped, "api."
// hosts are kept whole, and other subdomains collapse to the registrable
// domain. Lookups never use it.
func PrimaryDomain(host string) string {
	h := strings.TrimPrefix(Normalize(host), "www.")
	if strings.HasPrefix(h, "api.") || net.ParseIP(h) != nil {
		return h
	}
	labels := strings.Split(h, ".")
	keep := 2
	if len(labels) >= 3 && twoLevelSuffixes[strings.Join(labels[len(labels)-2:], ".")] {
		keep = 3
	}
	if len(labels) <= keep {
		return h
	}
	return strings.Join(labels[len(labels)-keep:], ".")
}
