package sites

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func testRegistry() *Registry {
	return New([]Entry{
		{Pattern: "example.com", DisplayName: "Exact", ParserID: "openai", Priority: 10},
		{Pattern: "*.single.com", DisplayName: "Single", Priority: 10},
		{Pattern: "**.multi.com", DisplayName: "Multi", Priority: 10},
	})
}

func TestWildcardMatching(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		host string
		want bool
	}{
		{"example.com", true},
		{"example.com:443", true},
		{"EXAMPLE.com.", true},
		{"a.example.com", false},

		{"a.single.com", true},
		{"a.single.com:8443", true},
		{"a.b.single.com", false},
		{"single.com", false},

		{"multi.com", true},
		{"a.multi.com", true},
		{"a.b.multi.com:443", true},
		{"notmulti.com", false},

		{"unrelated.org", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := r.IsMonitored(tt.host); got != tt.want {
			t.Errorf("IsMonitored(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

func TestServiceNameAndParser(t *testing.T) {
	r := testRegistry()
	if got := r.ServiceName("example.com:80"); got != "Exact" {
		t.Errorf("ServiceName = %q", got)
	}
	if got := r.ServiceName("nowhere.net"); got != UnknownService {
		t.Errorf("ServiceName(unmatched) = %q", got)
	}
	if id, ok := r.ParserID("example.com"); !ok || id != "openai" {
		t.Errorf("ParserID = %q, %v", id, ok)
	}
	if _, ok := r.ParserID("a.single.com"); ok {
		t.Error("entry without parser id reported one")
	}
}

func TestExactBeatsWildcard(t *testing.T) {
	r := New([]Entry{
		{Pattern: "**.svc.com", DisplayName: "Wide", Priority: 100},
		{Pattern: "*.svc.com", DisplayName: "Single", Priority: 50},
		{Pattern: "api.svc.com", DisplayName: "API", Priority: 1},
	})
	if got := r.ServiceName("api.svc.com"); got != "API" {
		t.Errorf("exact: got %q", got)
	}
	if got := r.ServiceName("web.svc.com"); got != "Single" {
		t.Errorf("single-level: got %q", got)
	}
	if got := r.ServiceName("a.b.svc.com"); got != "Wide" {
		t.Errorf("multi-level: got %q", got)
	}
}

func TestMultiLevelPriority(t *testing.T) {
	r := New([]Entry{
		{Pattern: "**.svc.com", DisplayName: "Low", Priority: 1},
		{Pattern: "**.api.svc.com", DisplayName: "High", Priority: 5},
	})
	if got := r.ServiceName("x.api.svc.com"); got != "High" {
		t.Errorf("got %q, want High", got)
	}
}

func TestIPv6Hosts(t *testing.T) {
	r := New([]Entry{{Pattern: "::1", DisplayName: "Loopback"}})
	for _, h := range []string{"[::1]:443", "[::1]", "::1"} {
		if !r.IsMonitored(h) {
			t.Errorf("IsMonitored(%q) = false", h)
		}
	}
}

func TestDisableBundledExcludesAndRestores(t *testing.T) {
	ctx := context.Background()
	r := NewDefault()
	if !r.IsMonitored("api.openai.com") {
		t.Fatal("default entry missing")
	}
	if err := r.Disable(ctx, "api.openai.com"); err != nil {
		t.Fatal(err)
	}
	// The cached positive answer must not survive the mutation.
	if r.IsMonitored("api.openai.com") {
		t.Fatal("disabled entry still monitored")
	}
	e, err := r.Get("api.openai.com")
	if err != nil || e.Enabled {
		t.Fatalf("Get = %+v, %v", e, err)
	}
	if err := r.RestoreDefaults(ctx); err != nil {
		t.Fatal(err)
	}
	if !r.IsMonitored("api.openai.com") {
		t.Fatal("restore did not re-enable bundled entry")
	}
}

func TestAddRemoveCustom(t *testing.T) {
	ctx := context.Background()
	r := NewDefault()
	if r.IsMonitored("chat.example.org") {
		t.Fatal("unexpected match")
	}
	e, err := r.Add(ctx, Entry{Pattern: "*.Example.org", DisplayName: "Example"})
	if err != nil {
		t.Fatal(err)
	}
	if e.Source != SourceCustom || e.Pattern != "*.example.org" {
		t.Errorf("added = %+v", e)
	}
	if !r.IsMonitored("chat.example.org") {
		t.Fatal("custom entry not matched")
	}
	if _, err := r.Add(ctx, Entry{Pattern: "*.example.org"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate err = %v", err)
	}
	if err := r.Remove(ctx, "api.openai.com"); !errors.Is(err, ErrBundled) {
		t.Errorf("remove bundled err = %v", err)
	}
	if err := r.Remove(ctx, "*.example.org"); err != nil {
		t.Fatal(err)
	}
	if r.IsMonitored("chat.example.org") {
		t.Fatal("removed entry still matched")
	}
	if err := r.Remove(ctx, "*.example.org"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove err = %v", err)
	}
}

func TestDisableCustomEntry(t *testing.T) {
	ctx := context.Background()
	r := New(nil)
	if _, err := r.Add(ctx, Entry{Pattern: "bot.local"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Disable(ctx, "bot.local"); err != nil {
		t.Fatal(err)
	}
	if r.IsMonitored("bot.local") {
		t.Error("disabled custom entry matched")
	}
	if err := r.Enable(ctx, "bot.local"); err != nil {
		t.Fatal(err)
	}
	if !r.IsMonitored("bot.local") {
		t.Error("re-enabled custom entry not matched")
	}
}

type memPersister struct {
	custom   map[string]Entry
	disabled map[string]bool
	fail     error
}

func newMemPersister() *memPersister {
	return &memPersister{custom: map[string]Entry{}, disabled: map[string]bool{}}
}

func (m *memPersister) LoadSites(context.Context) ([]Entry, []string, error) {
	var custom []Entry
	for _, e := range m.custom {
		custom = append(custom, e)
	}
	var disabled []string
	for p := range m.disabled {
		disabled = append(disabled, p)
	}
	return custom, disabled, nil
}

func (m *memPersister) SaveCustomSite(_ context.Context, e Entry) error {
	if m.fail != nil {
		return m.fail
	}
	m.custom[e.Pattern] = e
	return nil
}

func (m *memPersister) DeleteCustomSite(_ context.Context, p string) error {
	delete(m.custom, p)
	return nil
}

func (m *memPersister) SetSiteDisabled(_ context.Context, p string, d bool) error {
	if d {
		m.disabled[p] = true
	} else {
		delete(m.disabled, p)
	}
	return nil
}

func TestOpenRestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	p := newMemPersister()
	r, err := Open(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Add(ctx, Entry{Pattern: "tutor.school.edu", DisplayName: "Tutor"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Disable(ctx, "api.anthropic.com"); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if got := reopened.ServiceName("tutor.school.edu"); got != "Tutor" {
		t.Errorf("custom entry lost: %q", got)
	}
	if reopened.IsMonitored("api.anthropic.com") {
		t.Error("bundled disable lost")
	}
}

func TestPersistFailureLeavesRegistryUnchanged(t *testing.T) {
	ctx := context.Background()
	p := newMemPersister()
	r, _ := Open(ctx, p)
	p.fail = fmt.Errorf("disk full")
	if _, err := r.Add(ctx, Entry{Pattern: "new.example"}); err == nil {
		t.Fatal("expected error")
	}
	if r.IsMonitored("new.example") {
		t.Error("entry added despite persist failure")
	}
}

func TestValidatePattern(t *testing.T) {
	good := []string{"example.com", "*.example.com", "**.example.com", "localhost", "10.0.0.1", "::1", "a-b.example.co.uk"}
	bad := []string{"", "*.com", "**", "ex*ample.com", "https://example.com", "example.com/path", "-bad.com", "*.10.0.0.1", "a..b"}
	for _, p := range good {
		if err := ValidatePattern(p); err != nil {
			t.Errorf("ValidatePattern(%q) = %v", p, err)
		}
	}
	for _, p := range bad {
		if err := ValidatePattern(p); !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("ValidatePattern(%q) = %v, want ErrInvalidEntry", p, err)
		}
	}
}

func TestListOrder(t *testing.T) {
	r := New([]Entry{
		{Pattern: "b.com", Priority: 1},
		{Pattern: "a.com", Priority: 1},
		{Pattern: "z.com", Priority: 9},
	})
	got := r.List()
	want := []string{"z.com", "a.com", "b.com"}
	for i, p := range want {
		if got[i].Pattern != p {
			t.Fatalf("List order = %v", got)
		}
	}
}

func TestConcurrentLookupAndMutation(t *testing.T) {
	ctx := context.Background()
	r := NewDefault()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.IsMonitored("api.anthropic.com")
				r.ServiceName("chat.example.net")
			}
		}()
	}
	for j := 0; j < 20; j++ {
		_ = r.Disable(ctx, "api.anthropic.com")
		_ = r.Enable(ctx, "api.anthropic.com")
	}
	wg.Wait()
	if !r.IsMonitored("api.anthropic.com") {
		t.Error("final state should be enabled")
	}
}

func TestPrimaryDomain(t *testing.T) {
	for in, want := range map[string]string{
		"www.example.com":     "example.com",
		"api.openai.com":      "api.openai.com",
		"chat.openai.com:443": "openai.com",
		"news.bbc.co.uk":      "bbc.co.uk",
		"claude.ai":           "claude.ai",
		"10.0.0.1":            "10.0.0.1",
	} {
		if got := PrimaryDomain(in); got != want {
			t.Errorf("PrimaryDomain(%q) = %q, want %q", in, got, want)
		}
	}
}
