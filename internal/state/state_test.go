package state

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/chatwarden/internal/audit"
	"github.com/ppiankov/chatwarden/internal/store"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), store.FileName))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// memSource is an in-memory Source with a failure switch.
type memSource struct {
	mu   sync.Mutex
	rec  store.StateRecord
	seq  int64
	fail error
}

func (m *memSource) CurrentSeq(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seq, m.fail
}

func (m *memSource) FilteringState(context.Context) (store.StateRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec.Mode == "" {
		return store.StateRecord{Mode: store.DefaultMode}, m.fail
	}
	return m.rec, m.fail
}

func (m *memSource) SetFilteringState(_ context.Context, rec store.StateRecord, _, _ string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, m.fail
	}
	m.rec = rec
	m.seq++
	return m.seq, nil
}

type memAudit struct {
	entries []audit.Entry
}

func (m *memAudit) Record(e audit.Entry) error {
	m.entries = append(m.entries, e)
	return nil
}

func TestEffective(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)
	tests := []struct {
		name string
		in   Status
		want Mode
	}{
		{"active", Status{Mode: Active}, Active},
		{"disabled", Status{Mode: Disabled}, Disabled},
		{"paused forever", Status{Mode: Paused}, Paused},
		{"paused future", Status{Mode: Paused, Until: &future}, Paused},
		{"paused expired", Status{Mode: Paused, Until: &past}, Active},
		{"paused exactly now", Status{Mode: Paused, Until: &now}, Paused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Effective(now).Mode; got != tt.want {
				t.Errorf("Effective = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCacheFreshness(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	c := NewCache(s, quietLogger())
	if err := c.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	if !c.IsFilteringEnabled() {
		t.Fatal("fresh install should be enabled")
	}

	// Another process pauses protection.
	if _, err := s.SetFilteringState(ctx, store.StateRecord{Mode: string(Paused)}, "pause", "cli"); err != nil {
		t.Fatal(err)
	}
	if !c.IsFilteringEnabled() {
		t.Fatal("cache must not observe the write before a poll")
	}

	changed, err := c.Poll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !changed || c.IsFilteringEnabled() {
		t.Fatalf("after poll: changed=%v enabled=%v", changed, c.IsFilteringEnabled())
	}

	changed, _ = c.Poll(ctx)
	if changed {
		t.Error("poll without a new sequence should not reload")
	}

	if _, err := s.SetFilteringState(ctx, store.StateRecord{Mode: string(Active)}, "resume", "cli"); err != nil {
		t.Fatal(err)
	}
	if err := c.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	if !c.IsFilteringEnabled() {
		t.Fatal("resume should re-enable after refresh")
	}
}

func TestCacheRunObservesChange(t *testing.T) {
	src := &memSource{}
	c := NewCache(src, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx, 5*time.Millisecond)

	if _, err := src.SetFilteringState(ctx, store.StateRecord{Mode: string(Disabled)}, "disable", "web"); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for c.IsFilteringEnabled() {
		if time.Now().After(deadline) {
			t.Fatal("Run never observed the disable")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPollAppliesPauseExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	until := now.Add(10 * time.Minute)
	src := &memSource{rec: store.StateRecord{Mode: string(Paused), Until: &until}, seq: 1}
	c := NewCache(src, quietLogger())
	c.now = func() time.Time { return now }

	ctx := context.Background()
	if _, err := c.Poll(ctx); err != nil {
		t.Fatal(err)
	}
	if c.IsFilteringEnabled() {
		t.Fatal("should be paused")
	}

	now = until.Add(time.Second)
	changed, err := c.Poll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("expiry flip is not a reload")
	}
	if !c.IsFilteringEnabled() {
		t.Fatal("expired pause should read as enabled")
	}
	if c.Status().Mode != Active {
		t.Errorf("Status = %v", c.Status())
	}
}

func TestPollErrorKeepsLastValue(t *testing.T) {
	src := &memSource{rec: store.StateRecord{Mode: string(Disabled)}, seq: 1}
	c := NewCache(src, quietLogger())
	ctx := context.Background()
	if _, err := c.Poll(ctx); err != nil {
		t.Fatal(err)
	}
	src.fail = errors.New("database is locked")
	if _, err := c.Poll(ctx); err == nil {
		t.Fatal("expected poll error")
	}
	if c.IsFilteringEnabled() {
		t.Fatal("failed poll must keep the cached value")
	}
}

func TestControllerTransitions(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	c := NewCache(s, quietLogger())
	rec := &memAudit{}
	ctl := NewController(s, c, rec)

	until := time.Now().Add(30 * time.Minute)
	st, err := ctl.Pause(ctx, &until, "cli")
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode != Paused || c.IsFilteringEnabled() {
		t.Fatalf("after pause: %v enabled=%v", st, c.IsFilteringEnabled())
	}

	if _, err := ctl.Disable(ctx, "cli"); err != nil {
		t.Fatalf("paused -> disabled: %v", err)
	}
	if _, err := ctl.Pause(ctx, nil, "cli"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("disabled -> paused err = %v", err)
	}
	if _, err := ctl.Resume(ctx, "cli"); err != nil {
		t.Fatal(err)
	}
	if !c.IsFilteringEnabled() {
		t.Fatal("resume should enable")
	}

	seq, _ := s.CurrentSeq(ctx)
	if seq != 3 {
		t.Errorf("seq = %d, want 3 (rejected transition must not append)", seq)
	}
	if len(rec.entries) != 4 {
		t.Fatalf("audit entries = %d", len(rec.entries))
	}
	if rec.entries[2].Result != audit.ResultFailed || rec.entries[2].Operation != "state.pause" {
		t.Errorf("rejected entry = %+v", rec.entries[2])
	}
}

func TestPauseInPastRejected(t *testing.T) {
	src := &memSource{}
	ctl := NewController(src, nil, nil)
	past := time.Now().Add(-time.Hour)
	if _, err := ctl.Pause(context.Background(), &past, "cli"); err == nil {
		t.Fatal("expected error")
	}
	if src.seq != 0 {
		t.Error("rejected pause wrote state")
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"active": Active, "paused": Paused, "disabled": Disabled, "bogus": Active, "": Active} {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
}
