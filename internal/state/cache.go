package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ppiankov/chatwarden/internal/store"
)

// DefaultPollInterval bounds how stale the cached answer can be.
const DefaultPollInterval = 500 * time.Millisecond

// Source is the durable side of the cache. *store.Store implements it.
type Source interface {
	CurrentSeq(ctx context.Context) (int64, error)
	FilteringState(ctx context.Context) (store.StateRecord, error)
	SetFilteringState(ctx context.Context, rec store.StateRecord, event, actor string) (int64, error)
}

// Cache holds the hot-path boolean and the last sequence number it saw.
// Until the first successful load it reports enabled.
type Cache struct {
	src Source
	log *slog.Logger
	now func() time.Time

	enabled atomic.Bool
	seq     atomic.Int64

	mu     sync.Mutex // serializes loads and guards status
	status Status
}

// NewCache returns a cache that has not yet read the durable record.
func NewCache(src Source, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	c := &Cache{src: src, log: log, now: time.Now, status: Status{Mode: Active}}
	c.enabled.Store(true)
	return c
}

// IsFilteringEnabled is the hot-path read.
func (c *Cache) IsFilteringEnabled() bool {
	return c.enabled.Load()
}

// Seq is the last sequence number loaded.
func (c *Cache) Seq() int64 {
	return c.seq.Load()
}

// Status returns the cached status with auto-revert applied.
func (c *Cache) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status.Effective(c.now())
}

// Poll reloads when the durable sequence advanced past the cached one and
// reports whether it did. A pending pause expiry is re-evaluated on every
// poll even without a new sequence.
func (c *Cache) Poll(ctx context.Context) (bool, error) {
	seq, err := c.src.CurrentSeq(ctx)
	if err != nil {
		return false, err
	}
	if seq > c.seq.Load() {
		return true, c.load(ctx, seq)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Mode == Paused && c.status.Until != nil {
		c.enabled.Store(c.status.Effective(c.now()).Enabled())
	}
	return false, nil
}

// Refresh reloads unconditionally.
func (c *Cache) Refresh(ctx context.Context) error {
	seq, err := c.src.CurrentSeq(ctx)
	if err != nil {
		return err
	}
	return c.load(ctx, seq)
}

func (c *Cache) load(ctx context.Context, seq int64) error {
	rec, err := c.src.FilteringState(ctx)
	if err != nil {
		return fmt.Errorf("load filtering state: %w", err)
	}
	st := fromRecord(rec)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A concurrent load may already have stored a newer sequence.
	if seq < c.seq.Load() {
		return nil
	}
	c.status = st
	c.enabled.Store(st.Effective(c.now()).Enabled())
	c.seq.Store(seq)
	return nil
}

// Run polls every interval until ctx is done. Errors are logged and
// swallowed.
func (c *Cache) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			changed, err := c.Poll(ctx)
			if err != nil {
				c.log.Warn("state poll failed", "error", err)
				continue
			}
			if changed {
				c.log.Info("filtering state changed", "status", c.Status().String(), "seq", c.Seq())
			}
		}
	}
}
