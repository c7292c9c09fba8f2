package state

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/chatwarden/internal/audit"
	"github.com/ppiankov/chatwarden/internal/store"
)

// Controller performs protection transitions. Each one writes the durable
// record and appends one sequence entry in a single transaction, records an
// audit entry, then refreshes the local cache.
type Controller struct {
	src   Source
	cache *Cache
	audit audit.Recorder
	now   func() time.Time
}

// NewController binds transitions to src. cache may be nil for processes
// that only write.
func NewController(src Source, cache *Cache, rec audit.Recorder) *Controller {
	if rec == nil {
		rec = audit.Discard
	}
	return &Controller{src: src, cache: cache, audit: rec, now: time.Now}
}

// Current reads the durable status with auto-revert applied.
func (c *Controller) Current(ctx context.Context) (Status, error) {
	rec, err := c.src.FilteringState(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("read filtering state: %w", err)
	}
	return fromRecord(rec).Effective(c.now()), nil
}

// Pause suspends filtering until the given time, or indefinitely when until
// is nil. Pausing while disabled is rejected.
func (c *Controller) Pause(ctx context.Context, until *time.Time, actor string) (Status, error) {
	if until != nil && !until.After(c.now()) {
		return Status{}, fmt.Errorf("pause expiry %s is in the past", until.Format(time.RFC3339))
	}
	return c.transition(ctx, Status{Mode: Paused, Until: until}, "pause", actor)
}

// Resume re-enables filtering from any mode.
func (c *Controller) Resume(ctx context.Context, actor string) (Status, error) {
	return c.transition(ctx, Status{Mode: Active}, "resume", actor)
}

// Disable suspends filtering until an explicit Resume.
func (c *Controller) Disable(ctx context.Context, actor string) (Status, error) {
	return c.transition(ctx, Status{Mode: Disabled}, "disable", actor)
}

func (c *Controller) transition(ctx context.Context, to Status, event, actor string) (Status, error) {
	from, err := c.Current(ctx)
	if err != nil {
		return Status{}, err
	}
	if err := checkTransition(from.Mode, to.Mode); err != nil {
		c.record(actor, event, to, err)
		return from, err
	}

	rec := store.StateRecord{Mode: string(to.Mode), Until: to.Until, UpdatedAt: c.now()}
	if _, err := c.src.SetFilteringState(ctx, rec, event, actor); err != nil {
		c.record(actor, event, to, err)
		return from, fmt.Errorf("write filtering state: %w", err)
	}
	c.record(actor, event, to, nil)

	if c.cache != nil {
		if err := c.cache.Refresh(ctx); err != nil {
			return to, fmt.Errorf("refresh state cache: %w", err)
		}
	}
	return to, nil
}

func (c *Controller) record(actor, event string, to Status, err error) {
	e := audit.Entry{Actor: actor, Operation: "state." + event, Detail: to.String()}
	if err != nil {
		e.Result = audit.ResultFailed
		e.Detail = err.Error()
	}
	_ = c.audit.Record(e)
}
