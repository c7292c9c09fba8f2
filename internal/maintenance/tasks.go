package maintenance

import (
	"context"
	"time"
)

// Intervals for the standard sweeps.
const (
	SessionSweepInterval = time.Minute
	EventPruneInterval   = time.Hour
	CACheckInterval      = 5 * time.Minute
)

// SessionCleaner deletes expired sessions. *session.Manager implements it.
type SessionCleaner interface {
	Cleanup(ctx context.Context) (int64, error)
}

// EventPruner deletes events older than a cutoff. *store.Store implements it.
type EventPruner interface {
	PruneEvents(ctx context.Context, before time.Time) (int64, error)
}

// SessionSweep expires sessions every minute.
func SessionSweep(c SessionCleaner) Task {
	return Task{Name: "session-cleanup", Interval: SessionSweepInterval, Run: c.Cleanup}
}

// EventRetention removes events older than retention. A non-positive
// retention keeps events forever and yields a task the scheduler skips.
func EventRetention(p EventPruner, retention time.Duration) Task {
	if retention <= 0 {
		return Task{Name: "event-retention"}
	}
	return Task{
		Name:     "event-retention",
		Interval: EventPruneInterval,
		Run: func(ctx context.Context) (int64, error) {
			return p.PruneEvents(ctx, time.Now().Add(-retention))
		},
	}
}

// CAWatch reports the root certificate going missing from disk. Leaves
// keep being minted from the in-memory key, but clients installing the
// certificate later would fetch nothing.
func CAWatch(present func() bool, missing func()) Task {
	warned := false
	return Task{
		Name:     "ca-check",
		Interval: CACheckInterval,
		Run: func(context.Context) (int64, error) {
			if present() {
				warned = false
				return 0, nil
			}
			if !warned {
				missing()
				warned = true
			}
			return 1, nil
		},
	}
}
