// Package maintenance runs the periodic housekeeping sweeps of a running
// proxy: session expiry, event retention and CA presence.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Task is one named periodic sweep. Run returns the number of items it
// touched, used only for logging.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int64, error)
}

// Scheduler runs tasks on their own tickers until the context ends. A
// failing or panicking task is logged and retried on its next tick.
type Scheduler struct {
	tasks []Task
	log   *slog.Logger

	mu   sync.Mutex
	runs map[string]int
}

// NewScheduler returns a scheduler for tasks. Tasks without an interval
// or a function are skipped.
func NewScheduler(log *slog.Logger, tasks ...Task) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	s := &Scheduler{log: log, runs: make(map[string]int)}
	for _, t := range tasks {
		if t.Interval <= 0 || t.Run == nil {
			continue
		}
		s.tasks = append(s.tasks, t)
	}
	return s
}

// Run starts every task and blocks until ctx is cancelled and all
// in-flight sweeps return.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, t := range s.tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			s.loop(ctx, t)
		}(t)
	}
	wg.Wait()
}

// Runs reports how many times the named task has completed, successful
// or not.
func (s *Scheduler) Runs(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[name]
}

func (s *Scheduler) loop(ctx context.Context, t Task) {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.once(ctx, t)
		}
	}
}

func (s *Scheduler) once(ctx context.Context, t Task) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("maintenance task panicked", "task", t.Name, "panic", fmt.Sprint(r))
		}
		s.mu.Lock()
		s.runs[t.Name]++
		s.mu.Unlock()
	}()

	n, err := t.Run(ctx)
	switch {
	case err != nil:
		s.log.Warn("maintenance task failed", "task", t.Name, "error", err)
	case n > 0:
		s.log.Info("maintenance", "task", t.Name, "count", n)
	}
}
