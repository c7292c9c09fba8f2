package maintenance

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func waitRuns(t *testing.T, s *Scheduler, name string, n int) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for s.Runs(name) < n {
		if time.Now().After(deadline) {
			t.Fatalf("task %s ran %d times, want %d", name, s.Runs(name), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSchedulerRunsAndSurvivesFailures(t *testing.T) {
	var ok atomic.Int32
	s := NewScheduler(slog.New(slog.DiscardHandler),
		Task{Name: "ok", Interval: 10 * time.Millisecond, Run: func(context.Context) (int64, error) {
			ok.Add(1)
			return 1, nil
		}},
		Task{Name: "fail", Interval: 10 * time.Millisecond, Run: func(context.Context) (int64, error) {
			return 0, errors.New("boom")
		}},
		Task{Name: "panic", Interval: 10 * time.Millisecond, Run: func(context.Context) (int64, error) {
			panic("bad")
		}},
		Task{Name: "disabled"},
	)
	if len(s.tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(s.tasks))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { s.Run(ctx); close(done) }()

	waitRuns(t, s, "ok", 2)
	waitRuns(t, s, "fail", 2)
	waitRuns(t, s, "panic", 2)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if ok.Load() < 2 {
		t.Errorf("ok ran %d times", ok.Load())
	}
}

type fakePruner struct{ before time.Time }

func (f *fakePruner) PruneEvents(_ context.Context, before time.Time) (int64, error) {
	f.before = before
	return 3, nil
}

func TestEventRetentionCutoff(t *testing.T) {
	p := &fakePruner{}
	task := EventRetention(p, 24*time.Hour)
	n, err := task.Run(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("Run = %d, %v", n, err)
	}
	if d := time.Since(p.before); d < 24*time.Hour || d > 24*time.Hour+time.Minute {
		t.Errorf("cutoff %v ago, want ~24h", d)
	}

	if task := EventRetention(p, 0); task.Run != nil {
		t.Error("zero retention should produce a skipped task")
	}
}

func TestCAWatchWarnsOncePerDisappearance(t *testing.T) {
	present := true
	warnings := 0
	task := CAWatch(func() bool { return present }, func() { warnings++ })
	ctx := context.Background()

	task.Run(ctx)
	present = false
	task.Run(ctx)
	task.Run(ctx)
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}
	present = true
	task.Run(ctx)
	present = false
	task.Run(ctx)
	if warnings != 2 {
		t.Errorf("warnings = %d, want 2", warnings)
	}
}
