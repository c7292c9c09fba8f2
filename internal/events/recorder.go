// Package events records one privacy-preserving row per inspected request.
// Recording is asynchronous: the request path hands a decision to a bounded
// queue and never waits on the database.
package events

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/redact"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/store"
)

const (
	DefaultQueueSize     = 1024
	DefaultPreviewLength = 120
)

// Sink persists events. *store.Store implements it.
type Sink interface {
	RecordEvent(ctx context.Context, e store.Event) error
}

// Options tune the recorder.
type Options struct {
	QueueSize     int
	PreviewLength int
	WriteTimeout  time.Duration
}

// Decision is everything the proxy knows about one inspected request.
type Decision struct {
	Host    string
	Service string
	Profile string
	Text    string
	Result  classify.Result
	Rule    rules.Result
	At      time.Time
}

// Stats are cumulative counters.
type Stats struct {
	Written int64 `json:"written"`
	Dropped int64 `json:"dropped"`
	Failed  int64 `json:"failed"`
}

// Recorder owns the queue and its single writer goroutine.
type Recorder struct {
	sink    Sink
	red     *redact.Redactor
	log     *slog.Logger
	opts    Options
	queue   chan store.Event
	done    chan struct{}
	mu      sync.RWMutex
	closed  bool
	written atomic.Int64
	dropped atomic.Int64
	failed  atomic.Int64
}

// NewRecorder starts the writer goroutine.
func NewRecorder(sink Sink, red *redact.Redactor, opts Options, log *slog.Logger) *Recorder {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.PreviewLength < 0 {
		opts.PreviewLength = 0
	} else if opts.PreviewLength == 0 {
		opts.PreviewLength = DefaultPreviewLength
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}
	if red == nil {
		red = redact.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	r := &Recorder{
		sink:  sink,
		red:   red,
		log:   log,
		opts:  opts,
		queue: make(chan store.Event, opts.QueueSize),
		done:  make(chan struct{}),
	}
	go r.run()
	return r
}

// Build turns a decision into the row that will be stored. The prompt
// text itself never leaves this function.
func (r *Recorder) Build(d Decision) store.Event {
	at := d.At
	if at.IsZero() {
		at = time.Now()
	}
	e := store.Event{
		ID:         uuid.NewString(),
		Timestamp:  at,
		Host:       d.Host,
		Service:    d.Service,
		Profile:    d.Profile,
		PromptHash: HashPrompt(d.Text),
		Preview:    r.red.Preview(d.Text, r.opts.PreviewLength),
		Action:     d.Rule.Action.String(),
		Source:     d.Rule.Source,
		Duration:   d.Result.Duration,
		Mode:       string(d.Result.Mode),
	}
	if top, ok := d.Result.Top(); ok {
		e.Category = string(top.Category)
		e.Confidence = top.Confidence
		e.Tier = int(top.Tier)
	}
	return e
}

// Record queues the decision. It never blocks; a full queue or a closed
// recorder drops the event and returns false.
func (r *Recorder) Record(d Decision) bool {
	e := r.Build(d)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.dropped.Add(1)
		return false
	}
	select {
	case r.queue <- e:
		return true
	default:
		if r.dropped.Add(1) == 1 {
			r.log.Warn("event queue full, dropping events", "queue_size", r.opts.QueueSize)
		}
		return false
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for e := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.opts.WriteTimeout)
		err := r.sink.RecordEvent(ctx, e)
		cancel()
		if err != nil {
			r.failed.Add(1)
			r.log.Warn("event write failed", "host", e.Host, "action", e.Action, "error", err)
			continue
		}
		r.written.Add(1)
	}
}

// Close stops accepting events and waits for queued ones to be written,
// or for ctx to end.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns the counters.
func (r *Recorder) Stats() Stats {
	return Stats{Written: r.written.Load(), Dropped: r.dropped.Load(), Failed: r.failed.Load()}
}

// HashPrompt is the hex SHA-256 of the prompt text.
func HashPrompt(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
