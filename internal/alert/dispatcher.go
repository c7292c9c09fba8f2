package alert

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/ppiankov/chatwarden/internal/events"
)

// Dispatcher fans decisions out to matching webhooks. Deliveries run in
// their own goroutines and never block the request path.
type Dispatcher struct {
	configs []Config
	client  *http.Client
	log     *slog.Logger
	now     func() time.Time

	mu   sync.Mutex
	last map[string]time.Time
	wg   sync.WaitGroup
}

// NewDispatcher returns nil when there is nothing to notify; a nil
// Dispatcher is valid and drops everything.
func NewDispatcher(configs []Config, log *slog.Logger) *Dispatcher {
	if len(configs) == 0 {
		return nil
	}
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		configs: configs,
		client:  &http.Client{Timeout: requestTimeout},
		log:     log,
		now:     time.Now,
		last:    make(map[string]time.Time),
	}
}

// Notify sends an alert for d to every destination that wants its action
// and is not cooling down for the same profile, service, and rule.
func (d *Dispatcher) Notify(dec events.Decision) {
	if d == nil {
		return
	}
	action := dec.Rule.Action.String()
	if action != "block" && action != "warn" {
		return
	}
	ev := fromDecision(dec, d.now())

	for i, cfg := range d.configs {
		if !cfg.wants(action) || !d.admit(i, cfg, ev) {
			continue
		}
		d.wg.Add(1)
		go func(cfg Config) {
			defer d.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), maxRetries*(requestTimeout+maxRetries*retryBackoff))
			defer cancel()
			if err := Send(ctx, d.client, cfg, ev); err != nil {
				d.log.Warn("alert delivery failed", "url", cfg.URL, "error", err)
			}
		}(cfg)
	}
}

// Wait blocks until in-flight deliveries finish.
func (d *Dispatcher) Wait() {
	if d != nil {
		d.wg.Wait()
	}
}

func (d *Dispatcher) admit(i int, cfg Config, ev Event) bool {
	cooldown := cfg.Cooldown
	if cooldown == 0 {
		cooldown = DefaultCooldown
	}
	key := fmt.Sprintf("%d|%s|%s|%s", i, ev.Profile, ev.Service, ev.Source)
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.last[key]; ok && now.Sub(t) < cooldown {
		return false
	}
	d.last[key] = now
	return true
}

func fromDecision(dec events.Decision, now time.Time) Event {
	at := dec.At
	if at.IsZero() {
		at = now
	}
	ev := Event{
		Timestamp: at.UTC().Format(time.RFC3339),
		Service:   dec.Service,
		Host:      dec.Host,
		Profile:   dec.Profile,
		Action:    dec.Rule.Action.String(),
		Source:    dec.Rule.Source,
	}
	if top, ok := dec.Result.Top(); ok {
		ev.Category = string(top.Category)
		ev.Confidence = top.Confidence
	}
	return ev
}

// Recorder receives decisions. *events.Recorder implements it.
type Recorder interface {
	Record(d events.Decision) bool
}

// Notifier passes decisions on to the event recorder and raises alerts.
type Notifier struct {
	next Recorder
	d    *Dispatcher
}

// Wrap returns next unchanged when d is nil.
func Wrap(next Recorder, d *Dispatcher) Recorder {
	if d == nil {
		return next
	}
	return &Notifier{next: next, d: d}
}

func (n *Notifier) Record(dec events.Decision) bool {
	n.d.Notify(dec)
	return n.next.Record(dec)
}
