package proxy

import (
	"context"
	"log/slog"
	"time"

	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/events"
	"github.com/ppiankov/chatwarden/internal/extract"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/sites"
)

// Classifier scores text. *classify.Classifier implements it.
type Classifier interface {
	Classify(text string) classify.Result
}

// Evaluator turns a classification into an action. *rules.Engine
// implements it.
type Evaluator interface {
	Evaluate(res classify.Result, now time.Time, profile string) rules.Result
}

// Gate is the hot-path filtering switch. *state.Cache implements it.
type Gate interface {
	IsFilteringEnabled() bool
}

// ProfileResolver attributes a request to a profile. *session.Manager
// implements it.
type ProfileResolver interface {
	Resolve(remoteAddr, proxyAuth string) string
}

// EventRecorder receives decisions. *events.Recorder implements it.
type EventRecorder interface {
	Record(d events.Decision) bool
}

// Pipeline is the per-request inspection: registry gate, extraction,
// classification, and policy. It holds no per-request state and takes no
// locks of its own.
type Pipeline struct {
	Sites      *sites.Registry
	Extractor  *extract.Extractor
	Classifier Classifier
	Rules      Evaluator
	Gate       Gate
	Sessions   ProfileResolver
	Events     EventRecorder
	Log        *slog.Logger
	Now        func() time.Time
}

// Input is one body to inspect.
type Input struct {
	Host        string
	Path        string
	ContentType string
	Body        []byte
	RemoteAddr  string
	ProxyAuth   string
	Direction   extract.Direction
	Profile     string // set for responses, resolved for requests
}

// Verdict is the outcome of inspecting one body.
type Verdict struct {
	Host      string
	Service   string
	Profile   string
	Extracted extract.Result
	Result    classify.Result
	Decision  rules.Result
}

// Blocked reports whether the verdict stops the request.
func (v Verdict) Blocked() bool { return v.Decision.Action == rules.Block }

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Log != nil {
		return p.Log
	}
	return slog.Default()
}

// Enabled is the single atomic read made per request.
func (p *Pipeline) Enabled() bool {
	return p.Gate == nil || p.Gate.IsFilteringEnabled()
}

// Monitored reports whether host is in scope.
func (p *Pipeline) Monitored(host string) bool {
	return p.Sites.IsMonitored(host)
}

// Inspect extracts, classifies, and evaluates one body. Extraction never
// fails; an undecodable body yields an empty classification, and policy
// still runs so time rules apply.
func (p *Pipeline) Inspect(ctx context.Context, in Input) Verdict {
	entry, _ := p.Sites.Lookup(in.Host)
	v := Verdict{
		Host:    in.Host,
		Service: entry.DisplayName,
		Profile: in.Profile,
	}
	if v.Service == "" {
		v.Service = sites.UnknownService
	}
	if in.Direction == extract.Request && p.Sessions != nil {
		v.Profile = p.Sessions.Resolve(in.RemoteAddr, in.ProxyAuth)
	}

	if len(in.Body) > 0 {
		v.Extracted = p.Extractor.Extract(in.Body, in.ContentType, extract.Context{
			Host:      in.Host,
			ParserID:  entry.ParserID,
			Path:      in.Path,
			Direction: in.Direction,
		})
	}
	if v.Extracted.Empty() {
		v.Result = classify.NewResult(nil, 0, "")
	} else {
		v.Result = p.Classifier.Classify(v.Extracted.Text)
	}
	v.Decision = p.Rules.Evaluate(v.Result, p.now(), v.Profile)

	if len(v.Extracted.Warnings) > 0 {
		p.logger().Debug("extraction degraded",
			"host", in.Host, "parser", v.Extracted.Parser,
			"confidence", v.Extracted.Confidence, "warning", v.Extracted.Warnings[0].Code)
	}
	return v
}

// Classify runs classification and policy on already-extracted text. Used
// for streamed responses where text arrives frame by frame.
func (p *Pipeline) Classify(text string, host, profile string) Verdict {
	entry, _ := p.Sites.Lookup(host)
	v := Verdict{Host: host, Service: entry.DisplayName, Profile: profile}
	v.Extracted = extract.Result{Text: text, IsStreaming: true, Confidence: 1}
	v.Result = p.Classifier.Classify(text)
	v.Decision = p.Rules.Evaluate(v.Result, p.now(), profile)
	return v
}

// Record hands the verdict to the event recorder. Allows are recorded only
// when something matched.
func (p *Pipeline) Record(v Verdict) {
	if p.Events == nil {
		return
	}
	if v.Decision.Action == rules.Allow && len(v.Result.Matches) == 0 {
		return
	}
	p.Events.Record(events.Decision{
		Host:    v.Host,
		Service: v.Service,
		Profile: v.Profile,
		Text:    v.Extracted.Text,
		Result:  v.Result,
		Rule:    v.Decision,
		At:      p.now(),
	})
}
