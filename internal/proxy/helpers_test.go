package proxy

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/events"
	"github.com/ppiankov/chatwarden/internal/extract"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/sites"
)

// wordClassifier flags "forbidden" as violence and "careful" as adult.
type wordClassifier struct{}

func (wordClassifier) Classify(text string) classify.Result {
	var ms []classify.Match
	lower := strings.ToLower(text)
	if strings.Contains(lower, "forbidden") {
		ms = append(ms, classify.NewMatch(classify.Violence, 0.95, "forbidden", classify.TierKeyword))
	}
	if strings.Contains(lower, "careful") {
		ms = append(ms, classify.NewMatch(classify.Adult, 0.6, "careful", classify.TierKeyword))
	}
	return classify.NewResult(ms, time.Microsecond, classify.ModeKeywordOnly)
}

type testRules struct {
	curfew atomic.Bool
}

func (r *testRules) Evaluate(res classify.Result, _ time.Time, _ string) rules.Result {
	if r.curfew.Load() {
		return rules.Result{Action: rules.Block, Source: "time:bedtime"}
	}
	best := rules.Result{Action: rules.Allow, Source: rules.SourceNone}
	for _, m := range res.Matches {
		switch {
		case m.Category == classify.Violence:
			return rules.Result{Action: rules.Block, Source: "content:no-violence"}
		case m.Category == classify.Adult:
			best = rules.Result{Action: rules.Warn, Source: "content:adult-warn"}
		}
	}
	return best
}

type testGate struct{ off atomic.Bool }

func (g *testGate) IsFilteringEnabled() bool { return !g.off.Load() }

type testSessions struct {
	mu   sync.Mutex
	auth []string
}

func (s *testSessions) Resolve(_, proxyAuth string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = append(s.auth, proxyAuth)
	if proxyAuth != "" {
		return "kids"
	}
	return ""
}

type testRecorder struct {
	mu   sync.Mutex
	list []events.Decision
}

func (r *testRecorder) Record(d events.Decision) bool {
	r.mu.Lock()
	r.list = append(r.list, d)
	r.mu.Unlock()
	return true
}

func (r *testRecorder) decisions() []events.Decision {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Decision(nil), r.list...)
}

type harness struct {
	pipe     *Pipeline
	rules    *testRules
	gate     *testGate
	sessions *testSessions
	rec      *testRecorder
}

func newHarness() *harness {
	h := &harness{
		rules:    &testRules{},
		gate:     &testGate{},
		sessions: &testSessions{},
		rec:      &testRecorder{},
	}
	h.pipe = &Pipeline{
		Sites:      sites.NewDefault(),
		Extractor:  extract.New(),
		Classifier: wordClassifier{},
		Rules:      h.rules,
		Gate:       h.gate,
		Sessions:   h.sessions,
		Events:     h.rec,
	}
	return h
}

// dialTo ignores the requested address and connects to target.
func dialTo(target string) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, _ string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, network, target)
	}
}

// upstreamTransport sends every forwarded request to target.
func upstreamTransport(target string) *http.Transport {
	return &http.Transport{
		DialContext:     dialTo(target),
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
}

// startProxy serves s on a loopback port until the test ends.
func startProxy(t *testing.T, s *Server) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, ln) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-errCh:
		case <-time.After(5 * time.Second):
			t.Error("proxy did not shut down")
		}
	})
	return ln.Addr().String()
}

func proxyClient(addr string, tlsCfg *tls.Config) *http.Client {
	proxyURL, _ := url.Parse("http://" + addr)
	return &http.Client{
		Transport: &http.Transport{
			Proxy:             http.ProxyURL(proxyURL),
			TLSClientConfig:   tlsCfg,
			DisableKeepAlives: true,
		},
		Timeout: 10 * time.Second,
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
