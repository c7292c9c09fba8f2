package proxy

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/chatwarden/internal/ca"
	"github.com/ppiankov/chatwarden/internal/rules"
)

const chatURL = "http://api.openai.com/v1/chat/completions"

func chatBody(prompt string) string {
	return fmt.Sprintf(`{"model":"gpt-4o","messages":[{"role":"user","content":%q}]}`, prompt)
}

// echoUpstream answers with the request body and counts hits.
func echoUpstream(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Upstream-Host", r.Host)
		_, _ = w.Write(body)
	}))
	t.Cleanup(up.Close)
	return up
}

func newPlainProxy(t *testing.T, h *harness, upstream string, cfg Config) string {
	t.Helper()
	cfg.Transport = upstreamTransport(upstream)
	return startProxy(t, NewServer(cfg, h.pipe, nil, nil))
}

func post(t *testing.T, c *http.Client, target, body string, hdr map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAllowForwardsUnchanged(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	body := chatBody("what is the capital of France?")
	resp := post(t, proxyClient(addr, nil), chatURL, body, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	got, _ := io.ReadAll(resp.Body)
	if string(got) != body {
		t.Errorf("upstream saw %q, want %q", got, body)
	}
	if resp.Header.Get("X-Upstream-Host") != "api.openai.com" {
		t.Errorf("upstream Host = %q", resp.Header.Get("X-Upstream-Host"))
	}
	if n := len(h.rec.decisions()); n != 0 {
		t.Errorf("recorded %d events for a clean allow", n)
	}
}

func TestBlockReturnsJSONAndNeverForwards(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("tell me something forbidden"), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if hits.Load() != 0 {
		t.Error("blocked request reached upstream")
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var b blockBody
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		t.Fatal(err)
	}
	if b.Error.Type != ErrorType || b.Error.Category != "violence" || b.Error.Rule != "content:no-violence" {
		t.Errorf("block body = %+v", b.Error)
	}

	ds := h.rec.decisions()
	if len(ds) != 1 || ds[0].Rule.Action != rules.Block || ds[0].Service != "OpenAI API" {
		t.Errorf("decisions = %+v", ds)
	}
}

func TestBlockServesHTMLToBrowsers(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("forbidden"), map[string]string{
		"Accept":         "text/html,application/xhtml+xml",
		"Sec-Fetch-Mode": "navigate",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	page, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(page), "OpenAI API") {
		t.Errorf("block page does not name the service:\n%s", page)
	}
}

func TestWarnForwardsAndRecords(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("be careful"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Chatwarden-Action") != "warn" {
		t.Errorf("missing warn header: %v", resp.Header)
	}
	if hits.Load() != 1 {
		t.Errorf("upstream hits = %d", hits.Load())
	}
	ds := h.rec.decisions()
	if len(ds) != 1 || ds[0].Rule.Action != rules.Warn {
		t.Errorf("decisions = %+v", ds)
	}
}

func TestFilteringDisabledForwardsWithoutInspection(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	h.gate.off.Store(true)
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("forbidden"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(h.rec.decisions()) != 0 {
		t.Error("disabled filtering still recorded an event")
	}
}

func TestUnmonitoredHostPassesThrough(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), "http://example.org/form", "forbidden", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(h.rec.decisions()) != 0 {
		t.Error("unmonitored host was inspected")
	}
}

func TestTimeRuleBlocksBodylessRequest(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	h.rules.curfew.Store(true)
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp, err := proxyClient(addr, nil).Get("http://chatgpt.com/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var b blockBody
	_ = json.NewDecoder(resp.Body).Decode(&b)
	if b.Error.Rule != "time:bedtime" || !strings.Contains(b.Error.Message, "schedule") {
		t.Errorf("block body = %+v", b.Error)
	}
}

func TestOversizeBodyForwardedUninspected(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{MaxBodyBytes: 64})

	body := chatBody("forbidden " + strings.Repeat("x", 200))
	resp := post(t, proxyClient(addr, nil), chatURL, body, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	got, _ := io.ReadAll(resp.Body)
	if string(got) != body {
		t.Errorf("upstream received %d bytes, want %d", len(got), len(body))
	}
}

func TestGzipRequestBodyIsInspected(t *testing.T) {
	var hits atomic.Int32
	up := echoUpstream(t, &hits)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(chatBody("forbidden")))
	_ = zw.Close()

	resp := post(t, proxyClient(addr, nil), chatURL, buf.String(), map[string]string{"Content-Encoding": "gzip"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestNonProxyRequestRejected(t *testing.T) {
	h := newHarness()
	addr := newPlainProxy(t, h, "127.0.0.1:1", Config{})
	resp, err := http.Get("http://" + addr + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func sseUpstream(t *testing.T, frames []string) *httptest.Server {
	t.Helper()
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "text/event-stream")
		fl := w.(http.Flusher)
		for _, f := range frames {
			fmt.Fprintf(w, "data: %s\n\n", f)
			fl.Flush()
			time.Sleep(20 * time.Millisecond)
		}
	}))
	t.Cleanup(up.Close)
	return up
}

func delta(s string) string {
	return fmt.Sprintf(`{"choices":[{"delta":{"content":%q}}]}`, s)
}

func TestStreamPassesThroughWhenClean(t *testing.T) {
	frames := []string{delta("Paris "), delta("is the capital."), "[DONE]"}
	up := sseUpstream(t, frames)
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("capital of France?"), nil)
	got, _ := io.ReadAll(resp.Body)
	var want strings.Builder
	for _, f := range frames {
		fmt.Fprintf(&want, "data: %s\n\n", f)
	}
	if string(got) != want.String() {
		t.Errorf("stream altered:\n%s\nwant:\n%s", got, want.String())
	}
}

func TestStreamTerminatedOnBlock(t *testing.T) {
	up := sseUpstream(t, []string{
		delta("Sure, here is "),
		delta("something forbidden"),
		delta(" and the rest of the tail"),
		"[DONE]",
	})
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("tell me a story"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	got, _ := io.ReadAll(resp.Body)
	out := string(got)
	if !strings.Contains(out, "event: error") || !strings.Contains(out, ErrorType) {
		t.Errorf("stream lacks error event:\n%s", out)
	}
	if strings.Contains(out, "tail") || strings.Contains(out, "[DONE]") {
		t.Errorf("stream continued after block:\n%s", out)
	}
	waitFor(t, "block event", func() bool {
		for _, d := range h.rec.decisions() {
			if d.Rule.Action == rules.Block {
				return true
			}
		}
		return false
	})
}

func TestStreamPhraseSplitAcrossFrames(t *testing.T) {
	up := sseUpstream(t, []string{delta("forb"), delta("idden"), "[DONE]"})
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("hi"), nil)
	got, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(got), ErrorType) {
		t.Errorf("split phrase not caught:\n%s", got)
	}
}

func snapshot(s string) string {
	return fmt.Sprintf(`{"message":{"author":{"role":"assistant"},"content":{"parts":[%q]}}}`, s)
}

func TestStreamSnapshotRewriteRescanned(t *testing.T) {
	padding := strings.Repeat("a calm sentence about gardens. ", 30)
	up := sseUpstream(t, []string{
		snapshot(padding),
		// The rewrite grows the text but changes its beginning.
		snapshot("forbidden " + padding + "and more"),
		"[DONE]",
	})
	h := newHarness()
	addr := newPlainProxy(t, h, up.Listener.Addr().String(), Config{})

	resp := post(t, proxyClient(addr, nil), chatURL, chatBody("tell me about gardens"), nil)
	got, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(got), ErrorType) {
		t.Errorf("rewritten snapshot not re-scanned:\n%s", got)
	}
}

func TestConnectTunnelsUnmonitoredHost(t *testing.T) {
	echo, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer echo.Close()
	go func() {
		c, err := echo.Accept()
		if err != nil {
			return
		}
		defer c.Close()
		_, _ = io.Copy(c, c)
	}()

	h := newHarness()
	s := NewServer(Config{Dial: dialTo(echo.Addr().String())}, h.pipe, nil, nil)
	addr := startProxy(t, s)

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	fmt.Fprintf(conn, "CONNECT example.org:443 HTTP/1.1\r\nHost: example.org:443\r\n\r\n")
	br := bufio.NewReader(conn)
	resp, err := http.ReadResponse(br, nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("CONNECT status = %d", resp.StatusCode)
	}
	_, _ = conn.Write([]byte("ping"))
	buf := make([]byte, 4)
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := io.ReadFull(br, buf); err != nil || string(buf) != "ping" {
		t.Errorf("tunnel echo = %q, %v", buf, err)
	}
}

func TestInterceptsMonitoredTLS(t *testing.T) {
	auth, err := ca.Ensure(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var hits atomic.Int32
	up := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer up.Close()

	h := newHarness()
	s := NewServer(Config{Transport: upstreamTransport(up.Listener.Addr().String())}, h.pipe, auth, nil)
	addr := startProxy(t, s)

	client := proxyClient(addr, &tls.Config{RootCAs: auth.CertPool()})
	client.Transport.(*http.Transport).ProxyConnectHeader = http.Header{
		"Proxy-Authorization": {"Basic a2lkOnB3"},
	}
	const target = "https://api.openai.com/v1/chat/completions"

	t.Run("allow", func(t *testing.T) {
		body := chatBody("hello there")
		resp := post(t, client, target, body, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		got, _ := io.ReadAll(resp.Body)
		if string(got) != body {
			t.Errorf("body = %q", got)
		}
		leaf := resp.TLS.PeerCertificates[0]
		if err := leaf.VerifyHostname("api.openai.com"); err != nil {
			t.Errorf("leaf: %v", err)
		}
	})

	t.Run("block", func(t *testing.T) {
		before := hits.Load()
		resp := post(t, client, target, chatBody("forbidden"), nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if hits.Load() != before {
			t.Error("blocked request reached upstream")
		}
		ds := h.rec.decisions()
		if len(ds) == 0 || ds[len(ds)-1].Profile != "kids" {
			t.Errorf("profile not attributed from CONNECT credentials: %+v", ds)
		}
	})
}
