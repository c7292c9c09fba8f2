package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeCA struct{}

func (fakeCA) RootPEM() []byte     { return []byte("-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n") }
func (fakeCA) RootDER() []byte     { return []byte{0x30, 0x82, 0x01} }
func (fakeCA) Fingerprint() string { return "AA:BB" }

func newTestServer(st Status) *httptest.Server {
	s := NewServer("127.0.0.1:0", fakeCA{}, func(context.Context) Status { return st },
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return httptest.NewServer(s.Routes())
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestCertificateDownloads(t *testing.T) {
	ts := newTestServer(Status{OK: true})
	defer ts.Close()

	resp, body := get(t, ts.URL+"/ca.der")
	if ct := resp.Header.Get("Content-Type"); ct != "application/x-x509-ca-cert" {
		t.Errorf("der content type = %q", ct)
	}
	if !bytes.Equal(body, fakeCA{}.RootDER()) {
		t.Errorf("der body = %x", body)
	}

	resp, body = get(t, ts.URL+"/ca.pem")
	if !strings.Contains(string(body), "BEGIN CERTIFICATE") {
		t.Errorf("pem body = %q", body)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing security headers")
	}
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		code int
	}{
		{"ok", Status{OK: true, Filtering: "active", ClassifierMode: "keyword-only"}, http.StatusOK},
		{"down", Status{OK: false, Error: "database unreachable"}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(tt.st)
			defer ts.Close()
			resp, body := get(t, ts.URL+"/healthz")
			if resp.StatusCode != tt.code {
				t.Errorf("status = %d", resp.StatusCode)
			}
			var got Status
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatal(err)
			}
			if got != tt.st {
				t.Errorf("body = %+v", got)
			}
		})
	}
}

func TestIndexShowsFingerprintAndState(t *testing.T) {
	ts := newTestServer(Status{OK: true, Filtering: "paused", ProxyAddr: "192.168.1.2:8080"})
	defer ts.Close()
	_, body := get(t, ts.URL+"/")
	for _, want := range []string{"AA:BB", "paused", "192.168.1.2:8080"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestRenderBlockPageEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBlockPage(&buf, BlockInfo{
		Host:      "chatgpt.com",
		Service:   "<script>alert(1)</script>",
		Category:  "violence",
		Rule:      "content:block-violence",
		Timestamp: time.Date(2024, 1, 1, 21, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Error("service name not escaped")
	}
	for _, want := range []string{"violence", "content:block-violence", "Mon 21:30", "safety settings"} {
		if !strings.Contains(out, want) {
			t.Errorf("block page missing %q", want)
		}
	}
}

func TestBlockedPreview(t *testing.T) {
	ts := newTestServer(Status{OK: true})
	defer ts.Close()
	resp, body := get(t, ts.URL+"/blocked?category=hate")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "hate") {
		t.Errorf("preview = %d %s", resp.StatusCode, body)
	}
}
