package proxy

import (
	"context"
	"testing"

	"github.com/ppiankov/chatwarden/internal/extract"
	"github.com/ppiankov/chatwarden/internal/rules"
)

func TestInspectUndecodableBodyStillEvaluates(t *testing.T) {
	h := newHarness()
	v := h.pipe.Inspect(context.Background(), Input{
		Host:        "api.openai.com",
		ContentType: "application/octet-stream",
		Body:        []byte{0xff, 0xfe, 0x00, 0x01, 0x02},
		Direction:   extract.Request,
	})
	if len(v.Result.Matches) != 0 || v.Decision.Action != rules.Allow {
		t.Errorf("verdict = %+v", v)
	}

	h.rules.curfew.Store(true)
	v = h.pipe.Inspect(context.Background(), Input{Host: "api.openai.com", Direction: extract.Request})
	if !v.Blocked() {
		t.Error("time rule ignored for empty body")
	}
}

func TestInspectResolvesProfileForRequestsOnly(t *testing.T) {
	h := newHarness()
	v := h.pipe.Inspect(context.Background(), Input{Host: "claude.ai", ProxyAuth: "Basic eDp5", Direction: extract.Request})
	if v.Profile != "kids" || v.Service != "Claude" {
		t.Errorf("request verdict = %+v", v)
	}
	v = h.pipe.Inspect(context.Background(), Input{Host: "claude.ai", ProxyAuth: "Basic eDp5", Direction: extract.Response, Profile: "teen"})
	if v.Profile != "teen" {
		t.Errorf("response profile = %q", v.Profile)
	}
}

func TestRecordSkipsCleanAllow(t *testing.T) {
	h := newHarness()
	h.pipe.Record(h.pipe.Classify("hello", "claude.ai", ""))
	if len(h.rec.decisions()) != 0 {
		t.Error("clean allow recorded")
	}
	h.pipe.Record(h.pipe.Classify("forbidden", "claude.ai", ""))
	if len(h.rec.decisions()) != 1 {
		t.Error("block not recorded")
	}
}
