package proxy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ppiankov/chatwarden/internal/extract"
	"github.com/ppiankov/chatwarden/internal/web"
)

// ErrorType is the machine-readable type in JSON block bodies and stream
// error events.
const ErrorType = "content_blocked"

type blockBody struct {
	Error blockError `json:"error"`
}

type blockError struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	Rule     string `json:"rule"`
}

func blockMessage(v Verdict) string {
	if strings.HasPrefix(v.Decision.Source, "time:") {
		return fmt.Sprintf("%s is not available right now under this household's schedule.", v.Service)
	}
	if top, ok := v.Result.Top(); ok {
		return fmt.Sprintf("This message to %s was blocked because it looks like %s content.", v.Service, humanCategory(string(top.Category)))
	}
	return fmt.Sprintf("This message to %s was blocked by this household's safety settings.", v.Service)
}

func humanCategory(c string) string {
	return strings.ReplaceAll(c, "_", "-")
}

func newBlockError(v Verdict) blockError {
	be := blockError{Type: ErrorType, Message: blockMessage(v), Rule: v.Decision.Source}
	if top, ok := v.Result.Top(); ok {
		be.Category = string(top.Category)
	}
	return be
}

// wantsHTML reports whether the client is a browser navigating rather than
// an API client or a page script.
func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if !strings.Contains(accept, "text/html") {
		return false
	}
	mode := r.Header.Get("Sec-Fetch-Mode")
	return mode == "" || mode == "navigate"
}

// writeBlock substitutes the local block response for the upstream one.
func writeBlock(w http.ResponseWriter, r *http.Request, v Verdict) {
	h := w.Header()
	h.Set("Cache-Control", "no-store")
	h.Set("X-Chatwarden-Action", "block")

	if wantsHTML(r) {
		var buf bytes.Buffer
		info := web.BlockInfo{
			Host:    v.Host,
			Service: v.Service,
			Rule:    v.Decision.Source,
			Reason:  blockMessage(v),
		}
		if top, ok := v.Result.Top(); ok {
			info.Category = string(top.Category)
		}
		if err := web.RenderBlockPage(&buf, info); err == nil {
			h.Set("Content-Type", "text/html; charset=utf-8")
			h.Set("Content-Length", strconv.Itoa(buf.Len()))
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write(buf.Bytes())
			return
		}
	}

	body, _ := json.Marshal(blockBody{Error: newBlockError(v)})
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write(body)
}

// streamErrorEvent is appended to a stream terminated mid-flight.
func streamErrorEvent(kind extract.StreamKind, v Verdict) []byte {
	data, _ := json.Marshal(blockBody{Error: newBlockError(v)})
	if kind == extract.StreamNDJSON {
		return append(data, '\n')
	}
	return []byte("event: error\ndata: " + string(data) + "\n\n")
}
