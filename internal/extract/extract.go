// Package extract recovers the user's prompt text from intercepted request
// and response bodies.
//
// Extraction never fails. Malformed or unrecognized payloads lower the
// result's confidence and attach warnings; a body that is not text at all
// yields an empty result with zero confidence so the request passes through
// unclassified.
package extract

import (
	"bytes"
	"mime"
	"sort"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"
)

// Direction tells parsers whether a body was sent by the client or returned
// by the service.
type Direction int

const (
	Request Direction = iota
	Response
)

func (d Direction) String() string {
	if d == Response {
		return "response"
	}
	return "request"
}

// Context carries what is known about a body besides its bytes.
type Context struct {
	Host      string
	ParserID  string // from the destination registry; empty when unknown
	Path      string
	Direction Direction
}

// Turn is one message of a conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Warning codes attached to degraded results.
const (
	WarnNoParser       = "no_parser"
	WarnUndecodable    = "undecodable"
	WarnMalformed      = "malformed"
	WarnSniffed        = "content_type_sniffed"
	WarnGenericFields  = "generic_fields"
	WarnStringLeaves   = "string_leaves"
	WarnNoUserTurn     = "no_user_turn"
	WarnTruncatedFrame = "truncated_frame"
	WarnAttachment     = "attachment_skipped"
	WarnEmpty          = "empty"
)

// Warning describes why confidence was reduced.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the prompt recovered from one body. It is not modified after
// Extract returns.
type Result struct {
	// Text is the live prompt: the last user turn when a conversation was
	// recognized, otherwise the best text found.
	Text        string    `json:"text"`
	History     []Turn    `json:"history,omitempty"`
	Confidence  float32   `json:"confidence"`
	Warnings    []Warning `json:"warnings,omitempty"`
	IsStreaming bool      `json:"is_streaming"`
	Parser      string    `json:"parser"`
	Frames      int       `json:"frames,omitempty"`
}

// Empty reports whether no text was recovered.
func (r Result) Empty() bool { return strings.TrimSpace(r.Text) == "" }

// HasWarning reports whether a warning with the given code is attached.
func (r Result) HasWarning(code string) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// AllText joins history and the live prompt, oldest first.
func (r Result) AllText() string {
	if len(r.History) == 0 {
		return r.Text
	}
	parts := make([]string, 0, len(r.History)+1)
	for _, t := range r.History {
		if t.Text != "" {
			parts = append(parts, t.Text)
		}
	}
	if r.Text != "" {
		parts = append(parts, r.Text)
	}
	return strings.Join(parts, "\n")
}

func (r *Result) warn(code, msg string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: msg})
}

// Parser turns one payload shape into a Result.
type Parser interface {
	Name() string
	// Priority orders parsers; higher runs first.
	Priority() int
	// Applies reports whether the parser handles the media type.
	Applies(mediaType string, ctx Context) bool
	Parse(body []byte, params map[string]string, ctx Context) Result
}

// Extractor holds a priority-ordered parser table. Register is safe to call
// concurrently with Extract.
type Extractor struct {
	mu      sync.RWMutex
	parsers []Parser
}

// New returns an Extractor with the built-in parsers registered.
func New() *Extractor {
	x := &Extractor{}
	for _, p := range builtinParsers() {
		x.Register(p)
	}
	return x
}

// Register adds a parser. Among equal priorities, earlier registrations win.
func (x *Extractor) Register(p Parser) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.parsers = append(x.parsers, p)
	sort.SliceStable(x.parsers, func(i, j int) bool {
		return x.parsers[i].Priority() > x.parsers[j].Priority()
	})
}

// Parsers returns the registered parser names in dispatch order.
func (x *Extractor) Parsers() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	names := make([]string, len(x.parsers))
	for i, p := range x.parsers {
		names[i] = p.Name()
	}
	return names
}

// Extract recovers prompt text from body. It never returns an error.
func (x *Extractor) Extract(body []byte, contentType string, ctx Context) Result {
	text, ok := decodeText(body)
	if !ok {
		r := Result{Parser: "none"}
		r.warn(WarnUndecodable, "body is not decodable as text")
		return r
	}
	if len(bytes.TrimSpace(text)) == 0 {
		r := Result{Parser: "none"}
		r.warn(WarnEmpty, "body is empty")
		return r
	}

	mediaType, params := parseContentType(contentType)
	sniffed := false
	if mediaType == "" || mediaType == "text/plain" || mediaType == "application/octet-stream" {
		if looksLikeJSON(text) {
			mediaType = "application/json"
			sniffed = true
		}
	}

	x.mu.RLock()
	var chosen Parser
	for _, p := range x.parsers {
		if p.Applies(mediaType, ctx) {
			chosen = p
			break
		}
	}
	x.mu.RUnlock()

	var r Result
	if chosen == nil {
		r = rawFallback(text)
	} else {
		r = chosen.Parse(text, params, ctx)
		if r.Parser == "" {
			r.Parser = chosen.Name()
		}
	}
	if sniffed {
		r.warn(WarnSniffed, "content type missing or generic, parsed as JSON")
		r.Confidence *= 0.9
	}
	r.Confidence = clamp(r.Confidence)
	return r
}

func parseContentType(ct string) (string, map[string]string) {
	if ct == "" {
		return "", nil
	}
	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		// Keep the bare type so a bad parameter does not hide JSON.
		mt := strings.TrimSpace(strings.ToLower(strings.SplitN(ct, ";", 2)[0]))
		return mt, nil
	}
	return mediaType, params
}

func looksLikeJSON(b []byte) bool {
	t := bytes.TrimSpace(b)
	return len(t) > 1 && (t[0] == '{' || t[0] == '[')
}

// decodeText returns body as UTF-8. UTF-16 with a byte order mark is
// converted; any other invalid UTF-8 is rejected.
func decodeText(body []byte) ([]byte, bool) {
	if utf8.Valid(body) {
		return bytes.TrimPrefix(body, []byte("\xef\xbb\xbf")), true
	}
	if len(body) >= 2 && len(body)%2 == 0 {
		var le bool
		switch {
		case body[0] == 0xff && body[1] == 0xfe:
			le = true
		case body[0] == 0xfe && body[1] == 0xff:
			le = false
		default:
			return nil, false
		}
		units := make([]uint16, 0, len(body)/2-1)
		for i := 2; i+1 < len(body); i += 2 {
			if le {
				units = append(units, uint16(body[i])|uint16(body[i+1])<<8)
			} else {
				units = append(units, uint16(body[i])<<8|uint16(body[i+1]))
			}
		}
		return []byte(string(utf16.Decode(units))), true
	}
	return nil, false
}

func clamp(v float32) float32 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
