package extract

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/url"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

func builtinParsers() []Parser {
	return []Parser{
		streamParser{name: "sse", priority: 100, kind: StreamSSE},
		streamParser{name: "ndjson", priority: 90, kind: StreamNDJSON},
		jsonParser{},
		formParser{},
		multipartParser{},
	}
}

// streamParser handles a complete SSE or NDJSON body, as seen when a
// request itself is streamed or a buffered response is re-inspected.
type streamParser struct {
	name     string
	priority int
	kind     StreamKind
}

func (p streamParser) Name() string  { return p.name }
func (p streamParser) Priority() int { return p.priority }

func (p streamParser) Applies(mediaType string, _ Context) bool {
	kind, ok := StreamKindFor(mediaType)
	return ok && kind == p.kind
}

func (p streamParser) Parse(body []byte, _ map[string]string, ctx Context) Result {
	// Streamed requests carry whole payloads per frame; responses carry
	// increments.
	if ctx.Direction == Request {
		acc := NewAccumulator(p.kind)
		frames := append(acc.Write(body), acc.Flush()...)
		for i := len(frames) - 1; i >= 0; i-- {
			if v, ok := decodeJSON([]byte(frames[i].Data)); ok {
				r := resultFromMapping(mapJSON(v, ctx.ParserID), ctx.Direction)
				r.IsStreaming = true
				r.Frames = len(frames)
				r.Parser = p.name
				return r
			}
		}
	}
	s := &Stream{acc: NewAccumulator(p.kind)}
	s.Write(body)
	r := s.Close()
	r.Parser = p.name
	return r
}

type jsonParser struct{}

func (jsonParser) Name() string  { return "json" }
func (jsonParser) Priority() int { return 80 }

func (jsonParser) Applies(mediaType string, _ Context) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") || mediaType == "text/json"
}

func (jsonParser) Parse(body []byte, _ map[string]string, ctx Context) Result {
	v, ok := decodeJSON(body)
	if !ok {
		r := rawFallback(body)
		r.Warnings = nil
		r.warn(WarnMalformed, "body declared as JSON did not parse")
		r.Confidence = 0.2
		r.Parser = "json"
		return r
	}
	return resultFromMapping(mapJSON(v, ctx.ParserID), ctx.Direction)
}

type formParser struct{}

func (formParser) Name() string  { return "form" }
func (formParser) Priority() int { return 70 }

func (formParser) Applies(mediaType string, _ Context) bool {
	return mediaType == "application/x-www-form-urlencoded"
}

func (formParser) Parse(body []byte, _ map[string]string, ctx Context) Result {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		r := rawFallback(body)
		r.warn(WarnMalformed, "form body did not parse")
		return r
	}
	return fieldsResult(values, ctx)
}

type multipartParser struct{}

func (multipartParser) Name() string  { return "multipart" }
func (multipartParser) Priority() int { return 60 }

func (multipartParser) Applies(mediaType string, _ Context) bool {
	return mediaType == "multipart/form-data"
}

func (multipartParser) Parse(body []byte, params map[string]string, ctx Context) Result {
	boundary := params["boundary"]
	if boundary == "" {
		r := rawFallback(body)
		r.warn(WarnMalformed, "multipart body without boundary")
		return r
	}
	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	values := url.Values{}
	var jsonParts []any
	skipped := 0
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}
		if part.FileName() != "" {
			skipped++
			_ = part.Close()
			continue
		}
		data, err := io.ReadAll(io.LimitReader(part, MaxFrameSize))
		_ = part.Close()
		if err != nil || !utf8.Valid(data) {
			continue
		}
		mt, _ := parseContentType(part.Header.Get("Content-Type"))
		if mt == "application/json" || looksLikeJSON(data) {
			if v, ok := decodeJSON(data); ok {
				jsonParts = append(jsonParts, v)
				continue
			}
		}
		values.Add(part.FormName(), string(data))
	}

	var r Result
	if len(jsonParts) > 0 {
		r = resultFromMapping(mapJSON(jsonParts[0], ctx.ParserID), ctx.Direction)
	} else {
		r = fieldsResult(values, ctx)
	}
	if skipped > 0 {
		r.warn(WarnAttachment, "file parts are not inspected")
	}
	return r
}

// fieldsResult picks the prompt out of flat form fields. A field holding
// JSON is mapped like a JSON body.
func fieldsResult(values url.Values, ctx Context) Result {
	for _, k := range promptKeys {
		v := strings.TrimSpace(values.Get(k))
		if v == "" {
			continue
		}
		if looksLikeJSON([]byte(v)) {
			if decoded, ok := decodeJSON([]byte(v)); ok {
				return resultFromMapping(mapJSON(decoded, ctx.ParserID), ctx.Direction)
			}
		}
		return Result{Text: v, Confidence: 0.8, Warnings: []Warning{{
			Code: WarnGenericFields, Message: "prompt taken from field " + k,
		}}}
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range values[k] {
			if looksLikeJSON([]byte(v)) {
				if decoded, ok := decodeJSON([]byte(v)); ok {
					return resultFromMapping(mapJSON(decoded, ctx.ParserID), ctx.Direction)
				}
			}
		}
	}
	all := make([]any, 0, len(values))
	for _, k := range keys {
		for _, v := range values[k] {
			all = append(all, v)
		}
	}
	return resultFromMapping(leafMapping(all), ctx.Direction)
}

// rawFallback returns the longest run of printable text in body.
func rawFallback(body []byte) Result {
	var best, cur []rune
	for _, r := range string(body) {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			cur = append(cur, r)
			continue
		}
		if len(cur) > len(best) {
			best = cur
		}
		cur = nil
	}
	if len(cur) > len(best) {
		best = cur
	}
	r := Result{Text: strings.TrimSpace(string(best)), Confidence: 0.3, Parser: "raw"}
	r.warn(WarnNoParser, "no parser for content type, using longest printable run")
	if r.Text == "" {
		r.Confidence = 0
	}
	return r
}
