package extract

import (
	"bytes"
	"strings"
)

// MaxFrameSize bounds a single buffered frame. Larger frames are cut and
// flagged so a hostile stream cannot grow memory without limit.
const MaxFrameSize = 1 << 20

// StreamKind selects the framing an Accumulator understands.
type StreamKind int

const (
	StreamSSE StreamKind = iota
	StreamNDJSON
)

// StreamKindFor maps a content type to a framing, if it is a stream.
func StreamKindFor(contentType string) (StreamKind, bool) {
	mt, _ := parseContentType(contentType)
	switch mt {
	case "text/event-stream":
		return StreamSSE, true
	case "application/x-ndjson", "application/jsonl", "application/json-seq", "application/jsonlines":
		return StreamNDJSON, true
	}
	return 0, false
}

// Frame is one structurally complete stream unit: an SSE event or an
// NDJSON line.
type Frame struct {
	Event     string
	ID        string
	Data      string
	Truncated bool
}

// Done reports whether the frame is the OpenAI end-of-stream sentinel.
func (f Frame) Done() bool { return strings.TrimSpace(f.Data) == "[DONE]" }

// Accumulator buffers stream bytes across network deliveries and emits
// frames only once they are complete. Not safe for concurrent use; each
// response stream owns one.
type Accumulator struct {
	kind     StreamKind
	maxFrame int
	buf      []byte
	skipping bool // discarding an oversized line until its terminator

	// SSE event under construction.
	data      []string
	dataLen   int
	event     string
	id        string
	truncated bool
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator(kind StreamKind) *Accumulator {
	return &Accumulator{kind: kind, maxFrame: MaxFrameSize}
}

// Buffered returns the number of bytes held for an incomplete frame.
func (a *Accumulator) Buffered() int { return len(a.buf) + a.dataLen }

// Write consumes chunk and returns the frames it completed.
func (a *Accumulator) Write(chunk []byte) []Frame {
	var frames []Frame
	for len(chunk) > 0 {
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			a.appendPartial(chunk)
			break
		}
		a.appendPartial(chunk[:i])
		chunk = chunk[i+1:]

		line := a.buf
		a.buf = a.buf[:0]
		wasSkipping := a.skipping
		a.skipping = false
		line = bytes.TrimSuffix(line, []byte("\r"))
		if f, ok := a.line(string(line), wasSkipping); ok {
			frames = append(frames, f)
		}
	}
	return frames
}

// Flush ends the stream. A trailing NDJSON line without a newline is
// complete at EOF; an SSE event without its blank line is discarded.
func (a *Accumulator) Flush() []Frame {
	defer a.reset()
	if a.kind != StreamNDJSON {
		return nil
	}
	line := strings.TrimSpace(string(bytes.TrimSuffix(a.buf, []byte("\r"))))
	if line == "" {
		return nil
	}
	return []Frame{{Data: line, Truncated: a.skipping}}
}

func (a *Accumulator) reset() {
	a.buf = a.buf[:0]
	a.skipping = false
	a.data = nil
	a.dataLen = 0
	a.event = ""
	a.id = ""
	a.truncated = false
}

func (a *Accumulator) appendPartial(b []byte) {
	if a.skipping {
		return
	}
	if len(a.buf)+len(b) > a.maxFrame {
		room := a.maxFrame - len(a.buf)
		if room > 0 {
			a.buf = append(a.buf, b[:room]...)
		}
		a.skipping = true
		return
	}
	a.buf = append(a.buf, b...)
}

func (a *Accumulator) line(line string, truncated bool) (Frame, bool) {
	if a.kind == StreamNDJSON {
		// json-seq records start with an RS byte.
		line = strings.TrimSpace(strings.TrimPrefix(line, "\x1e"))
		if line == "" {
			return Frame{}, false
		}
		return Frame{Data: line, Truncated: truncated}, true
	}

	if truncated {
		a.truncated = true
	}
	if line == "" {
		if len(a.data) == 0 {
			// An event with no data is not dispatched. The id persists.
			a.event, a.truncated = "", false
			return Frame{}, false
		}
		f := Frame{Event: a.event, ID: a.id, Data: strings.Join(a.data, "\n"), Truncated: a.truncated}
		a.data = nil
		a.dataLen = 0
		a.event, a.truncated = "", false
		return f, true
	}
	if line[0] == ':' {
		return Frame{}, false
	}

	field, value := line, ""
	if i := strings.IndexByte(line, ':'); i >= 0 {
		field, value = line[:i], line[i+1:]
		value = strings.TrimPrefix(value, " ")
	}
	switch field {
	case "data":
		if a.dataLen+len(value) > a.maxFrame {
			a.truncated = true
			return Frame{}, false
		}
		a.data = append(a.data, value)
		a.dataLen += len(value) + 1
	case "event":
		a.event = value
	case "id":
		if !strings.ContainsRune(value, 0) {
			a.id = value
		}
	}
	return Frame{}, false
}

// FrameText recovers the text one frame carries. snapshot is true when the
// frame holds the whole message so far rather than an increment. decoded is
// false when the frame data is not JSON; control frames (pings, message
// start and stop) decode but carry no text.
func FrameText(f Frame) (text string, snapshot, decoded bool) {
	if f.Done() || strings.TrimSpace(f.Data) == "" {
		return "", false, true
	}
	v, ok := decodeJSON([]byte(f.Data))
	if !ok {
		return "", false, false
	}
	if s, ok := deltaText(v); ok {
		return s, false, true
	}
	if s, ok := snapshotText(v); ok {
		return s, true, true
	}
	return "", false, true
}

// Stream extracts text incrementally from one streamed body.
type Stream struct {
	acc      *Accumulator
	text     strings.Builder
	snapshot  string
	snapshots int
	frames    int
	bad       int
	warnings  []Warning
}

// NewStream starts incremental extraction for a streaming content type.
func NewStream(contentType string) (*Stream, bool) {
	kind, ok := StreamKindFor(contentType)
	if !ok {
		return nil, false
	}
	return &Stream{acc: NewAccumulator(kind)}, true
}

// Write consumes chunk and returns the number of frames it completed.
func (s *Stream) Write(chunk []byte) int {
	frames := s.acc.Write(chunk)
	s.consume(frames)
	return len(frames)
}

// Close flushes the accumulator and returns the final result.
func (s *Stream) Close() Result {
	s.consume(s.acc.Flush())
	return s.Result()
}

// Text returns everything recovered so far.
func (s *Stream) Text() string {
	if s.text.Len() == 0 {
		return s.snapshot
	}
	if s.snapshot == "" {
		return s.text.String()
	}
	return s.snapshot + s.text.String()
}

// Snapshots counts snapshot frames consumed so far. Each one may have
// rewritten text that was already seen.
func (s *Stream) Snapshots() int { return s.snapshots }

// Result summarizes the stream so far.
func (s *Stream) Result() Result {
	r := Result{
		Text:        s.Text(),
		IsStreaming: true,
		Parser:      "stream",
		Frames:      s.frames,
		Warnings:    append([]Warning(nil), s.warnings...),
		Confidence:  1.0,
	}
	if s.frames > 0 && s.bad > 0 {
		r.Confidence = float32(s.frames-s.bad) / float32(s.frames)
		r.warn(WarnMalformed, "some frames were not valid JSON")
	}
	if r.Text == "" {
		r.Confidence = 0
	}
	return r
}

func (s *Stream) consume(frames []Frame) {
	for _, f := range frames {
		if f.Done() {
			continue
		}
		s.frames++
		if f.Truncated {
			s.warnings = append(s.warnings, Warning{Code: WarnTruncatedFrame, Message: "frame exceeded size limit"})
		}
		text, snapshot, decoded := FrameText(f)
		if !decoded {
			s.bad++
			continue
		}
		if snapshot {
			s.snapshot = text
			s.snapshots++
			s.text.Reset()
			continue
		}
		s.text.WriteString(text)
	}
}
