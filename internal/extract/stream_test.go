package extract

import (
	"strings"
	"testing"
)

func TestAccumulatorEventSplitAcrossChunks(t *testing.T) {
	chunks := []string{
		"data: {\"prompt\": \"hel",
		"lo wor",
		"ld\"}\n\n",
	}
	acc := NewAccumulator(StreamSSE)
	var frames []Frame
	for i, c := range chunks {
		got := acc.Write([]byte(c))
		if i < len(chunks)-1 && len(got) != 0 {
			t.Fatalf("chunk %d emitted %d frames before the event was complete", i, len(got))
		}
		frames = append(frames, got...)
	}
	frames = append(frames, acc.Flush()...)
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	if frames[0].Data != `{"prompt": "hello world"}` {
		t.Errorf("Data = %q", frames[0].Data)
	}
}

func TestAccumulatorSSERules(t *testing.T) {
	stream := ": keep-alive comment\r\n" +
		"event: delta\r\n" +
		"id: 7\r\n" +
		"data: line one\r\n" +
		"data:line two\r\n" +
		"\r\n" +
		"event: empty\n" +
		"\n" +
		"data: second\n\n"

	acc := NewAccumulator(StreamSSE)
	frames := acc.Write([]byte(stream))
	if len(frames) != 2 {
		t.Fatalf("frames = %+v, want 2", frames)
	}
	if frames[0].Event != "delta" || frames[0].ID != "7" || frames[0].Data != "line one\nline two" {
		t.Errorf("frame 0 = %+v", frames[0])
	}
	// The id persists across events; the event type does not.
	if frames[1].Event != "" || frames[1].ID != "7" || frames[1].Data != "second" {
		t.Errorf("frame 1 = %+v", frames[1])
	}
}

func TestAccumulatorByteAtATime(t *testing.T) {
	stream := "data: {\"a\":1}\n\ndata: {\"b\":2}\n\n"
	acc := NewAccumulator(StreamSSE)
	n := 0
	for i := 0; i < len(stream); i++ {
		n += len(acc.Write([]byte{stream[i]}))
	}
	if n != 2 {
		t.Errorf("frames = %d, want 2", n)
	}
}

func TestAccumulatorSSEDiscardsIncompleteAtEOF(t *testing.T) {
	acc := NewAccumulator(StreamSSE)
	if f := acc.Write([]byte("data: partial")); len(f) != 0 {
		t.Fatal("partial event emitted")
	}
	if f := acc.Flush(); len(f) != 0 {
		t.Errorf("Flush = %+v, want none", f)
	}
	if acc.Buffered() != 0 {
		t.Errorf("Buffered = %d after flush", acc.Buffered())
	}
}

func TestAccumulatorNDJSON(t *testing.T) {
	acc := NewAccumulator(StreamNDJSON)
	frames := acc.Write([]byte("{\"response\":\"a\"}\n\n{\"resp"))
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	frames = acc.Write([]byte("onse\":\"b\"}"))
	if len(frames) != 0 {
		t.Fatal("unterminated line emitted early")
	}
	frames = acc.Flush()
	if len(frames) != 1 || frames[0].Data != `{"response":"b"}` {
		t.Errorf("Flush = %+v", frames)
	}
}

func TestAccumulatorOversizedFrame(t *testing.T) {
	acc := NewAccumulator(StreamNDJSON)
	acc.maxFrame = 16
	frames := acc.Write([]byte(strings.Repeat("x", 40) + "\n{\"ok\":1}\n"))
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(frames))
	}
	if !frames[0].Truncated || len(frames[0].Data) != 16 {
		t.Errorf("oversized frame = %+v", frames[0])
	}
	if frames[1].Truncated || frames[1].Data != `{"ok":1}` {
		t.Errorf("next frame = %+v", frames[1])
	}
}

func TestStreamAnthropicDeltas(t *testing.T) {
	events := []string{
		"event: message_start\ndata: {\"type\":\"message_start\",\"message\":{\"id\":\"m\",\"content\":[]}}\n\n",
		"event: content_block_delta\ndata: {\"type\":\"content_block_delta\",\"index\":0,\"delta\":{\"type\":\"text_delta\",\"text\":\"Sure, \"}}\n\n",
		"event: ping\ndata: {\"type\":\"ping\"}\n\n",
		"event: content_block_delta\ndata: {\"type\":\"content_block_delta\",\"index\":0,\"delta\":{\"type\":\"text_delta\",\"text\":\"here.\"}}\n\n",
		"event: message_stop\ndata: {\"type\":\"message_stop\"}\n\n",
	}
	s, ok := NewStream("text/event-stream; charset=utf-8")
	if !ok {
		t.Fatal("event-stream not recognized")
	}
	for _, e := range events {
		// Split each event mid-way to exercise buffering.
		mid := len(e) / 2
		s.Write([]byte(e[:mid]))
		s.Write([]byte(e[mid:]))
	}
	r := s.Close()
	if r.Text != "Sure, here." {
		t.Errorf("Text = %q", r.Text)
	}
	if r.Confidence != 1.0 || r.Frames != 5 {
		t.Errorf("confidence %v frames %d", r.Confidence, r.Frames)
	}
}

func TestStreamSnapshotsReplace(t *testing.T) {
	s, _ := NewStream("text/event-stream")
	s.Write([]byte(`data: {"message":{"author":{"role":"assistant"},"content":{"parts":["Hel"]}}}` + "\n\n"))
	s.Write([]byte(`data: {"message":{"author":{"role":"assistant"},"content":{"parts":["Hello there"]}}}` + "\n\n"))
	if got := s.Text(); got != "Hello there" {
		t.Errorf("Text = %q", got)
	}
	if s.Snapshots() != 2 {
		t.Errorf("Snapshots = %d, want 2", s.Snapshots())
	}
}

func TestStreamMalformedFramesLowerConfidence(t *testing.T) {
	s, _ := NewStream("text/event-stream")
	s.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\n\ndata: not json\n\n"))
	r := s.Close()
	if r.Confidence != 0.5 || !r.HasWarning(WarnMalformed) {
		t.Errorf("got %+v", r)
	}
}

func TestStreamKindFor(t *testing.T) {
	for ct, want := range map[string]bool{
		"text/event-stream":                true,
		"text/event-stream; charset=utf-8": true,
		"application/x-ndjson":             true,
		"application/json":                 false,
		"":                                 false,
	} {
		if _, got := StreamKindFor(ct); got != want {
			t.Errorf("StreamKindFor(%q) = %v, want %v", ct, got, want)
		}
	}
}
