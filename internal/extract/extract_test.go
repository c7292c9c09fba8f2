package extract

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractOpenAIMessages(t *testing.T) {
	body := `{"model":"gpt-4o","messages":[
		{"role":"system","content":"You are helpful."},
		{"role":"user","content":"first question"},
		{"role":"assistant","content":"first answer"},
		{"role":"user","content":[{"type":"text","text":"second"},{"type":"image_url","image_url":{"url":"x"}},{"type":"text","text":"question"}]}
	]}`
	r := New().Extract([]byte(body), "application/json", Context{ParserID: "openai"})

	if r.Text != "second\nquestion" {
		t.Errorf("Text = %q", r.Text)
	}
	want := []Turn{
		{Role: "system", Text: "You are helpful."},
		{Role: "user", Text: "first question"},
		{Role: "assistant", Text: "first answer"},
	}
	if diff := cmp.Diff(want, r.History); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
	if r.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", r.Confidence)
	}
	if r.Parser != "json" {
		t.Errorf("Parser = %q", r.Parser)
	}
}

func TestExtractKnownShapes(t *testing.T) {
	tests := []struct {
		name     string
		parserID string
		body     string
		text     string
		history  int
	}{
		{
			name:     "anthropic with system",
			parserID: "anthropic",
			body:     `{"system":"be brief","messages":[{"role":"user","content":"hello claude"}]}`,
			text:     "hello claude",
			history:  1,
		},
		{
			name:     "anthropic system blocks",
			parserID: "anthropic",
			body:     `{"system":[{"type":"text","text":"rules"}],"messages":[{"role":"user","content":[{"type":"text","text":"hi"}]}]}`,
			text:     "hi",
			history:  1,
		},
		{
			name:     "gemini",
			parserID: "gemini",
			body:     `{"contents":[{"role":"user","parts":[{"text":"old"}]},{"role":"model","parts":[{"text":"reply"}]},{"role":"user","parts":[{"text":"new prompt"}]}]}`,
			text:     "new prompt",
			history:  2,
		},
		{
			name:     "chatgpt web",
			parserID: "chatgpt-web",
			body:     `{"action":"next","messages":[{"id":"a","author":{"role":"user"},"content":{"content_type":"text","parts":["web prompt"]}}],"model":"auto"}`,
			text:     "web prompt",
		},
		{
			name: "shape found without parser hint",
			body: `{"messages":[{"role":"user","content":"no hint"}]}`,
			text: "no hint",
		},
	}
	x := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := x.Extract([]byte(tt.body), "application/json; charset=utf-8", Context{ParserID: tt.parserID})
			if r.Text != tt.text {
				t.Errorf("Text = %q, want %q", r.Text, tt.text)
			}
			if len(r.History) != tt.history {
				t.Errorf("History = %+v, want %d turns", r.History, tt.history)
			}
			if r.Confidence != 1.0 {
				t.Errorf("Confidence = %v, want 1.0", r.Confidence)
			}
		})
	}
}

func TestExtractGenericFieldsAndLeaves(t *testing.T) {
	x := New()

	r := x.Extract([]byte(`{"q":"search this","page":2}`), "application/json", Context{})
	if r.Text != "search this" || r.Confidence != 0.8 || !r.HasWarning(WarnGenericFields) {
		t.Errorf("generic key: %+v", r)
	}

	r = x.Extract([]byte(`{"q":"search this"}`), "application/json", Context{ParserID: "prompt"})
	if r.Confidence != 1.0 {
		t.Errorf("prompt parser id confidence = %v, want 1.0", r.Confidence)
	}

	r = x.Extract([]byte(`{"payload":{"b":"beta","a":"alpha"},"n":1}`), "application/json", Context{})
	if r.Text != "alpha\nbeta" || r.Confidence != 0.5 || !r.HasWarning(WarnStringLeaves) {
		t.Errorf("string leaves: %+v", r)
	}
}

func TestExtractMalformedJSONNeverFails(t *testing.T) {
	r := New().Extract([]byte(`{"messages": [ {"role": "user", "content": "unterminated`), "application/json", Context{})
	if !r.HasWarning(WarnMalformed) {
		t.Errorf("warnings = %+v, want malformed", r.Warnings)
	}
	if r.Confidence >= 0.3 {
		t.Errorf("confidence = %v, want degraded", r.Confidence)
	}
}

func TestExtractRawFallback(t *testing.T) {
	body := []byte("\x01\x02short\x00a much longer printable run of text\x03")
	r := New().Extract(body, "application/x-custom", Context{})
	if r.Text != "a much longer printable run of text" {
		t.Errorf("Text = %q", r.Text)
	}
	if r.Confidence != 0.3 || !r.HasWarning(WarnNoParser) {
		t.Errorf("got confidence %v warnings %+v", r.Confidence, r.Warnings)
	}
}

func TestExtractUndecodable(t *testing.T) {
	r := New().Extract([]byte{0xff, 0xfe, 0xfd, 0x80, 0x81}, "application/octet-stream", Context{})
	if r.Text != "" || r.Confidence != 0 || !r.HasWarning(WarnUndecodable) {
		t.Errorf("got %+v", r)
	}
}

func TestExtractUTF16(t *testing.T) {
	// UTF-16LE with BOM: {"prompt":"hi"}
	src := `{"prompt":"hi"}`
	body := []byte{0xff, 0xfe}
	for _, c := range src {
		body = append(body, byte(c), 0)
	}
	r := New().Extract(body, "application/json", Context{})
	if r.Text != "hi" {
		t.Errorf("Text = %q", r.Text)
	}
}

func TestExtractSniffsJSON(t *testing.T) {
	r := New().Extract([]byte(`{"prompt":"sniffed"}`), "", Context{})
	if r.Text != "sniffed" || !r.HasWarning(WarnSniffed) {
		t.Errorf("got %+v", r)
	}
}

func TestExtractForm(t *testing.T) {
	r := New().Extract([]byte("q=how+are+you&lang=en"), "application/x-www-form-urlencoded", Context{})
	if r.Text != "how are you" {
		t.Errorf("Text = %q", r.Text)
	}

	r = New().Extract([]byte(`data=%7B%22messages%22%3A%5B%7B%22role%22%3A%22user%22%2C%22content%22%3A%22nested%22%7D%5D%7D`),
		"application/x-www-form-urlencoded", Context{})
	if r.Text != "nested" {
		t.Errorf("JSON in form field: Text = %q", r.Text)
	}
}

func TestExtractMultipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("prompt", "describe this picture")
	fw, _ := w.CreateFormFile("file", "cat.png")
	_, _ = fw.Write([]byte{0x89, 'P', 'N', 'G'})
	_ = w.Close()

	r := New().Extract(buf.Bytes(), w.FormDataContentType(), Context{})
	if r.Text != "describe this picture" {
		t.Errorf("Text = %q", r.Text)
	}
	if !r.HasWarning(WarnAttachment) {
		t.Errorf("warnings = %+v, want attachment_skipped", r.Warnings)
	}
}

func TestExtractSSEResponseBody(t *testing.T) {
	body := "data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n" +
		"data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n" +
		"data: [DONE]\n\n"
	r := New().Extract([]byte(body), "text/event-stream", Context{Direction: Response})
	if r.Text != "Hello" || !r.IsStreaming || r.Frames != 2 {
		t.Errorf("got %+v", r)
	}
}

type fixedParser struct{}

func (fixedParser) Name() string                      { return "fixed" }
func (fixedParser) Priority() int                     { return 1000 }
func (fixedParser) Applies(mt string, _ Context) bool { return mt == "application/json" }
func (fixedParser) Parse([]byte, map[string]string, Context) Result {
	return Result{Text: "from plugin", Confidence: 1}
}

func TestRegisterHigherPriorityWins(t *testing.T) {
	x := New()
	x.Register(fixedParser{})
	if got := x.Parsers()[0]; got != "fixed" {
		t.Fatalf("first parser = %q", got)
	}
	r := x.Extract([]byte(`{"prompt":"ignored"}`), "application/json", Context{})
	if r.Text != "from plugin" || r.Parser != "fixed" {
		t.Errorf("got %+v", r)
	}
	// Other content types still reach the built-ins.
	r = x.Extract([]byte("q=x"), "application/x-www-form-urlencoded", Context{})
	if r.Parser != "form" {
		t.Errorf("Parser = %q", r.Parser)
	}
}

func TestAllText(t *testing.T) {
	r := Result{Text: "now", History: []Turn{{Role: "user", Text: "before"}}}
	if got := r.AllText(); !strings.HasSuffix(got, "now") || !strings.HasPrefix(got, "before") {
		t.Errorf("AllText = %q", got)
	}
}
