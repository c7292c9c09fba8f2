package extract

import (
	"encoding/json"
	"sort"
	"strings"
)

// Field mapping for JSON chat payloads. Each known API shape is tried in
// order; the parser id from the registry only decides which shape is tried
// first.

// promptKeys are single-field prompt carriers, in preference order.
var promptKeys = []string{"prompt", "input", "query", "q", "text", "message", "content", "question"}

const maxLeaves = 256

type mapping struct {
	turns      []Turn
	text       string // set when no turns were found
	confidence float32
	warnings   []Warning
}

// mapJSON recovers conversation turns from a decoded JSON value.
func mapJSON(v any, parserID string) mapping {
	obj, isObj := v.(map[string]any)
	if !isObj {
		if arr, ok := v.([]any); ok {
			// Some web clients post a bare message array.
			if turns := chatTurns(arr); len(turns) > 0 {
				return mapping{turns: turns, confidence: 0.8}
			}
		}
		return leafMapping(v)
	}

	for _, shape := range shapeOrder(parserID) {
		if m, ok := shape(obj); ok {
			return m
		}
	}

	for _, k := range promptKeys {
		if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
			conf := float32(0.8)
			if parserID == "prompt" {
				conf = 1.0
			}
			return mapping{text: s, confidence: conf, warnings: []Warning{{
				Code: WarnGenericFields, Message: "prompt taken from field " + k,
			}}}
		}
	}
	return leafMapping(obj)
}

type shapeFunc func(map[string]any) (mapping, bool)

func shapeOrder(parserID string) []shapeFunc {
	all := map[string]shapeFunc{
		"openai":      openAIShape,
		"anthropic":   anthropicShape,
		"gemini":      geminiShape,
		"chatgpt-web": chatGPTWebShape,
	}
	order := []string{"chatgpt-web", "anthropic", "openai", "gemini"}
	out := make([]shapeFunc, 0, len(order)+1)
	if f, ok := all[parserID]; ok {
		out = append(out, f)
	}
	for _, id := range order {
		if id != parserID {
			out = append(out, all[id])
		}
	}
	out = append(out, responseShape)
	return out
}

// openAIShape: {"messages": [{"role": "user", "content": "..." | [parts]}]}
// and the Responses API {"input": [...]}.
func openAIShape(obj map[string]any) (mapping, bool) {
	for _, key := range []string{"messages", "input"} {
		arr, ok := obj[key].([]any)
		if !ok {
			continue
		}
		if turns := chatTurns(arr); len(turns) > 0 {
			return mapping{turns: turns, confidence: 1.0}, true
		}
	}
	return mapping{}, false
}

// anthropicShape is openAIShape plus a top-level system prompt.
func anthropicShape(obj map[string]any) (mapping, bool) {
	if _, ok := obj["system"]; !ok {
		return mapping{}, false
	}
	m, ok := openAIShape(obj)
	if !ok {
		return mapping{}, false
	}
	if sys := contentText(obj["system"]); sys != "" {
		m.turns = append([]Turn{{Role: "system", Text: sys}}, m.turns...)
	}
	return m, true
}

// geminiShape: {"contents": [{"role": "user", "parts": [{"text": "..."}]}]}
func geminiShape(obj map[string]any) (mapping, bool) {
	arr, ok := obj["contents"].([]any)
	if !ok {
		return mapping{}, false
	}
	var turns []Turn
	for _, item := range arr {
		c, ok := item.(map[string]any)
		if !ok {
			continue
		}
		role, _ := c["role"].(string)
		switch role {
		case "model":
			role = "assistant"
		case "":
			role = "user"
		}
		if text := contentText(c["parts"]); text != "" {
			turns = append(turns, Turn{Role: role, Text: text})
		}
	}
	if sys, ok := obj["systemInstruction"].(map[string]any); ok {
		if text := contentText(sys["parts"]); text != "" {
			turns = append([]Turn{{Role: "system", Text: text}}, turns...)
		}
	}
	if len(turns) == 0 {
		return mapping{}, false
	}
	return mapping{turns: turns, confidence: 1.0}, true
}

// chatGPTWebShape: {"action": "next", "messages": [{"author": {"role":
// "user"}, "content": {"content_type": "text", "parts": ["..."]}}]}
func chatGPTWebShape(obj map[string]any) (mapping, bool) {
	arr, ok := obj["messages"].([]any)
	if !ok {
		return mapping{}, false
	}
	var turns []Turn
	for _, item := range arr {
		msg, ok := item.(map[string]any)
		if !ok {
			continue
		}
		author, ok := msg["author"].(map[string]any)
		if !ok {
			return mapping{}, false
		}
		role, _ := author["role"].(string)
		if text := contentText(msg["content"]); text != "" {
			turns = append(turns, Turn{Role: role, Text: text})
		}
	}
	if len(turns) == 0 {
		return mapping{}, false
	}
	return mapping{turns: turns, confidence: 1.0}, true
}

// responseShape recognizes complete (non-streamed) completions.
func responseShape(obj map[string]any) (mapping, bool) {
	if choices, ok := obj["choices"].([]any); ok && len(choices) > 0 {
		var b strings.Builder
		for _, c := range choices {
			choice, ok := c.(map[string]any)
			if !ok {
				continue
			}
			if msg, ok := choice["message"].(map[string]any); ok {
				b.WriteString(contentText(msg["content"]))
			} else if s, ok := choice["text"].(string); ok {
				b.WriteString(s)
			}
		}
		if b.Len() > 0 {
			return mapping{turns: []Turn{{Role: "assistant", Text: b.String()}}, confidence: 1.0}, true
		}
	}
	if typ, _ := obj["type"].(string); typ == "message" {
		if text := contentText(obj["content"]); text != "" {
			return mapping{turns: []Turn{{Role: "assistant", Text: text}}, confidence: 1.0}, true
		}
	}
	if cands, ok := obj["candidates"].([]any); ok {
		var b strings.Builder
		for _, c := range cands {
			if cand, ok := c.(map[string]any); ok {
				if content, ok := cand["content"].(map[string]any); ok {
					b.WriteString(contentText(content["parts"]))
				}
			}
		}
		if b.Len() > 0 {
			return mapping{turns: []Turn{{Role: "assistant", Text: b.String()}}, confidence: 1.0}, true
		}
	}
	return mapping{}, false
}

func chatTurns(arr []any) []Turn {
	var turns []Turn
	for _, item := range arr {
		msg, ok := item.(map[string]any)
		if !ok {
			continue
		}
		role, _ := msg["role"].(string)
		if role == "" {
			continue
		}
		if text := contentText(msg["content"]); text != "" {
			turns = append(turns, Turn{Role: role, Text: text})
		}
	}
	return turns
}

// contentText flattens the content encodings the chat APIs use: a string,
// an array of strings or typed parts, or an object holding parts.
func contentText(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case []any:
		var parts []string
		for _, p := range c {
			switch part := p.(type) {
			case string:
				if part != "" {
					parts = append(parts, part)
				}
			case map[string]any:
				if typ, _ := part["type"].(string); typ != "" && typ != "text" && typ != "input_text" {
					continue
				}
				if s, ok := part["text"].(string); ok && s != "" {
					parts = append(parts, s)
				}
			}
		}
		return strings.Join(parts, "\n")
	case map[string]any:
		if parts, ok := c["parts"]; ok {
			return contentText(parts)
		}
		if s, ok := c["text"].(string); ok {
			return s
		}
	}
	return ""
}

// leafMapping is the last resort: every string leaf, depth first.
func leafMapping(v any) mapping {
	var leaves []string
	collectLeaves(v, &leaves)
	m := mapping{text: strings.Join(leaves, "\n"), confidence: 0.5}
	m.warnings = append(m.warnings, Warning{Code: WarnStringLeaves, Message: "no known fields, using all string values"})
	if m.text == "" {
		m.confidence = 0
	}
	return m
}

func collectLeaves(v any, out *[]string) {
	if len(*out) >= maxLeaves {
		return
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) != "" {
			*out = append(*out, t)
		}
	case []any:
		for _, e := range t {
			collectLeaves(e, out)
		}
	case map[string]any:
		for _, k := range sortedKeys(t) {
			collectLeaves(t[k], out)
		}
	}
}

// deltaText recovers the text carried by one streamed chunk.
func deltaText(v any) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	// OpenAI: {"choices": [{"delta": {"content": "..."}}]}
	if choices, ok := obj["choices"].([]any); ok {
		var b strings.Builder
		found := false
		for _, c := range choices {
			choice, ok := c.(map[string]any)
			if !ok {
				continue
			}
			if delta, ok := choice["delta"].(map[string]any); ok {
				found = true
				b.WriteString(contentText(delta["content"]))
			} else if s, ok := choice["text"].(string); ok {
				found = true
				b.WriteString(s)
			}
		}
		if found {
			return b.String(), true
		}
	}
	// Anthropic: {"type": "content_block_delta", "delta": {"text": "..."}}
	if typ, _ := obj["type"].(string); typ != "" {
		if typ == "content_block_delta" {
			if delta, ok := obj["delta"].(map[string]any); ok {
				s, _ := delta["text"].(string)
				return s, true
			}
		}
		if typ == "response.output_text.delta" {
			s, _ := obj["delta"].(string)
			return s, true
		}
	}
	// Ollama-style NDJSON: {"message": {"content": "..."}} or {"response": "..."}
	if msg, ok := obj["message"].(map[string]any); ok {
		if s, ok := msg["content"].(string); ok {
			return s, true
		}
	}
	if s, ok := obj["response"].(string); ok {
		return s, true
	}
	return "", false
}

// snapshotText recovers chunks that carry the whole message so far
// (ChatGPT web and Gemini stream this way).
func snapshotText(v any) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	if msg, ok := obj["message"].(map[string]any); ok {
		if _, ok := msg["author"]; ok {
			return contentText(msg["content"]), true
		}
	}
	if m, ok := responseShape(obj); ok {
		return m.turns[0].Text, true
	}
	return "", false
}

func decodeJSON(data []byte) (any, bool) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return v, true
}

// resultFromMapping splits turns into the live prompt and its history.
func resultFromMapping(m mapping, dir Direction) Result {
	r := Result{Confidence: m.confidence, Warnings: m.warnings}
	if len(m.turns) == 0 {
		r.Text = m.text
		return r
	}
	live := -1
	want := "user"
	if dir == Response {
		want = "assistant"
	}
	for i := len(m.turns) - 1; i >= 0; i-- {
		if m.turns[i].Role == want {
			live = i
			break
		}
	}
	if live < 0 {
		live = len(m.turns) - 1
		r.warn(WarnNoUserTurn, "no "+want+" turn, using the last message")
		r.Confidence *= 0.7
	}
	r.Text = m.turns[live].Text
	for i, t := range m.turns {
		if i != live {
			r.History = append(r.History, t)
		}
	}
	return r
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
