package classify

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/advancedclimatesystems/gonnx"
	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	"gorgonia.org/tensor"
)

// ErrModelUnavailable means the statistical tier could not be loaded.
// Callers degrade to keyword-only classification.
var ErrModelUnavailable = errors.New("statistical model unavailable")

const defaultMaxSequenceLength = 256

// Input names a BERT-style sequence classifier exports.
const (
	inputIDs       = "input_ids"
	inputMask      = "attention_mask"
	inputTokenType = "token_type_ids"
)

// Scorer returns the probability that text is unsafe (jailbreak or
// prompt-injection intent). Implementations may serialize calls.
type Scorer interface {
	Score(text string) (float32, error)
}

// Runner evaluates the sequence classifier on one encoded input and returns
// its (safe, unsafe) logits.
type Runner interface {
	Run(ids []int) ([2]float32, error)
}

// Tokenizer wraps a Hugging Face tokenizer.json and caps sequence length.
type Tokenizer struct {
	tk     *tokenizer.Tokenizer
	maxLen int
}

// LoadTokenizer reads a tokenizer.json file.
func LoadTokenizer(path string, maxLen int) (*Tokenizer, error) {
	if err := requireFile("tokenizer", path); err != nil {
		return nil, err
	}
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer %s: %w", path, err)
	}
	if maxLen <= 2 {
		maxLen = defaultMaxSequenceLength
	}
	return &Tokenizer{tk: tk, maxLen: maxLen}, nil
}

// VocabSize returns the number of distinct tokens, added tokens included.
func (t *Tokenizer) VocabSize() int { return t.tk.GetVocabSize(true) }

// Encode returns the framed token ids. Sequences longer than the maximum keep
// their head and the closing special token.
func (t *Tokenizer) Encode(text string) ([]int, error) {
	enc, err := t.tk.EncodeSingle(text, true)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	ids := enc.Ids
	if len(ids) > t.maxLen {
		last := ids[len(ids)-1]
		ids = append(ids[:t.maxLen-1:t.maxLen-1], last)
	}
	return ids, nil
}

// onnxRunner runs an exported sequence classifier through gonnx.
type onnxRunner struct {
	model  *gonnx.Model
	inputs []string
	output string

	// mu serializes Run; the model graph holds per-run state.
	mu sync.Mutex
}

func loadONNX(path string) (*onnxRunner, error) {
	model, err := gonnx.NewModelFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	inputs := model.InputNames()
	for _, name := range inputs {
		switch name {
		case inputIDs, inputMask, inputTokenType:
		default:
			return nil, fmt.Errorf("model %s: unsupported input %q", path, name)
		}
	}
	outputs := model.OutputNames()
	if len(outputs) == 0 {
		return nil, fmt.Errorf("model %s has no outputs", path)
	}
	return &onnxRunner{model: model, inputs: inputs, output: outputs[0]}, nil
}

func (r *onnxRunner) Run(ids []int) ([2]float32, error) {
	n := len(ids)
	feed := make(gonnx.Tensors, len(r.inputs))
	for _, name := range r.inputs {
		vals := make([]int64, n)
		switch name {
		case inputIDs:
			for i, id := range ids {
				vals[i] = int64(id)
			}
		case inputMask:
			for i := range vals {
				vals[i] = 1
			}
		}
		feed[name] = tensor.New(tensor.WithShape(1, n), tensor.WithBacking(vals))
	}

	r.mu.Lock()
	out, err := r.model.Run(feed)
	r.mu.Unlock()
	if err != nil {
		return [2]float32{}, fmt.Errorf("run model: %w", err)
	}

	logits, ok := out[r.output]
	if !ok {
		return [2]float32{}, fmt.Errorf("model output %q missing", r.output)
	}
	data, ok := logits.Data().([]float32)
	if !ok || len(data) < 2 {
		return [2]float32{}, fmt.Errorf("model output %q is not a float32 logit pair", r.output)
	}
	return [2]float32{data[0], data[1]}, nil
}

// ModelTier is the statistical tier.
type ModelTier struct {
	tok *Tokenizer
	run Runner
}

// ModelConfig locates the statistical tier files.
type ModelConfig struct {
	ModelPath         string
	TokenizerPath     string
	MaxSequenceLength int
}

// LoadModelTier loads the tokenizer and the ONNX model. Missing files yield
// an error wrapping ErrModelUnavailable.
func LoadModelTier(cfg ModelConfig) (*ModelTier, error) {
	if err := requireFile("model", cfg.ModelPath); err != nil {
		return nil, err
	}
	tok, err := LoadTokenizer(cfg.TokenizerPath, cfg.MaxSequenceLength)
	if err != nil {
		return nil, err
	}
	run, err := loadONNX(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	return NewModelTier(tok, run), nil
}

// NewModelTier pairs a tokenizer with a model runner.
func NewModelTier(tok *Tokenizer, run Runner) *ModelTier {
	return &ModelTier{tok: tok, run: run}
}

// Score runs one inference and returns the unsafe probability.
func (m *ModelTier) Score(text string) (float32, error) {
	ids, err := m.tok.Encode(text)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("no tokens to score")
	}
	logits, err := m.run.Run(ids)
	if err != nil {
		return 0, err
	}
	_, unsafe := Softmax2(logits[0], logits[1])
	return unsafe, nil
}

func requireFile(kind, path string) error {
	if path == "" {
		return fmt.Errorf("%w: %s path not configured", ErrModelUnavailable, kind)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s %s not found", ErrModelUnavailable, kind, path)
		}
		return fmt.Errorf("stat %s: %w", kind, err)
	}
	return nil
}

// Softmax2 converts a (safe, unsafe) logit pair into probabilities.
func Softmax2(safe, unsafe float32) (float32, float32) {
	hi := safe
	if unsafe > hi {
		hi = unsafe
	}
	es := math.Exp(float64(safe - hi))
	eu := math.Exp(float64(unsafe - hi))
	sum := es + eu
	return float32(es / sum), float32(eu / sum)
}
