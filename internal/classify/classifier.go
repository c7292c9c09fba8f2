package classify

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

const (
	// DefaultShortCircuitThreshold skips tier 2 when a keyword match is
	// stronger than this.
	DefaultShortCircuitThreshold float32 = 0.85
	// DefaultUnsafeThreshold is the tier-2 probability that yields a match.
	DefaultUnsafeThreshold float32 = 0.7
)

// Config tunes tier orchestration.
type Config struct {
	ShortCircuitThreshold float32
	UnsafeThreshold       float32
}

func (c Config) withDefaults() Config {
	if c.ShortCircuitThreshold <= 0 {
		c.ShortCircuitThreshold = DefaultShortCircuitThreshold
	}
	if c.UnsafeThreshold <= 0 {
		c.UnsafeThreshold = DefaultUnsafeThreshold
	}
	return c
}

// Stats are cumulative counters since construction.
type Stats struct {
	Classified    int64 `json:"classified"`
	ShortCircuits int64 `json:"short_circuits"`
	Tier2Calls    int64 `json:"tier2_calls"`
	Tier2Errors   int64 `json:"tier2_errors"`
}

// Classifier runs the keyword tier and, when needed, the statistical tier.
// Safe for concurrent use; only the statistical tier serializes.
type Classifier struct {
	keywords atomic.Pointer[KeywordTier]
	scorer   Scorer
	cfg      Config
	log      *slog.Logger

	classified    atomic.Int64
	shortCircuits atomic.Int64
	tier2Calls    atomic.Int64
	tier2Errors   atomic.Int64
}

// New creates a classifier. scorer may be nil for keyword-only mode.
func New(kt *KeywordTier, scorer Scorer, cfg Config, log *slog.Logger) *Classifier {
	if kt == nil {
		kt = NewDefaultKeywordTier()
	}
	if log == nil {
		log = slog.Default()
	}
	c := &Classifier{scorer: scorer, cfg: cfg.withDefaults(), log: log}
	c.keywords.Store(kt)
	return c
}

// Options locate the files a classifier is built from.
type Options struct {
	KeywordsPath string
	Model        ModelConfig
	Config       Config
}

// Build loads the keyword tier and tries the statistical tier. A missing
// model is not an error: the classifier runs keyword-only and says so.
func Build(opts Options, log *slog.Logger) (*Classifier, error) {
	if log == nil {
		log = slog.Default()
	}
	kt, err := LoadKeywordTier(opts.KeywordsPath)
	if err != nil {
		return nil, err
	}

	var scorer Scorer
	mt, err := LoadModelTier(opts.Model)
	switch {
	case err == nil:
		scorer = mt
		log.Info("statistical classifier loaded", "model", opts.Model.ModelPath, "vocab", mt.tok.VocabSize())
	case errors.Is(err, ErrModelUnavailable):
		log.Warn("statistical classifier unavailable, running keyword-only", "reason", err)
	default:
		log.Warn("statistical classifier failed to load, running keyword-only", "error", err)
	}

	c := New(kt, scorer, opts.Config, log)
	return c, nil
}

// Mode reports whether tier 2 is available.
func (c *Classifier) Mode() Mode {
	if c.scorer == nil {
		return ModeKeywordOnly
	}
	return ModeTiered
}

// SetKeywords swaps the keyword tier, used on hot reload.
func (c *Classifier) SetKeywords(kt *KeywordTier) {
	if kt != nil {
		c.keywords.Store(kt)
	}
}

// KeywordRuleCount returns the number of active keyword rules.
func (c *Classifier) KeywordRuleCount() int {
	return c.keywords.Load().Len()
}

// Stats returns a snapshot of the counters.
func (c *Classifier) Stats() Stats {
	return Stats{
		Classified:    c.classified.Load(),
		ShortCircuits: c.shortCircuits.Load(),
		Tier2Calls:    c.tier2Calls.Load(),
		Tier2Errors:   c.tier2Errors.Load(),
	}
}

// Classify scores text. It never fails: tier-2 errors fall back to the
// keyword result.
func (c *Classifier) Classify(text string) Result {
	start := time.Now()
	c.classified.Add(1)
	mode := c.Mode()

	matches := c.keywords.Load().Scan(text)

	for _, m := range matches {
		if m.Confidence > c.cfg.ShortCircuitThreshold {
			c.shortCircuits.Add(1)
			return NewResult(matches, time.Since(start), mode)
		}
	}

	if c.scorer == nil || text == "" {
		return NewResult(matches, time.Since(start), mode)
	}

	c.tier2Calls.Add(1)
	unsafe, err := c.scorer.Score(text)
	if err != nil {
		c.tier2Errors.Add(1)
		c.log.Debug("statistical tier failed", "error", err)
		return NewResult(matches, time.Since(start), mode)
	}
	if unsafe > c.cfg.UnsafeThreshold {
		matches = merge(matches, []Match{NewMatch(Jailbreak, unsafe, "", TierStatistical)})
	}
	return NewResult(matches, time.Since(start), mode)
}
