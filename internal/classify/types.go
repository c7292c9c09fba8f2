// Package classify scores extracted prompt text for safety categories.
//
// Classification is tiered: a keyword tier that always runs and finishes in
// well under a millisecond, and an optional statistical tier that scores
// jailbreak and prompt-injection intent. The statistical tier is skipped when
// the keyword tier already produced a confident match.
package classify

import (
	"strings"
	"time"
)

// Category is a safety category a prompt can be flagged for.
type Category string

const (
	Violence  Category = "violence"
	SelfHarm  Category = "self_harm"
	Adult     Category = "adult"
	Jailbreak Category = "jailbreak"
	Hate      Category = "hate"
	Illegal   Category = "illegal"
)

// Categories lists every category in display order.
var Categories = []Category{Violence, SelfHarm, Adult, Jailbreak, Hate, Illegal}

// ParseCategory accepts the canonical name plus common spellings
// ("self-harm", "SelfHarm", "selfharm").
func ParseCategory(s string) (Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	for _, c := range Categories {
		if strings.ReplaceAll(string(c), "_", "") == norm {
			return c, true
		}
	}
	return "", false
}

// Tier identifies which classification stage produced a match.
type Tier int

const (
	TierKeyword     Tier = 1
	TierStatistical Tier = 2
)

func (t Tier) String() string {
	switch t {
	case TierKeyword:
		return "keyword"
	case TierStatistical:
		return "statistical"
	default:
		return "unknown"
	}
}

// Mode reports which tiers a classifier can run.
type Mode string

const (
	ModeKeywordOnly Mode = "keyword-only"
	ModeTiered      Mode = "tiered"
)

// Match is a single category hit. Confidence is always within [0,1].
type Match struct {
	Category   Category `json:"category"`
	Confidence float32  `json:"confidence"`
	Pattern    string   `json:"pattern,omitempty"`
	Tier       Tier     `json:"tier"`
}

// NewMatch builds a Match with confidence clamped to [0,1].
func NewMatch(cat Category, confidence float32, pattern string, tier Tier) Match {
	return Match{
		Category:   cat,
		Confidence: Clamp(confidence),
		Pattern:    pattern,
		Tier:       tier,
	}
}

// Clamp bounds v to [0,1]. NaN maps to 0.
func Clamp(v float32) float32 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Result aggregates the matches of one classification run.
type Result struct {
	Matches     []Match       `json:"matches"`
	ShouldBlock bool          `json:"should_block"`
	Duration    time.Duration `json:"duration"`
	Mode        Mode          `json:"mode"`
}

// NewResult builds a Result. ShouldBlock is derived from matches only.
func NewResult(matches []Match, d time.Duration, mode Mode) Result {
	return Result{
		Matches:     matches,
		ShouldBlock: len(matches) > 0,
		Duration:    d,
		Mode:        mode,
	}
}

// Top returns the highest-confidence match, if any.
func (r Result) Top() (Match, bool) {
	if len(r.Matches) == 0 {
		return Match{}, false
	}
	best := r.Matches[0]
	for _, m := range r.Matches[1:] {
		if m.Confidence > best.Confidence {
			best = m
		}
	}
	return best, true
}

// MaxConfidence returns the strongest confidence for the given category, or 0.
func (r Result) MaxConfidence(cat Category) float32 {
	var best float32
	for _, m := range r.Matches {
		if m.Category == cat && m.Confidence > best {
			best = m.Confidence
		}
	}
	return best
}

// merge unions two match sets keeping the strongest match per category.
// Order follows first appearance.
func merge(a, b []Match) []Match {
	if len(b) == 0 {
		return a
	}
	out := make([]Match, 0, len(a)+len(b))
	idx := make(map[Category]int, len(a)+len(b))
	for _, set := range [][]Match{a, b} {
		for _, m := range set {
			if i, ok := idx[m.Category]; ok {
				if m.Confidence > out[i].Confidence {
					out[i] = m
				}
				continue
			}
			idx[m.Category] = len(out)
			out = append(out, m)
		}
	}
	return out
}
