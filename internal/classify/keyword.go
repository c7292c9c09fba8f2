package classify

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	ac "github.com/anknown/ahocorasick"
	"gopkg.in/yaml.v3"
)

// KeywordRule is one tier-1 rule. Exactly one of Phrase or Pattern is set.
// Phrases match on whole words after normalization; patterns are regular
// expressions evaluated case-insensitively against the raw text.
type KeywordRule struct {
	Category Category `yaml:"category"`
	Phrase   string   `yaml:"phrase,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`
	Weight   float32  `yaml:"weight"`
}

// KeywordFile is the on-disk shape of a user keywords file.
type KeywordFile struct {
	// Replace drops the built-in rules instead of extending them.
	Replace bool          `yaml:"replace"`
	Rules   []KeywordRule `yaml:"rules"`
}

type phraseRule struct {
	category Category
	phrase   string
	weight   float32
}

type patternRule struct {
	category Category
	source   string
	re       *regexp.Regexp
	weight   float32
}

// KeywordTier is the heuristic tier. It is read-only after construction and
// safe for concurrent use.
type KeywordTier struct {
	machine  *ac.Machine
	phrases  map[string][]phraseRule // keyed by padded normalized phrase
	patterns []patternRule
	size     int
}

// NewKeywordTier compiles rules into an Aho-Corasick automaton plus a regex list.
func NewKeywordTier(rules []KeywordRule) (*KeywordTier, error) {
	kt := &KeywordTier{phrases: make(map[string][]phraseRule)}
	var dict [][]rune

	for i, r := range rules {
		if r.Category == "" {
			return nil, fmt.Errorf("keyword rule %d: category is required", i)
		}
		cat, ok := ParseCategory(string(r.Category))
		if !ok {
			return nil, fmt.Errorf("keyword rule %d: unknown category %q", i, r.Category)
		}
		weight := Clamp(r.Weight)
		if weight == 0 {
			weight = 0.8
		}

		switch {
		case r.Phrase != "" && r.Pattern != "":
			return nil, fmt.Errorf("keyword rule %d: phrase and pattern are mutually exclusive", i)
		case r.Phrase != "":
			norm := normalizeText(r.Phrase)
			if norm == "" {
				return nil, fmt.Errorf("keyword rule %d: phrase %q is empty after normalization", i, r.Phrase)
			}
			key := " " + norm + " "
			if _, seen := kt.phrases[key]; !seen {
				dict = append(dict, []rune(key))
			}
			kt.phrases[key] = append(kt.phrases[key], phraseRule{category: cat, phrase: r.Phrase, weight: weight})
		case r.Pattern != "":
			re, err := regexp.Compile("(?i)" + r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("keyword rule %d: invalid pattern %q: %w", i, r.Pattern, err)
			}
			kt.patterns = append(kt.patterns, patternRule{category: cat, source: r.Pattern, re: re, weight: weight})
		default:
			return nil, fmt.Errorf("keyword rule %d: phrase or pattern is required", i)
		}
		kt.size++
	}

	if len(dict) > 0 {
		m := new(ac.Machine)
		if err := m.Build(dict); err != nil {
			return nil, fmt.Errorf("build keyword automaton: %w", err)
		}
		kt.machine = m
	}
	return kt, nil
}

// NewDefaultKeywordTier compiles the built-in rules.
func NewDefaultKeywordTier() *KeywordTier {
	kt, err := NewKeywordTier(DefaultKeywordRules)
	if err != nil {
		panic("classify: built-in keyword rules do not compile: " + err.Error())
	}
	return kt
}

// LoadKeywordTier builds a tier from the built-in rules plus a YAML file.
// An empty path or a missing file yields the built-in rules only.
func LoadKeywordTier(path string) (*KeywordTier, error) {
	if path == "" {
		return NewDefaultKeywordTier(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefaultKeywordTier(), nil
		}
		return nil, fmt.Errorf("read keywords file: %w", err)
	}

	var f KeywordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keywords file: %w", err)
	}

	rules := f.Rules
	if !f.Replace {
		rules = append(append([]KeywordRule{}, DefaultKeywordRules...), f.Rules...)
	}
	return NewKeywordTier(rules)
}

// Len returns the number of compiled rules.
func (kt *KeywordTier) Len() int { return kt.size }

// Scan returns at most one match per category, the strongest one.
func (kt *KeywordTier) Scan(text string) []Match {
	if text == "" {
		return nil
	}
	best := make(map[Category]Match)
	consider := func(m Match) {
		if cur, ok := best[m.Category]; !ok || m.Confidence > cur.Confidence {
			best[m.Category] = m
		}
	}

	if kt.machine != nil {
		content := []rune(" " + normalizeText(text) + " ")
		for _, term := range kt.machine.MultiPatternSearch(content, false) {
			for _, pr := range kt.phrases[string(term.Word)] {
				consider(NewMatch(pr.category, pr.weight, pr.phrase, TierKeyword))
			}
		}
	}

	for _, pr := range kt.patterns {
		if pr.re.MatchString(text) {
			consider(NewMatch(pr.category, pr.weight, pr.source, TierKeyword))
		}
	}

	if len(best) == 0 {
		return nil
	}
	out := make([]Match, 0, len(best))
	for _, c := range Categories {
		if m, ok := best[c]; ok {
			out = append(out, m)
		}
	}
	return out
}

var leetFold = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'@': 'a',
	'$': 's',
}

// normalizeText lowercases, folds common leetspeak substitutions, drops
// apostrophes and collapses every other run of non-letters into one space.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := true
	for _, r := range s {
		if f, ok := leetFold[r]; ok {
			r = f
		}
		if r == '\'' || r == '’' {
			continue
		}
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}
