// Package redact masks personal data in the short prompt previews kept with
// events. Previews are for a parent glancing at a dashboard, so the masks
// are coarse: the kind of value stays visible, the value does not.
package redact

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PatternType identifies the kind of sensitive value.
type PatternType string

const (
	PatternEmail PatternType = "EMAIL"
	PatternPhone PatternType = "PHONE"
	PatternCard  PatternType = "CARD"
	PatternSSN   PatternType = "SSN"
	PatternIP    PatternType = "IP"
	PatternCred  PatternType = "CRED"
	PatternURL   PatternType = "URL"
)

// Match is one occurrence of a sensitive value.
type Match struct {
	Type  PatternType
	Value string
	Start int
	End   int
}

type rule struct {
	typ   PatternType
	re    *regexp.Regexp
	check func(string) bool
}

var builtin = []rule{
	{PatternURL, regexp.MustCompile(`\bhttps?://[^\s<>"']+`), nil},
	{PatternEmail, regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`), nil},
	{PatternCred, regexp.MustCompile(`(?i)\b(?:password|passwd|secret|token|api[_-]?key|auth)[ \t]*[=:][ \t]*\S+`), nil},
	{PatternSSN, regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), nil},
	{PatternCard, regexp.MustCompile(`\b(?:\d[ \-]?){12,18}\d\b`), luhn},
	{PatternPhone, regexp.MustCompile(`(?:\+\d{1,3}[ .\-]?)?\(?\b\d{3}\)?[ .\-]?\d{3}[ .\-]?\d{4}\b`), nil},
	{PatternIP, regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`), nil},
}

// Config adds operator-defined patterns and literal strings to mask.
type Config struct {
	ExtraPatterns []ExtraPattern `yaml:"extra_patterns"`
	Literals      []string       `yaml:"literals"`
}

// ExtraPattern is a named regular expression from configuration.
type ExtraPattern struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

// Redactor masks builtin and configured patterns.
type Redactor struct {
	rules []rule
}

// New compiles cfg on top of the builtin patterns.
func New(cfg Config) (*Redactor, error) {
	r := &Redactor{rules: append([]rule(nil), builtin...)}
	for _, p := range cfg.ExtraPatterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("redact pattern %q: %w", p.Name, err)
		}
		name := strings.ToUpper(strings.TrimSpace(p.Name))
		if name == "" {
			name = "CUSTOM"
		}
		r.rules = append(r.rules, rule{typ: PatternType(name), re: re})
	}
	for _, lit := range cfg.Literals {
		if lit = strings.TrimSpace(lit); lit != "" {
			r.rules = append(r.rules, rule{typ: "LITERAL", re: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(lit))})
		}
	}
	return r, nil
}

// Default is a Redactor with only the builtin patterns.
func Default() *Redactor {
	return &Redactor{rules: builtin}
}

// Scan returns non-overlapping matches sorted by position. When two matches
// overlap the earlier rule wins.
func (r *Redactor) Scan(text string) []Match {
	var out []Match
	taken := func(start, end int) bool {
		for _, m := range out {
			if start < m.End && m.Start < end {
				return true
			}
		}
		return false
	}
	for _, ru := range r.rules {
		for _, loc := range ru.re.FindAllStringIndex(text, -1) {
			v := strings.TrimRight(text[loc[0]:loc[1]], ".,;:\"'`)}]")
			end := loc[0] + len(v)
			if v == "" || taken(loc[0], end) {
				continue
			}
			if ru.check != nil && !ru.check(v) {
				continue
			}
			out = append(out, Match{Type: ru.typ, Value: v, Start: loc[0], End: end})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Redact replaces every match with "[TYPE]".
func (r *Redactor) Redact(text string) string {
	matches := r.Scan(text)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString("[" + string(m.Type) + "]")
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Preview redacts text, collapses whitespace, and truncates to at most
// limit runes, marking truncation with an ellipsis. limit <= 0 yields "".
func (r *Redactor) Preview(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s := strings.Join(strings.FieldsFunc(r.Redact(text), unicode.IsSpace), " ")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:limit-1]), unicode.IsSpace) + "…"
}

func luhn(s string) bool {
	sum, n := 0, 0
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if n%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		n++
	}
	return n >= 13 && sum%10 == 0
}
