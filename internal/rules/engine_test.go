package rules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/chatwarden/internal/classify"
)

func result(matches ...classify.Match) classify.Result {
	return classify.NewResult(matches, 0, classify.ModeKeywordOnly)
}

func match(c classify.Category, conf float32) classify.Match {
	return classify.NewMatch(c, conf, "", classify.TierKeyword)
}

// monday is 2024-01-01, a Monday.
func at(day int, hh, mm int) time.Time {
	return time.Date(2024, 1, day, hh, mm, 0, 0, time.UTC)
}

func TestNoMatchIsAllowNone(t *testing.T) {
	e := NewEngine(nil)
	got := e.Evaluate(result(), at(1, 12, 0), "")
	if got.Action != Allow || got.Source != SourceNone {
		t.Errorf("got %+v, want allow/none", got)
	}
}

func TestDefaultContentRules(t *testing.T) {
	e := NewEngine(nil)
	tests := []struct {
		name   string
		match  classify.Match
		action Action
		source string
	}{
		{"violence blocks", match(classify.Violence, 0.9), Block, "content:block-violence"},
		{"below threshold allows", match(classify.Hate, 0.4), Allow, SourceNone},
		{"threshold is inclusive", match(classify.Illegal, 0.5), Block, "content:block-illegal"},
		{"adult warns", match(classify.Adult, 0.6), Warn, "content:warn-adult"},
		{"explicit adult blocks", match(classify.Adult, 0.85), Block, "content:block-adult"},
		{"jailbreak blocks", match(classify.Jailbreak, 0.95), Block, "content:block-jailbreak"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(result(tt.match), at(1, 12, 0), "")
			if got.Action != tt.action || got.Source != tt.source {
				t.Errorf("got %+v, want %s/%s", got, tt.action, tt.source)
			}
		})
	}
}

func TestTimeRuleWindows(t *testing.T) {
	cfg := &Config{Rules: []Rule{
		{ID: "school", Kind: KindTime, Days: []string{"mon", "tue", "wed", "thu", "fri"}, Start: "08:00", End: "15:00", Action: Block},
		{ID: "night", Kind: KindTime, Days: []string{"sun"}, Start: "22:00", End: "06:30", Action: Warn},
	}}
	e := NewEngine(cfg)
	tests := []struct {
		name string
		now  time.Time
		want Result
	}{
		{"inside weekday window", at(1, 9, 30), Result{Block, "time:school"}},
		{"end is exclusive", at(1, 15, 0), Result{Allow, SourceNone}},
		{"start is inclusive", at(2, 8, 0), Result{Block, "time:school"}},
		{"weekend outside", at(6, 9, 30), Result{Allow, SourceNone}},
		{"wrapping window on start day", at(7, 23, 0), Result{Warn, "time:night"}},
		{"wrapping window after midnight", at(8, 5, 0), Result{Warn, "time:night"}},
		{"wrapping window ended", at(8, 7, 0), Result{Allow, SourceNone}},
		{"wrapping window wrong start day", at(2, 5, 0), Result{Allow, SourceNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Evaluate(result(), tt.now, ""); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostSevereWinsAndTiesPreferTime(t *testing.T) {
	cfg := &Config{Rules: []Rule{
		{ID: "homework", Kind: KindTime, Start: "00:00", End: "00:00", Action: Warn},
		{ID: "hate-warn", Kind: KindContent, Category: classify.Hate, MinConfidence: 0.1, Action: Warn},
		{ID: "violence", Kind: KindContent, Category: classify.Violence, MinConfidence: 0.5, Action: Block},
	}}
	e := NewEngine(cfg)

	got := e.Evaluate(result(match(classify.Hate, 0.9)), at(1, 10, 0), "")
	if got != (Result{Warn, "time:homework"}) {
		t.Errorf("tie: got %+v, want time rule", got)
	}
	got = e.Evaluate(result(match(classify.Hate, 0.9), match(classify.Violence, 0.7)), at(1, 10, 0), "")
	if got != (Result{Block, "content:violence"}) {
		t.Errorf("severity: got %+v", got)
	}
}

func TestProfileOverridesPerFamily(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = append(cfg.Rules, Rule{ID: "late", Kind: KindTime, Start: "23:00", End: "06:00", Action: Block})
	cfg.Profiles = []Profile{
		{
			Name:      "teen",
			Usernames: []string{"sam"},
			Rules: []Rule{
				{ID: "teen-adult", Kind: KindContent, Category: classify.Adult, MinConfidence: 0.3, Action: Block},
			},
		},
		{Name: "parent", Rules: []Rule{{ID: "parent-allow", Kind: KindContent, Category: classify.Hate, MinConfidence: 1, Action: Allow}}},
	}
	e := NewEngine(cfg)

	// Teen content rules replace the defaults: violence is no longer covered.
	if got := e.Evaluate(result(match(classify.Violence, 0.9)), at(1, 12, 0), "teen"); got.Action != Allow {
		t.Errorf("teen violence: %+v", got)
	}
	if got := e.Evaluate(result(match(classify.Adult, 0.4)), at(1, 12, 0), "teen"); got != (Result{Block, "content:teen-adult"}) {
		t.Errorf("teen adult: %+v", got)
	}
	// Teen defines no time rules, so the default late-night rule applies.
	if got := e.Evaluate(result(), at(1, 23, 30), "teen"); got != (Result{Block, "time:late"}) {
		t.Errorf("teen night: %+v", got)
	}
	// Unknown profile falls back to defaults.
	if got := e.Evaluate(result(match(classify.Violence, 0.9)), at(1, 12, 0), "stranger"); got.Action != Block {
		t.Errorf("unknown profile: %+v", got)
	}

	if name, ok := e.ProfileForUser("SAM"); !ok || name != "teen" {
		t.Errorf("ProfileForUser = %q, %v", name, ok)
	}
	if _, ok := e.ProfileForUser("nobody"); ok {
		t.Error("unexpected profile")
	}
}

func TestRuleCRUD(t *testing.T) {
	e := NewEngine(nil)
	r, err := e.CreateRule("", Rule{Kind: KindTime, Start: "21:00", End: "07:00", Action: Block})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(r.ID, "time-") {
		t.Errorf("generated id = %q", r.ID)
	}
	if got := e.Evaluate(result(), at(1, 22, 0), ""); got.Source != "time:"+r.ID {
		t.Errorf("new rule not applied: %+v", got)
	}

	if _, err := e.CreateRule("", Rule{ID: r.ID, Kind: KindTime, Start: "01:00", End: "02:00"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate err = %v", err)
	}
	if _, err := e.CreateRule("ghost", Rule{Kind: KindTime, Start: "01:00", End: "02:00"}); !errors.Is(err, ErrNoProfile) {
		t.Errorf("missing profile err = %v", err)
	}

	updated, err := e.UpdateRule(r.ID, Rule{Kind: KindTime, Start: "21:00", End: "07:00", Action: Warn})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != r.ID || updated.Action != Warn {
		t.Errorf("updated = %+v", updated)
	}
	if got := e.Evaluate(result(), at(1, 22, 0), ""); got.Action != Warn {
		t.Errorf("update not applied: %+v", got)
	}

	if err := e.DeleteRule(r.ID); err != nil {
		t.Fatal(err)
	}
	if err := e.DeleteRule(r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	if _, err := e.UpdateRule("missing", Rule{Kind: KindTime, Start: "01:00", End: "02:00"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing err = %v", err)
	}
}

func TestInvalidRulesRejected(t *testing.T) {
	e := NewEngine(nil)
	bad := []Rule{
		{Kind: "weather"},
		{Kind: KindTime, Start: "25:00", End: "01:00"},
		{Kind: KindTime, Start: "01:00", End: "02:00", Days: []string{"funday"}},
		{Kind: KindContent, Category: "spam"},
		{Kind: KindContent, Category: classify.Hate, MinConfidence: 2},
		{Kind: KindContent, Category: classify.Hate, Action: Action(9)},
	}
	for i, r := range bad {
		if _, err := e.CreateRule("", r); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("case %d: err = %v, want ErrInvalidRule", i, err)
		}
	}
}

func TestLoadConfigWithHash(t *testing.T) {
	dir := t.TempDir()

	cfg, hash, err := LoadConfigWithHash(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Rules) != len(DefaultConfig().Rules) {
		t.Errorf("missing file should give defaults")
	}
	if hash != hashOf(nil) {
		t.Errorf("hash = %s", hash)
	}

	path := filepath.Join(dir, "rules.yaml")
	data := `
rules:
  - kind: time
    days: [Mon, tuesday]
    start: "21:00"
    end: "07:00"
    action: block
  - kind: content
    category: self-harm
    min_confidence: 0.4
    action: warn
profiles:
  - name: kid
    usernames: [alex]
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, hash, err = LoadConfigWithHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if hash == hashOf(nil) || !strings.HasPrefix(hash, "sha256:") {
		t.Errorf("hash = %s", hash)
	}
	if cfg.Rules[0].ID != "time-1" || cfg.Rules[1].ID != "content-2" {
		t.Errorf("ids = %s, %s", cfg.Rules[0].ID, cfg.Rules[1].ID)
	}
	if cfg.Rules[1].Category != classify.SelfHarm || cfg.Rules[1].Action != Warn {
		t.Errorf("content rule = %+v", cfg.Rules[1])
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	for _, data := range []string{
		"rules: [",
		"rules:\n  - kind: content\n    category: hate\n    action: explode\n",
		"rules:\n  - id: a\n    kind: content\n    category: hate\n  - id: a\n    kind: content\n    category: adult\n",
	} {
		if err := os.WriteFile(path, []byte(data), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}

func TestOpenPersistsMutations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	e, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.CreateRule("", Rule{ID: "bedtime", Kind: KindTime, Start: "21:00", End: "07:00", Action: Block}); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	rs, _ := reopened.Rules("")
	found := false
	for _, r := range rs {
		if r.ID == "bedtime" && r.Action == Block {
			found = true
		}
	}
	if !found {
		t.Fatalf("persisted rule missing: %+v", rs)
	}
	if reopened.Hash() == hashOf(nil) {
		t.Error("hash should reflect the written file")
	}
}

func TestParseAction(t *testing.T) {
	for in, want := range map[string]Action{"allow": Allow, "WARN": Warn, " block ": Block} {
		got, err := ParseAction(in)
		if err != nil || got != want {
			t.Errorf("ParseAction(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseAction("maybe"); err == nil {
		t.Error("expected error")
	}
}
