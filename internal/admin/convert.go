package admin

import (
	"fmt"
	"sort"
	"time"

	pb "github.com/ppiankov/chatwarden/api/proto/chatwarden/admin/v1"
	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/sites"
	"github.com/ppiankov/chatwarden/internal/store"
)

// Status is the decoded form of a StatusResponse.
type Status struct {
	Mode           string           `json:"mode"`
	Until          *time.Time       `json:"until,omitempty"`
	Enabled        bool             `json:"enabled"`
	Seq            int64            `json:"seq"`
	ClassifierMode string           `json:"classifier_mode,omitempty"`
	KeywordRules   int              `json:"keyword_rules"`
	RulesHash      string           `json:"rules_hash,omitempty"`
	CAFingerprint  string           `json:"ca_fingerprint,omitempty"`
	Sites          int              `json:"sites"`
	EventsDropped  int64            `json:"events_dropped"`
	Last24h        store.EventStats `json:"last_24h"`
}

// State is the decoded form of a StateResponse.
type State struct {
	Mode  string     `json:"mode"`
	Until *time.Time `json:"until,omitempty"`
}

func unixNano(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) *time.Time {
	if n == 0 {
		return nil
	}
	t := time.Unix(0, n)
	return &t
}

func siteToPB(e sites.Entry) *pb.Site {
	return &pb.Site{
		Pattern:     e.Pattern,
		DisplayName: e.DisplayName,
		Category:    e.Category,
		ParserId:    e.ParserID,
		Enabled:     e.Enabled,
		Source:      string(e.Source),
		Priority:    int32(e.Priority),
	}
}

func siteFromPB(s *pb.Site) sites.Entry {
	return sites.Entry{
		Pattern:     s.GetPattern(),
		DisplayName: s.GetDisplayName(),
		Category:    s.GetCategory(),
		ParserID:    s.GetParserId(),
		Enabled:     s.GetEnabled(),
		Source:      sites.Source(s.GetSource()),
		Priority:    int(s.GetPriority()),
	}
}

func ruleToPB(r rules.Rule) *pb.Rule {
	return &pb.Rule{
		Id:            r.ID,
		Kind:          string(r.Kind),
		Name:          r.Name,
		Action:        r.Action.String(),
		Days:          append([]string(nil), r.Days...),
		Start:         r.Start,
		End:           r.End,
		Category:      string(r.Category),
		MinConfidence: r.MinConfidence,
	}
}

func ruleFromPB(r *pb.Rule) (rules.Rule, error) {
	if r == nil {
		return rules.Rule{}, fmt.Errorf("rule is required: %w", rules.ErrInvalidRule)
	}
	action, err := rules.ParseAction(r.GetAction())
	if err != nil {
		return rules.Rule{}, fmt.Errorf("%v: %w", err, rules.ErrInvalidRule)
	}
	return rules.Rule{
		ID:            r.GetId(),
		Kind:          rules.Kind(r.GetKind()),
		Name:          r.GetName(),
		Action:        action,
		Days:          append([]string(nil), r.GetDays()...),
		Start:         r.GetStart(),
		End:           r.GetEnd(),
		Category:      classify.Category(r.GetCategory()),
		MinConfidence: r.GetMinConfidence(),
	}, nil
}

func eventToPB(e store.Event) *pb.Event {
	return &pb.Event{
		Id:                e.ID,
		TimestampUnixNano: e.Timestamp.UnixNano(),
		Host:              e.Host,
		Service:           e.Service,
		Profile:           e.Profile,
		PromptHash:        e.PromptHash,
		Preview:           e.Preview,
		Category:          e.Category,
		Confidence:        e.Confidence,
		Action:            e.Action,
		Source:            e.Source,
		Tier:              int32(e.Tier),
		DurationMicros:    e.Duration.Microseconds(),
		Mode:              e.Mode,
	}
}

func eventFromPB(e *pb.Event) store.Event {
	return store.Event{
		ID:         e.GetId(),
		Timestamp:  time.Unix(0, e.GetTimestampUnixNano()),
		Host:       e.GetHost(),
		Service:    e.GetService(),
		Profile:    e.GetProfile(),
		PromptHash: e.GetPromptHash(),
		Preview:    e.GetPreview(),
		Category:   e.GetCategory(),
		Confidence: e.GetConfidence(),
		Action:     e.GetAction(),
		Source:     e.GetSource(),
		Tier:       int(e.GetTier()),
		Duration:   time.Duration(e.GetDurationMicros()) * time.Microsecond,
		Mode:       e.GetMode(),
	}
}

func sessionToPB(s store.Session) *pb.Session {
	return &pb.Session{
		Id:                s.ID,
		Profile:           s.Profile,
		Username:          s.Username,
		ClientAddr:        s.ClientAddr,
		CreatedAtUnixNano: s.CreatedAt.UnixNano(),
		ExpiresAtUnixNano: s.ExpiresAt.UnixNano(),
	}
}

func sessionFromPB(s *pb.Session) store.Session {
	return store.Session{
		ID:         s.GetId(),
		Profile:    s.GetProfile(),
		Username:   s.GetUsername(),
		ClientAddr: s.GetClientAddr(),
		CreatedAt:  time.Unix(0, s.GetCreatedAtUnixNano()),
		ExpiresAt:  time.Unix(0, s.GetExpiresAtUnixNano()),
	}
}

func countsToPB(m map[string]int64) []*pb.Count {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*pb.Count, len(keys))
	for i, k := range keys {
		out[i] = &pb.Count{Key: k, Count: m[k]}
	}
	return out
}

func countsFromPB(cs []*pb.Count) map[string]int64 {
	m := make(map[string]int64, len(cs))
	for _, c := range cs {
		m[c.GetKey()] = c.GetCount()
	}
	return m
}

func statsToPB(s store.EventStats) *pb.EventStats {
	return &pb.EventStats{
		Total:      s.Total,
		ByAction:   countsToPB(s.ByAction),
		ByCategory: countsToPB(s.ByCategory),
	}
}

func statsFromPB(s *pb.EventStats) store.EventStats {
	return store.EventStats{
		Total:      s.GetTotal(),
		ByAction:   countsFromPB(s.GetByAction()),
		ByCategory: countsFromPB(s.GetByCategory()),
	}
}

func statusFromPB(r *pb.StatusResponse) Status {
	return Status{
		Mode:           r.GetMode(),
		Until:          fromUnixNano(r.GetUntilUnixNano()),
		Enabled:        r.GetEnabled(),
		Seq:            r.GetSeq(),
		ClassifierMode: r.GetClassifierMode(),
		KeywordRules:   int(r.GetKeywordRules()),
		RulesHash:      r.GetRulesHash(),
		CAFingerprint:  r.GetCaFingerprint(),
		Sites:          int(r.GetSites()),
		EventsDropped:  r.GetEventsDropped(),
		Last24h:        statsFromPB(r.GetLastDay()),
	}
}

func stateFromPB(r *pb.StateResponse) State {
	return State{Mode: r.GetMode(), Until: fromUnixNano(r.GetUntilUnixNano())}
}
