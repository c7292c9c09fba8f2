package mcp

import (
	"context"
	"errors"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// --- Input/Output types ---

// ClassifyInput defines parameters for the chatwarden_classify tool.
type ClassifyInput struct {
	Text    string `json:"text" jsonschema:"prompt text to classify"`
	Profile string `json:"profile,omitempty" jsonschema:"household profile whose rules apply, omit for defaults"`
}

// MatchOutput is one classifier match.
type MatchOutput struct {
	Category   string  `json:"category"`
	Confidence float32 `json:"confidence"`
	Tier       string  `json:"tier"`
	Pattern    string  `json:"pattern,omitempty"`
}

// ClassifyOutput contains the classification and the policy decision.
type ClassifyOutput struct {
	Action     string        `json:"action"`
	Rule       string        `json:"rule"`
	Matches    []MatchOutput `json:"matches"`
	Mode       string        `json:"mode"`
	DurationUS int64         `json:"duration_us"`
}

// CheckSiteInput defines parameters for the chatwarden_check_site tool.
type CheckSiteInput struct {
	Host string `json:"host" jsonschema:"hostname, optionally with a port"`
}

// CheckSiteOutput describes the registry decision for a host.
type CheckSiteOutput struct {
	Host      string `json:"host"`
	Monitored bool   `json:"monitored"`
	Service   string `json:"service"`
	Pattern   string `json:"pattern,omitempty"`
	Category  string `json:"category,omitempty"`
	Parser    string `json:"parser,omitempty"`
}

// StatusInput is empty, no parameters needed.
type StatusInput struct{}

// StatusOutput reports protection and classifier state.
type StatusOutput struct {
	Mode           string `json:"mode"`
	Until          string `json:"until,omitempty"`
	Enabled        bool   `json:"enabled"`
	ClassifierMode string `json:"classifier_mode"`
	KeywordRules   int    `json:"keyword_rules"`
}

// --- Handlers ---

func (s *Server) handleClassify(ctx context.Context, req *mcpsdk.CallToolRequest, input ClassifyInput) (*mcpsdk.CallToolResult, ClassifyOutput, error) {
	if input.Text == "" {
		return nil, ClassifyOutput{}, errors.New("text is required")
	}
	res := s.cfg.Classifier.Classify(input.Text)
	decision := s.cfg.Rules.Evaluate(res, s.now(), input.Profile)

	out := ClassifyOutput{
		Action:     decision.Action.String(),
		Rule:       decision.Source,
		Matches:    make([]MatchOutput, 0, len(res.Matches)),
		Mode:       string(res.Mode),
		DurationUS: res.Duration.Microseconds(),
	}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, MatchOutput{
			Category:   string(m.Category),
			Confidence: m.Confidence,
			Tier:       m.Tier.String(),
			Pattern:    m.Pattern,
		})
	}
	return nil, out, nil
}

func (s *Server) handleCheckSite(ctx context.Context, req *mcpsdk.CallToolRequest, input CheckSiteInput) (*mcpsdk.CallToolResult, CheckSiteOutput, error) {
	if input.Host == "" {
		return nil, CheckSiteOutput{}, errors.New("host is required")
	}
	out := CheckSiteOutput{Host: input.Host, Service: s.cfg.Sites.ServiceName(input.Host)}
	if e, ok := s.cfg.Sites.Lookup(input.Host); ok {
		out.Monitored = true
		out.Pattern = e.Pattern
		out.Category = e.Category
		out.Parser = e.ParserID
	}
	return nil, out, nil
}

func (s *Server) handleStatus(ctx context.Context, req *mcpsdk.CallToolRequest, input StatusInput) (*mcpsdk.CallToolResult, StatusOutput, error) {
	st, err := s.cfg.State.Current(ctx)
	if err != nil {
		return nil, StatusOutput{}, err
	}
	out := StatusOutput{
		Mode:           string(st.Mode),
		Enabled:        st.Enabled(),
		ClassifierMode: string(s.cfg.Classifier.Mode()),
		KeywordRules:   s.cfg.Classifier.KeywordRuleCount(),
	}
	if st.Until != nil {
		out.Until = st.Until.Format(time.RFC3339)
	}
	return nil, out, nil
}
