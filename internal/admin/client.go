package admin

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pb "github.com/ppiankov/chatwarden/api/proto/chatwarden/admin/v1"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/sites"
	"github.com/ppiankov/chatwarden/internal/store"
)

// Client calls a running admin service and decodes replies into domain
// types. Every call carries actor.
type Client struct {
	conn  *grpc.ClientConn
	rpc   pb.AdminServiceClient
	actor string
}

// Dial connects to the admin service at addr. Extra options are appended
// after the defaults.
func Dial(addr, actor string, opts ...grpc.DialOption) (*Client, error) {
	if actor == "" {
		actor = DefaultActor
	}
	base := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	conn, err := grpc.NewClient(addr, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to admin service at %s: %w", addr, err)
	}
	return &Client{conn: conn, rpc: pb.NewAdminServiceClient(conn), actor: actor}, nil
}

// Close releases the connection.
func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) ctx(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, ActorHeader, c.actor)
}

func (c *Client) Status(ctx context.Context) (Status, error) {
	resp, err := c.rpc.Status(c.ctx(ctx), &pb.StatusRequest{})
	if err != nil {
		return Status{}, err
	}
	return statusFromPB(resp), nil
}

// Pause stops filtering for dur, a Go duration; empty pauses until Resume.
func (c *Client) Pause(ctx context.Context, dur string) (State, error) {
	resp, err := c.rpc.Pause(c.ctx(ctx), &pb.PauseRequest{Duration: dur})
	if err != nil {
		return State{}, err
	}
	return stateFromPB(resp), nil
}

func (c *Client) Resume(ctx context.Context) (State, error) {
	resp, err := c.rpc.Resume(c.ctx(ctx), &pb.ResumeRequest{})
	if err != nil {
		return State{}, err
	}
	return stateFromPB(resp), nil
}

func (c *Client) Disable(ctx context.Context) (State, error) {
	resp, err := c.rpc.Disable(c.ctx(ctx), &pb.DisableRequest{})
	if err != nil {
		return State{}, err
	}
	return stateFromPB(resp), nil
}

func (c *Client) ListSites(ctx context.Context) ([]sites.Entry, error) {
	resp, err := c.rpc.ListSites(c.ctx(ctx), &pb.ListSitesRequest{})
	if err != nil {
		return nil, err
	}
	out := make([]sites.Entry, len(resp.GetSites()))
	for i, s := range resp.GetSites() {
		out[i] = siteFromPB(s)
	}
	return out, nil
}

func (c *Client) AddSite(ctx context.Context, e sites.Entry) (sites.Entry, error) {
	resp, err := c.rpc.AddSite(c.ctx(ctx), &pb.AddSiteRequest{Site: siteToPB(e)})
	if err != nil {
		return sites.Entry{}, err
	}
	return siteFromPB(resp.GetSite()), nil
}

func (c *Client) RemoveSite(ctx context.Context, pattern string) error {
	_, err := c.rpc.RemoveSite(c.ctx(ctx), &pb.SiteRequest{Pattern: pattern})
	return err
}

func (c *Client) EnableSite(ctx context.Context, pattern string) (sites.Entry, error) {
	resp, err := c.rpc.EnableSite(c.ctx(ctx), &pb.SiteRequest{Pattern: pattern})
	if err != nil {
		return sites.Entry{}, err
	}
	return siteFromPB(resp.GetSite()), nil
}

func (c *Client) DisableSite(ctx context.Context, pattern string) (sites.Entry, error) {
	resp, err := c.rpc.DisableSite(c.ctx(ctx), &pb.SiteRequest{Pattern: pattern})
	if err != nil {
		return sites.Entry{}, err
	}
	return siteFromPB(resp.GetSite()), nil
}

func (c *Client) RestoreSites(ctx context.Context) error {
	_, err := c.rpc.RestoreSites(c.ctx(ctx), &pb.RestoreSitesRequest{})
	return err
}

// ListRules returns the rules of profile (installation defaults when
// empty) and the names of every profile.
func (c *Client) ListRules(ctx context.Context, profile string) ([]rules.Rule, []string, error) {
	resp, err := c.rpc.ListRules(c.ctx(ctx), &pb.ListRulesRequest{Profile: profile})
	if err != nil {
		return nil, nil, err
	}
	out := make([]rules.Rule, 0, len(resp.GetRules()))
	for _, r := range resp.GetRules() {
		rule, err := ruleFromPB(r)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, rule)
	}
	return out, resp.GetProfiles(), nil
}

func (c *Client) CreateRule(ctx context.Context, profile string, r rules.Rule) (rules.Rule, error) {
	resp, err := c.rpc.CreateRule(c.ctx(ctx), &pb.CreateRuleRequest{Profile: profile, Rule: ruleToPB(r)})
	if err != nil {
		return rules.Rule{}, err
	}
	return ruleFromPB(resp.GetRule())
}

func (c *Client) UpdateRule(ctx context.Context, id string, r rules.Rule) (rules.Rule, error) {
	resp, err := c.rpc.UpdateRule(c.ctx(ctx), &pb.UpdateRuleRequest{Id: id, Rule: ruleToPB(r)})
	if err != nil {
		return rules.Rule{}, err
	}
	return ruleFromPB(resp.GetRule())
}

func (c *Client) DeleteRule(ctx context.Context, id string) error {
	_, err := c.rpc.DeleteRule(c.ctx(ctx), &pb.DeleteRuleRequest{Id: id})
	return err
}

func (c *Client) RecentEvents(ctx context.Context, limit int) ([]store.Event, error) {
	resp, err := c.rpc.RecentEvents(c.ctx(ctx), &pb.RecentEventsRequest{Limit: int32(limit)})
	if err != nil {
		return nil, err
	}
	out := make([]store.Event, len(resp.GetEvents()))
	for i, e := range resp.GetEvents() {
		out[i] = eventFromPB(e)
	}
	return out, nil
}

func (c *Client) StartSession(ctx context.Context, clientAddr, profile, username string) (store.Session, error) {
	resp, err := c.rpc.StartSession(c.ctx(ctx), &pb.StartSessionRequest{
		ClientAddr: clientAddr,
		Profile:    profile,
		Username:   username,
	})
	if err != nil {
		return store.Session{}, err
	}
	return sessionFromPB(resp.GetSession()), nil
}

func (c *Client) EndSession(ctx context.Context, id string) error {
	_, err := c.rpc.EndSession(c.ctx(ctx), &pb.EndSessionRequest{Id: id})
	return err
}

func (c *Client) ListSessions(ctx context.Context) ([]store.Session, error) {
	resp, err := c.rpc.ListSessions(c.ctx(ctx), &pb.ListSessionsRequest{})
	if err != nil {
		return nil, err
	}
	out := make([]store.Session, len(resp.GetSessions()))
	for i, s := range resp.GetSessions() {
		out[i] = sessionFromPB(s)
	}
	return out, nil
}
