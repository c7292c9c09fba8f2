// Package admin exposes the administrative surface of a running chatwarden
// over gRPC: protection state, sites, rules, sessions, and recent events.
// Every mutation is attributed to the caller named in the actor metadata
// and written to the audit trail.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/ppiankov/chatwarden/api/proto/chatwarden/admin/v1"
	"github.com/ppiankov/chatwarden/internal/audit"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/session"
	"github.com/ppiankov/chatwarden/internal/sites"
	"github.com/ppiankov/chatwarden/internal/state"
	"github.com/ppiankov/chatwarden/internal/store"
)

const (
	// DefaultActor attributes calls that carry no actor metadata.
	DefaultActor = "admin"
	// ActorHeader carries the already-authenticated caller identity.
	ActorHeader = "x-chatwarden-actor"
)

// EventSource reads recorded events. *store.Store implements it.
type EventSource interface {
	RecentEvents(ctx context.Context, limit int) ([]store.Event, error)
	EventStats(ctx context.Context, since time.Time) (store.EventStats, error)
}

// Info reports runtime details for Status.
type Info struct {
	ClassifierMode string
	KeywordRules   int
	CAFingerprint  string
	EventsDropped  int64
}

// Deps are the components the service operates on.
type Deps struct {
	State    *state.Controller
	Cache    *state.Cache
	Sites    *sites.Registry
	Rules    *rules.Engine
	Events   EventSource
	Sessions *session.Manager
	Audit    audit.Recorder
	Info     func() Info
	Log      *slog.Logger
}

// Server implements pb.AdminServiceServer.
type Server struct {
	pb.UnimplementedAdminServiceServer
	d          Deps
	grpcServer *grpc.Server
}

// New registers the admin service on a fresh gRPC server.
func New(d Deps) *Server {
	if d.Audit == nil {
		d.Audit = audit.Discard
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	s := &Server{d: d}
	s.grpcServer = grpc.NewServer(grpc.ChainUnaryInterceptor(s.logCalls))
	pb.RegisterAdminServiceServer(s.grpcServer, s)
	return s
}

// Serve listens on addr. Blocks until stopped.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.ServeOn(lis)
}

// ServeOn serves on an existing listener.
func (s *Server) ServeOn(lis net.Listener) error {
	s.d.Log.Info("admin listening", "addr", lis.Addr().String())
	return s.grpcServer.Serve(lis)
}

// GracefulStop gracefully shuts down the gRPC server.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

func (s *Server) logCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	lvl := slog.LevelDebug
	if err != nil {
		lvl = slog.LevelWarn
	}
	s.d.Log.Log(ctx, lvl, "admin call", "method", info.FullMethod, "actor", actorFrom(ctx),
		"duration", time.Since(start), "error", err)
	return resp, err
}

// actorFrom reads the caller identity from incoming metadata.
func actorFrom(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(ActorHeader); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return DefaultActor
}

func (s *Server) audit(ctx context.Context, op, target string, err error) {
	e := audit.Entry{Actor: actorFrom(ctx), Operation: op, Target: target}
	if err != nil {
		e.Result = audit.ResultFailed
		e.Detail = err.Error()
	}
	if rerr := s.d.Audit.Record(e); rerr != nil {
		s.d.Log.Warn("audit write failed", "operation", op, "error", rerr)
	}
}

// toStatus maps domain errors onto gRPC codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var code codes.Code
	switch {
	case errors.Is(err, sites.ErrNotFound), errors.Is(err, rules.ErrNotFound),
		errors.Is(err, rules.ErrNoProfile), errors.Is(err, store.ErrNotFound),
		errors.Is(err, session.ErrUnknownProfile):
		code = codes.NotFound
	case errors.Is(err, sites.ErrDuplicate), errors.Is(err, rules.ErrDuplicate):
		code = codes.AlreadyExists
	case errors.Is(err, sites.ErrBundled), errors.Is(err, state.ErrInvalidTransition):
		code = codes.FailedPrecondition
	case errors.Is(err, sites.ErrInvalidEntry), errors.Is(err, rules.ErrInvalidRule):
		code = codes.InvalidArgument
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

func (s *Server) Status(ctx context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	st, err := s.d.State.Current(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.StatusResponse{
		Mode:          string(st.Mode),
		UntilUnixNano: unixNano(st.Until),
		Enabled:       st.Enabled(),
		Sites:         int32(len(s.d.Sites.List())),
	}
	if s.d.Cache != nil {
		resp.Seq = s.d.Cache.Seq()
	}
	if s.d.Rules != nil {
		resp.RulesHash = s.d.Rules.Hash()
	}
	if s.d.Info != nil {
		info := s.d.Info()
		resp.ClassifierMode = info.ClassifierMode
		resp.KeywordRules = int32(info.KeywordRules)
		resp.CaFingerprint = info.CAFingerprint
		resp.EventsDropped = info.EventsDropped
	}
	if s.d.Events != nil {
		stats, err := s.d.Events.EventStats(ctx, time.Now().Add(-24*time.Hour))
		if err != nil {
			s.d.Log.Warn("event stats unavailable", "error", err)
		}
		resp.LastDay = statsToPB(stats)
	}
	return resp, nil
}

func stateResponse(st state.Status) *pb.StateResponse {
	return &pb.StateResponse{Mode: string(st.Mode), UntilUnixNano: unixNano(st.Until)}
}

func (s *Server) Pause(ctx context.Context, req *pb.PauseRequest) (*pb.StateResponse, error) {
	var until *time.Time
	if d := req.GetDuration(); d != "" {
		dur, err := time.ParseDuration(d)
		if err != nil || dur <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "invalid pause duration %q", d)
		}
		t := time.Now().Add(dur)
		until = &t
	}
	st, err := s.d.State.Pause(ctx, until, actorFrom(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return stateResponse(st), nil
}

func (s *Server) Resume(ctx context.Context, _ *pb.ResumeRequest) (*pb.StateResponse, error) {
	st, err := s.d.State.Resume(ctx, actorFrom(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return stateResponse(st), nil
}

func (s *Server) Disable(ctx context.Context, _ *pb.DisableRequest) (*pb.StateResponse, error) {
	st, err := s.d.State.Disable(ctx, actorFrom(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return stateResponse(st), nil
}

func (s *Server) ListSites(ctx context.Context, _ *pb.ListSitesRequest) (*pb.ListSitesResponse, error) {
	list := s.d.Sites.List()
	resp := &pb.ListSitesResponse{Sites: make([]*pb.Site, len(list))}
	for i, e := range list {
		resp.Sites[i] = siteToPB(e)
	}
	return resp, nil
}

func (s *Server) AddSite(ctx context.Context, req *pb.AddSiteRequest) (*pb.SiteResponse, error) {
	in := siteFromPB(req.GetSite())
	e, err := s.d.Sites.Add(ctx, in)
	s.audit(ctx, "site.add", in.Pattern, err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SiteResponse{Site: siteToPB(e)}, nil
}

func (s *Server) RemoveSite(ctx context.Context, req *pb.SiteRequest) (*pb.Empty, error) {
	err := s.d.Sites.Remove(ctx, req.GetPattern())
	s.audit(ctx, "site.remove", req.GetPattern(), err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) EnableSite(ctx context.Context, req *pb.SiteRequest) (*pb.SiteResponse, error) {
	return s.setSite(ctx, req.GetPattern(), true)
}

func (s *Server) DisableSite(ctx context.Context, req *pb.SiteRequest) (*pb.SiteResponse, error) {
	return s.setSite(ctx, req.GetPattern(), false)
}

func (s *Server) setSite(ctx context.Context, pattern string, enabled bool) (*pb.SiteResponse, error) {
	op := "site.disable"
	fn := s.d.Sites.Disable
	if enabled {
		op = "site.enable"
		fn = s.d.Sites.Enable
	}
	err := fn(ctx, pattern)
	s.audit(ctx, op, pattern, err)
	if err != nil {
		return nil, toStatus(err)
	}
	e, err := s.d.Sites.Get(pattern)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SiteResponse{Site: siteToPB(e)}, nil
}

func (s *Server) RestoreSites(ctx context.Context, _ *pb.RestoreSitesRequest) (*pb.Empty, error) {
	err := s.d.Sites.RestoreDefaults(ctx)
	s.audit(ctx, "site.restore", "bundled", err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ListRules(ctx context.Context, req *pb.ListRulesRequest) (*pb.ListRulesResponse, error) {
	rs, err := s.d.Rules.Rules(req.GetProfile())
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListRulesResponse{Rules: make([]*pb.Rule, len(rs))}
	for i, r := range rs {
		resp.Rules[i] = ruleToPB(r)
	}
	for _, p := range s.d.Rules.Profiles() {
		resp.Profiles = append(resp.Profiles, p.Name)
	}
	return resp, nil
}

func (s *Server) CreateRule(ctx context.Context, req *pb.CreateRuleRequest) (*pb.RuleResponse, error) {
	in, err := ruleFromPB(req.GetRule())
	if err != nil {
		s.audit(ctx, "rule.create", req.GetRule().GetId(), err)
		return nil, toStatus(err)
	}
	r, err := s.d.Rules.CreateRule(req.GetProfile(), in)
	target := r.ID
	if target == "" {
		target = in.ID
	}
	s.audit(ctx, "rule.create", target, err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RuleResponse{Rule: ruleToPB(r)}, nil
}

func (s *Server) UpdateRule(ctx context.Context, req *pb.UpdateRuleRequest) (*pb.RuleResponse, error) {
	in, err := ruleFromPB(req.GetRule())
	if err == nil {
		in, err = s.d.Rules.UpdateRule(req.GetId(), in)
	}
	s.audit(ctx, "rule.update", req.GetId(), err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RuleResponse{Rule: ruleToPB(in)}, nil
}

func (s *Server) DeleteRule(ctx context.Context, req *pb.DeleteRuleRequest) (*pb.Empty, error) {
	err := s.d.Rules.DeleteRule(req.GetId())
	s.audit(ctx, "rule.delete", req.GetId(), err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) RecentEvents(ctx context.Context, req *pb.RecentEventsRequest) (*pb.RecentEventsResponse, error) {
	evs, err := s.d.Events.RecentEvents(ctx, int(req.GetLimit()))
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.RecentEventsResponse{Events: make([]*pb.Event, len(evs))}
	for i, e := range evs {
		resp.Events[i] = eventToPB(e)
	}
	return resp, nil
}

func (s *Server) StartSession(ctx context.Context, req *pb.StartSessionRequest) (*pb.SessionResponse, error) {
	sess, err := s.d.Sessions.Start(ctx, req.GetClientAddr(), req.GetProfile(), req.GetUsername())
	s.audit(ctx, "session.start", req.GetProfile()+"@"+req.GetClientAddr(), err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionResponse{Session: sessionToPB(sess)}, nil
}

func (s *Server) EndSession(ctx context.Context, req *pb.EndSessionRequest) (*pb.Empty, error) {
	err := s.d.Sessions.End(ctx, req.GetId())
	s.audit(ctx, "session.end", req.GetId(), err)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ListSessions(ctx context.Context, _ *pb.ListSessionsRequest) (*pb.ListSessionsResponse, error) {
	list, err := s.d.Sessions.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListSessionsResponse{Sessions: make([]*pb.Session, len(list))}
	for i, sess := range list {
		resp.Sessions[i] = sessionToPB(sess)
	}
	return resp, nil
}
