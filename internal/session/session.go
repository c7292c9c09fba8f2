// Package session attributes intercepted requests to a household profile.
// A request is attributed by the Proxy-Authorization username when the
// client sends one, otherwise by a session bound to the client's address.
package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/chatwarden/internal/store"
)

// DefaultTTL is how long a session lasts when none is configured.
const DefaultTTL = 8 * time.Hour

// ErrUnknownProfile is returned when starting a session for a profile the
// rules do not define.
var ErrUnknownProfile = errors.New("unknown profile")

// Store persists sessions. *store.Store implements it.
type Store interface {
	SaveSession(ctx context.Context, s store.Session) error
	Session(ctx context.Context, id string) (store.Session, error)
	ListSessions(ctx context.Context, now time.Time) ([]store.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Profiles resolves usernames and validates profile names.
// *rules.Engine implements it.
type Profiles interface {
	ProfileForUser(username string) (string, bool)
	HasProfile(name string) bool
}

type binding struct {
	profile string
	expires time.Time
}

// bindings maps a client host to its newest live session. A published map
// is never mutated.
type bindings map[string]binding

// Manager starts, resolves, and expires sessions. Resolve reads an
// immutable snapshot of live sessions and never touches the store; the
// snapshot is rebuilt on Start, End, Refresh, and Cleanup.
type Manager struct {
	st       Store
	profiles Profiles
	ttl      time.Duration
	log      *slog.Logger
	now      func() time.Time

	live atomic.Pointer[bindings]
	// rebuild serializes snapshot writers.
	rebuild sync.Mutex
}

// NewManager returns a manager issuing sessions that last ttl. Call
// Refresh once to pick up sessions persisted by an earlier run.
func NewManager(st Store, profiles Profiles, ttl time.Duration, log *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{
		st:       st,
		profiles: profiles,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
	m.live.Store(&bindings{})
	return m
}

// Start binds clientAddr to profile until the session expires.
func (m *Manager) Start(ctx context.Context, clientAddr, profile, username string) (store.Session, error) {
	if !m.profiles.HasProfile(profile) {
		return store.Session{}, fmt.Errorf("%q: %w", profile, ErrUnknownProfile)
	}
	now := m.now()
	s := store.Session{
		ID:         uuid.NewString(),
		Profile:    profile,
		Username:   username,
		ClientAddr: ClientHost(clientAddr),
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.ttl),
	}
	if err := m.st.SaveSession(ctx, s); err != nil {
		return store.Session{}, err
	}
	m.refreshOrWarn(ctx)
	return s, nil
}

// End deletes a session.
func (m *Manager) End(ctx context.Context, id string) error {
	if _, err := m.st.Session(ctx, id); err != nil {
		return err
	}
	if err := m.st.DeleteSession(ctx, id); err != nil {
		return err
	}
	m.refreshOrWarn(ctx)
	return nil
}

// List returns live sessions.
func (m *Manager) List(ctx context.Context) ([]store.Session, error) {
	return m.st.ListSessions(ctx, m.now())
}

// Resolve returns the profile for a request, or "" to use the defaults.
// It is a map read: safe on the request path.
func (m *Manager) Resolve(remoteAddr, proxyAuth string) string {
	if user, ok := ProxyAuthUser(proxyAuth); ok {
		if p, ok := m.profiles.ProfileForUser(user); ok {
			return p
		}
	}
	host := ClientHost(remoteAddr)
	if host == "" {
		return ""
	}
	b, ok := (*m.live.Load())[host]
	if !ok || !m.now().Before(b.expires) {
		return ""
	}
	return b.profile
}

// Refresh rebuilds the snapshot from the store.
func (m *Manager) Refresh(ctx context.Context) error {
	m.rebuild.Lock()
	defer m.rebuild.Unlock()
	list, err := m.st.ListSessions(ctx, m.now())
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	next := make(bindings, len(list))
	for _, s := range list {
		// ListSessions is oldest first, so the newest session wins.
		next[s.ClientAddr] = binding{profile: s.Profile, expires: s.ExpiresAt}
	}
	m.live.Store(&next)
	return nil
}

// Live reports how many clients the snapshot binds.
func (m *Manager) Live() int {
	return len(*m.live.Load())
}

func (m *Manager) refreshOrWarn(ctx context.Context) {
	if err := m.Refresh(ctx); err != nil {
		m.log.Warn("session snapshot not rebuilt", "error", err)
	}
}

// Cleanup deletes expired sessions and rebuilds the snapshot.
func (m *Manager) Cleanup(ctx context.Context) (int64, error) {
	n, err := m.st.DeleteExpiredSessions(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	if err := m.Refresh(ctx); err != nil {
		return n, err
	}
	return n, nil
}

// ClientHost strips the port from a remote address.
func ClientHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.Trim(addr, "[]")
}

// ProxyAuthUser extracts the username from a Basic Proxy-Authorization
// header value.
func ProxyAuthUser(header string) (string, bool) {
	const prefix = "basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", false
	}
	user, _, _ := strings.Cut(string(raw), ":")
	if user == "" {
		return "", false
	}
	return user, true
}
