// Package proxy is the interception handler: a forward HTTP proxy that
// terminates TLS for monitored AI chat hosts, inspects prompts and streamed
// replies, and forwards, warns, or substitutes a block response.
package proxy

import (
	"bufio"
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"strings"
	"sync"
	"time"

	"github.com/ppiankov/chatwarden/internal/extract"
	"github.com/ppiankov/chatwarden/internal/rules"
)

// DefaultMaxBodyBytes bounds the request body read for inspection. Larger
// bodies are forwarded without content inspection.
const DefaultMaxBodyBytes = 10 << 20

// Config holds proxy server configuration.
type Config struct {
	Addr         string
	MaxBodyBytes int64
	DialTimeout  time.Duration

	// Transport forwards intercepted and plain requests. Nil uses a clone
	// of http.DefaultTransport.
	Transport http.RoundTripper
	// Dial opens raw CONNECT tunnels. Nil uses a net.Dialer.
	Dial func(ctx context.Context, network, addr string) (net.Conn, error)
}

// LeafSource supplies the TLS configuration presented to clients for an
// intercepted host. *ca.Authority implements it.
type LeafSource interface {
	TLSConfig(fallbackHost string) *tls.Config
}

// Server is a forward HTTP proxy. Plain HTTP requests are inspected in
// place; CONNECT to a monitored host is TLS-terminated with a leaf from the
// local root, everything else is tunnelled untouched.
type Server struct {
	cfg  Config
	pipe *Pipeline
	ca   LeafSource
	log  *slog.Logger
	rp   *httputil.ReverseProxy
	srv  *http.Server

	mu    sync.Mutex
	conns map[net.Conn]struct{} // hijacked client connections
	addr  net.Addr
}

type inspectKey struct{}

// inspection travels on the request context from the request-side verdict
// to the response-side stream guard.
type inspection struct {
	host    string
	profile string
	action  rules.Action
}

// NewServer wires a proxy around pipe. A nil ca disables TLS interception:
// every CONNECT is tunnelled.
func NewServer(cfg Config, pipe *Pipeline, ca LeafSource, log *slog.Logger) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	if cfg.Dial == nil {
		d := &net.Dialer{Timeout: cfg.DialTimeout}
		cfg.Dial = d.DialContext
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		cfg:   cfg,
		pipe:  pipe,
		ca:    ca,
		log:   log,
		conns: make(map[net.Conn]struct{}),
	}
	s.rp = &httputil.ReverseProxy{
		Rewrite:        s.rewrite,
		Transport:      cfg.Transport,
		FlushInterval:  -1,
		ModifyResponse: s.modifyResponse,
		ErrorHandler:   s.upstreamError,
		ErrorLog:       slog.NewLogLogger(log.Handler(), slog.LevelDebug),
	}
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 30 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelDebug),
	}
	return s
}

// Start listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts proxy connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()
	s.log.Info("proxy listening", "addr", ln.Addr().String(), "tls_interception", s.ca != nil)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	err := s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting, waits for in-flight plain requests, and closes
// hijacked tunnels and intercepted connections.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	s.mu.Lock()
	for c := range s.conns {
		_ = c.Close()
	}
	s.conns = make(map[net.Conn]struct{})
	s.mu.Unlock()
	return err
}

// Addr returns the bound address once serving, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addr != nil {
		return s.addr.String()
	}
	return s.srv.Addr
}

func (s *Server) track(c net.Conn, add bool) {
	s.mu.Lock()
	if add {
		s.conns[c] = struct{}{}
	} else {
		delete(s.conns, c)
	}
	s.mu.Unlock()
}

// ServeHTTP dispatches incoming requests to the appropriate handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodConnect {
		s.handleConnect(w, r)
		return
	}
	if !r.URL.IsAbs() {
		http.Error(w, "chatwarden is a forward proxy; configure it as your HTTP proxy", http.StatusBadRequest)
		return
	}
	s.handleHTTP(w, r)
}

// handleHTTP inspects a request to a monitored host and forwards,
// forwards with a warning, or answers with the block response. It serves
// both plain proxy requests and requests decrypted from a CONNECT.
func (s *Server) handleHTTP(w http.ResponseWriter, r *http.Request) {
	host := hostOnly(r.URL.Host)
	if !s.pipe.Enabled() || !s.pipe.Monitored(host) {
		s.rp.ServeHTTP(w, r)
		return
	}

	body, err := s.readBody(r)
	if err != nil {
		s.log.Debug("request body read failed", "host", host, "error", err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	v := s.pipe.Inspect(r.Context(), Input{
		Host:        host,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
		RemoteAddr:  r.RemoteAddr,
		ProxyAuth:   r.Header.Get("Proxy-Authorization"),
		Direction:   extract.Request,
	})
	s.pipe.Record(v)

	if v.Blocked() {
		s.log.Info("request blocked", "host", host, "service", v.Service, "rule", v.Decision.Source, "profile", v.Profile)
		writeBlock(w, r, v)
		return
	}
	if v.Decision.Action == rules.Warn {
		s.log.Info("request warned", "host", host, "service", v.Service, "rule", v.Decision.Source, "profile", v.Profile)
	}

	ctx := context.WithValue(r.Context(), inspectKey{}, &inspection{
		host:    host,
		profile: v.Profile,
		action:  v.Decision.Action,
	})
	s.rp.ServeHTTP(w, r.WithContext(ctx))
}

// readBody buffers up to MaxBodyBytes for inspection and restores r.Body
// so the original bytes are forwarded. An oversized body is forwarded
// unread and nil is returned. Compressed bodies are decoded for inspection
// only.
func (s *Server) readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	limit := s.cfg.MaxBodyBytes
	buf, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(buf)) > limit {
		r.Body = struct {
			io.Reader
			io.Closer
		}{io.MultiReader(bytes.NewReader(buf), r.Body), r.Body}
		s.log.Debug("request body over inspection limit", "host", r.URL.Host, "limit", limit)
		return nil, nil
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(buf))
	r.ContentLength = int64(len(buf))
	r.GetBody = func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(buf)), nil }

	if enc := r.Header.Get("Content-Encoding"); enc != "" {
		decoded, err := decodeBody(buf, enc, limit)
		if err != nil {
			s.log.Debug("request body decode failed", "host", r.URL.Host, "encoding", enc, "error", err)
			return nil, nil
		}
		return decoded, nil
	}
	return buf, nil
}

func decodeBody(buf []byte, encoding string, limit int64) ([]byte, error) {
	var rd io.Reader
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(bytes.NewReader(buf))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		rd = zr
	case "deflate":
		zr, err := zlib.NewReader(bytes.NewReader(buf))
		if err != nil {
			// Some clients send raw deflate without the zlib wrapper.
			rd = flate.NewReader(bytes.NewReader(buf))
		} else {
			defer zr.Close()
			rd = zr
		}
	case "identity":
		return buf, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
	out, err := io.ReadAll(io.LimitReader(rd, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("decoded body exceeds %d bytes", limit)
	}
	return out, nil
}

func (s *Server) rewrite(pr *httputil.ProxyRequest) {
	pr.Out.Host = pr.In.Host
	if _, ok := pr.In.Context().Value(inspectKey{}).(*inspection); ok {
		// Let the transport negotiate and decode compression so the
		// stream guard reads plain text.
		pr.Out.Header.Del("Accept-Encoding")
	}
}

func (s *Server) modifyResponse(resp *http.Response) error {
	insp, ok := resp.Request.Context().Value(inspectKey{}).(*inspection)
	if !ok {
		return nil
	}
	if insp.action == rules.Warn {
		resp.Header.Set("X-Chatwarden-Action", "warn")
	}
	if g, ok := newStreamGuard(resp.Body, s.pipe, resp.Header.Get("Content-Type"), insp.host, insp.profile); ok {
		resp.Body = g
		resp.ContentLength = -1
		resp.Header.Del("Content-Length")
	}
	return nil
}

func (s *Server) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.log.Warn("upstream request failed", "host", r.URL.Host, "error", err)
	http.Error(w, "upstream unreachable", http.StatusBadGateway)
}

// handleConnect tunnels or intercepts an HTTPS CONNECT. Only the hostname
// is needed to decide.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	host := hostOnly(r.Host)
	if s.ca == nil || !s.pipe.Enabled() || !s.pipe.Monitored(host) {
		s.tunnel(w, r)
		return
	}
	s.intercept(w, r, host)
}

var connectEstablished = []byte("HTTP/1.1 200 Connection Established\r\n\r\n")

func hijack(w http.ResponseWriter) (net.Conn, error) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		return nil, errors.New("hijacking not supported")
	}
	conn, rw, err := hj.Hijack()
	if err != nil {
		return nil, err
	}
	if rw != nil && rw.Reader.Buffered() > 0 {
		return &bufferedConn{Conn: conn, r: rw.Reader}, nil
	}
	return conn, nil
}

// tunnel relays bytes between the client and target without looking at
// them.
func (s *Server) tunnel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.DialTimeout)
	targetConn, err := s.cfg.Dial(ctx, "tcp", withPort(r.Host))
	cancel()
	if err != nil {
		http.Error(w, fmt.Sprintf("tunnel error: %v", err), http.StatusBadGateway)
		return
	}

	clientConn, err := hijack(w)
	if err != nil {
		_ = targetConn.Close()
		http.Error(w, fmt.Sprintf("hijack error: %v", err), http.StatusInternalServerError)
		return
	}
	if _, err := clientConn.Write(connectEstablished); err != nil {
		_ = clientConn.Close()
		_ = targetConn.Close()
		return
	}
	s.track(clientConn, true)

	// Bidirectional tunnel
	var once sync.Once
	done := func() {
		once.Do(func() {
			_ = targetConn.Close()
			_ = clientConn.Close()
			s.track(clientConn, false)
		})
	}
	go func() {
		defer done()
		_, _ = io.Copy(targetConn, clientConn)
	}()
	go func() {
		defer done()
		_, _ = io.Copy(clientConn, targetConn)
	}()
}

// intercept terminates the client's TLS with a leaf for host and serves
// the decrypted HTTP/1.1 requests through handleHTTP.
func (s *Server) intercept(w http.ResponseWriter, r *http.Request, host string) {
	clientConn, err := hijack(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("hijack error: %v", err), http.StatusInternalServerError)
		return
	}
	if _, err := clientConn.Write(connectEstablished); err != nil {
		_ = clientConn.Close()
		return
	}

	tlsConn := tls.Server(clientConn, s.ca.TLSConfig(host))
	hsCtx, cancel := context.WithTimeout(context.Background(), s.cfg.DialTimeout)
	err = tlsConn.HandshakeContext(hsCtx)
	cancel()
	if err != nil {
		// Usually a device that does not trust the root yet.
		s.log.Debug("client tls handshake failed", "host", host, "client", r.RemoteAddr, "error", err)
		_ = tlsConn.Close()
		return
	}

	ln := newConnListener(tlsConn)
	s.track(ln.conn, true)
	defer s.track(ln.conn, false)

	authority := withPort(r.Host)
	remote := r.RemoteAddr
	proxyAuth := r.Header.Get("Proxy-Authorization")
	inner := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		req.URL.Scheme = "https"
		req.URL.Host = authority
		if req.Host == "" {
			req.Host = r.Host
		}
		req.RemoteAddr = remote
		if proxyAuth != "" && req.Header.Get("Proxy-Authorization") == "" {
			req.Header.Set("Proxy-Authorization", proxyAuth)
		}
		s.handleHTTP(w, req)
	})

	srv := &http.Server{
		Handler:           inner,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelDebug),
	}
	_ = srv.Serve(ln)
}

// hostOnly strips a port and lowercases.
func hostOnly(hostport string) string {
	h := hostport
	if sh, _, err := net.SplitHostPort(hostport); err == nil {
		h = sh
	}
	return strings.ToLower(strings.Trim(h, "[]"))
}

func withPort(hostport string) string {
	if _, _, err := net.SplitHostPort(hostport); err == nil {
		return hostport
	}
	return net.JoinHostPort(strings.Trim(hostport, "[]"), "443")
}

// bufferedConn replays bytes the HTTP server read ahead before the hijack.
type bufferedConn struct {
	net.Conn
	r *bufio.Reader
}

func (c *bufferedConn) Read(p []byte) (int, error) { return c.r.Read(p) }
