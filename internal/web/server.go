// Package web serves the local information pages: setup instructions, the
// root certificate download, health checks, and a preview of the block page.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Authority is the part of the CA the pages need.
type Authority interface {
	RootPEM() []byte
	RootDER() []byte
	Fingerprint() string
}

// StatusFunc reports live status for /healthz and the index page.
type StatusFunc func(ctx context.Context) Status

// Status is the JSON body of /healthz.
type Status struct {
	OK             bool   `json:"ok"`
	Filtering      string `json:"filtering"`
	ClassifierMode string `json:"classifier_mode"`
	ProxyAddr      string `json:"proxy_addr,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Server is the info page server.
type Server struct {
	addr   string
	ca     Authority
	status StatusFunc
	log    *slog.Logger
	srv    *http.Server
}

// NewServer builds the router. status may be nil.
func NewServer(addr string, ca Authority, status StatusFunc, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	if status == nil {
		status = func(context.Context) Status { return Status{OK: true} }
	}
	s := &Server{addr: addr, ca: ca, status: status, log: log}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.securityHeaders)
	r.Get("/", s.index)
	r.Get("/ca.pem", s.caPEM)
	r.Get("/ca.der", s.caDER)
	r.Get("/healthz", s.healthz)
	r.Get("/blocked", s.blockedPreview)
	return r
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.log.Info("info pages listening", "addr", ln.Addr().String())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
	}()

	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>chatwarden</title></head>
<body style="font-family: system-ui, sans-serif; max-width: 40rem; margin: 3rem auto;">
<h1>chatwarden</h1>
<p>Filtering: <strong>{{.Status.Filtering}}</strong> &middot; classifier: {{.Status.ClassifierMode}}</p>
<h2>Install the certificate</h2>
<p>Download <a href="/ca.pem">ca.pem</a> or <a href="/ca.der">ca.der</a> and add it to this device's trusted root authorities.</p>
<p>SHA-256 fingerprint:<br><code>{{.Fingerprint}}</code></p>
{{if .Status.ProxyAddr}}<h2>Configure the proxy</h2><p>Set the HTTP and HTTPS proxy to <code>{{.Status.ProxyAddr}}</code>.</p>{{end}}
</body>
</html>
`))

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Status      Status
		Fingerprint string
	}{s.status(r.Context()), s.ca.Fingerprint()}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.log.Warn("render index failed", "error", err)
	}
}

func (s *Server) caPEM(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/x-pem-file")
	w.Header().Set("Content-Disposition", `attachment; filename="chatwarden-ca.pem"`)
	_, _ = w.Write(s.ca.RootPEM())
}

func (s *Server) caDER(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/x-x509-ca-cert")
	w.Header().Set("Content-Disposition", `attachment; filename="chatwarden-ca.der"`)
	_, _ = w.Write(s.ca.RootDER())
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	st := s.status(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if !st.OK {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(st)
}

func (s *Server) blockedPreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	info := BlockInfo{
		Host:     "example.ai",
		Service:  "Example Chat",
		Category: r.URL.Query().Get("category"),
		Rule:     "preview",
	}
	if err := RenderBlockPage(w, info); err != nil {
		s.log.Warn("render block page failed", "error", err)
	}
}
