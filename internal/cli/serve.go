package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/admin"
	"github.com/ppiankov/chatwarden/internal/alert"
	"github.com/ppiankov/chatwarden/internal/ca"
	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/config"
	"github.com/ppiankov/chatwarden/internal/events"
	"github.com/ppiankov/chatwarden/internal/extract"
	"github.com/ppiankov/chatwarden/internal/maintenance"
	"github.com/ppiankov/chatwarden/internal/proxy"
	"github.com/ppiankov/chatwarden/internal/redact"
	"github.com/ppiankov/chatwarden/internal/rules"
	"github.com/ppiankov/chatwarden/internal/session"
	"github.com/ppiankov/chatwarden/internal/sites"
	"github.com/ppiankov/chatwarden/internal/state"
	"github.com/ppiankov/chatwarden/internal/web"
)

var (
	serveListen string
	serveNoWeb  bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Proxy listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoWeb, "no-web", false, "Do not serve the info pages")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the filtering proxy",
	Long: `Runs the forward proxy, the admin service, and the info pages.
Rules and keyword files are hot-reloaded. Pause and resume from other
processes are picked up through the state database.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveListen != "" {
		cfg.Listen = serveListen
	}
	log := cfg.NewLogger(os.Stderr)
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Without a usable root nothing can be intercepted; refuse to start
	// rather than silently tunnel everything.
	authority, err := ca.Ensure(cfg.DataDir)
	if err != nil {
		log.Error("certificate authority unavailable", "dir", cfg.DataDir, "error", err)
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	al, err := openAudit(cfg)
	if err != nil {
		return err
	}
	defer al.Close()

	ctx, cancel := signalContext()
	defer cancel()

	reg, err := sites.Open(ctx, st)
	if err != nil {
		return fmt.Errorf("failed to load sites: %w", err)
	}
	eng, err := rules.Open(cfg.Rules.Path)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}
	clf, err := buildClassifier(cfg, log)
	if err != nil {
		return err
	}
	red, err := redact.New(cfg.Redact)
	if err != nil {
		return fmt.Errorf("invalid redact config: %w", err)
	}

	cache := state.NewCache(st, log)
	if err := cache.Refresh(ctx); err != nil {
		log.Warn("initial state load failed, filtering stays enabled", "error", err)
	}
	ctrl := state.NewController(st, cache, al)
	sessions := session.NewManager(st, eng, cfg.Sessions.TTL, log)
	if err := sessions.Refresh(ctx); err != nil {
		log.Warn("stored sessions not loaded", "error", err)
	}
	rec := events.NewRecorder(st, red, events.Options{
		QueueSize:     cfg.Events.QueueSize,
		PreviewLength: cfg.Events.PreviewLength,
	}, log)
	alerts := alert.NewDispatcher(cfg.Alerts, log)

	pipe := &proxy.Pipeline{
		Sites:      reg,
		Extractor:  extract.New(),
		Classifier: clf,
		Rules:      eng,
		Gate:       cache,
		Sessions:   sessions,
		Events:     alert.Wrap(rec, alerts),
		Log:        log,
	}
	px := proxy.NewServer(proxy.Config{
		Addr:         cfg.Listen,
		MaxBodyBytes: cfg.Proxy.MaxBodyBytes,
		DialTimeout:  cfg.Proxy.DialTimeout,
	}, pipe, authority, log)

	adm := admin.New(admin.Deps{
		State:    ctrl,
		Cache:    cache,
		Sites:    reg,
		Rules:    eng,
		Events:   st,
		Sessions: sessions,
		Audit:    al,
		Info: func() admin.Info {
			return admin.Info{
				ClassifierMode: string(clf.Mode()),
				KeywordRules:   clf.KeywordRuleCount(),
				CAFingerprint:  authority.Fingerprint(),
				EventsDropped:  rec.Stats().Dropped,
			}
		},
		Log: log,
	})

	sched := maintenance.NewScheduler(log,
		maintenance.SessionSweep(sessions),
		maintenance.EventRetention(st, cfg.Events.Retention),
		maintenance.CAWatch(
			func() bool { return ca.Present(cfg.DataDir) },
			func() {
				log.Warn("root certificate files missing; devices cannot fetch the certificate until restart",
					"dir", cfg.DataDir)
			},
		),
	)

	reloader, err := config.NewReloader(map[string]func() error{
		cfg.Rules.Path: func() error {
			hash, err := eng.Reload()
			if err == nil {
				log.Info("rules reloaded", "hash", hash)
			}
			return err
		},
		cfg.Classifier.KeywordsPath: func() error {
			kt, err := classify.LoadKeywordTier(cfg.Classifier.KeywordsPath)
			if err != nil {
				return err
			}
			clf.SetKeywords(kt)
			log.Info("keywords reloaded", "rules", kt.Len())
			return nil
		},
	}, log)
	if err != nil {
		log.Warn("hot-reload disabled", "error", err)
	}

	errc := make(chan error, 4)
	go cache.Run(ctx, cfg.State.PollInterval)
	go sched.Run(ctx)
	if reloader != nil {
		go reloader.Run(ctx)
	}
	go func() { errc <- component("proxy", px.Start(ctx)) }()
	go func() { errc <- component("admin", adm.Serve(cfg.Admin.Listen)) }()
	if !serveNoWeb {
		w := web.NewServer(cfg.Web.Listen, authority, webStatus(cache, clf, cfg.Listen), log)
		go func() { errc <- component("web", w.Start(ctx)) }()
	}

	log.Info("chatwarden running",
		"proxy", cfg.Listen,
		"admin", cfg.Admin.Listen,
		"filtering", cache.Status().String(),
		"classifier", clf.Mode(),
		"sites", len(reg.List()),
		"ca_fingerprint", authority.Fingerprint(),
	)

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errc:
		cancel()
	}
	log.Info("shutting down")
	adm.GracefulStop()

	drainCtx, drainCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer drainCancel()
	if err := rec.Close(drainCtx); err != nil {
		log.Warn("event queue not fully drained", "error", err)
	}
	alerts.Wait()
	s := rec.Stats()
	log.Info("events", "written", s.Written, "dropped", s.Dropped, "failed", s.Failed)
	return runErr
}

func component(name string, err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

func webStatus(cache *state.Cache, clf *classify.Classifier, proxyAddr string) web.StatusFunc {
	return func(context.Context) web.Status {
		return web.Status{
			OK:             true,
			Filtering:      cache.Status().String(),
			ClassifierMode: string(clf.Mode()),
			ProxyAddr:      proxyAddr,
		}
	}
}

