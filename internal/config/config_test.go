package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != "127.0.0.1:8080" || cfg.State.PollInterval != 500*time.Millisecond {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Rules.Path != filepath.Join(cfg.DataDir, "rules.yaml") {
		t.Errorf("rules path = %q", cfg.Rules.Path)
	}
}

func TestLoadResolvesPathsAgainstDataDir(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "config.yaml", "data_dir: "+dir+"\nclassifier:\n  keywords_path: /etc/kw.yaml\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Path != filepath.Join(dir, "rules.yaml") {
		t.Errorf("rules path = %q", cfg.Rules.Path)
	}
	if cfg.Classifier.ModelPath != filepath.Join(dir, "model", "model.onnx") {
		t.Errorf("model path = %q", cfg.Classifier.ModelPath)
	}
	if cfg.Classifier.KeywordsPath != "/etc/kw.yaml" {
		t.Errorf("explicit keywords path overwritten: %q", cfg.Classifier.KeywordsPath)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "config.yaml", `
listen: ":3128"
state:
  poll_interval: 2s
events:
  retention: 24h
log:
  level: debug
  format: json
redact:
  literals: ["Sam Smith"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":3128" || cfg.State.PollInterval != 2*time.Second || cfg.Events.Retention != 24*time.Hour {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Events.QueueSize != 1024 || cfg.Admin.Listen != "127.0.0.1:8081" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if len(cfg.Redact.Literals) != 1 {
		t.Errorf("redact = %+v", cfg.Redact)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"yaml":      "listen: [unclosed",
		"level":     "log:\n  level: loud\n",
		"format":    "log:\n  format: xml\n",
		"threshold": "classifier:\n  unsafe_threshold: 1.5\n",
		"poll":      "state:\n  poll_interval: 0s\n",
		"alert":     "alerts:\n  - format: slack\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeTempFile(t, dir, name+".yaml", body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultYAMLParses(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(DefaultYAML()), cfg); err != nil {
		t.Fatalf("DefaultYAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultYAML invalid: %v", err)
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var b strings.Builder
	cfg := Default()
	cfg.Log.Format = "json"
	cfg.NewLogger(&b).Info("hello", "k", "v")
	if !strings.HasPrefix(b.String(), "{") {
		t.Errorf("json output = %q", b.String())
	}
	b.Reset()
	cfg.Log = LogConfig{Level: "warn", Format: "text"}
	cfg.NewLogger(&b).Info("hidden")
	if b.Len() != 0 {
		t.Errorf("info logged at warn level: %q", b.String())
	}
}

func TestReloaderDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	rules := writeTempFile(t, dir, "rules.yaml", "rules: []\n")
	var calls atomic.Int32
	r, err := NewReloader(map[string]func() error{
		rules:                                   func() error { calls.Add(1); return nil },
		filepath.Join(dir, "missing", "x.yaml"): func() error { return nil },
	}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	if r.Watching() != 1 {
		t.Errorf("watching %d files, want 1", r.Watching())
	}
	r.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 5; i++ {
		writeTempFile(t, dir, "rules.yaml", "rules: []\n# edit\n")
		time.Sleep(5 * time.Millisecond)
	}
	writeTempFile(t, dir, "unrelated.txt", "x")

	deadline := time.Now().Add(3 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("reload calls = %d, want 1", got)
	}
}

func TestReloaderKeepsRunningAfterFailure(t *testing.T) {
	dir := t.TempDir()
	kw := writeTempFile(t, dir, "keywords.yaml", "rules: []\n")
	var calls atomic.Int32
	r, err := NewReloader(map[string]func() error{
		kw: func() error {
			if calls.Add(1) == 1 {
				return errors.New("bad yaml")
			}
			return nil
		},
	}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	r.debounce = 20 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)
	time.Sleep(50 * time.Millisecond)

	for want := int32(1); want <= 2; want++ {
		writeTempFile(t, dir, "keywords.yaml", "rules: []\n")
		deadline := time.Now().Add(3 * time.Second)
		for calls.Load() < want && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		if calls.Load() < want {
			t.Fatalf("reload %d never ran", want)
		}
	}
}
