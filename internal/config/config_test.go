package config

import (
	"log/slog"
	"testing"
	"time"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" || cfg.AIServiceURL != "http://ai-service:8000" || cfg.AITimeout != 60*time.Second {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Probe != ProbeCanvas || cfg.Exporter != ExporterChromedp || cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.ExportsDSN != "" {
		t.Fatalf("exports database should be optional")
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"PORT":       "8080",
		"AI_TIMEOUT": "5s",
		"PROBE":      "ChromeDP",
		"EXPORTER":   "canvas",
		"LOG_LEVEL":  "debug",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.AITimeout != 5*time.Second || cfg.Probe != ProbeChromedp || cfg.Exporter != ExporterCanvas || cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, m := range []map[string]string{
		{"AI_TIMEOUT": "soon"},
		{"AI_TIMEOUT": "-1s"},
		{"PROBE": "ruler"},
		{"EXPORTER": "fax"},
		{"LOG_LEVEL": "loud"},
	} {
		if _, err := load(env(m)); err == nil {
			t.Errorf("expected an error for %v", m)
		}
	}
}
