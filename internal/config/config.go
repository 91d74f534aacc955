package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config is the service configuration, read from the environment.
type Config struct {
	Port         string
	AIServiceURL string
	AITimeout    time.Duration
	ExportsDSN   string
	ChromePath   string
	Probe        string
	Exporter     string
	LogLevel     slog.Level
}

const (
	ProbeCanvas      = "canvas"
	ProbeChromedp    = "chromedp"
	ExporterChromedp = "chromedp"
	ExporterCanvas   = "canvas"
)

// Load reads the configuration. Unset variables take their defaults; set
// but malformed ones are an error.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}
	cfg := Config{
		Port:         get("PORT", "3000"),
		AIServiceURL: get("AI_SERVICE_URL", "http://ai-service:8000"),
		ExportsDSN:   get("EXPORTS_DATABASE_URL", ""),
		ChromePath:   get("CHROME_PATH", ""),
		Probe:        strings.ToLower(get("PROBE", ProbeCanvas)),
		Exporter:     strings.ToLower(get("EXPORTER", ExporterChromedp)),
	}

	timeout, err := time.ParseDuration(get("AI_TIMEOUT", "60s"))
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("AI_TIMEOUT: invalid duration %q", getenv("AI_TIMEOUT"))
	}
	cfg.AITimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.Probe != ProbeCanvas && cfg.Probe != ProbeChromedp {
		return Config{}, fmt.Errorf("PROBE: unknown probe %q", cfg.Probe)
	}
	if cfg.Exporter != ExporterChromedp && cfg.Exporter != ExporterCanvas {
		return Config{}, fmt.Errorf("EXPORTER: unknown exporter %q", cfg.Exporter)
	}
	return cfg, nil
}
