package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr   = ":8080"
	defaultLocalAPIBase = "http://localhost:8081"
	defaultStorePath    = "suriname.db"
	defaultSessionTTL   = "24h"
	defaultHTTPTimeout  = "10s"
	defaultDebounce     = "300ms"
)

// Config is everything the gateway reads from the environment.
type Config struct {
	AppEnv      string
	ListenAddr  string
	APIBase     string
	StorePath   string
	SessionTTL  time.Duration
	HTTPTimeout time.Duration
	Debounce    time.Duration
}

// Load reads the environment. The backend base URL resolves in three
// steps: explicit SURINAME_API_BASE wins; a local environment falls
// back to the local dev backend; anything else uses the bare public
// host. Resource paths carry their own /api prefix, so the base never
// does.
func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "local"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("SURINAME_LISTEN_ADDR", defaultListenAddr)
	cfg.StorePath = getEnv("SURINAME_STORE_PATH", defaultStorePath)

	cfg.APIBase = strings.TrimSpace(os.Getenv("SURINAME_API_BASE"))
	if cfg.APIBase == "" {
		if cfg.AppEnv == "local" {
			cfg.APIBase = defaultLocalAPIBase
		} else {
			host := strings.TrimSpace(os.Getenv("SURINAME_PUBLIC_URL"))
			if host == "" {
				return nil, fmt.Errorf("SURINAME_API_BASE or SURINAME_PUBLIC_URL must be set when APP_ENV=%s", cfg.AppEnv)
			}
			cfg.APIBase = strings.TrimRight(host, "/")
		}
	}

	var err error
	if cfg.SessionTTL, err = parseDurationEnv("SURINAME_SESSION_TTL", defaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = parseDurationEnv("SURINAME_HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.Debounce, err = parseDurationEnv("SURINAME_DEBOUNCE", defaultDebounce); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", name, raw, err)
	}
	return d, nil
}
