package config

import "time"

// Config holds runtime settings for the user-account CLI.
//
// Units: all durations are time.Duration values.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	RedirectDelay  time.Duration
	ToastDuration  time.Duration
	SessionDSN     string
	StartPage      string
	LogLevel       string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:9000"
	c.RequestTimeout = 10 * time.Second
	c.RedirectDelay = 500 * time.Millisecond
	c.ToastDuration = 5 * time.Second
	c.SessionDSN = ":memory:"
	c.StartPage = "index.html"
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
