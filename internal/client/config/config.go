package config

import "time"

// Config holds runtime settings for the planner CLI.
//
// RemoteURL empty means the planner runs purely local and sync is disabled.
type Config struct {
	DatabasePath    string
	RemoteURL       string
	RemoteAuthToken string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "gohan.db"
	c.RemoteURL = ""
	c.RemoteAuthToken = ""
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
