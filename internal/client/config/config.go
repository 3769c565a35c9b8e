package config

import "time"

// Config holds runtime settings for the userdir CLI.
//
// Fields:
//   - BaseURL: directory service endpoint including the fixed path prefix,
//     e.g. "https://reqres.in/api".
//   - APIKey: the identification key attached to every request.
//   - PerPage: how many records the single bulk fetch asks for.
//   - PageSize: how many records one page of the local view shows.
//   - RequestTimeout: per-request deadline for remote calls.
//   - Debug: enables debug-level logging.
type Config struct {
	BaseURL        string
	APIKey         string
	PerPage        int
	PageSize       int
	RequestTimeout time.Duration
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://reqres.in/api"
	c.APIKey = "reqres-free-v1"
	c.PerPage = 12
	c.PageSize = 5
	c.RequestTimeout = 30 * time.Second
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
