// Package config assembles runtime settings for the admin console from
// layered sources: built-in defaults, environment variables (including a
// .env file when present), an optional JSON config file, and command-line
// flags. Later sources take precedence over earlier ones.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the admin console.
//
// Fields:
//   - AuthServiceURL / UserServiceURL / MasterDataServiceURL: base URLs of
//     the three backend services.
//   - RequestTimeout: per-request deadline applied by the API client.
//   - DefaultPageSize: initial table page size; must be one of the page-size
//     options offered by the table views.
//   - LogLevel: zerolog level name (debug, info, warn, error).
//   - SessionFile: path of the persisted session entry.
type Config struct {
	AuthServiceURL       string
	UserServiceURL       string
	MasterDataServiceURL string
	RequestTimeout       time.Duration
	DefaultPageSize      int
	LogLevel             string
	SessionFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthServiceURL = "http://localhost:3001"
	c.UserServiceURL = "http://localhost:3002"
	c.MasterDataServiceURL = "http://localhost:3003"
	c.RequestTimeout = 10 * time.Second
	c.DefaultPageSize = 10
	c.LogLevel = "info"
	c.SessionFile = defaultSessionFile()
}

// defaultSessionFile resolves the per-user location of the persisted session.
// Falls back to the working directory when the user config dir is unknown.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "auth.json"
	}
	return filepath.Join(dir, "reviewdeck-admin", "auth.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
