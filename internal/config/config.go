// Package config handles configuration for the Stillpoint CLI,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"path/filepath"
	"time"

	"github.com/janovian/stillpoint/internal/filex"
)

// Config holds runtime settings for the Stillpoint CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite state database.
//   - SimulatedLatency: artificial delay applied to simulated backend calls
//     (account directory, checkout). Zero disables the delay.
//   - VerificationSecret: HMAC secret for signing email-verification tokens
//     (HS256). The default is for local development only.
//   - VerificationTokenValidity: lifetime of issued verification tokens.
type Config struct {
	DatabasePath              string
	SimulatedLatency          time.Duration
	VerificationSecret        string
	VerificationTokenValidity time.Duration
}

// LoadDefaults populates c with sensible defaults. The state database lives
// in a .stillpoint subdirectory of the working directory; if that directory
// cannot be created the path falls back to the working directory itself.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "stillpoint.db"
	if dir, err := filex.EnsureSubDir(".stillpoint"); err == nil {
		c.DatabasePath = filepath.Join(dir, "stillpoint.db")
	}
	c.SimulatedLatency = 1 * time.Second
	c.VerificationSecret = "secretKey"
	c.VerificationTokenValidity = 24 * time.Hour
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
