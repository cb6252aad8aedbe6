package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "stillpoint.db", filepath.Base(c.DatabasePath))
	assert.Contains(t, c.DatabasePath, ".stillpoint")
	assert.Equal(t, 1*time.Second, c.SimulatedLatency)
	assert.Equal(t, 24*time.Hour, c.VerificationTokenValidity)
	assert.NotEmpty(t, c.VerificationSecret)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "stillpoint.db", filepath.Base(cfg.DatabasePath))
	assert.Equal(t, 1*time.Second, cfg.SimulatedLatency)
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "other.db", "-l", "250"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency)
}
