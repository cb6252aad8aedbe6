package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/janovian/stillpoint/internal/common"
	"github.com/janovian/stillpoint/internal/config"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type nopSender struct{}

func (nopSender) Send(ctx context.Context, email, token string) error { return nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "state.db")
	cfg.SimulatedLatency = 0
	return cfg
}

func TestNew_WiresContainersAndSeedsDirectory(t *testing.T) {
	ctx := context.Background()
	a := New(ctx, testConfig(t), logging.NewNopLogger(), nopSender{})
	t.Cleanup(func() { _ = a.Close() })

	session, err := a.Auth.Login(ctx, "nastya@janovian.com", "Nastya123!")
	require.NoError(t, err)
	require.Equal(t, "nastya", session.UserID)
}

func TestNew_StateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	first := New(ctx, cfg, logging.NewNopLogger(), nopSender{})
	first.Progress.AddActivity(ctx, "meditation", 600)
	first.Streak.CheckIn(ctx)
	require.NoError(t, first.Close())

	second := New(ctx, cfg, logging.NewNopLogger(), nopSender{})
	t.Cleanup(func() { _ = second.Close() })

	require.Equal(t, 1, second.Progress.Count())
	require.Equal(t, 1, second.Streak.Current().CurrentStreak)
}

func TestNew_DegradesToMemoryWhenDatabaseUnavailable(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	// A directory path cannot be opened as a database file.
	cfg.DatabasePath = t.TempDir()

	a := New(ctx, cfg, logging.NewNopLogger(), nopSender{})
	t.Cleanup(func() { _ = a.Close() })

	// Local state still works in memory.
	a.Progress.AddActivity(ctx, "workout", 300)
	require.Equal(t, 1, a.Progress.Count())

	// Directory-backed actions degrade softly.
	_, err := a.Auth.Login(ctx, "nastya@janovian.com", "Nastya123!")
	require.ErrorIs(t, err, common.ErrorUnavailable)
}
