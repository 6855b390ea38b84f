package application

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

func newTestConfig(t *testing.T, driver string) *config.Config {
	t.Helper()

	conf := &config.Config{}
	conf.Storage.Driver = driver
	conf.SQLite.Path = filepath.Join(t.TempDir(), "games.db")

	return conf
}

func TestOpenGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SQLite repository is migrated on open", func(t *testing.T) {
		// Given: a fresh database path
		conf := newTestConfig(t, config.DriverSQLite)

		// When: the repository is opened
		repo, closeStorage, err := openGameRepository(ctx, conf)
		require.NoError(t, err)
		defer closeStorage()

		// Then: games can be stored right away
		game := entity.NewGame("g1", 3)
		require.NoError(t, repo.Create(ctx, game))

		stored, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Unknown driver is rejected", func(t *testing.T) {
		conf := newTestConfig(t, "mongo")

		_, _, err := openGameRepository(ctx, conf)

		assert.ErrorIs(t, err, ErrUnknownDriver)
	})
}

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("SQLite schema can be applied twice", func(t *testing.T) {
		conf := newTestConfig(t, config.DriverSQLite)

		require.NoError(t, Migrate(ctx, logger, conf))
		require.NoError(t, Migrate(ctx, logger, conf))
	})

	t.Run("Redis needs no migration", func(t *testing.T) {
		conf := newTestConfig(t, config.DriverRedis)

		assert.NoError(t, Migrate(ctx, logger, conf))
	})
}
