package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhttp-port: \"8081\"\nstorage:\n  driver: sqlite\nsqlite:\n  path: /tmp/games.db\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: file values and defaults are applied
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, DriverSQLite, conf.Storage.Driver)
		assert.Equal(t, "/tmp/games.db", conf.SQLite.Path)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, FormatJSON, conf.LogFormat)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and a redis host in the environment
		t.Setenv("REDIS_HOST", "redis")
		t.Setenv("HTTP_PORT", "7070")

		// When: loading a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: environment and defaults are used
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, "info", conf.LogLevel)
	})
}

func TestEnvGameSettings_Load(t *testing.T) {
	t.Run("Defaults to a 3x3 board", func(t *testing.T) {
		t.Setenv("BOARD_SIZE", "")
		t.Setenv("WIN_LENGTH", "")
		os.Unsetenv("BOARD_SIZE")
		os.Unsetenv("WIN_LENGTH")

		game, err := EnvGameSettings{}.Load()
		require.NoError(t, err)

		assert.Equal(t, 3, game.BoardSize)
		assert.Equal(t, 3, game.EffectiveWinLength(game.BoardSize))
	})

	t.Run("Reads the environment on every call", func(t *testing.T) {
		settings := EnvGameSettings{}

		t.Setenv("BOARD_SIZE", "5")
		t.Setenv("WIN_LENGTH", "4")
		game, err := settings.Load()
		require.NoError(t, err)
		assert.Equal(t, 5, game.BoardSize)
		assert.Equal(t, 4, game.EffectiveWinLength(game.BoardSize))

		t.Setenv("BOARD_SIZE", "7")
		game, err = settings.Load()
		require.NoError(t, err)
		assert.Equal(t, 7, game.BoardSize)
	})

	t.Run("Returns error on a non-numeric board size", func(t *testing.T) {
		t.Setenv("BOARD_SIZE", "big")

		_, err := EnvGameSettings{}.Load()
		require.Error(t, err)
	})
}
