package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/random"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-api/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/transport/rest"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, closeStorage, err := openGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	source, err := random.New()
	if err != nil {
		return fmt.Errorf("could not seed random source: %w", err)
	}

	gameController := tictactoe.NewGameController(source)
	gameUseCase := usecase.NewGameManager(logger, gameRepo, gameController, config.EnvGameSettings{})

	router := rest.NewRouter(logger, rest.NewPingHandler(), rest.NewGameHandler(logger, gameUseCase))

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage.Driver)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// Migrate - creates the SQLite schema. Redis needs none.
func Migrate(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app", "method", "Migrate")

	if conf.Storage.Driver != config.DriverSQLite {
		log.Info("Nothing to migrate", "storage", conf.Storage.Driver)
		return nil
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLite.Path)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}
	defer sqliteStorage.Close()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not migrate sqlite storage: %w", err)
	}

	log.Info("Schema is up to date", "path", conf.SQLite.Path)

	return nil
}

func openGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not migrate sqlite storage: %w", err)
		}

		return repository.NewSQLiteGameRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Storage.Driver)
	}
}
