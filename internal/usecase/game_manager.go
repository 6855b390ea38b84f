package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
)

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, game *entity.Game) error
}

type gameController interface {
	MakeTurn(game *entity.Game, move entity.Move, winLength int) (entity.Move, error)
}

type gameSettings interface {
	Load() (config.Game, error)
}

type GameManager struct {
	logger *slog.Logger

	gameRepo       gameRepo
	gameController gameController
	settings       gameSettings

	locks *stripedLock
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, gameController gameController, settings gameSettings) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:       gameRepo,
		gameController: gameController,
		settings:       settings,

		locks: newStripedLock(),
	}
}

// CreateConfiguredGame - creates a game with the board size currently configured.
func (that *GameManager) CreateConfiguredGame(ctx context.Context) (*entity.Game, error) {
	settings, err := that.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidConfiguration, err)
	}

	return that.CreateGame(ctx, settings.BoardSize)
}

// CreateGame - creates and stores an empty size x size game.
func (that *GameManager) CreateGame(ctx context.Context, size int) (*entity.Game, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size must be positive, got %d", apperror.ErrInvalidConfiguration, size)
	}

	game := entity.NewGame(uuid.NewString(), size)

	if err := that.gameRepo.Create(ctx, game); err != nil {
		that.logger.Error("failed to create game", "method", "CreateGame", "gameID", game.ID, "error", err)
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", game.ID, "size", size)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return game, nil
}

// MakeMove - applies the move to the stored game and saves the result.
// Moves on the same game id are serialized within the process.
func (that *GameManager) MakeMove(ctx context.Context, id string, move *entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "gameID", id)

	if move == nil {
		return nil, fmt.Errorf("%w: move is required", apperror.ErrInvalidRequest)
	}

	if !move.Player.IsPlayer() {
		return nil, fmt.Errorf("%w: player must be X or O", apperror.ErrInvalidRequest)
	}

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	settings, err := that.settings.Load()
	if err != nil {
		log.Error("failed to load game settings", "error", err)
		return nil, fmt.Errorf("failed to load game settings: %w", err)
	}

	previous := game.CurrentPlayer

	applied, err := that.gameController.MakeTurn(game, *move, settings.EffectiveWinLength(game.Board.Size()))
	if err != nil {
		return nil, fmt.Errorf("failed make move: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		log.Error("failed to save game", "error", err)
		return nil, err
	}

	log.Debug("move accepted",
		"move", applied.String(),
		"swapped", applied.Player != previous,
		"moveCount", game.MoveCount,
		"winner", string(game.Winner),
	)

	return game, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	if err != nil {
		that.logger.Error("failed to get game", "method", "getGameByID", "gameID", id, "error", err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	err := that.gameRepo.Update(ctx, game)
	if errors.Is(err, repository.ErrGameNotFound) {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, game.ID)
	}

	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
