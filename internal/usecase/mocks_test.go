package usecase

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) Create(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) Update(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

// memoryGameRepo - stores copies, so callers can't mutate what was saved.
type memoryGameRepo struct {
	mu    sync.Mutex
	games map[string]*entity.Game
}

func newMemoryGameRepo() *memoryGameRepo {
	return &memoryGameRepo{games: make(map[string]*entity.Game)}
}

func (that *memoryGameRepo) Create(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[game.ID]; ok {
		return repository.ErrGameAlreadyExists
	}

	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memoryGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}

	return game.Clone(), nil
}

func (that *memoryGameRepo) Update(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[game.ID]; !ok {
		return repository.ErrGameNotFound
	}

	that.games[game.ID] = game.Clone()

	return nil
}
