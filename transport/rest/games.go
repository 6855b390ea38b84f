package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type GameHandler interface {
	CreateGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	MakeMove(ctx echo.Context) error
}

type gameUseCase interface {
	CreateConfiguredGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, move *entity.Move) (*entity.Game, error)
}

type gameHandler struct {
	logger *slog.Logger

	games gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "game_handler"),
		games:  games,
	}
}

// moveRequest - every field is required, pointers tell a missing field from a zero value.
type moveRequest struct {
	Player *string `json:"player"`
	Row    *int    `json:"row"`
	Col    *int    `json:"col"`
}

// toMove - nil when a field is missing. An unknown player is kept as an empty mark.
func (that *moveRequest) toMove() *entity.Move {
	if that == nil || that.Player == nil || that.Row == nil || that.Col == nil {
		return nil
	}

	player, _ := entity.ParseMark(*that.Player)

	return &entity.Move{
		Player: player,
		Row:    *that.Row,
		Col:    *that.Col,
	}
}

func (that *gameHandler) CreateGame(ctx echo.Context) error {
	game, err := that.games.CreateConfiguredGame(ctx.Request().Context())
	if err != nil {
		return that.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandler) GetGame(ctx echo.Context) error {
	game, err := that.games.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandler) MakeMove(ctx echo.Context) error {
	var request *moveRequest

	err := json.NewDecoder(ctx.Request().Body).Decode(&request)
	if err != nil && !errors.Is(err, io.EOF) {
		return that.writeError(ctx, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err))
	}

	game, err := that.games.MakeMove(ctx.Request().Context(), ctx.Param("id"), request.toMove())
	if err != nil {
		return that.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandler) writeError(ctx echo.Context, err error) error {
	prob := problemFor(err)

	if prob.Status >= http.StatusInternalServerError {
		that.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}

	return ctx.JSON(prob.Status, prob)
}
