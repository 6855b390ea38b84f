package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type sqliteGame struct {
	conn *sql.DB
}

// NewSQLiteGameRepository - games stored in the games table, see storage.Storage.Init.
func NewSQLiteGameRepository(conn *sql.DB) GameRepository {
	return &sqliteGame{
		conn: conn,
	}
}

func (that *sqliteGame) Create(ctx context.Context, game *entity.Game) error {
	board, winner, err := encodeGame(game)
	if err != nil {
		return err
	}

	query := `INSERT INTO games (id, board, current_player, winner, move_count) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`

	result, err := that.conn.ExecContext(ctx, query, game.ID, board, game.CurrentPlayer.String(), winner, game.MoveCount)
	if err != nil {
		return fmt.Errorf("can't create game: %w", err)
	}

	if err = expectOneRow(result, fmt.Errorf("%w: %s", ErrGameAlreadyExists, game.ID)); err != nil {
		return err
	}

	return nil
}

func (that *sqliteGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	query := `SELECT id, board, current_player, winner, move_count FROM games WHERE id = ?`

	var (
		game          entity.Game
		board         string
		currentPlayer string
		winner        sql.NullString
	)

	err := that.conn.QueryRowContext(ctx, query, id).Scan(&game.ID, &board, &currentPlayer, &winner, &game.MoveCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find game: %w", err)
	}

	if err = json.Unmarshal([]byte(board), &game.Board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if game.CurrentPlayer, err = entity.ParseMark(currentPlayer); err != nil {
		return nil, fmt.Errorf("failed to read current player: %w", err)
	}

	if game.Winner, err = entity.ParseOutcome(winner.String); err != nil {
		return nil, fmt.Errorf("failed to read winner: %w", err)
	}

	return &game, nil
}

func (that *sqliteGame) Update(ctx context.Context, game *entity.Game) error {
	board, winner, err := encodeGame(game)
	if err != nil {
		return err
	}

	query := `UPDATE games SET board = ?, current_player = ?, winner = ?, move_count = ? WHERE id = ?`

	result, err := that.conn.ExecContext(ctx, query, board, game.CurrentPlayer.String(), winner, game.MoveCount, game.ID)
	if err != nil {
		return fmt.Errorf("can't update game: %w", err)
	}

	return expectOneRow(result, ErrGameNotFound)
}

func encodeGame(game *entity.Game) (string, sql.NullString, error) {
	board, err := json.Marshal(game.Board)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("could not marshal board: %w", err)
	}

	winner := sql.NullString{
		String: string(game.Winner),
		Valid:  game.Winner.IsResolved(),
	}

	return string(board), winner, nil
}

func expectOneRow(result sql.Result, errNoRows error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't read affected rows: %w", err)
	}

	if affected == 0 {
		return errNoRows
	}

	return nil
}
