package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/random"
)

const (
	// the special rule is considered before every third move.
	specialRuleCadence = 3
	specialRuleSlot    = 2
	// one draw in specialRuleOdds fires it.
	specialRuleOdds = 10
)

// GameController - applies moves to game snapshots.
type GameController struct {
	random random.Source
}

func NewGameController(source random.Source) *GameController {
	return &GameController{
		random: source,
	}
}

// MakeTurn - validates the move, applies the special rule and writes the move into the game.
// Returns the move as it was actually written.
func (that *GameController) MakeTurn(game *entity.Game, move entity.Move, winLength int) (entity.Move, error) {
	if err := Validate(game, move); err != nil {
		return move, fmt.Errorf("invalid turn: %w", err)
	}

	applied := that.ApplySpecialRule(game, move)
	ApplyMove(game, applied, winLength)

	return applied, nil
}

// ApplySpecialRule - on every third move, with a 10% chance, the move is credited to the
// opponent of the current player.
func (that *GameController) ApplySpecialRule(game *entity.Game, move entity.Move) entity.Move {
	if game.MoveCount%specialRuleCadence != specialRuleSlot {
		return move
	}

	if that.random.Intn(specialRuleOdds) != 0 {
		return move
	}

	move.Player = game.CurrentPlayer.Opponent()

	return move
}

// Validate - checks if the move is valid. It never changes the game.
func Validate(game *entity.Game, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !game.Board.InBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: row %d, col %d on a board of size %d",
			apperror.ErrOutOfBounds, move.Row, move.Col, game.Board.Size())
	}

	if !game.Board.IsEmptyAt(move.Row, move.Col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, move.Row, move.Col)
	}

	if move.Player != game.CurrentPlayer {
		return &apperror.TurnError{Expected: game.CurrentPlayer.String()}
	}

	return nil
}

// ApplyMove - writes the mark and updates the game status.
// The turn passes only when the written mark belongs to the player whose turn it was.
func ApplyMove(game *entity.Game, move entity.Move, winLength int) {
	previous := game.CurrentPlayer

	game.Board.Set(move.Row, move.Col, move.Player)
	game.MoveCount++
	game.Winner = DetectOutcome(game.Board, winLength)

	if !game.IsFinished() && move.Player == previous {
		game.CurrentPlayer = previous.Opponent()
	}
}
