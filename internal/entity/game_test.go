package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates an empty 5x5 game with X to move", func(t *testing.T) {
		// Given: a new game of size 5
		game := NewGame("123", 5)

		// Then: the board is 5x5 and empty, X moves first
		assert.Equal(t, 5, game.Board.Size())
		assert.Len(t, game.Board.Rows(), 5)
		for _, row := range game.Board.Rows() {
			assert.Len(t, row, 5)
			for _, cell := range row {
				assert.Equal(t, EmptyCell, cell)
			}
		}
		assert.Equal(t, PlayerX, game.CurrentPlayer)
		assert.Equal(t, OutcomeNone, game.Winner)
		assert.Zero(t, game.MoveCount)
		assert.False(t, game.IsFinished())
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a mark
	game := NewGame("123", 3)
	game.Board.Set(0, 0, PlayerX)

	// When: the clone's board is changed
	clone := game.Clone()
	clone.Board.Set(1, 1, PlayerO)

	// Then: the original board is untouched
	assert.Equal(t, EmptyCell, game.Board.At(1, 1))
	assert.Equal(t, PlayerX, clone.Board.At(0, 0))
}

func TestMark(t *testing.T) {
	t.Run("ParseMark accepts only player marks", func(t *testing.T) {
		mark, err := ParseMark("X")
		require.NoError(t, err)
		assert.Equal(t, PlayerX, mark)

		mark, err = ParseMark("O")
		require.NoError(t, err)
		assert.Equal(t, PlayerO, mark)

		_, err = ParseMark("")
		require.ErrorIs(t, err, ErrInvalidMark)

		_, err = ParseMark("x")
		require.ErrorIs(t, err, ErrInvalidMark)
	})

	t.Run("Opponent swaps players", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
		assert.Equal(t, EmptyCell, EmptyCell.Opponent())
	})
}

func TestOutcome_JSON(t *testing.T) {
	t.Run("Unresolved outcome encodes as null", func(t *testing.T) {
		data, err := json.Marshal(OutcomeNone)
		require.NoError(t, err)
		assert.JSONEq(t, `null`, string(data))
	})

	t.Run("Draw encodes as a string", func(t *testing.T) {
		data, err := json.Marshal(OutcomeDraw)
		require.NoError(t, err)
		assert.JSONEq(t, `"Draw"`, string(data))
	})

	t.Run("Unknown outcome is rejected", func(t *testing.T) {
		var outcome Outcome
		err := json.Unmarshal([]byte(`"Tie"`), &outcome)
		require.ErrorIs(t, err, ErrInvalidOutcome)
	})
}

func TestGame_JSON(t *testing.T) {
	t.Run("Encodes board as nested rows with empty strings", func(t *testing.T) {
		// Given: a game with one X in the corner
		game := NewGame("123", 2)
		game.Board.Set(0, 1, PlayerX)
		game.MoveCount = 1
		game.CurrentPlayer = PlayerO

		// When: encoding it
		data, err := json.Marshal(game)
		require.NoError(t, err)

		// Then: the layout is stable
		assert.JSONEq(t, `{
			"id": "123",
			"board": [["", "X"], ["", ""]],
			"currentPlayer": "O",
			"winner": null,
			"moveCount": 1
		}`, string(data))
	})

	t.Run("Round-trip keeps empty cells distinct from marks", func(t *testing.T) {
		// Given: a finished game
		game := NewGame("abc", 3)
		game.Board.Set(0, 0, PlayerX)
		game.Board.Set(1, 1, PlayerO)
		game.Board.Set(2, 2, PlayerX)
		game.MoveCount = 3
		game.Winner = OutcomeX

		// When: encoding and decoding it
		data, err := json.Marshal(game)
		require.NoError(t, err)

		var decoded Game
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: the snapshot is identical
		assert.Equal(t, game, &decoded)
		assert.True(t, decoded.Board.IsEmptyAt(0, 1))
	})

	t.Run("Rejects a non-square board", func(t *testing.T) {
		var game Game
		err := json.Unmarshal([]byte(`{"board": [["", ""], [""]]}`), &game)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects an unknown cell value", func(t *testing.T) {
		var game Game
		err := json.Unmarshal([]byte(`{"board": [["Z"]]}`), &game)
		require.ErrorIs(t, err, ErrInvalidMark)
	})
}
