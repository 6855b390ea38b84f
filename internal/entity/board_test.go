package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("Cells are addressed row-major", func(t *testing.T) {
		// Given: a 3x3 board
		board := NewBoard(3)

		// When: setting a mark at row 1, col 2
		board.Set(1, 2, PlayerO)

		// Then: it is stored in the flat slot 1*3+2
		assert.Equal(t, PlayerO, board.cells[5])
		assert.Equal(t, PlayerO, board.At(1, 2))
		assert.Equal(t, 1, board.Occupied())
		assert.False(t, board.IsFull())
	})

	t.Run("Out of bounds cells read as empty", func(t *testing.T) {
		board := NewBoard(3)

		assert.False(t, board.InBounds(-1, 0))
		assert.False(t, board.InBounds(0, 3))
		assert.Equal(t, EmptyCell, board.At(3, 3))
	})

	t.Run("Full board", func(t *testing.T) {
		board, err := BoardFromRows([][]Mark{
			{PlayerX, PlayerO},
			{PlayerO, PlayerX},
		})
		require.NoError(t, err)

		assert.True(t, board.IsFull())
		assert.Equal(t, 4, board.Occupied())
	})

	t.Run("Rows returns a copy", func(t *testing.T) {
		board := NewBoard(2)
		rows := board.Rows()
		rows[0][0] = PlayerX

		assert.Equal(t, EmptyCell, board.At(0, 0))
	})

	t.Run("BoardFromRows rejects ragged rows", func(t *testing.T) {
		_, err := BoardFromRows([][]Mark{{PlayerX, PlayerO}, {PlayerO}})
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}
