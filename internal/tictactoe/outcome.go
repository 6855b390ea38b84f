package tictactoe

import "github.com/rocketscienceinc/tictactoe-api/internal/entity"

// directions scanned from every occupied cell: right, down, down-right, down-left.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// DetectOutcome - returns the mark of the first complete run of winLength cells in
// row-major order, OutcomeDraw for a full board without one, OutcomeNone otherwise.
// A winLength outside [1, size] means the full board edge.
func DetectOutcome(board entity.Board, winLength int) entity.Outcome {
	size := board.Size()
	if winLength <= 0 || winLength > size {
		winLength = size
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			mark := board.At(row, col)
			if mark == entity.EmptyCell {
				continue
			}

			for _, dir := range directions {
				if hasRun(board, row, col, dir[0], dir[1], winLength) {
					return entity.OutcomeFor(mark)
				}
			}
		}
	}

	if board.IsFull() {
		return entity.OutcomeDraw
	}

	return entity.OutcomeNone
}

func hasRun(board entity.Board, row, col, dRow, dCol, length int) bool {
	mark := board.At(row, col)

	for step := 1; step < length; step++ {
		r, c := row+step*dRow, col+step*dCol
		if !board.InBounds(r, c) || board.At(r, c) != mark {
			return false
		}
	}

	return true
}
