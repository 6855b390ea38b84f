package entity

import (
	"encoding/json"
	"fmt"
)

// Board - a square grid stored row-major, cell (row, col) lives at row*size+col.
type Board struct {
	size  int
	cells []Mark
}

func NewBoard(size int) Board {
	if size < 0 {
		size = 0
	}

	return Board{
		size:  size,
		cells: make([]Mark, size*size),
	}
}

// BoardFromRows - builds a board from nested rows, rows must form a square.
func BoardFromRows(rows [][]Mark) (Board, error) {
	board := NewBoard(len(rows))

	for row, cells := range rows {
		if len(cells) != board.size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, row, len(cells), board.size)
		}

		for col, mark := range cells {
			if mark > PlayerO {
				return Board{}, fmt.Errorf("%w: cell %d,%d", ErrInvalidMark, row, col)
			}

			board.cells[row*board.size+col] = mark
		}
	}

	return board, nil
}

func (that Board) Size() int {
	return that.size
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// At - the mark in the cell, EmptyCell when out of bounds.
func (that Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return EmptyCell
	}

	return that.cells[row*that.size+col]
}

func (that Board) Set(row, col int, mark Mark) {
	that.cells[row*that.size+col] = mark
}

func (that Board) IsEmptyAt(row, col int) bool {
	return that.At(row, col) == EmptyCell
}

// Occupied - the number of cells holding a mark.
func (that Board) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Occupied() == len(that.cells)
}

func (that Board) Rows() [][]Mark {
	rows := make([][]Mark, that.size)
	for row := range rows {
		rows[row] = make([]Mark, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

func (that Board) Clone() Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return Board{size: that.size, cells: cells}
}

// MarshalJSON - encodes the board as nested rows of "", "X" or "O".
func (that Board) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(that.Rows())
	if err != nil {
		return nil, fmt.Errorf("could not marshal board: %w", err)
	}

	return data, nil
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Mark
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	board, err := BoardFromRows(rows)
	if err != nil {
		return err
	}

	*that = board

	return nil
}
