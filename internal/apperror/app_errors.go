package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrGameNotFound         = errors.New("game not found")
	ErrOutOfBounds          = errors.New("cell is out of bounds")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrGameFinished         = errors.New("game is already finished")
	ErrNotYourTurn          = errors.New("not player's turn")
)

// TurnError - a move was made by the player who is not expected to move.
type TurnError struct {
	Expected string
}

func (that *TurnError) Error() string {
	return fmt.Sprintf("%s. Expected: %s", ErrNotYourTurn, that.Expected)
}

func (that *TurnError) Unwrap() error {
	return ErrNotYourTurn
}

// IsDomain reports whether err is one of the game rule or request errors.
// Anything else reaching the boundary is an infrastructure failure.
func IsDomain(err error) bool {
	for _, target := range []error{
		ErrInvalidConfiguration,
		ErrInvalidRequest,
		ErrGameNotFound,
		ErrOutOfBounds,
		ErrCellOccupied,
		ErrGameFinished,
		ErrNotYourTurn,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
