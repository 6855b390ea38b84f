package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
)

// problem - the error body, shaped like RFC 7807 problem details.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func problemFor(err error) problem {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return problem{Title: http.StatusText(http.StatusNotFound), Status: http.StatusNotFound, Detail: err.Error()}
	case errors.Is(err, apperror.ErrGameFinished):
		return problem{Title: http.StatusText(http.StatusConflict), Status: http.StatusConflict, Detail: err.Error()}
	case errors.Is(err, apperror.ErrInvalidConfiguration),
		errors.Is(err, apperror.ErrInvalidRequest),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrOutOfBounds),
		errors.Is(err, apperror.ErrCellOccupied):
		return problem{Title: "Invalid request", Status: http.StatusBadRequest, Detail: err.Error()}
	default:
		// infrastructure details stay in the logs
		return problem{Title: http.StatusText(http.StatusInternalServerError), Status: http.StatusInternalServerError}
	}
}
