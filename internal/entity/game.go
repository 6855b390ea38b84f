package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

const DefaultBoardSize = 3

var (
	ErrInvalidMark    = errors.New("invalid mark")
	ErrInvalidBoard   = errors.New("invalid board")
	ErrInvalidOutcome = errors.New("invalid outcome")
)

type Game struct {
	ID            string  `json:"id"`
	Board         Board   `json:"board"`
	CurrentPlayer Mark    `json:"currentPlayer"`
	Winner        Outcome `json:"winner"`
	MoveCount     int     `json:"moveCount"`
}

// NewGame - returns an empty size x size game with X to move.
func NewGame(id string, size int) *Game {
	return &Game{
		ID:            id,
		Board:         NewBoard(size),
		CurrentPlayer: PlayerX,
		Winner:        OutcomeNone,
	}
}

func (that *Game) IsFinished() bool {
	return that.Winner.IsResolved()
}

// Clone - returns a deep copy, the board cells are not shared.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()

	return &clone
}

// Move - a proposed placement of a player's mark.
type Move struct {
	Player Mark
	Row    int
	Col    int
}

func (that Move) String() string {
	return fmt.Sprintf("%s@%d,%d", that.Player, that.Row, that.Col)
}

// Mark - the content of a cell. EmptyCell is a value of its own and is never
// encoded as a missing field.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

// ParseMark - parses a player mark, EmptyCell is not accepted.
func ParseMark(value string) (Mark, error) {
	switch value {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrInvalidMark, value)
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	if that > PlayerO {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMark, that)
	}

	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = EmptyCell
		return nil
	}

	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// Outcome - the terminal state of a game, OutcomeNone while it is in progress.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeX    Outcome = "X"
	OutcomeO    Outcome = "O"
	OutcomeDraw Outcome = "Draw"
)

// OutcomeFor - the outcome in which the given mark has won.
func OutcomeFor(mark Mark) Outcome {
	switch mark {
	case PlayerX:
		return OutcomeX
	case PlayerO:
		return OutcomeO
	default:
		return OutcomeNone
	}
}

func ParseOutcome(value string) (Outcome, error) {
	switch outcome := Outcome(value); outcome {
	case OutcomeNone, OutcomeX, OutcomeO, OutcomeDraw:
		return outcome, nil
	default:
		return OutcomeNone, fmt.Errorf("%w: %q", ErrInvalidOutcome, value)
	}
}

func (that Outcome) IsResolved() bool {
	return that != OutcomeNone
}

func (that Outcome) MarshalJSON() ([]byte, error) {
	if !that.IsResolved() {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Outcome) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = OutcomeNone
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutcome, err)
	}

	outcome, err := ParseOutcome(value)
	if err != nil {
		return err
	}

	*that = outcome

	return nil
}
