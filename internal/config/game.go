package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Game - the game tunables. WinLength of 0 means the board size.
type Game struct {
	BoardSize int `env:"BOARD_SIZE" env-default:"3"`
	WinLength int `env:"WIN_LENGTH" env-default:"0"`
}

// EffectiveWinLength - the run length that wins on a board of the given size.
func (that Game) EffectiveWinLength(size int) int {
	if that.WinLength <= 0 {
		return size
	}

	return that.WinLength
}

// EnvGameSettings - reads the game tunables from the environment on every call.
type EnvGameSettings struct{}

func (EnvGameSettings) Load() (Game, error) {
	var game Game
	if err := cleanenv.ReadEnv(&game); err != nil {
		return Game{}, fmt.Errorf("unable to read game settings: %w", err)
	}

	return game, nil
}

// StaticGameSettings - fixed tunables.
type StaticGameSettings Game

func (that StaticGameSettings) Load() (Game, error) {
	return Game(that), nil
}
