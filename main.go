// tictactoe serves persisted Tic-Tac-Toe games over HTTP.
//
// Usage:
//
//	tictactoe serve      - Start the HTTP server (default)
//	tictactoe migrate    - Create the SQLite schema
//
// Global flags:
//
//	--config <path>  - Path to config.yml (default: ./config.yml)
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
)

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if conf.LogFormat == config.FormatText {
		handler := log.NewWithOptions(os.Stdout, log.Options{
			ReportTimestamp: true,
			Level:           log.Level(level),
			Prefix:          "tictactoe",
		})

		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
