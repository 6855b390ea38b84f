package main

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-api/internal"
	"github.com/rocketscienceinc/tictactoe-api/internal/config"
)

var flagConfigPath string

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-Tac-Toe game server",
	Long: `Serves persisted Tic-Tac-Toe games over HTTP.

Available commands:
  serve    - Start the HTTP server
  migrate  - Create the SQLite schema

Running without a command starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the SQLite schema",
	Long:  `Creates the games table when storage.driver is sqlite. Does nothing for redis.`,
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.yml", "Path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	conf := config.MustLoad(flagConfigPath)
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	conf := config.MustLoad(flagConfigPath)
	logger := initLogger(conf)

	if err := app.Migrate(cmd.Context(), logger, conf); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}

	return nil
}
