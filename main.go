package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config, CONFIG_PATH overrides ./config.yml.
func initConfig() *config.Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "config.yml")
	}

	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
