package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

type server interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// RunApp - runs the application until SIGINT/SIGTERM or a server failure.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	algorithm, err := engine.ParseAlgorithm(conf.Engine.Algorithm)
	if err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}

	redisAddr := conf.Redis.GetRedisAddr()
	if redisAddr == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection, conf.Redis.GameTTL)
	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger.With("component", "bot"), conf.Engine.Parallel)
	gamePlayService := service.NewGamePlayService(logger.With("component", "gameplay"), playerService, gameService, botService)

	gameUseCase := usecase.NewGameUseCase(playerService, gamePlayService, botService, algorithm)

	servers := map[string]server{
		"HTTP":      rest.New(logger, gameUseCase, conf.HTTPPort),
		"WebSocket": websocket.New(logger, gameUseCase, conf.SocketPort),
	}

	errCh := make(chan error, len(servers))
	for name, srv := range servers {
		go func() {
			log.Info("Starting server", "server", name)
			if startErr := srv.Start(); startErr != nil {
				errCh <- fmt.Errorf("%s server error: %w", name, startErr)
			}
		}()
	}

	log.Info("Application started",
		"httpPort", conf.HTTPPort,
		"socketPort", conf.SocketPort,
		"algorithm", algorithm,
		"parallel", conf.Engine.Parallel,
	)

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for name, srv := range servers {
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error("failed to shutdown server", "server", name, "error", shutdownErr)
		}
	}

	return err
}
