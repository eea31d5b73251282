package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type uGame interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartGame(ctx context.Context, playerID, mark, algorithm string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Game, error)

	BestMove(ctx context.Context, cells []string, mark, algorithm string) (*entity.BotMove, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	srv *http.Server
}

func New(logger *slog.Logger, uGame uGame, port string) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}

	server.srv = &http.Server{
		Addr:         ":" + port,
		Handler:      server.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	return server
}

// Handler - routes of the REST API.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", handlePing)

	mux.HandleFunc("POST /api/v1/players", that.handleCreatePlayer)

	mux.HandleFunc("POST /api/v1/games", that.handleStartGame)
	mux.HandleFunc("GET /api/v1/games", that.handleGetGame)
	mux.HandleFunc("POST /api/v1/games/turn", that.handleMakeTurn)
	mux.HandleFunc("DELETE /api/v1/games", that.handleLeaveGame)

	mux.HandleFunc("POST /api/v1/engine/best-move", that.handleBestMove)

	return mux
}

func (that *Server) Start() error {
	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
