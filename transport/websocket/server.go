package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	maxMessageBytes = 1 << 12
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
	writeWait       = 10 * time.Second
)

type uGame interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartGame(ctx context.Context, playerID, mark, algorithm string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, message *Message) error

type Server struct {
	logger *slog.Logger
	uGame  uGame

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc

	srv *http.Server
}

func New(logger *slog.Logger, uGame uGame, port string) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionConnect:   server.handleConnect,
		actionGameNew:   server.handleNewGame,
		actionGameTurn:  server.handleGameTurn,
		actionGameLeave: server.handleGameLeave,
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

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - serves until Shutdown is called.
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

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS", "remote", r.RemoteAddr)

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established")

	// hijacked connections outlive the server deadlines, the read loop sets its own
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetReadLimit(maxMessageBytes)
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go that.keepAlive(ctx, conn)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// keepAlive pings the client, WriteControl may run next to the reader's writes.
func (that *Server) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, actionError, "message must be JSON with an action"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			return fmt.Errorf("handle %s: %w", message.Action, err)
		}
	}
}
