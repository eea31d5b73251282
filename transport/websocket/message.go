package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionConnect   = "connect"
	actionGameNew   = "game:new"
	actionGameTurn  = "game:turn"
	actionGameLeave = "game:leave"
	actionError     = "error"
)

// Message - every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player    *entity.Player `json:"player,omitempty"`
	Game      *entity.Game   `json:"game,omitempty"`
	Mark      string         `json:"mark,omitempty"`
	Algorithm string         `json:"algorithm,omitempty"`
	Cell      *int           `json:"cell,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// sendMessage - write errors are returned since they mean the connection is gone.
func (that *Server) sendMessage(conn *websocket.Conn, action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response, err := json.Marshal(Message{Action: action, Payload: payloadJSON})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err = conn.WriteMessage(websocket.TextMessage, response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, errorMsg string) error {
	if err := that.sendMessage(conn, action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
