package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

const maxBodyBytes = 1 << 12

type createPlayerRequest struct {
	ID string `json:"id"`
}

type startGameRequest struct {
	PlayerID  string `json:"player_id"`
	Mark      string `json:"mark"`
	Algorithm string `json:"algorithm"`
}

type turnRequest struct {
	PlayerID string `json:"player_id"`
	Cell     *int   `json:"cell"`
}

type bestMoveRequest struct {
	Board     []string `json:"board"`
	Player    string   `json:"player"`
	Algorithm string   `json:"algorithm"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errPlayerIDRequired = errors.New("player_id is required")

func (that *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if r.ContentLength != 0 {
		if err := decodeBody(w, r, &req); err != nil {
			that.writeError(w, "handleCreatePlayer", err)
			return
		}
	}

	player, err := that.uGame.GetOrCreatePlayer(r.Context(), req.ID)
	if err != nil {
		that.writeError(w, "handleCreatePlayer", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, player)
}

func (that *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, "handleStartGame", err)
		return
	}

	if req.PlayerID == "" {
		that.writeError(w, "handleStartGame", errPlayerIDRequired)
		return
	}

	game, err := that.uGame.StartGame(r.Context(), req.PlayerID, req.Mark, req.Algorithm)
	if err != nil {
		that.writeError(w, "handleStartGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		that.writeError(w, "handleGetGame", errPlayerIDRequired)
		return
	}

	game, err := that.uGame.GetGameByPlayerID(r.Context(), playerID)
	if err != nil {
		that.writeError(w, "handleGetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleMakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, "handleMakeTurn", err)
		return
	}

	if req.PlayerID == "" {
		that.writeError(w, "handleMakeTurn", errPlayerIDRequired)
		return
	}

	if req.Cell == nil {
		that.writeError(w, "handleMakeTurn", apperror.ErrInvalidCell)
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), req.PlayerID, *req.Cell)
	if errors.Is(err, apperror.ErrGameFinished) && game != nil {
		// the final board is a normal answer, the game is already cleaned up
		that.writeJSON(w, http.StatusOK, game)
		return
	}

	if err != nil {
		that.writeError(w, "handleMakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleLeaveGame(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		that.writeError(w, "handleLeaveGame", errPlayerIDRequired)
		return
	}

	if _, err := that.uGame.LeaveGame(r.Context(), playerID); err != nil {
		that.writeError(w, "handleLeaveGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleBestMove(w http.ResponseWriter, r *http.Request) {
	var req bestMoveRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, "handleBestMove", err)
		return
	}

	move, err := that.uGame.BestMove(r.Context(), req.Board, req.Player, req.Algorithm)
	if err != nil {
		that.writeError(w, "handleBestMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, move)
}

type badRequestError struct {
	err error
}

func (e badRequestError) Error() string { return "invalid request body: " + e.err.Error() }

func (e badRequestError) Unwrap() error { return e.err }

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return badRequestError{err: err}
	}

	return nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var badRequest badRequestError

	switch {
	case errors.As(err, &badRequest),
		errors.Is(err, errPlayerIDRequired),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidAlgorithm),
		errors.Is(err, engine.ErrInvalidBoardSize),
		errors.Is(err, engine.ErrInvalidMark),
		errors.Is(err, engine.ErrSameMarks),
		errors.Is(err, engine.ErrIllegalPosition),
		errors.Is(err, engine.ErrGameOver),
		errors.Is(err, engine.ErrBoardFull):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrPlayerNotFound),
		errors.Is(err, repository.ErrGameNotFound),
		errors.Is(err, apperror.ErrPlayerNotInGame):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		message = http.StatusText(status)
	} else {
		that.logger.Debug("request rejected", "method", method, "status", status, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
