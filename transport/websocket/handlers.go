package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

const gameStatusLeave = "leave"

func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	playerID := ""
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "playerID", playerID, "error", err)
		return that.sendError(conn, msg.Action, clientMessage(err, "failed to get a player"))
	}

	payloadResp := Payload{Player: player}

	if player.InGame() {
		game, gameErr := that.uGame.GetGameByPlayerID(ctx, player.ID)
		if gameErr == nil {
			payloadResp.Game = maskGameDetails(game)
		} else {
			log.Warn("game of the player is gone", "gameID", player.GameID, "error", gameErr)
		}
	}

	log.Info("player connected", "playerID", player.ID)

	return that.sendMessage(conn, msg.Action, payloadResp)
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	if payloadReq.Player == nil || payloadReq.Player.ID == "" {
		return that.sendError(conn, msg.Action, "Player is required")
	}

	game, err := that.uGame.StartGame(ctx, payloadReq.Player.ID, payloadReq.Mark, payloadReq.Algorithm)
	if err != nil {
		log.Error("failed to start game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendError(conn, msg.Action, clientMessage(err, "failed to create a new game"))
	}

	log.Info("game started", "playerID", payloadReq.Player.ID, "gameID", game.ID)

	return that.sendMessage(conn, msg.Action, Payload{
		Player: playerOf(game, payloadReq.Player.ID),
		Game:   maskGameDetails(game),
	})
}

func (that *Server) handleGameTurn(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	if payloadReq.Player == nil || payloadReq.Player.ID == "" {
		return that.sendError(conn, msg.Action, "Player is required")
	}

	if payloadReq.Cell == nil {
		return that.sendError(conn, msg.Action, "Cell is required")
	}

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.uGame.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Cell)
	if errors.Is(err, apperror.ErrGameFinished) && game != nil {
		log.Info("game finished", "gameID", game.ID, "winner", game.Winner)
		return that.sendMessage(conn, msg.Action, Payload{Game: maskGameDetails(game)})
	}

	if err != nil {
		log.Warn("failed to make turn", "error", err)
		return that.sendError(conn, msg.Action, clientMessage(err, "failed to make a turn"))
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: maskGameDetails(game)})
}

func (that *Server) handleGameLeave(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	log := that.logger.With("method", "handleGameLeave")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	if payloadReq.Player == nil || payloadReq.Player.ID == "" {
		return that.sendError(conn, msg.Action, "Player is required")
	}

	game, err := that.uGame.LeaveGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Warn("failed to leave game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendError(conn, msg.Action, "game doesn't exist")
	}

	payloadResp := Payload{Game: maskGameDetails(game)}
	payloadResp.Game.Status = gameStatusLeave

	log.Info("player left", "playerID", payloadReq.Player.ID, "gameID", game.ID)

	return that.sendMessage(conn, msg.Action, payloadResp)
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	return &payload, nil
}

// clientMessage - validation and game-rule errors go back as is, anything else gets fallback.
func clientMessage(err error, fallback string) string {
	for _, known := range []error{
		apperror.ErrNotYourTurn,
		apperror.ErrCellOccupied,
		apperror.ErrInvalidCell,
		apperror.ErrGameIsNotStarted,
		apperror.ErrPlayerNotInGame,
		apperror.ErrInvalidMark,
		apperror.ErrInvalidAlgorithm,
		repository.ErrPlayerNotFound,
		engine.ErrInvalidMark,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return fallback
}

func playerOf(game *entity.Game, playerID string) *entity.Player {
	for _, player := range game.Players {
		if player.ID == playerID {
			return player
		}
	}

	return nil
}

// maskGameDetails - a copy of the game without the players.
func maskGameDetails(game *entity.Game) *entity.Game {
	masked := *game
	masked.Players = nil

	return &masked
}
