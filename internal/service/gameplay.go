package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type GamePlayService interface {
	StartGame(ctx context.Context, playerID string, mark engine.Mark, algorithm engine.Algorithm) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// StartGame - resumes the unfinished game of the player or seats them against the bot.
// An empty mark is drawn at random, the bot opens when it holds X.
func (that *gamePlayService) StartGame(ctx context.Context, playerID string, mark engine.Mark, algorithm engine.Algorithm) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame", "playerID", playerID)

	if mark != entity.EmptyCell && !mark.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.InGame() {
		game, getErr := that.gameService.GetGameByID(ctx, player.GameID)
		switch {
		case getErr == nil && !game.IsFinished():
			return game, nil
		case getErr != nil && !errors.Is(getErr, repository.ErrGameNotFound):
			return nil, fmt.Errorf("failed to get game: %w", getErr)
		}

		log.Info("previous game is gone, starting a new one", "gameID", player.GameID)
	}

	game, err := that.gameService.CreateGame(ctx, player, algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.addBotToGame(ctx, game, player, mark); err != nil {
		return nil, fmt.Errorf("failed to add bot to game: %w", err)
	}

	log.Info("game started", "gameID", game.ID, "mark", player.Mark, "algorithm", game.Algorithm)

	return game, nil
}

func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game, player *entity.Player, mark engine.Mark) error {
	playerMark, botMark := mark, engine.Opponent(mark)
	if mark == entity.EmptyCell {
		playerMark, botMark = game.GetRandomMarks()
	}

	player.Mark = playerMark
	if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	botPlayer := entity.NewBotPlayer(game.ID, botMark)
	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	if game.IsBotTurn() {
		if err := that.botService.MakeTurn(ctx, game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game with bot: %w", err)
	}

	return nil
}

// MakeTurn - applies the player's move and, unless that ended the game, the bot's reply.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InGame() {
		return nil, apperror.ErrPlayerNotInGame
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InGame() {
		return nil, apperror.ErrPlayerNotInGame
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// CleanupGame - removes the game and its bot, frees the human players. Failures are only logged.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			if err := that.playerService.DeletePlayer(ctx, player.ID); err != nil && !errors.Is(err, repository.ErrPlayerNotFound) {
				log.Error("failed to delete bot", "player", player.ID, "error", err)
			}
			continue
		}

		freed := *player
		freed.GameID = ""
		freed.Mark = entity.EmptyCell
		if err := that.playerService.UpdatePlayer(ctx, &freed); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}
}
