package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartGame(ctx context.Context, playerID, mark, algorithm string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Game, error)

	BestMove(ctx context.Context, cells []string, mark, algorithm string) (*entity.BotMove, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	StartGame(ctx context.Context, playerID string, mark engine.Mark, algorithm engine.Algorithm) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type botService interface {
	Suggest(ctx context.Context, board engine.Board, mark engine.Mark, algorithm engine.Algorithm) (*entity.BotMove, error)
}

type gameUseCase struct {
	playerService   playerService
	gamePlayService gamePlayService
	botService      botService

	defaultAlgorithm engine.Algorithm
}

// NewGameUseCase - defaultAlgorithm is used when a request names none.
func NewGameUseCase(playerService playerService, gamePlayService gamePlayService, botService botService, defaultAlgorithm engine.Algorithm) GameUseCase {
	return &gameUseCase{
		playerService:    playerService,
		gamePlayService:  gamePlayService,
		botService:       botService,
		defaultAlgorithm: defaultAlgorithm,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) StartGame(ctx context.Context, playerID, mark, algorithm string) (*entity.Game, error) {
	playerMark, err := engine.ParseMark(mark)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidMark, err)
	}

	searchAlgorithm, err := that.parseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}

	game, err := that.gamePlayService.StartGame(ctx, playerID, playerMark, searchAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - a finished game is cleaned up and returned together with ErrGameFinished.
func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, cell)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.gamePlayService.CleanupGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	return game, nil
}

func (that *gameUseCase) LeaveGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.gamePlayService.CleanupGame(ctx, game)

	return game, nil
}

// BestMove - stateless engine query on a board given as nine cells.
func (that *gameUseCase) BestMove(ctx context.Context, cells []string, mark, algorithm string) (*entity.BotMove, error) {
	board, err := engine.ParseBoard(cells)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	player, err := engine.ParseMark(mark)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidMark, err)
	}

	searchAlgorithm, err := that.parseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}

	move, err := that.botService.Suggest(ctx, board, player, searchAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest move: %w", err)
	}

	return move, nil
}

func (that *gameUseCase) parseAlgorithm(name string) (engine.Algorithm, error) {
	if name == "" {
		return that.defaultAlgorithm, nil
	}

	algorithm, err := engine.ParseAlgorithm(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrInvalidAlgorithm, err)
	}

	return algorithm, nil
}
