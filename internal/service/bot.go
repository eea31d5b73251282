package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
	Suggest(ctx context.Context, board engine.Board, mark engine.Mark, algorithm engine.Algorithm) (*entity.BotMove, error)
}

type botService struct {
	logger   *slog.Logger
	parallel bool
}

// NewBotService - parallel spreads the root moves of every search over goroutines.
func NewBotService(logger *slog.Logger, parallel bool) BotService {
	return &botService{
		logger:   logger,
		parallel: parallel,
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	botPlayer := game.Bot()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	result, err := that.search(ctx, game.Board, botPlayer.Mark, game.Algorithm)
	if err != nil {
		return fmt.Errorf("bot search failed: %w", err)
	}

	if !result.Found() {
		return ErrNoAvailableMoves
	}

	if err = game.MakeTurn(botPlayer.Mark, result.Move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.LastBotMove = toBotMove(result)

	log.Info("bot made a turn",
		"cell", result.Move,
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", result.Elapsed,
		"algorithm", game.Algorithm,
	)

	return nil
}

// Suggest - best move for mark on an arbitrary legal board, the board itself is not changed.
func (that *botService) Suggest(ctx context.Context, board engine.Board, mark engine.Mark, algorithm engine.Algorithm) (*entity.BotMove, error) {
	if err := engine.Validate(&board, mark, engine.Opponent(mark)); err != nil {
		return nil, fmt.Errorf("invalid position %s: %w", board.String(), err)
	}

	result, err := that.search(ctx, board, mark, algorithm)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	that.logger.Debug("suggested move",
		"method", "Suggest",
		"board", board.String(),
		"cell", result.Move,
		"score", result.Score,
		"nodes", result.Nodes,
	)

	return toBotMove(result), nil
}

// search works on its own copy of the board.
func (that *botService) search(ctx context.Context, board engine.Board, mark engine.Mark, algorithm engine.Algorithm) (engine.Result, error) {
	if that.parallel {
		return engine.SearchParallel(ctx, board, mark, engine.Opponent(mark), algorithm)
	}

	if err := ctx.Err(); err != nil {
		return engine.Result{Move: engine.NoMove}, err
	}

	return engine.Search(&board, mark, engine.Opponent(mark), algorithm), nil
}

func toBotMove(result engine.Result) *entity.BotMove {
	return &entity.BotMove{
		Cell:          result.Move,
		Score:         result.Score,
		Nodes:         result.Nodes,
		ElapsedMicros: result.Elapsed.Microseconds(),
	}
}
