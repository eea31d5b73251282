package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = engine.MarkX
	PlayerO   = engine.MarkO
	PlayerTie = engine.Mark("-")

	EmptyCell = engine.Empty
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// BotMove - what the engine reported for the bot's last move.
type BotMove struct {
	Cell          int   `json:"cell"`
	Score         int   `json:"score"`
	Nodes         int   `json:"nodes"`
	ElapsedMicros int64 `json:"elapsed_us"`
}

type Game struct {
	ID          string           `json:"id"`
	Board       engine.Board     `json:"board"`
	Winner      engine.Mark      `json:"winner"`
	Status      string           `json:"status"`
	Turn        engine.Mark      `json:"player_turn"`
	Players     []*Player        `json:"players,omitempty"`
	Algorithm   engine.Algorithm `json:"algorithm"`
	LastBotMove *BotMove         `json:"last_bot_move,omitempty"`
}

func NewGame(id string, algorithm engine.Algorithm) *Game {
	return &Game{
		ID:        id,
		Board:     engine.Board{},
		Turn:      PlayerX,
		Status:    StatusWaiting,
		Algorithm: algorithm,
	}
}

// DetermineGameResult - winner mark, PlayerTie for a draw, EmptyCell while the game goes on.
func (that *Game) DetermineGameResult() engine.Mark {
	switch engine.Evaluate(&that.Board) {
	case engine.XWins:
		return PlayerX
	case engine.OWins:
		return PlayerO
	case engine.Draw:
		return PlayerTie
	default:
		return EmptyCell
	}
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark engine.Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board.Set(cell, playerMark)
	that.Turn = engine.Opponent(playerMark)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Bot - the bot player of the game, nil if there is none.
func (that *Game) Bot() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

// IsBotTurn - true while the game runs and the bot holds the mark to move.
func (that *Game) IsBotTurn() bool {
	bot := that.Bot()
	return bot != nil && that.IsOngoing() && that.Turn == bot.Mark
}

// GetRandomMarks - player mark first, bot mark second.
func (that *Game) GetRandomMarks() (engine.Mark, engine.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
