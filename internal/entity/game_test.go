package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it should be ongoing
		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// Then: it should be waiting
		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrUnknownGameStatus
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns PlayerX when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: engine.Board{
				PlayerX, PlayerX, PlayerX,
				PlayerO, PlayerO, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
		}

		// Then: it should return PlayerX as the winner
		assert.Equal(t, PlayerX, game.DetermineGameResult())
	})

	t.Run("Returns PlayerO when Player O wins", func(t *testing.T) {
		// Given: a game where Player O has a winning combination
		game := &Game{
			Board: engine.Board{
				PlayerX, PlayerX, PlayerO,
				PlayerX, PlayerO, EmptyCell,
				PlayerO, EmptyCell, EmptyCell,
			},
		}

		// Then: it should return PlayerO as the winner
		assert.Equal(t, PlayerO, game.DetermineGameResult())
	})

	t.Run("Returns PlayerTie when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board: engine.Board{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
		}

		// Then: it should return PlayerTie
		assert.Equal(t, PlayerTie, game.DetermineGameResult())
	})

	t.Run("Returns EmptyCell when the game is ongoing", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: engine.Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
		}

		// Then: it should return EmptyCell
		assert.Equal(t, EmptyCell, game.DetermineGameResult())
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: engine.Board{
				PlayerX, PlayerX, PlayerX,
				PlayerO, PlayerO, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board: engine.Board{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
			Status: StatusOngoing,
			Turn:   PlayerX,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: engine.Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
			Status: StatusWaiting,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be ongoing
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Equal(t, PlayerO, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", engine.AlgorithmAlphaBeta)
		game.Status = StatusOngoing

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: The board holds the mark and the turn switches
		expectedGame := &Game{
			ID:        "123",
			Board:     engine.Board{PlayerX},
			Turn:      PlayerO,
			Winner:    EmptyCell,
			Status:    StatusOngoing,
			Algorithm: engine.AlgorithmAlphaBeta,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: X has two in the top row
		game := NewGame("123", engine.AlgorithmMinimax)
		game.Status = StatusOngoing
		game.Board = engine.Board{PlayerX, PlayerX, EmptyCell, PlayerO, PlayerO}

		// When: X completes the row
		err := game.MakeTurn(PlayerX, 2)

		// Then: X wins and nobody is to move
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame("123", engine.AlgorithmAlphaBeta)
		game.Status = StatusOngoing
		require.NoError(t, game.MakeTurn(PlayerX, 0))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: An ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, engine.Board{PlayerX}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123", engine.AlgorithmAlphaBeta)
		game.Status = StatusOngoing

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, engine.Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123", engine.AlgorithmAlphaBeta)
		game.Status = StatusOngoing

		assert.ErrorIs(t, game.MakeTurn(PlayerX, 20), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, -1), apperror.ErrInvalidCell)
	})

	t.Run("Error after the game finished", func(t *testing.T) {
		// Given: a finished game
		game := &Game{Status: StatusFinished, Turn: PlayerO}

		// When: O tries to move
		err := game.MakeTurn(PlayerO, 3)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Bot(t *testing.T) {
	// Given: a game with a human X and a bot O
	game := NewGame("g1", engine.AlgorithmAlphaBeta)
	game.Status = StatusOngoing
	human := &Player{ID: "p1", Mark: PlayerX, GameID: "g1"}
	bot := NewBotPlayer("g1", PlayerO)
	game.Players = []*Player{human, bot}

	// Then: the bot is found and it is not its turn yet
	assert.Same(t, bot, game.Bot())
	assert.Equal(t, "bot-g1", bot.ID)
	assert.False(t, game.IsBotTurn())

	// When: the human moves
	require.NoError(t, game.MakeTurn(PlayerX, 4))

	// Then: the bot is to move
	assert.True(t, game.IsBotTurn())
}

func TestGame_GetRandomMarks(t *testing.T) {
	game := &Game{}

	for range 20 {
		playerMark, botMark := game.GetRandomMarks()

		assert.Contains(t, []engine.Mark{PlayerX, PlayerO}, playerMark)
		assert.Equal(t, engine.Opponent(playerMark), botMark)
	}
}
