package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrPlayerNotInGame  = errors.New("player is not in a game")
	ErrInvalidMark      = errors.New("mark must be X or O")
	ErrInvalidAlgorithm = errors.New("invalid search algorithm")
)
