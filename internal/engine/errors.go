package engine

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board must have 9 cells")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrSameMarks        = errors.New("player and opponent share a mark")
	ErrIllegalPosition  = errors.New("position is not reachable by alternating moves")
	ErrGameOver         = errors.New("position already has a winner")
	ErrBoardFull        = errors.New("board has no empty cell")
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
)
