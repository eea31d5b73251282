package engine

import (
	"fmt"

	"github.com/samber/lo"
)

// Validate - rejects inputs the search assumes never happen. The search itself does not call it.
// Marks are symmetric: O may open, and a mover behind by more than one mark is accepted.
func Validate(board *Board, player, opponent Mark) error {
	if !player.IsPlayer() || !opponent.IsPlayer() {
		return fmt.Errorf("%w: player %q, opponent %q", ErrInvalidMark, player, opponent)
	}

	if player == opponent {
		return ErrSameMarks
	}

	cells := board[:]
	if bad, found := lo.Find(cells, func(cell Mark) bool { return cell != Empty && !cell.IsPlayer() }); found {
		return fmt.Errorf("%w: cell holds %q", ErrInvalidMark, bad)
	}

	countPlayer := lo.Count(cells, player)
	countOpponent := lo.Count(cells, opponent)

	// either side may open, but the side to move is never ahead
	if countPlayer > countOpponent {
		return fmt.Errorf("%w: %s to move with %d marks against %d", ErrIllegalPosition, player, countPlayer, countOpponent)
	}

	if winner := CheckWinner(board); winner != Empty {
		return fmt.Errorf("%w: %s", ErrGameOver, winner)
	}

	if board.IsFull() {
		return ErrBoardFull
	}

	return nil
}
