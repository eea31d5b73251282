package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{name: "empty board", board: Board{}, want: e},
		{name: "no line", board: Board{x, o, e, e, x, e, e, e, o}, want: e},
		{name: "X top row", board: Board{x, x, x, o, o, e, e, e, e}, want: x},
		{name: "O middle row", board: Board{x, x, e, o, o, o, x, e, e}, want: o},
		{name: "X bottom row", board: Board{o, o, e, e, e, e, x, x, x}, want: x},
		{name: "O left column", board: Board{o, x, x, o, e, e, o, x, e}, want: o},
		{name: "X middle column", board: Board{o, x, e, e, x, o, e, x, e}, want: x},
		{name: "O right column", board: Board{x, x, o, e, x, o, e, e, o}, want: o},
		{name: "X main diagonal", board: Board{x, o, e, e, x, o, e, e, x}, want: x},
		{name: "O anti-diagonal", board: Board{x, x, o, e, o, e, o, x, e}, want: o},
		{name: "full board without line", board: Board{x, o, x, x, o, o, o, x, x}, want: e},
		{name: "full board with line", board: Board{x, x, x, o, o, x, x, o, o}, want: x},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := tt.board

			assert.Equal(t, tt.want, CheckWinner(&board))
			assert.Equal(t, tt.board, board)
		})
	}
}

func TestCheckWinner_MultipleLinesFirstInTableOrder(t *testing.T) {
	// Given: an illegal board where O owns the top row and X owns the bottom row
	board := Board{o, o, o, e, e, e, x, x, x}

	// When: checking the winner
	winner := CheckWinner(&board)

	// Then: the top row comes first in WinCombos, so O is reported
	assert.Equal(t, o, winner)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{name: "ongoing", board: Board{x, e, e, e, o, e, e, e, e}, want: Ongoing},
		{name: "X wins", board: Board{x, x, x, o, o, e, e, e, e}, want: XWins},
		{name: "O wins", board: Board{x, x, o, x, o, e, o, e, e}, want: OWins},
		{name: "draw", board: Board{x, o, x, x, o, o, o, x, x}, want: Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Evaluate(&tt.board)

			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, tt.want != Ongoing, outcome.IsTerminal())
		})
	}
}
