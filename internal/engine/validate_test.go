package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		player   Mark
		opponent Mark
		wantErr  error
	}{
		{name: "empty board, X to move", board: Board{}, player: x, opponent: o},
		{name: "O to move after X opened", board: Board{e, e, e, e, x, e, e, e, e}, player: o, opponent: x},
		{name: "unknown player mark", board: Board{}, player: "Z", opponent: o, wantErr: ErrInvalidMark},
		{name: "empty opponent mark", board: Board{}, player: x, opponent: e, wantErr: ErrInvalidMark},
		{name: "same marks", board: Board{}, player: x, opponent: x, wantErr: ErrSameMarks},
		{name: "unknown cell mark", board: Board{"Z", e, e, e, e, e, e, e, e}, player: o, opponent: x, wantErr: ErrInvalidMark},
		{name: "O opened, X to move", board: Board{e, e, e, e, o, e, e, e, e}, player: x, opponent: o},
		{name: "O opened, level counts, O to move", board: Board{x, e, e, e, o, e, e, e, e}, player: o, opponent: x},
		{name: "level counts, X to move", board: Board{x, e, e, e, o, e, e, e, e}, player: x, opponent: o},
		{name: "X behind by two", board: Board{o, o, e, e, e, e, e, e, e}, player: x, opponent: o},
		{name: "wrong side to move", board: Board{x, e, e, e, e, e, e, e, e}, player: x, opponent: o, wantErr: ErrIllegalPosition},
		{name: "O to move while ahead", board: Board{o, o, x, e, e, e, e, e, e}, player: o, opponent: x, wantErr: ErrIllegalPosition},
		{name: "already won", board: Board{x, x, x, o, o, e, e, e, e}, player: o, opponent: x, wantErr: ErrGameOver},
		{name: "one cell left", board: Board{x, o, x, x, o, o, o, x, e}, player: x, opponent: o},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.board, tt.player, tt.opponent)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FullBoard(t *testing.T) {
	// Given: a drawn board with O to move
	board := Board{x, o, x, x, o, o, o, x, x}

	// When: validating for O
	err := Validate(&board, o, x)

	// Then: the board is reported full
	require.ErrorIs(t, err, ErrBoardFull)
}
