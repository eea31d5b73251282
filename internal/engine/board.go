package engine

import (
	"fmt"
	"strings"
)

// Mark - the content of a single cell.
type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

// BoardSize - number of cells on the 3x3 grid.
const BoardSize = 9

// Board - row-major 3x3 grid.
type Board [BoardSize]Mark

// Opponent - returns the other side, Empty for anything that is not a player mark.
func Opponent(mark Mark) Mark {
	switch mark {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// IsPlayer - reports whether the mark belongs to one of the two sides.
func (m Mark) IsPlayer() bool {
	return m == MarkX || m == MarkO
}

// Set - places mark without bounds or occupancy checks.
func (that *Board) Set(index int, mark Mark) {
	that[index] = mark
}

// Clear - empties the cell, the undo of Set.
func (that *Board) Clear(index int) {
	that[index] = Empty
}

// IsFull - true if no cell is empty.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// EmptyCells - indexes of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// String - rows joined by '/', '.' for an empty cell.
func (that *Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}

		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// ParseBoard - builds a board from transport cells, "" for an empty cell.
func ParseBoard(cells []string) (Board, error) {
	var board Board
	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: got %d cells", ErrInvalidBoardSize, len(cells))
	}

	for i, cell := range cells {
		mark, err := ParseMark(cell)
		if err != nil {
			return board, fmt.Errorf("cell %d: %w", i, err)
		}
		board[i] = mark
	}

	return board, nil
}

// ParseMark - X or O in any case, empty input gives Empty.
func ParseMark(value string) (Mark, error) {
	mark := Mark(strings.ToUpper(strings.TrimSpace(value)))
	if mark != Empty && !mark.IsPlayer() {
		return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, value)
	}

	return mark, nil
}
