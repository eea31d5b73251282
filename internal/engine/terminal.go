package engine

// Outcome - classification of a position.
type Outcome int

const (
	Ongoing Outcome = iota
	XWins
	OWins
	Draw
)

// WinCombos - rows, columns, diagonals. Order decides the winner on an illegal multi-line board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CheckWinner - mark of the first completed line in WinCombos order, Empty when there is none.
func CheckWinner(board *Board) Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// Evaluate - classifies the position.
func Evaluate(board *Board) Outcome {
	switch CheckWinner(board) {
	case MarkX:
		return XWins
	case MarkO:
		return OWins
	}

	if board.IsFull() {
		return Draw
	}

	return Ongoing
}

func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
