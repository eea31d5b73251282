package engine

import (
	"fmt"
	"math"
	"strings"
)

const (
	// WinScore - score of a win found at depth 0, every ply deeper costs one point.
	WinScore = 10

	negInf = math.MinInt
	posInf = math.MaxInt
)

// Algorithm - search variant used by the move selector.
type Algorithm string

const (
	AlgorithmMinimax   Algorithm = "minimax"
	AlgorithmAlphaBeta Algorithm = "alphabeta"
)

// ParseAlgorithm - accepts the config/transport spelling of a variant, empty means alpha-beta.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "alphabeta", "alpha-beta", "minimax_alpha_beta":
		return AlgorithmAlphaBeta, nil
	case "minimax":
		return AlgorithmMinimax, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

func (a Algorithm) UseAlphaBeta() bool {
	return a != AlgorithmMinimax
}

// searcher counts visited nodes, one per recursive call.
type searcher struct {
	nodes int
}

// Minimax - exhaustive score of the position from player's side.
func Minimax(board *Board, depth int, maximizing bool, player, opponent Mark) int {
	var s searcher
	return s.minimax(board, depth, maximizing, player, opponent)
}

// AlphaBeta - same score as Minimax, skipping branches that cannot change it.
func AlphaBeta(board *Board, depth int, maximizing bool, player, opponent Mark, alpha, beta int) int {
	var s searcher
	return s.alphaBeta(board, depth, maximizing, player, opponent, alpha, beta)
}

// terminalScore - score of a finished position, ok is false while the game goes on.
func terminalScore(board *Board, depth int, player, opponent Mark) (int, bool) {
	switch CheckWinner(board) {
	case player:
		return WinScore - depth, true
	case opponent:
		return depth - WinScore, true
	}

	if board.IsFull() {
		return 0, true
	}

	return 0, false
}

func (that *searcher) minimax(board *Board, depth int, maximizing bool, player, opponent Mark) int {
	that.nodes++

	if score, ok := terminalScore(board, depth, player, opponent); ok {
		return score
	}

	if maximizing {
		best := negInf
		for i := range board {
			if board[i] != Empty {
				continue
			}

			board.Set(i, player)
			score := that.minimax(board, depth+1, false, player, opponent)
			board.Clear(i)

			best = max(best, score)
		}

		return best
	}

	best := posInf
	for i := range board {
		if board[i] != Empty {
			continue
		}

		board.Set(i, opponent)
		score := that.minimax(board, depth+1, true, player, opponent)
		board.Clear(i)

		best = min(best, score)
	}

	return best
}

func (that *searcher) alphaBeta(board *Board, depth int, maximizing bool, player, opponent Mark, alpha, beta int) int {
	that.nodes++

	if score, ok := terminalScore(board, depth, player, opponent); ok {
		return score
	}

	if maximizing {
		best := negInf
		for i := range board {
			if board[i] != Empty {
				continue
			}

			board.Set(i, player)
			score := that.alphaBeta(board, depth+1, false, player, opponent, alpha, beta)
			board.Clear(i)

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := posInf
	for i := range board {
		if board[i] != Empty {
			continue
		}

		board.Set(i, opponent)
		score := that.alphaBeta(board, depth+1, true, player, opponent, alpha, beta)
		board.Clear(i)

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best
}

// score - evaluates the position after a root move, the opponent replies next.
func (that *searcher) score(board *Board, player, opponent Mark, algorithm Algorithm) int {
	if algorithm.UseAlphaBeta() {
		return that.alphaBeta(board, 0, false, player, opponent, negInf, posInf)
	}

	return that.minimax(board, 0, false, player, opponent)
}
