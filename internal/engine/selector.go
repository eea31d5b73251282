package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// NoMove - cell index reported when the board has no empty cell.
const NoMove = -1

// Result - outcome of a root search.
type Result struct {
	Move    int
	Score   int
	Nodes   int
	Elapsed time.Duration
}

// Found - false when the board had no empty cell.
func (r Result) Found() bool {
	return r.Move != NoMove
}

// BestMove - best cell for player, ties keep the lowest index.
func BestMove(board *Board, player, opponent Mark, useAlphaBeta bool) (int, bool) {
	algorithm := AlgorithmMinimax
	if useAlphaBeta {
		algorithm = AlgorithmAlphaBeta
	}

	result := Search(board, player, opponent, algorithm)

	return result.Move, result.Found()
}

// Search - scores every empty root cell in ascending order on the given board,
// which is restored before returning.
func Search(board *Board, player, opponent Mark, algorithm Algorithm) Result {
	started := time.Now()

	var s searcher
	result := Result{Move: NoMove, Score: negInf}

	for i := range board {
		if board[i] != Empty {
			continue
		}

		board.Set(i, player)
		score := s.score(board, player, opponent, algorithm)
		board.Clear(i)

		// strict comparison, the first best cell wins ties
		if score > result.Score {
			result.Score = score
			result.Move = i
		}
	}

	if !result.Found() {
		result.Score = 0
	}

	result.Nodes = s.nodes
	result.Elapsed = time.Since(started)

	return result
}

type rootScore struct {
	score int
	nodes int
}

// SearchParallel - Search with one goroutine per root cell, each on its own copy of the board.
func SearchParallel(ctx context.Context, board Board, player, opponent Mark, algorithm Algorithm) (Result, error) {
	started := time.Now()

	cells := board.EmptyCells()
	scores := make([]rootScore, len(cells))

	g, gctx := errgroup.WithContext(ctx)
	for idx, cell := range cells {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			local := board
			local.Set(cell, player)

			var s searcher
			scores[idx] = rootScore{
				score: s.score(&local, player, opponent, algorithm),
				nodes: s.nodes,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{Move: NoMove}, fmt.Errorf("parallel search: %w", err)
	}

	result := Result{Move: NoMove, Score: negInf}
	for idx, cell := range cells {
		result.Nodes += scores[idx].nodes
		if scores[idx].score > result.Score {
			result.Score = scores[idx].score
			result.Move = cell
		}
	}

	if !result.Found() {
		result.Score = 0
	}

	result.Elapsed = time.Since(started)

	return result, nil
}
