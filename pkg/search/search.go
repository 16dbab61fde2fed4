// Package search implements fixed-depth negamax with alpha-beta pruning over board.Position.
package search

import (
	"context"
	"fmt"
	"math"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/rlenti/chesscore/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// evaluator is the fixed material evaluator used at the search horizon. The spec carries no
// evaluator selection mechanism, so this is not a parameter of Search.
var evaluator eval.Evaluator = eval.Material{}

// noMovesScore is returned for a node with no legal moves (checkmate or stalemate; this
// package makes no attempt to distinguish the two, matching the spec's Non-goal).
const noMovesScore = math.MinInt32 + 1

// Search plays the role of play_next_move: it generates and orders the root's legal moves,
// negamaxes each to the given depth, and returns the best move found along with its score
// (centipawns, relative to pos.SideToMove()). Returns an error, together with the sentinel
// score noMovesScore, only if pos has no legal moves at the root — the caller decides whether
// that means checkmate or stalemate.
func Search(ctx context.Context, pos *board.Position, depth int) (board.Move, int32, error) {
	moves := pos.LegalMoves(ctx)
	if moves.Len() == 0 {
		return board.Move{}, noMovesScore, fmt.Errorf("search: no legal moves for %v to move", pos.SideToMove())
	}
	OrderMoves(pos, &moves)

	alpha := int32(math.MinInt32 + 1)
	beta := int32(math.MaxInt32 - 1)

	var best board.Move
	bestScore := int32(math.MinInt32)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		pos.MakeMove(ctx, m)
		score := -alphaBeta(ctx, pos, depth-1, -beta, -alpha)
		pos.UnmakeMove(ctx, m)

		if score > bestScore {
			bestScore = score
			best = m
			alpha = score
		}
	}

	logw.Infof(ctx, "search depth=%v best=%v score=%v", depth, best, bestScore)
	return best, bestScore, nil
}

// alphaBeta is fail-soft negamax alpha-beta: the returned value may fall outside [alpha, beta]
// when a cutoff occurs, rather than being clamped to the bound.
func alphaBeta(ctx context.Context, pos *board.Position, depth int, alpha, beta int32) int32 {
	if depth == 0 {
		return int32(evaluator.Evaluate(pos))
	}

	moves := pos.LegalMoves(ctx)
	if moves.Len() == 0 {
		return noMovesScore
	}
	OrderMoves(pos, &moves)

	maxEval := int32(noMovesScore)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		pos.MakeMove(ctx, m)
		score := -alphaBeta(ctx, pos, depth-1, -beta, -alpha)
		pos.UnmakeMove(ctx, m)

		maxEval = mathx.Max(maxEval, score)
		alpha = mathx.Max(alpha, score)
		if score >= beta {
			return maxEval
		}
	}
	return maxEval
}
