package eval_test

import (
	"context"
	"testing"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/rlenti/chesscore/pkg/board/fen"
	"github.com/rlenti/chesscore/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceValue(t *testing.T) {
	assert.Equal(t, eval.Centipawns(900), eval.PieceValue(board.Queen))
	assert.Equal(t, eval.Centipawns(100), eval.PieceValue(board.Pawn))
	assert.Equal(t, eval.Centipawns(0), eval.PieceValue(board.King))
}

func TestMaterialEvaluateInitialPositionIsBalanced(t *testing.T) {
	pos, err := fen.Decode(context.Background(), fen.Initial)
	require.NoError(t, err)

	var m eval.Material
	assert.Equal(t, eval.Centipawns(0), m.Evaluate(pos))
}

func TestMaterialEvaluateFavorsExtraQueen(t *testing.T) {
	pos, err := fen.Decode(context.Background(), "4k3/8/8/8/8/8/8/4K2Q w - -")
	require.NoError(t, err)

	var m eval.Material
	assert.Equal(t, eval.Centipawns(900), m.Evaluate(pos))
}

func TestMaterialEvaluateIsRelativeToSideToMove(t *testing.T) {
	// Same material imbalance, but black to move: the score flips sign since Evaluate is
	// always relative to the side to move, not to White.
	pos, err := fen.Decode(context.Background(), "4k3/8/8/8/8/8/8/4K2Q b - -")
	require.NoError(t, err)

	var m eval.Material
	assert.Equal(t, eval.Centipawns(-900), m.Evaluate(pos))
}
