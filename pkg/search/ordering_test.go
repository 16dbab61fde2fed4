package search_test

import (
	"context"
	"testing"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/rlenti/chesscore/pkg/board/fen"
	"github.com/rlenti/chesscore/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMovesPutsBestCaptureFirst(t *testing.T) {
	ctx := context.Background()
	// White's e3 pawn can capture either a pawn or a rook; MVV-LVA must rank capturing the rook
	// (higher victim value, same attacker: 500 - 100) ahead of capturing the pawn (100 - 100)
	// and of the quiet moves (0).
	pos, err := fen.Decode(ctx, "4k3/8/8/8/3r1p2/4P3/8/4K3 w - -")
	require.NoError(t, err)

	moves := pos.LegalMoves(ctx)
	search.OrderMoves(pos, &moves)

	best := moves.At(0)
	assert.Equal(t, board.D4, best.To(), "capturing the rook should be ordered first")
}

func TestOrderMovesRanksCaptureAboveQuiet(t *testing.T) {
	ctx := context.Background()
	// The d1 rook capturing the d4 queen scores 900 - 500 = 400, above the zero score of every
	// quiet move.
	pos, err := fen.Decode(ctx, "4k3/8/8/8/3q4/8/8/3RK3 w - -")
	require.NoError(t, err)

	moves := pos.LegalMoves(ctx)
	search.OrderMoves(pos, &moves)

	best := moves.At(0)
	assert.Equal(t, board.D4, best.To())
}
