package fen_test

import (
	"context"
	"testing"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/rlenti/chesscore/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInitialPosition(t *testing.T) {
	pos, err := fen.Decode(context.Background(), fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, board.White, pos.SideToMove())

	p, ok := pos.PieceAt(board.E1)
	require.True(t, ok)
	assert.Equal(t, board.King, p.Type())
	assert.Equal(t, board.White, p.Color())

	p, ok = pos.PieceAt(board.E8)
	require.True(t, ok)
	assert.Equal(t, board.King, p.Type())
	assert.Equal(t, board.Black, p.Color())

	_, ok = pos.PieceAt(board.E4)
	assert.False(t, ok)

	assert.Equal(t, board.FullCastingRights, pos.Castling())

	_, ok = pos.EnPassantTarget()
	assert.False(t, ok)
}

func TestDecodeEnPassantAndCastling(t *testing.T) {
	pos, err := fen.Decode(context.Background(), "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	sq, ok := pos.EnPassantTarget()
	require.True(t, ok)
	assert.Equal(t, board.D6, sq)

	assert.True(t, pos.Castling().IsAllowed(board.WhiteKingSideCastle))
	assert.True(t, pos.Castling().IsAllowed(board.BlackQueenSideCastle))
}

func TestDecodeNoCastling(t *testing.T) {
	pos, err := fen.Decode(context.Background(), "8/8/8/8/8/8/8/4K2k w - -")
	require.NoError(t, err)
	assert.Equal(t, board.NoCastling, pos.Castling())
}

func TestEncodeRoundTrip(t *testing.T) {
	pos, err := fen.Decode(context.Background(), fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, fen.Initial, fen.Encode(pos))
}

func TestDecodeSkipsUnknownPlacementCharacters(t *testing.T) {
	// 'x' is not a recognized piece letter or digit and should be silently skipped rather
	// than treated as an error or an empty-square marker, so the rook lands on f1, right after
	// the king.
	pos, err := fen.Decode(context.Background(), "4k3/8/8/8/8/8/8/4KxxR w - -")
	require.NoError(t, err)

	p, ok := pos.PieceAt(board.F1)
	require.True(t, ok)
	assert.Equal(t, board.Rook, p.Type())
}
