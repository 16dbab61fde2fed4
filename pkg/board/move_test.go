package board_test

import (
	"testing"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestMoveFromTo(t *testing.T) {
	m := board.NewMove(board.E2, board.E4, board.NewPiece(board.Pawn, board.White))
	assert.Equal(t, board.E2, m.From())
	assert.Equal(t, board.E4, m.To())
	assert.False(t, m.IsPromotion())
	assert.False(t, m.IsEnPassant())
	assert.False(t, m.IsCastleKingSide())
	assert.False(t, m.IsCastleQueenSide())
}

func TestMovePromotion(t *testing.T) {
	m := board.NewMove(board.E7, board.E8, board.NewPiece(board.Pawn, board.White))
	m.AddPromotion(board.Queen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, board.Queen, m.PromotionType())
}

func TestMoveEnPassant(t *testing.T) {
	m := board.NewMove(board.E5, board.D6, board.NewPiece(board.Pawn, board.White))
	m.AddEnPassant()
	assert.True(t, m.IsEnPassant())
}

func TestMoveCastling(t *testing.T) {
	ks := board.NewMove(board.E1, board.G1, board.NewPiece(board.King, board.White))
	ks.AddCastleKingSide()
	assert.True(t, ks.IsCastleKingSide())
	assert.False(t, ks.IsCastleQueenSide())

	qs := board.NewMove(board.E1, board.C1, board.NewPiece(board.King, board.White))
	qs.AddCastleQueenSide()
	assert.True(t, qs.IsCastleQueenSide())
	assert.False(t, qs.IsCastleKingSide())
}

func TestMoveEquals(t *testing.T) {
	piece := board.NewPiece(board.Pawn, board.White)

	a := board.NewMove(board.E2, board.E4, piece)
	b := board.NewMove(board.E2, board.E4, piece)
	assert.True(t, a.Equals(b))

	c := board.NewMove(board.E2, board.E3, piece)
	assert.False(t, a.Equals(c))

	// Equals ignores flags that aren't promotion type: a flag-less probe move matches a
	// legal-list entry that happens to be, say, an en-passant capture.
	withFlag := board.NewMove(board.E5, board.D6, piece)
	withFlag.AddEnPassant()
	plain := board.NewMove(board.E5, board.D6, piece)
	assert.True(t, withFlag.Equals(plain))

	// Promotions with different target types are distinct moves.
	promoQueen := board.NewMove(board.E7, board.E8, piece)
	promoQueen.AddPromotion(board.Queen)
	promoRook := board.NewMove(board.E7, board.E8, piece)
	promoRook.AddPromotion(board.Rook)
	assert.False(t, promoQueen.Equals(promoRook))
}
