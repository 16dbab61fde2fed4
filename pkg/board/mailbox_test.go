package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// White-box check of the mailbox/bitboard invariant itself (spec.md §4.2/§8): the external
// board_test suite can only observe PieceAt, which is gated on Occupied() and so cannot
// distinguish a correctly-cleared mailbox slot from a stale one. This lives in package board,
// not board_test, specifically to read the unexported mailbox array directly.
func TestMakeUnmakeClearsVacatedMailboxSlots(t *testing.T) {
	ctx := context.Background()

	wk := NewPiece(King, White)
	bk := NewPiece(King, Black)
	wr := NewPiece(Rook, White)

	var placement [NumSquares]*Piece
	placement[E1] = &wk
	placement[E8] = &bk
	placement[H1] = &wr

	state, err := NewGamestate("K", "-")
	assert.NoError(t, err)

	pos, err := NewPosition(placement, White, state)
	assert.NoError(t, err)

	// Quiet king move: E1 must read zero-value after the piece leaves.
	m := NewMove(E1, E2, wk)
	pos.MakeMove(ctx, m)
	assert.Equal(t, Piece{}, pos.mailbox[E1])
	pos.UnmakeMove(ctx, m)
	assert.Equal(t, Piece{}, pos.mailbox[E2])
	assert.Equal(t, wk, pos.mailbox[E1])

	// Castling: the rook's origin square must be cleared, not just its destination set.
	castle := NewMove(E1, G1, wk)
	castle.AddCastleKingSide()
	pos.MakeMove(ctx, castle)
	assert.Equal(t, Piece{}, pos.mailbox[E1])
	assert.Equal(t, Piece{}, pos.mailbox[H1])
	assert.Equal(t, wr, pos.mailbox[F1])
	pos.UnmakeMove(ctx, castle)
	assert.Equal(t, Piece{}, pos.mailbox[G1])
	assert.Equal(t, Piece{}, pos.mailbox[F1])
	assert.Equal(t, wr, pos.mailbox[H1])
	assert.Equal(t, wk, pos.mailbox[E1])
}
