package board_test

import (
	"testing"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardSetIsSet(t *testing.T) {
	bb := board.EmptyBitboard
	bb = bb.Set(board.E4)
	assert.True(t, bb.IsSet(board.E4))
	assert.False(t, bb.IsSet(board.E5))
}

func TestBitboardToggle(t *testing.T) {
	bb := board.EmptyBitboard.Set(board.A1)
	bb = bb.Toggle(board.A1)
	assert.False(t, bb.IsSet(board.A1))
	bb = bb.Toggle(board.A1)
	assert.True(t, bb.IsSet(board.A1))
}

func TestBitboardToggleSquares(t *testing.T) {
	bb := board.EmptyBitboard.Set(board.A1)
	bb = bb.ToggleSquares(board.A1, board.H8)
	assert.False(t, bb.IsSet(board.A1))
	assert.True(t, bb.IsSet(board.H8))
}

func TestBitboardPopCount(t *testing.T) {
	bb := board.EmptyBitboard.Set(board.A1).Set(board.H1).Set(board.H8)
	assert.Equal(t, 3, bb.PopCount())
}

func TestBitboardBitScan(t *testing.T) {
	bb := board.EmptyBitboard.Set(board.D4).Set(board.H8)
	assert.Equal(t, board.D4, bb.BitScan())

	sq, rest := bb.BitScanReset()
	assert.Equal(t, board.D4, sq)
	assert.Equal(t, board.H8, rest.BitScan())
}

func TestBitboardIsolateLS1B(t *testing.T) {
	bb := board.EmptyBitboard.Set(board.D4).Set(board.H8)
	iso := bb.IsolateLS1B()
	assert.Equal(t, board.EmptyBitboard.Set(board.D4), iso)
}

func TestBitMask(t *testing.T) {
	assert.Equal(t, board.Bitboard(1), board.BitMask(board.A1))
	assert.Equal(t, board.Bitboard(1)<<63, board.BitMask(board.H8))
}
