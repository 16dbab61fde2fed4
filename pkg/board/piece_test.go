package board_test

import (
	"testing"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestPieceTypeIsSlider(t *testing.T) {
	assert.True(t, board.Rook.IsSlider())
	assert.True(t, board.Bishop.IsSlider())
	assert.True(t, board.Queen.IsSlider())
	assert.False(t, board.Knight.IsSlider())
	assert.False(t, board.Pawn.IsSlider())
	assert.False(t, board.King.IsSlider())
}

func TestPieceTypeString(t *testing.T) {
	assert.Equal(t, "r", board.Rook.String())
	assert.Equal(t, "n", board.Knight.String())
	assert.Equal(t, "k", board.King.String())
}

func TestParsePieceType(t *testing.T) {
	tests := []struct {
		r        rune
		expected board.PieceType
	}{
		{'r', board.Rook}, {'R', board.Rook},
		{'n', board.Knight}, {'N', board.Knight},
		{'q', board.Queen}, {'Q', board.Queen},
	}
	for _, test := range tests {
		pt, ok := board.ParsePieceType(test.r)
		assert.True(t, ok)
		assert.Equal(t, test.expected, pt)
	}

	_, ok := board.ParsePieceType('x')
	assert.False(t, ok)
}

func TestNewPieceTypeAndColor(t *testing.T) {
	p := board.NewPiece(board.Queen, board.Black)
	assert.Equal(t, board.Queen, p.Type())
	assert.Equal(t, board.Black, p.Color())
	assert.True(t, p.IsSlider())
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "Q", board.NewPiece(board.Queen, board.White).String())
	assert.Equal(t, "q", board.NewPiece(board.Queen, board.Black).String())
	assert.Equal(t, "N", board.NewPiece(board.Knight, board.White).String())
}

func TestPieceEquality(t *testing.T) {
	a := board.NewPiece(board.Rook, board.White)
	b := board.NewPiece(board.Rook, board.White)
	c := board.NewPiece(board.Rook, board.Black)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
