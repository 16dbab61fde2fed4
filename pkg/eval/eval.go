// Package eval contains static position evaluation.
package eval

import "github.com/rlenti/chesscore/pkg/board"

// Centipawns is a material score in hundredths of a pawn, relative to the side to move:
// positive favors the side to move.
type Centipawns int32

// weight is indexed by board.PieceType; ordinals match board's Rook/Bishop/Queen/Knight/
// Pawn/King ordering.
var weight = [board.NumPieceTypes]Centipawns{
	board.Rook:   500,
	board.Bishop: 330,
	board.Queen:  900,
	board.Knight: 300,
	board.Pawn:   100,
	board.King:   0,
}

// PieceValue returns the material value of a piece type, ignoring color.
func PieceValue(t board.PieceType) Centipawns {
	return weight[t]
}

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score, relative to pos.SideToMove().
	Evaluate(pos *board.Position) Centipawns
}

// Material is a pure material-count evaluator: the weighted piece difference between the
// side to move and its opponent. It has no positional knowledge (no piece-square tables, no
// mobility, no king safety).
type Material struct{}

func (Material) Evaluate(pos *board.Position) Centipawns {
	us := pos.SideToMove()
	enemy := us.Opponent()

	var score Centipawns
	for t := board.ZeroPieceType; t < board.NumPieceTypes; t++ {
		diff := pos.PieceBB(us, t).PopCount() - pos.PieceBB(enemy, t).PopCount()
		score += Centipawns(diff) * weight[t]
	}
	return score
}
