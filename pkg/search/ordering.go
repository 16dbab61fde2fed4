package search

import (
	"github.com/rlenti/chesscore/pkg/board"
	"github.com/rlenti/chesscore/pkg/eval"
)

// OrderMoves sorts moves in place, highest MVV-LVA score first: captures are scored by
// (victim value - attacker value), promotions add the promoted piece's value. Quiet moves
// score zero. Grounded on original_source/src/engine.rs's order_moves/quick_sort/partition:
// an in-place recursive quicksort (quickSort/partition) over a parallel score slice.
func OrderMoves(pos *board.Position, moves *board.MoveList) {
	n := moves.Len()
	scores := make([]eval.Centipawns, n)
	for i := 0; i < n; i++ {
		m := moves.At(i)
		if captured, ok := pos.PieceAt(m.To()); ok {
			scores[i] = eval.PieceValue(captured.Type()) - eval.PieceValue(m.Moved.Type())
		}
		if m.IsPromotion() {
			scores[i] += eval.PieceValue(m.PromotionType())
		}
	}
	quickSort(moves, scores, 0, n-1)
}

func quickSort(moves *board.MoveList, scores []eval.Centipawns, low, high int) {
	if low < high {
		p := partition(moves, scores, low, high)
		quickSort(moves, scores, low, p-1)
		quickSort(moves, scores, p+1, high)
	}
}

// partition is Lomuto's scheme, pivoting on the last element and moving higher scores left
// (descending order, since the caller wants the best move first).
func partition(moves *board.MoveList, scores []eval.Centipawns, low, high int) int {
	pivot := scores[high]
	i := low - 1

	for j := low; j < high; j++ {
		if scores[j] > pivot {
			i++
			moves.Swap(i, j)
			scores[i], scores[j] = scores[j], scores[i]
		}
	}

	moves.Swap(i+1, high)
	scores[i+1], scores[high] = scores[high], scores[i+1]
	return i + 1
}
