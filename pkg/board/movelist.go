package board

// MaxLegalMoves bounds the capacity of a MoveList. 218 is the known upper bound of legal
// moves in any reachable chess position; 255 leaves headroom without wasting much space.
const MaxLegalMoves = 255

// MoveList is a fixed-capacity inline buffer of moves. Move generation never allocates on
// the heap for it: capacity is sized once at MaxLegalMoves and overflow is a hard invariant
// violation rather than a silent truncation.
type MoveList struct {
	moves [MaxLegalMoves]Move
	size  int
}

// Push appends a move. Panics if the list is already at capacity, which would indicate a
// move generation bug rather than a legitimate chess position.
func (l *MoveList) Push(m Move) {
	if l.size >= MaxLegalMoves {
		panic("move list overflow: more than 255 legal moves generated")
	}
	l.moves[l.size] = m
	l.size++
}

// Len returns the number of moves in the list.
func (l *MoveList) Len() int {
	return l.size
}

// At returns the i-th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Swap exchanges the moves at the two given indices, used by move ordering.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}

// Slice returns the populated moves as a plain slice, backed by the list's own array.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.size]
}

// Find returns the move in the list equal (per Move.Equals) to the given move, e.g. to
// resolve a flag-less move proposed by an external caller (GUI) against the legal list.
func (l *MoveList) Find(m Move) (Move, bool) {
	for i := 0; i < l.size; i++ {
		if l.moves[i].Equals(m) {
			return l.moves[i], true
		}
	}
	return Move{}, false
}

// appendBitboard pushes one move per set bit in bb, all sharing the same origin and piece.
func (l *MoveList) appendBitboard(bb Bitboard, from Square, piece Piece) {
	for bb != 0 {
		var to Square
		to, bb = bb.BitScanReset()
		l.Push(NewMove(from, to, piece))
	}
}
