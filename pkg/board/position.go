package board

import (
	"context"
	"fmt"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Position is the mutable board state: piece bitboards per color, a combined occupancy
// bitboard per color, a mailbox for O(1) piece-at-square lookup, whose turn it is, and the
// reversible Gamestate stack. The move generator (movegen.go, same package) is a pure
// function of Position; MakeMove/UnmakeMove are the only mutators, and both are responsible
// for keeping the three redundant representations (type bitboards, color bitboards, mailbox)
// consistent: every vacated square's mailbox entry is cleared, not just overwritten at its
// destination.
type Position struct {
	pieceBB [NumColors][NumPieceTypes]Bitboard
	colorBB [NumColors]Bitboard
	mailbox [NumSquares]Piece

	sideToMove Color
	state      Gamestate
	stateStack []Gamestate

	legalMoves      MoveList
	legalMovesValid bool
}

// NewPosition builds a Position from an explicit piece placement (indexed by Square, nil
// entries are empty), the side to move and the initial Gamestate (castling rights / en
// passant target, typically produced by NewGamestate). Returns an error if the placement
// is missing a king for either color, has more than one king for a color, or places both kings
// adjacent to each other (an impossible chess position), matching the validation the teacher's
// own NewPosition performs.
func NewPosition(placement [NumSquares]*Piece, sideToMove Color, state Gamestate) (*Position, error) {
	pos := &Position{
		sideToMove: sideToMove,
		state:      state,
		stateStack: make([]Gamestate, 0, 64),
	}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if p := placement[sq]; p != nil {
			pos.placePiece(*p, sq)
		}
	}

	if pos.pieceBB[White][King].PopCount() != 1 {
		return nil, fmt.Errorf("invalid number of white kings: %v", pos.pieceBB[White][King].PopCount())
	}
	if pos.pieceBB[Black][King].PopCount() != 1 {
		return nil, fmt.Errorf("invalid number of black kings: %v", pos.pieceBB[Black][King].PopCount())
	}
	if KingAttacks[pos.King(White)]&pos.pieceBB[Black][King] != 0 {
		return nil, fmt.Errorf("kings cannot be adjacent")
	}

	return pos, nil
}

func (pos *Position) placePiece(p Piece, sq Square) {
	pos.pieceBB[p.Color()][p.Type()] = pos.pieceBB[p.Color()][p.Type()].Set(sq)
	pos.colorBB[p.Color()] = pos.colorBB[p.Color()].Set(sq)
	pos.mailbox[sq] = p
}

// PieceBB returns the bitboard of pieces of the given type and color.
func (pos *Position) PieceBB(c Color, t PieceType) Bitboard {
	return pos.pieceBB[c][t]
}

// ColorBB returns the combined occupancy bitboard of the given color.
func (pos *Position) ColorBB(c Color) Bitboard {
	return pos.colorBB[c]
}

// Occupied returns the bitboard of all occupied squares.
func (pos *Position) Occupied() Bitboard {
	return pos.colorBB[White] | pos.colorBB[Black]
}

// King returns the square of the given color's king. Undefined if the color has no king on
// the board; NewPosition rejects such placements, so only a Position not built through
// NewPosition can violate this.
func (pos *Position) King(c Color) Square {
	return pos.pieceBB[c][King].BitScan()
}

// PieceAt returns the piece on the given square, if any.
func (pos *Position) PieceAt(sq Square) (Piece, bool) {
	if !pos.Occupied().IsSet(sq) {
		return Piece{}, false
	}
	return pos.mailbox[sq], true
}

// SideToMove returns the color to move.
func (pos *Position) SideToMove() Color {
	return pos.sideToMove
}

// Castling returns the current castling rights.
func (pos *Position) Castling() Castling {
	return pos.state.CastlingRights
}

// EnPassantTarget returns the square a capturing pawn would land on, if the previous move was
// a two-square pawn push.
func (pos *Position) EnPassantTarget() (Square, bool) {
	return pos.state.EnPassantTarget.V()
}

// LegalMoves returns the cached legal move list, generating it lazily on first use.
func (pos *Position) LegalMoves(ctx context.Context) MoveList {
	if !pos.legalMovesValid {
		pos.RegenerateLegalMoves(ctx)
	}
	return pos.legalMoves
}

// RegenerateLegalMoves forces recomputation of the legal move list.
func (pos *Position) RegenerateLegalMoves(ctx context.Context) {
	pos.legalMoves = generateLegalMoves(pos)
	pos.legalMovesValid = true
	logw.Debugf(ctx, "regenerated legal moves for %v to move: %v candidates", pos.sideToMove, pos.legalMoves.Len())
}

// MakeMove applies m to the position, switching the side to move. The caller is responsible
// for m having come from (or matching, via Move.Equals, an entry in) LegalMoves: MakeMove
// performs no legality checking of its own.
func (pos *Position) MakeMove(ctx context.Context, m Move) {
	from, to := m.From(), m.To()
	moved := m.Moved
	us := moved.Color()
	enemy := us.Opponent()

	captured, hadCapture := pos.PieceAt(to)

	pos.stateStack = append(pos.stateStack, pos.state)
	pos.state.LastCaptured = lang.Optional[Piece]{}
	pos.state.EnPassantTarget = lang.Optional[Square]{}

	pos.pieceBB[us][moved.Type()] = pos.pieceBB[us][moved.Type()].ToggleSquares(from, to)
	pos.colorBB[us] = pos.colorBB[us].ToggleSquares(from, to)

	switch moved.Type() {
	case King:
		pos.state.removeCastleKingSide(us)
		pos.state.removeCastleQueenSide(us)
	case Rook:
		if from == castlingRookSquareQueenSide[us] {
			pos.state.removeCastleQueenSide(us)
		} else if from == castlingRookSquareKingSide[us] {
			pos.state.removeCastleKingSide(us)
		}
	}

	if m.IsPromotion() {
		promo := m.PromotionType()
		pos.pieceBB[us][moved.Type()] = pos.pieceBB[us][moved.Type()].Toggle(to)
		pos.pieceBB[us][promo] = pos.pieceBB[us][promo].Toggle(to)
		pos.mailbox[from] = NewPiece(promo, us)
	}

	if moved.Type() == Pawn && squareDiff(from, to) == 16 {
		if us == White {
			pos.state.EnPassantTarget = lang.Some(from + 8)
		} else {
			pos.state.EnPassantTarget = lang.Some(from - 8)
		}
	} else if m.IsEnPassant() {
		capSq := enPassantCapturedSquare(us, to)
		pos.pieceBB[enemy][Pawn] = pos.pieceBB[enemy][Pawn].Toggle(capSq)
		pos.colorBB[enemy] = pos.colorBB[enemy].Toggle(capSq)
		pos.state.LastCaptured = lang.Some(NewPiece(Pawn, enemy))
		pos.mailbox[capSq] = Piece{}
	} else if hadCapture {
		pos.pieceBB[enemy][captured.Type()] = pos.pieceBB[enemy][captured.Type()].Toggle(to)
		pos.colorBB[enemy] = pos.colorBB[enemy].Toggle(to)
		pos.state.LastCaptured = lang.Some(captured)
	} else if m.IsCastleKingSide() {
		rookFrom, rookTo := from+3, from+1
		pos.pieceBB[us][Rook] = pos.pieceBB[us][Rook].ToggleSquares(rookFrom, rookTo)
		pos.colorBB[us] = pos.colorBB[us].ToggleSquares(rookFrom, rookTo)
		pos.mailbox[rookTo] = pos.mailbox[rookFrom]
		pos.mailbox[rookFrom] = Piece{}
	} else if m.IsCastleQueenSide() {
		rookFrom, rookTo := from-4, from-1
		pos.pieceBB[us][Rook] = pos.pieceBB[us][Rook].ToggleSquares(rookFrom, rookTo)
		pos.colorBB[us] = pos.colorBB[us].ToggleSquares(rookFrom, rookTo)
		pos.mailbox[rookTo] = pos.mailbox[rookFrom]
		pos.mailbox[rookFrom] = Piece{}
	}

	pos.mailbox[to] = pos.mailbox[from]
	pos.mailbox[from] = Piece{}
	pos.sideToMove = enemy
	pos.legalMovesValid = false

	logw.Debugf(ctx, "made move %v (%v)", m, moved)
}

// UnmakeMove reverses the effect of the most recent MakeMove(ctx, m). m must be the exact
// move most recently made; calling it out of order produces an undefined position.
func (pos *Position) UnmakeMove(ctx context.Context, m Move) {
	from, to := m.From(), m.To()
	moved := m.Moved
	us := moved.Color()
	enemy := us.Opponent()

	pos.pieceBB[us][moved.Type()] = pos.pieceBB[us][moved.Type()].ToggleSquares(from, to)
	pos.colorBB[us] = pos.colorBB[us].ToggleSquares(from, to)
	pos.mailbox[from] = pos.mailbox[to]
	pos.mailbox[to] = Piece{}

	if m.IsPromotion() {
		promo := m.PromotionType()
		pos.pieceBB[us][promo] = pos.pieceBB[us][promo].Toggle(to)
		pos.pieceBB[us][Pawn] = pos.pieceBB[us][Pawn].Toggle(to)
		pos.mailbox[from] = NewPiece(Pawn, us)
	}

	if m.IsEnPassant() {
		capSq := enPassantCapturedSquare(us, to)
		pos.pieceBB[enemy][Pawn] = pos.pieceBB[enemy][Pawn].Toggle(capSq)
		pos.colorBB[enemy] = pos.colorBB[enemy].Toggle(capSq)
		pos.mailbox[capSq] = NewPiece(Pawn, enemy)
	} else if captured, ok := pos.state.LastCaptured.V(); ok {
		pos.pieceBB[enemy][captured.Type()] = pos.pieceBB[enemy][captured.Type()].Toggle(to)
		pos.colorBB[enemy] = pos.colorBB[enemy].Toggle(to)
		pos.mailbox[to] = captured
	} else if m.IsCastleKingSide() {
		rookFrom, rookTo := from+3, from+1
		pos.pieceBB[us][Rook] = pos.pieceBB[us][Rook].ToggleSquares(rookFrom, rookTo)
		pos.colorBB[us] = pos.colorBB[us].ToggleSquares(rookFrom, rookTo)
		pos.mailbox[rookFrom] = pos.mailbox[rookTo]
		pos.mailbox[rookTo] = Piece{}
	} else if m.IsCastleQueenSide() {
		rookFrom, rookTo := from-4, from-1
		pos.pieceBB[us][Rook] = pos.pieceBB[us][Rook].ToggleSquares(rookFrom, rookTo)
		pos.colorBB[us] = pos.colorBB[us].ToggleSquares(rookFrom, rookTo)
		pos.mailbox[rookFrom] = pos.mailbox[rookTo]
		pos.mailbox[rookTo] = Piece{}
	}

	pos.state = pos.stateStack[len(pos.stateStack)-1]
	pos.stateStack = pos.stateStack[:len(pos.stateStack)-1]
	pos.sideToMove = us
	pos.legalMovesValid = false

	logw.Debugf(ctx, "unmade move %v (%v)", m, moved)
}

// squareDiff returns the absolute difference between two squares' indices.
func squareDiff(a, b Square) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// enPassantCapturedSquare returns the square of the enemy pawn captured en passant, given the
// capturing side and its destination square.
func enPassantCapturedSquare(us Color, to Square) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}
