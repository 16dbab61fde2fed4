package board

// PieceType represents a chess piece without color. The numeric ordering is deliberately
// stable: it indexes the per-color bitboard arrays and is written verbatim into a Move's
// promotion-type field (Queen must keep its ordinal for that encoding to round-trip).
type PieceType uint8

const (
	Rook PieceType = iota
	Bishop
	Queen
	Knight
	Pawn
	King
)

const (
	ZeroPieceType PieceType = 0
	NumPieceTypes PieceType = 6
)

// IsSlider returns true iff the piece type moves along open rays (Rook, Bishop, Queen).
func (t PieceType) IsSlider() bool {
	return t == Rook || t == Bishop || t == Queen
}

func (t PieceType) String() string {
	switch t {
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Queen:
		return "q"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	case King:
		return "k"
	default:
		return "?"
	}
}

// ParsePieceType parses a piece letter of either case, as used in FEN and promotion suffixes.
func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'q', 'Q':
		return Queen, true
	case 'n', 'N':
		return Knight, true
	case 'p', 'P':
		return Pawn, true
	case 'k', 'K':
		return King, true
	default:
		return 0, false
	}
}

// Piece is a (PieceType, Color) pair, packed into a single byte. Equality is structural:
// two Pieces with the same type and color compare equal via ==.
type Piece struct {
	code uint8
}

// NewPiece returns the Piece for the given type and color.
func NewPiece(t PieceType, c Color) Piece {
	return Piece{code: uint8(t) | uint8(c)<<3}
}

func (p Piece) Type() PieceType {
	return PieceType(p.code & 0x7)
}

func (p Piece) Color() Color {
	return Color(p.code >> 3)
}

// IsSlider returns true iff the piece is a Rook, Bishop or Queen.
func (p Piece) IsSlider() bool {
	return p.Type().IsSlider()
}

func (p Piece) String() string {
	if p.Color() == White {
		switch p.Type() {
		case Rook:
			return "R"
		case Bishop:
			return "B"
		case Queen:
			return "Q"
		case Knight:
			return "N"
		case Pawn:
			return "P"
		case King:
			return "K"
		}
	}
	return p.Type().String()
}
