package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Gamestate is the reversible slice of Position's state: everything a MakeMove mutates that
// UnmakeMove must restore exactly. A copy is pushed onto the gamestate stack before every
// MakeMove and popped on the matching UnmakeMove.
type Gamestate struct {
	// LastCaptured is the piece captured by the most recent move, including en passant.
	LastCaptured lang.Optional[Piece]
	// EnPassantTarget is the square a capturing pawn would land on, set only when the
	// previous move was a two-square pawn push.
	EnPassantTarget lang.Optional[Square]
	// CastlingRights holds the four independent castling-right bits.
	CastlingRights Castling
}

// NewGamestate parses the castling-rights and en-passant fields of a FEN-like descriptor.
func NewGamestate(castlingStr, enpassantStr string) (Gamestate, error) {
	var rights Castling
	for _, r := range castlingStr {
		switch r {
		case 'K':
			rights |= WhiteKingSideCastle
		case 'Q':
			rights |= WhiteQueenSideCastle
		case 'k':
			rights |= BlackKingSideCastle
		case 'q':
			rights |= BlackQueenSideCastle
		case '-':
			// adds no rights; scanning continues with the next character
		default:
			return Gamestate{}, fmt.Errorf("invalid castling rights: %v", castlingStr)
		}
	}

	var ep lang.Optional[Square]
	if enpassantStr != "-" {
		sq, err := ParseSquareStr(enpassantStr)
		if err != nil {
			return Gamestate{}, err
		}
		ep = lang.Some(sq)
	}

	return Gamestate{EnPassantTarget: ep, CastlingRights: rights}, nil
}

// CanCastleKingSide returns true iff the given color still holds the kingside right.
func (g Gamestate) CanCastleKingSide(c Color) bool {
	return g.CastlingRights.IsAllowed(kingSide(c))
}

// CanCastleQueenSide returns true iff the given color still holds the queenside right.
func (g Gamestate) CanCastleQueenSide(c Color) bool {
	return g.CastlingRights.IsAllowed(queenSide(c))
}

func (g *Gamestate) removeCastleKingSide(c Color) {
	g.CastlingRights &^= kingSide(c)
}

func (g *Gamestate) removeCastleQueenSide(c Color) {
	g.CastlingRights &^= queenSide(c)
}
