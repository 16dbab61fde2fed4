package board

// Precomputed attack and mask tables, populated once at package init the way the teacher
// precomputes its King/Knight attack tables (see herohde-morlock's pkg/board/bitboard.go):
// loop over every square, build the mask with shift-and-crop tricks, and cache it in an array
// indexed by Square so move generation never recomputes it.

const (
	// NotAFile and NotHFile mask off wraparound when shifting a pawn/knight/king attack east
	// or west across the board edge.
	NotAFile Bitboard = ^Bitboard(0x0101010101010101)
	NotHFile Bitboard = ^Bitboard(0x8080808080808080)
)

// KnightAttacks[sq] is the set of squares a knight on sq attacks.
var KnightAttacks [NumSquares]Bitboard

// KingAttacks[sq] is the set of squares a king on sq attacks (ignoring castling).
var KingAttacks [NumSquares]Bitboard

// SquareMasks bundles the four Hyperbola Quintessence line masks for one square. The file,
// diagonal and antidiagonal masks exclude the square's own bit (the "Ex" in the field name);
// RankMask is the full rank, square included.
type SquareMasks struct {
	FileMaskEx      Bitboard
	RankMask        Bitboard
	DiagMaskEx      Bitboard
	AntidiagMaskEx  Bitboard
}

// Masks[sq] holds the precomputed line masks used by diagonalMoves/antidiagonalMoves/
// fileMoves/rankMoves.
var Masks [NumSquares]SquareMasks

// SquaresBetween[from][to] is the set of squares strictly between from and to along a shared
// rank, file or diagonal, excluding both endpoints. Zero if from and to do not share a line.
var SquaresBetween [NumSquares][NumSquares]Bitboard

func init() {
	initKnightAttacks()
	initKingAttacks()
	initMasks()
	initSquaresBetween()
}

func initKnightAttacks() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		bit := BitMask(sq)
		one := ((bit << 1) &^ fileMask(FileA)) | ((bit >> 1) &^ fileMask(FileH))
		two := ((bit << 2) &^ (fileMask(FileA) | fileMask(FileB))) | ((bit >> 2) &^ (fileMask(FileG) | fileMask(FileH)))
		KnightAttacks[sq] = shiftNoWrap(one, 16) | shiftNoWrap(two, 8)
	}
}

func initKingAttacks() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		bit := BitMask(sq)
		horiz := bit | ((bit << 1) &^ fileMask(FileA)) | ((bit >> 1) &^ fileMask(FileH))
		KingAttacks[sq] = (horiz | shiftNoWrap(horiz, 8)) &^ bit
	}
}

// shiftNoWrap ORs together bb shifted left and right by n bits (both directions), the way a
// king/knight mask is extended vertically once the horizontal wraparound has already been
// cropped.
func shiftNoWrap(bb Bitboard, n uint) Bitboard {
	return (bb << n) | (bb >> n)
}

func fileMask(f File) Bitboard {
	var bb Bitboard
	for r := ZeroRank; r < NumRanks; r++ {
		bb = bb.Set(NewSquare(f, r))
	}
	return bb
}

func rankMask(r Rank) Bitboard {
	var bb Bitboard
	for f := ZeroFile; f < NumFiles; f++ {
		bb = bb.Set(NewSquare(f, r))
	}
	return bb
}

// diagMask returns the full a1-h8-direction diagonal through sq (file - rank constant).
func diagMask(sq Square) Bitboard {
	f, r := int(sq.File()), int(sq.Rank())
	var bb Bitboard
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if i-j == f-r {
				bb = bb.Set(NewSquare(File(i), Rank(j)))
			}
		}
	}
	return bb
}

// antidiagMask returns the full a8-h1-direction diagonal through sq (file + rank constant).
func antidiagMask(sq Square) Bitboard {
	f, r := int(sq.File()), int(sq.Rank())
	var bb Bitboard
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if i+j == f+r {
				bb = bb.Set(NewSquare(File(i), Rank(j)))
			}
		}
	}
	return bb
}

func initMasks() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		bit := BitMask(sq)
		Masks[sq] = SquareMasks{
			FileMaskEx:     fileMask(sq.File()) &^ bit,
			RankMask:       rankMask(sq.Rank()),
			DiagMaskEx:     diagMask(sq) &^ bit,
			AntidiagMaskEx: antidiagMask(sq) &^ bit,
		}
	}
}

// ray directions as (file delta, rank delta) for the 8 queen directions.
var rayDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func initSquaresBetween() {
	for from := ZeroSquare; from < NumSquares; from++ {
		for to := ZeroSquare; to < NumSquares; to++ {
			if from == to {
				continue
			}
			SquaresBetween[from][to] = squaresBetweenRay(from, to)
		}
	}
}

// squaresBetweenRay walks each of the 8 queen directions from `from`; if `to` lies along that
// ray, it returns the squares strictly in between, otherwise zero.
func squaresBetweenRay(from, to Square) Bitboard {
	ff, fr := int(from.File()), int(from.Rank())
	tf, tr := int(to.File()), int(to.Rank())

	for _, d := range rayDirs {
		var bb Bitboard
		f, r := ff+d[0], fr+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			if f == tf && r == tr {
				return bb
			}
			bb = bb.Set(NewSquare(File(f), Rank(r)))
			f += d[0]
			r += d[1]
		}
	}
	return EmptyBitboard
}

// Castling masks, indexed by Color. Kingside castling needs the king's two destination
// squares empty and unattacked; queenside castling needs three squares empty (the rook's
// path includes B1/B8, which must be empty but need not be unattacked) and the two squares
// the king crosses (C and D files) unattacked.
var (
	// castlingKingSideEmptyMask squares must be both empty and unattacked for kingside castling.
	castlingKingSideEmptyMask = [NumColors]Bitboard{White: BitMask(F1) | BitMask(G1), Black: BitMask(F8) | BitMask(G8)}
	// castlingQueenSideEmptyMask squares (including B/b, the rook's transit square) must be empty.
	castlingQueenSideEmptyMask = [NumColors]Bitboard{White: BitMask(B1) | BitMask(C1) | BitMask(D1), Black: BitMask(B8) | BitMask(C8) | BitMask(D8)}
	// castlingQueenSideAttackedMask squares (the king's own transit, excluding B/b) must be unattacked.
	castlingQueenSideAttackedMask = [NumColors]Bitboard{White: BitMask(C1) | BitMask(D1), Black: BitMask(C8) | BitMask(D8)}

	castlingRookSquareKingSide  = [NumColors]Square{White: H1, Black: H8}
	castlingRookSquareQueenSide = [NumColors]Square{White: A1, Black: A8}
)
