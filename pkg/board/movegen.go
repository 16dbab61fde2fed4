package board

import "math/bits"

// Legal move generation, grounded on original_source/src/move_generation.rs: Hyperbola
// Quintessence for sliding attacks, xray attacks for pin detection, and a capture/block mask
// built from the current position's checkers. Lives in package board (not a separate
// pkg/movegen) because it reads Position's unexported bitboard and mailbox state directly,
// exactly as the original keeps board state and move generation in one compilation unit.

var promotionRanksMask = rankMask(Rank1) | rankMask(Rank8)

// generateLegalMoves implements the eight-step algorithm: build the enemy attack map (with
// our king removed from occupancy, so sliding attacks see through it), find checkers, derive
// the capture/block mask, detect pins (including the en-passant discovered-check pseudo-pin),
// generate pinned-piece moves restricted to their pin ray and then castles (both only when not
// in check), generate non-pinned piece moves restricted to the check mask, and finally
// generate king moves.
func generateLegalMoves(pos *Position) MoveList {
	var res MoveList

	us := pos.SideToMove()
	kingSq := pos.King(us)
	kingBit := BitMask(kingSq)

	attacksBB := enemyAttackMap(pos, us)
	attackers := findAttackers(pos, kingSq, us)
	numAttackers := attackers.PopCount()

	captureMask := FullBitboard
	if numAttackers != 0 {
		captureMask = attackers
	}

	var blockMask Bitboard
	if numAttackers == 1 {
		attackerSq := attackers.BitScan()
		if p, ok := pos.PieceAt(attackerSq); ok && p.IsSlider() {
			blockMask = SquaresBetween[kingSq][attackerSq]
		}
	}

	legalSquares := captureMask | blockMask

	if numAttackers <= 1 {
		pins := recognizePinnedPieces(pos, kingSq, us)
		var pinnedMask Bitboard
		for _, p := range pins {
			pinnedMask |= p.pinned
		}

		if numAttackers == 0 {
			generateMovesForPinnedPieces(pos, pins, us, &res)
			generateCastles(pos, kingBit, attacksBB, us, &res)
		}

		for t := Rook; t <= Knight; t++ {
			generateMovesForPiece(pos, t, us, ^pinnedMask, legalSquares, &res)
		}

		pawnLegalSquares := legalSquares
		if epSq, ok := pos.EnPassantTarget(); ok {
			enemyPawnSq := enPassantCapturedSquare(us, epSq)
			if legalSquares.IsSet(enemyPawnSq) {
				pawnLegalSquares = pawnLegalSquares.Set(epSq)
			}
		}
		generateMovesForPiece(pos, Pawn, us, ^pinnedMask, pawnLegalSquares, &res)
	}

	if pos.PieceBB(us, King) != 0 {
		generateKingMoves(pos, kingBit, attacksBB, us, &res)
	}

	return res
}

// --- Hyperbola Quintessence sliding attacks ---
// https://timcooijmans.blogspot.com/2014/04/hyperbola-quintessence-for-rooks-along.html

func diagonalMoves(occupied Bitboard, sq Square) Bitboard {
	mask := Masks[sq].DiagMaskEx
	forward := occupied & mask
	bit := BitMask(sq)
	reverse := Bitboard(bits.ReverseBytes64(uint64(forward)))
	revBit := Bitboard(bits.ReverseBytes64(uint64(bit)))
	forward -= bit
	reverse -= revBit
	forward ^= Bitboard(bits.ReverseBytes64(uint64(reverse)))
	return forward & mask
}

func antidiagonalMoves(occupied Bitboard, sq Square) Bitboard {
	mask := Masks[sq].AntidiagMaskEx
	forward := occupied & mask
	bit := BitMask(sq)
	reverse := Bitboard(bits.ReverseBytes64(uint64(forward)))
	revBit := Bitboard(bits.ReverseBytes64(uint64(bit)))
	forward -= bit
	reverse -= revBit
	forward ^= Bitboard(bits.ReverseBytes64(uint64(reverse)))
	return forward & mask
}

func fileMoves(occupied Bitboard, sq Square) Bitboard {
	mask := Masks[sq].FileMaskEx
	forward := occupied & mask
	bit := BitMask(sq)
	reverse := Bitboard(bits.ReverseBytes64(uint64(forward)))
	revBit := Bitboard(bits.ReverseBytes64(uint64(bit)))
	forward -= bit
	reverse -= revBit
	forward ^= Bitboard(bits.ReverseBytes64(uint64(reverse)))
	return forward & mask
}

// rankMoves projects the rank onto the a1-h8 diagonal (where byte-reversal works), resolves
// the attack there via diagonalMoves, then projects the result back.
func rankMoves(occupied Bitboard, sq Square) Bitboard {
	rankShift := uint(sq) &^ 0x7
	occ := (occupied & Masks[sq].RankMask) >> rankShift
	piece := BitMask(sq) >> rankShift

	occ = Bitboard(uint64(occ) * 0x0101010101010101)
	piece = Bitboard(uint64(piece) * 0x0101010101010101)

	const diagFileA1H8 = Bitboard(0x8040201008040201)
	occ &= diagFileA1H8
	piece &= diagFileA1H8

	diagSq := piece.BitScan()
	moves := diagonalMoves(occ, diagSq)

	moves = Bitboard(uint64(moves) * 0x0101010101010101)
	return (moves >> 56) << rankShift
}

func rookAttacks(occupied Bitboard, sq Square) Bitboard {
	return fileMoves(occupied, sq) | rankMoves(occupied, sq)
}

func bishopAttacks(occupied Bitboard, sq Square) Bitboard {
	return diagonalMoves(occupied, sq) | antidiagonalMoves(occupied, sq)
}

func queenAttacks(occupied Bitboard, sq Square) Bitboard {
	return rookAttacks(occupied, sq) | bishopAttacks(occupied, sq)
}

func pawnAttacks(c Color, pawns Bitboard) Bitboard {
	if c == White {
		return ((pawns << 9) & NotAFile) | ((pawns << 7) & NotHFile)
	}
	return ((pawns >> 7) & NotAFile) | ((pawns >> 9) & NotHFile)
}

func slidingAttacksAll(bb, occupied Bitboard, attackFn func(Bitboard, Square) Bitboard) Bitboard {
	var res Bitboard
	for bb != 0 {
		var sq Square
		sq, bb = bb.BitScanReset()
		res |= attackFn(occupied, sq)
	}
	return res
}

func knightAttacksAll(bb Bitboard) Bitboard {
	var res Bitboard
	for bb != 0 {
		var sq Square
		sq, bb = bb.BitScanReset()
		res |= KnightAttacks[sq]
	}
	return res
}

// enemyAttackMap returns every square attacked by the side not to move, with our own king
// removed from occupancy so sliding attacks see through it (a king can't step along a ray it
// is blocking, or it would be stepping "into" the same check).
func enemyAttackMap(pos *Position, us Color) Bitboard {
	enemy := us.Opponent()
	kingBit := BitMask(pos.King(us))
	occ := pos.ColorBB(enemy) | (pos.ColorBB(us) ^ kingBit)

	var attacks Bitboard
	attacks |= slidingAttacksAll(pos.PieceBB(enemy, Rook), occ, rookAttacks)
	if nbb := pos.PieceBB(enemy, Knight); nbb != 0 {
		attacks |= knightAttacksAll(nbb)
	}
	attacks |= slidingAttacksAll(pos.PieceBB(enemy, Bishop), occ, bishopAttacks)
	attacks |= slidingAttacksAll(pos.PieceBB(enemy, Queen), occ, queenAttacks)
	if kbb := pos.PieceBB(enemy, King); kbb != 0 {
		attacks |= KingAttacks[kbb.BitScan()]
	}
	attacks |= pawnAttacks(enemy, pos.PieceBB(enemy, Pawn))
	return attacks
}

// findAttackers returns the bitboard of enemy pieces giving check to the king on kingSq, using
// the "superpiece" trick: generate each attack pattern from the king's square and intersect
// with the matching enemy piece type.
func findAttackers(pos *Position, kingSq Square, kingColor Color) Bitboard {
	enemy := kingColor.Opponent()
	occ := pos.Occupied()

	var attackers Bitboard
	attackers |= KnightAttacks[kingSq] & pos.PieceBB(enemy, Knight)
	attackers |= bishopAttacks(occ, kingSq) & pos.PieceBB(enemy, Bishop)
	attackers |= rookAttacks(occ, kingSq) & pos.PieceBB(enemy, Rook)
	attackers |= queenAttacks(occ, kingSq) & pos.PieceBB(enemy, Queen)
	attackers |= pawnAttacks(kingColor, BitMask(kingSq)) & pos.PieceBB(enemy, Pawn)
	return attackers
}

func xrayRookAttacks(occupied, blockers Bitboard, sq Square) Bitboard {
	attacks := rookAttacks(occupied, sq)
	blockers &= attacks
	return attacks ^ rookAttacks(occupied^blockers, sq)
}

func xrayBishopAttacks(occupied, blockers Bitboard, sq Square) Bitboard {
	attacks := bishopAttacks(occupied, sq)
	blockers &= attacks
	return attacks ^ bishopAttacks(occupied^blockers, sq)
}

// pin pairs a pinned piece's own bitboard (almost always one bit) with the mask of squares it
// may still legally move to: the ray between the pinner and the king, plus the pinner's own
// square (to allow capturing it).
type pin struct {
	pinned  Bitboard
	allowed Bitboard
}

// recognizePinnedPieces finds pieces absolutely pinned against the king: rook/queen pins along
// ranks and files, bishop/queen pins along diagonals, and the rare en-passant discovered-check
// pseudo-pin, where capturing en passant would remove the only blocker between an enemy
// rook/queen and the king along a shared rank.
func recognizePinnedPieces(pos *Position, kingSq Square, us Color) []pin {
	enemy := us.Opponent()
	occ := pos.Occupied()
	usBB := pos.ColorBB(us)

	var pins []pin

	rookPinners := xrayRookAttacks(occ, usBB, kingSq) & (pos.PieceBB(enemy, Rook) | pos.PieceBB(enemy, Queen))
	for rookPinners != 0 {
		var sq Square
		sq, rookPinners = rookPinners.BitScanReset()
		between := SquaresBetween[sq][kingSq]
		if pinned := between & usBB; pinned != 0 {
			pins = append(pins, pin{pinned: pinned, allowed: between.Set(sq)})
		}
	}

	bishopPinners := xrayBishopAttacks(occ, usBB, kingSq) & (pos.PieceBB(enemy, Bishop) | pos.PieceBB(enemy, Queen))
	for bishopPinners != 0 {
		var sq Square
		sq, bishopPinners = bishopPinners.BitScanReset()
		between := SquaresBetween[sq][kingSq]
		if pinned := between & usBB; pinned != 0 {
			pins = append(pins, pin{pinned: pinned, allowed: between.Set(sq)})
		}
	}

	if epSq, ok := pos.EnPassantTarget(); ok {
		kingRank, epRank := int(kingSq)/8, int(epSq)/8
		if abs(kingRank-epRank) == 1 && pawnAttacks(us, pos.PieceBB(us, Pawn)).IsSet(epSq) {
			rooksQueens := pos.PieceBB(enemy, Queen) | pos.PieceBB(enemy, Rook)
			for rooksQueens != 0 {
				var sq Square
				sq, rooksQueens = rooksQueens.BitScanReset()
				if int(sq)/8 != kingRank {
					continue
				}
				between := SquaresBetween[kingSq][sq] & occ
				if between.PopCount() == 2 {
					pins = append(pins, pin{pinned: between & usBB, allowed: ^BitMask(epSq)})
					break
				}
			}
		}
	}

	return pins
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func generateMovesForPinnedPieces(pos *Position, pins []pin, us Color, res *MoveList) {
	for _, p := range pins {
		for t := ZeroPieceType; t < NumPieceTypes; t++ {
			if pos.PieceBB(us, t)&p.pinned != 0 {
				generateMovesForPiece(pos, t, us, p.pinned, p.allowed, res)
				break
			}
		}
	}
}

// generateMovesForPiece generates moves for every piece of type t in validMask, restricted to
// destinations in legalSquares. validMask is ^pinnedMask for the normal case, or a single
// pinned piece's own bit (with legalSquares narrowed to its pin ray) when called from
// generateMovesForPinnedPieces.
func generateMovesForPiece(pos *Position, t PieceType, us Color, validMask, legalSquares Bitboard, res *MoveList) {
	bb := pos.PieceBB(us, t) & validMask
	usBB := pos.ColorBB(us)
	enemyBB := pos.ColorBB(us.Opponent())
	occ := usBB | enemyBB
	piece := NewPiece(t, us)

	switch t {
	case Rook:
		generateSliderMoves(bb, usBB, occ, legalSquares, piece, res, rookAttacks)
	case Bishop:
		generateSliderMoves(bb, usBB, occ, legalSquares, piece, res, bishopAttacks)
	case Queen:
		generateSliderMoves(bb, usBB, occ, legalSquares, piece, res, queenAttacks)
	case Knight:
		if bb != 0 {
			generateKnightMoves(bb, usBB, legalSquares, piece, res)
		}
	case Pawn:
		if us == White {
			generateWhitePawnMoves(pos, bb, usBB, enemyBB, legalSquares, res)
		} else {
			generateBlackPawnMoves(pos, bb, usBB, enemyBB, legalSquares, res)
		}
	default:
		panic("generateMovesForPiece: unsupported piece type for pinned/restricted generation: " + t.String())
	}
}

func generateSliderMoves(bb, usBB, occ, legalSquares Bitboard, piece Piece, res *MoveList, attackFn func(Bitboard, Square) Bitboard) {
	for bb != 0 {
		var sq Square
		sq, bb = bb.BitScanReset()
		moves := attackFn(occ, sq) &^ usBB & legalSquares
		res.appendBitboard(moves, sq, piece)
	}
}

func generateKnightMoves(bb, usBB, legalSquares Bitboard, piece Piece, res *MoveList) {
	for bb != 0 {
		var sq Square
		sq, bb = bb.BitScanReset()
		moves := KnightAttacks[sq] &^ usBB & legalSquares
		res.appendBitboard(moves, sq, piece)
	}
}

func generateKingMoves(pos *Position, kingBit, attacksBB Bitboard, us Color, res *MoveList) {
	sq := kingBit.BitScan()
	moves := KingAttacks[sq] &^ pos.ColorBB(us) &^ attacksBB
	res.appendBitboard(moves, sq, NewPiece(King, us))
}

func generateWhitePawnMoves(pos *Position, pawns, usBB, enemyBB, legalSquares Bitboard, res *MoveList) {
	piece := NewPiece(Pawn, White)
	empty := ^(usBB | enemyBB)

	singlePushes := (pawns << 8) & empty
	doublePushes := (singlePushes << 8) & rankMask(Rank4) & empty & legalSquares
	singlePushes &= legalSquares

	epBB, epSq, hasEP := withEnPassant(pos, enemyBB)
	eastAttacks := (pawns << 9) & NotAFile & epBB & legalSquares
	westAttacks := (pawns << 7) & NotHFile & epBB & legalSquares

	appendPawnPushes(res, singlePushes, -8, piece)
	appendPawnPushes(res, doublePushes, -16, piece)
	appendPawnAttacks(res, eastAttacks, -9, epSq, hasEP, piece)
	appendPawnAttacks(res, westAttacks, -7, epSq, hasEP, piece)
}

func generateBlackPawnMoves(pos *Position, pawns, usBB, enemyBB, legalSquares Bitboard, res *MoveList) {
	piece := NewPiece(Pawn, Black)
	empty := ^(usBB | enemyBB)

	singlePushes := (pawns >> 8) & empty
	doublePushes := (singlePushes >> 8) & rankMask(Rank5) & empty & legalSquares
	singlePushes &= legalSquares

	epBB, epSq, hasEP := withEnPassant(pos, enemyBB)
	eastAttacks := (pawns >> 7) & NotAFile & epBB & legalSquares
	westAttacks := (pawns >> 9) & NotHFile & epBB & legalSquares

	appendPawnPushes(res, singlePushes, 8, piece)
	appendPawnPushes(res, doublePushes, 16, piece)
	appendPawnAttacks(res, eastAttacks, 7, epSq, hasEP, piece)
	appendPawnAttacks(res, westAttacks, 9, epSq, hasEP, piece)
}

// withEnPassant returns enemyBB with the en-passant target square counted as an enemy piece
// for capture purposes (so the standard capture-mask logic picks it up), alongside the target
// square itself.
func withEnPassant(pos *Position, enemyBB Bitboard) (bb Bitboard, sq Square, ok bool) {
	bb = enemyBB
	if target, has := pos.EnPassantTarget(); has {
		bb = bb.Toggle(target)
		return bb, target, true
	}
	return bb, 0, false
}

// appendPawnPushes splits bb into promotion-rank landings (expanded into four promotion
// moves) and ordinary single/double pushes, each paired with its origin square via offset.
func appendPawnPushes(res *MoveList, bb Bitboard, offset int, piece Piece) {
	promotions := bb & promotionRanksMask
	bb &^= promotionRanksMask

	for bb != 0 {
		var to Square
		to, bb = bb.BitScanReset()
		res.Push(NewMove(Square(int(to)+offset), to, piece))
	}

	generatePromotionMoves(res, promotions, offset, piece)
}

// appendPawnAttacks mirrors appendPawnPushes for captures, additionally flagging the move as
// en passant when its destination is the active en-passant target square. When there is no
// active en-passant target, the bitboard can contain no capture-only destinations beyond the
// normal pawn attack squares and is handled like a push.
func appendPawnAttacks(res *MoveList, bb Bitboard, offset int, epSq Square, hasEP bool, piece Piece) {
	if !hasEP {
		appendPawnPushes(res, bb, offset, piece)
		return
	}

	promotions := bb & promotionRanksMask
	bb &^= promotionRanksMask
	generatePromotionMoves(res, promotions, offset, piece)

	for bb != 0 {
		var to Square
		to, bb = bb.BitScanReset()
		m := NewMove(Square(int(to)+offset), to, piece)
		if to == epSq {
			m.AddEnPassant()
		}
		res.Push(m)
	}
}

func generatePromotionMoves(res *MoveList, promotions Bitboard, offset int, piece Piece) {
	for promotions != 0 {
		var to Square
		to, promotions = promotions.BitScanReset()
		from := Square(int(to) + offset)
		for t := Rook; t <= Knight; t++ {
			m := NewMove(from, to, piece)
			m.AddPromotion(t)
			res.Push(m)
		}
	}
}

func generateCastles(pos *Position, kingBit, attacksBB Bitboard, us Color, res *MoveList) {
	kingSq := kingBit.BitScan()
	rooksBB := pos.PieceBB(us, Rook)
	occ := pos.Occupied()

	if pos.Castling().IsAllowed(kingSide(us)) &&
		castlingKingSideEmptyMask[us]&(occ|attacksBB) == 0 &&
		BitMask(castlingRookSquareKingSide[us])&rooksBB != 0 {
		m := NewMove(kingSq, kingSq+2, NewPiece(King, us))
		m.AddCastleKingSide()
		res.Push(m)
	}

	if pos.Castling().IsAllowed(queenSide(us)) &&
		castlingQueenSideEmptyMask[us]&occ == 0 &&
		castlingQueenSideAttackedMask[us]&attacksBB == 0 &&
		BitMask(castlingRookSquareQueenSide[us])&rooksBB != 0 {
		m := NewMove(kingSq, kingSq-2, NewPiece(King, us))
		m.AddCastleQueenSide()
		res.Push(m)
	}
}
