// Package fen decodes FEN-like position descriptors into a board.Position.
package fen

import (
	"context"
	"strings"
	"unicode"

	"github.com/rlenti/chesscore/pkg/board"
	"github.com/seekerror/logw"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// Decode parses a FEN-like string into a Position: piece placement, side to move, castling
// rights and en-passant target, in that order, whitespace-separated. A halfmove clock and
// fullmove counter may follow but are ignored. Unknown characters in the placement field are
// silently skipped; a malformed castling or en-passant field is a fatal error, matching the
// rest of the ambient stack's treatment of unrecoverable input.
func Decode(ctx context.Context, s string) (*board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		logw.Exitf(ctx, "invalid FEN, expected at least 4 fields: %q", s)
	}

	placement := decodePlacement(fields[0])

	stm, ok := parseColor(fields[1])
	if !ok {
		logw.Exitf(ctx, "invalid side to move in FEN: %q", s)
	}

	gs, err := board.NewGamestate(fields[2], fields[3])
	if err != nil {
		logw.Exitf(ctx, "invalid FEN %q: %v", s, err)
	}

	pos, err := board.NewPosition(placement, stm, gs)
	if err != nil {
		logw.Exitf(ctx, "invalid FEN %q: %v", s, err)
	}
	logw.Infof(ctx, "decoded position from FEN %q: side to move %v, castling %v", s, stm, gs.CastlingRights)
	return pos, nil
}

// decodePlacement walks the placement field rank 8 down to rank 1, file a through h within
// each rank. Digits skip that many empty squares; '/' moves to the next rank; any other
// character is silently ignored rather than treated as an error.
func decodePlacement(field string) [board.NumSquares]*board.Piece {
	var placement [board.NumSquares]*board.Piece

	file, rank := board.ZeroFile, board.Rank(7)
	for _, r := range field {
		switch {
		case r == '/':
			rank--
			file = board.ZeroFile
		case unicode.IsDigit(r):
			file += board.File(r - '0')
		default:
			t, ok := board.ParsePieceType(r)
			if !ok {
				continue
			}
			c := board.White
			if unicode.IsLower(r) {
				c = board.Black
			}
			p := board.NewPiece(t, c)
			placement[board.NewSquare(file, rank)] = &p
			file++
		}
	}
	return placement
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

// Encode renders a Position back into a FEN placement + side-to-move + castling + en-passant
// string (no halfmove/fullmove counters, which this package never tracks).
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for rank := board.Rank(7); ; rank-- {
		blanks := 0
		for file := board.ZeroFile; file < board.NumFiles; file++ {
			sq := board.NewSquare(file, rank)
			p, ok := pos.PieceAt(sq)
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(itoa(blanks))
		}
		if rank == 0 {
			break
		}
		sb.WriteRune('/')
	}

	sb.WriteRune(' ')
	sb.WriteString(pos.SideToMove().String())
	sb.WriteRune(' ')
	sb.WriteString(pos.Castling().String())
	sb.WriteRune(' ')
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteRune('-')
	}

	return sb.String()
}

func itoa(n int) string {
	return string(rune('0' + n))
}
