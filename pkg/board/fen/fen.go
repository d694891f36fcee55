// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gumbelchess/engine/pkg/board"
)

const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses the standard six-field FEN into a Position, side to move,
// halfmove clock and fullmove number. Parsing is strict (spec §9 open
// question 5, resolved): any malformed field, wrong piece-placement square
// count, or unrecognized token is an error, and no half-built Position is
// ever returned. Missing halfmove/fullmove fields default to 0/1, per
// spec §4.2.
func Decode(raw string) (*board.Position, error) {
	fen := strings.TrimSpace(raw)
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("invalid fen %q: need 4 to 6 fields, got %v", fen, len(parts))
	}
	for len(parts) < 6 {
		if len(parts) == 4 {
			parts = append(parts, "0")
		} else {
			parts = append(parts, "1")
		}
	}

	pieces, err := parsePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid fen %q: %w", fen, err)
	}

	active, ok := board.ParseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid fen %q: bad active color %q", fen, parts[1])
	}

	castling, ok := board.ParseCastlingRights(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid fen %q: bad castling rights %q", fen, parts[2])
	}

	var ep board.Square
	hasEP := false
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid fen %q: bad en passant %q: %w", fen, parts[3], err)
		}
		ep = sq
		hasEP = true
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid fen %q: bad halfmove clock %q", fen, parts[4])
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 0 {
		return nil, fmt.Errorf("invalid fen %q: bad fullmove number %q", fen, parts[5])
	}

	pos, err := board.NewPosition(pieces, castling, active, ep, hasEP, halfmove, fullmove)
	if err != nil {
		return nil, fmt.Errorf("invalid fen %q: %w", fen, err)
	}
	return pos, nil
}

func parsePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %v", len(ranks))
	}

	var pieces []board.Placement
	for i, rankStr := range ranks {
		r := board.Rank(7 - i)
		f := board.ZeroFile

		for _, r0 := range rankStr {
			switch {
			case unicode.IsDigit(r0):
				n := int(r0 - '0')
				if n < 1 || n > 8 {
					return nil, fmt.Errorf("invalid blank count %q", string(r0))
				}
				f += board.File(n)

			case unicode.IsLetter(r0):
				color, kind, ok := parsePiece(r0)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", string(r0))
				}
				if f >= board.NumFiles {
					return nil, fmt.Errorf("rank %v overflows 8 files", i+1)
				}
				pieces = append(pieces, board.Placement{Square: board.NewSquare(r, f), Color: color, Kind: kind})
				f++

			default:
				return nil, fmt.Errorf("invalid character %q in placement", string(r0))
			}
		}

		if f != board.NumFiles {
			return nil, fmt.Errorf("rank %v has %v files, want 8", i+1, f)
		}
	}
	return pieces, nil
}

// Encode renders the position, side to move, halfmove clock and fullmove
// number as a FEN string.
func Encode(pos *board.Position, halfmove, fullmove int) string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			sq := board.NewSquare(board.Rank(r), f)
			c, k, ok := pos.PieceAt(sq)
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(board.Letter(c, k))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.SideToMove(), pos.Castling(), ep, halfmove, fullmove)
}

func parsePiece(r rune) (board.Color, board.PieceKind, bool) {
	kind, ok := board.ParsePieceKind(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, kind, true
	}
	return board.Black, kind, true
}
