package board

import "strings"

// CastlingSide distinguishes kingside and queenside castling.
type CastlingSide uint8

const (
	Kingside CastlingSide = iota
	Queenside

	NumCastlingSides CastlingSide = 2
)

// CastlingRights is a 2x2 boolean matrix of castling rights, indexed by
// (Color, CastlingSide).
type CastlingRights [NumColors][NumCastlingSides]bool

// FullCastlingRights has every right allowed, the FEN default for "KQkq".
func FullCastlingRights() CastlingRights {
	return CastlingRights{
		White: {Kingside: true, Queenside: true},
		Black: {Kingside: true, Queenside: true},
	}
}

func (c CastlingRights) Allowed(color Color, side CastlingSide) bool {
	return c[color][side]
}

func (c CastlingRights) Clear(color Color, side CastlingSide) CastlingRights {
	c[color][side] = false
	return c
}

func (c CastlingRights) ClearColor(color Color) CastlingRights {
	c[color][Kingside] = false
	c[color][Queenside] = false
	return c
}

func (c CastlingRights) IsEmpty() bool {
	return c == CastlingRights{}
}

func (c CastlingRights) String() string {
	var sb strings.Builder
	if c[White][Kingside] {
		sb.WriteByte('K')
	}
	if c[White][Queenside] {
		sb.WriteByte('Q')
	}
	if c[Black][Kingside] {
		sb.WriteByte('k')
	}
	if c[Black][Queenside] {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseCastlingRights parses the FEN castling-availability field.
func ParseCastlingRights(str string) (CastlingRights, bool) {
	var ret CastlingRights
	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret[White][Kingside] = true
		case 'Q':
			ret[White][Queenside] = true
		case 'k':
			ret[Black][Kingside] = true
		case 'q':
			ret[Black][Queenside] = true
		default:
			return CastlingRights{}, false
		}
	}
	return ret, true
}

// Home squares for king/rook castling, per color and side.
var (
	KingHomeSquare = [NumColors]Square{White: E1, Black: E8}
	RookHomeSquare = [NumColors][NumCastlingSides]Square{
		White: {Kingside: H1, Queenside: A1},
		Black: {Kingside: H8, Queenside: A8},
	}
	KingCastledSquare = [NumColors][NumCastlingSides]Square{
		White: {Kingside: G1, Queenside: C1},
		Black: {Kingside: G8, Queenside: C8},
	}
	RookCastledSquare = [NumColors][NumCastlingSides]Square{
		White: {Kingside: F1, Queenside: D1},
		Black: {Kingside: F8, Queenside: D8},
	}
	// CastlingTravelSquares are the squares (excluding the king's home
	// square) the king passes over or lands on while castling; all must be
	// unattacked. CastlingEmptySquares are the squares (excluding king/rook
	// home squares) that must be vacant for the castle to be pseudo-legal.
	CastlingTravelSquares = [NumColors][NumCastlingSides][]Square{
		White: {Kingside: {F1, G1}, Queenside: {D1, C1}},
		Black: {Kingside: {F8, G8}, Queenside: {D8, C8}},
	}
	CastlingEmptySquares = [NumColors][NumCastlingSides][]Square{
		White: {Kingside: {F1, G1}, Queenside: {B1, C1, D1}},
		Black: {Kingside: {F8, G8}, Queenside: {B8, C8, D8}},
	}
)
