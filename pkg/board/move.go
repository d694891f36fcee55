package board

import "fmt"

// MoveType identifies the kind of move, needed to apply it correctly.
type MoveType uint8

const (
	Quiet MoveType = iota
	Capture
	EnPassantCapture
	KingsideCastle
	QueensideCastle
)

func (t MoveType) String() string {
	switch t {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case EnPassantCapture:
		return "en-passant"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	default:
		return "?"
	}
}

// Move is a candidate or played move. Equality and hashing are structural
// over all four fields. Promotion is None for a non-promoting move.
type Move struct {
	Source, Dest Square
	Type         MoveType
	Promotion    PieceKind
}

func (m Move) Equals(o Move) bool {
	return m == o
}

// Key packs the move into a compact integer for fast set membership (used
// by pkg/search's legal-move lookup during expansion), per the suggested
// (source<<10)|(dest<<4)|type packing, with the type in bits 1-3 and bit 0
// set for a promotion. The promoted piece kind is not encoded, so the four
// promotion choices of one pawn move share a key.
func (m Move) Key() uint16 {
	return uint16(m.Source)<<10 | uint16(m.Dest)<<4 | uint16(m.Type)<<1 | uint16(boolToBit(m.Promotion != None))
}

func boolToBit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// String renders the move in minimal algebraic form, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.Promotion != None {
		return fmt.Sprintf("%v%v%v", m.Source, m.Dest, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.Source, m.Dest)
}

// Verbose renders "<piece-letter> <source> <dest>" using the mover's color.
func (m Move) Verbose(c Color, p PieceKind) string {
	if m.Promotion != None {
		return fmt.Sprintf("%v %v %v=%v", Letter(c, p), m.Source, m.Dest, Letter(c, m.Promotion))
	}
	return fmt.Sprintf("%v %v %v", Letter(c, p), m.Source, m.Dest)
}

// ParseMove parses pure algebraic coordinate notation, e.g. "e2e4" or
// "a7a8q". The parsed move carries no castling/en-passant/capture
// classification — a caller must match it against a generated legal move to
// recover that context.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move %q: wrong length", str)
	}

	source, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}
	dest, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}

	m := Move{Source: source, Dest: dest, Promotion: None}
	if len(runes) == 5 {
		promo, ok := ParsePieceKind(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid move %q: bad promotion", str)
		}
		m.Promotion = promo
	}
	return m, nil
}
