package movegen

import "github.com/gumbelchess/engine/pkg/board"

// legalize filters a pseudo-legal move list down to strictly legal moves: no
// move may leave the mover's own king in check afterward. Grounded on
// original_source's MoveGenerator::GenerateLegalMoves, which applies each
// pseudo-legal move and rejects it if the king is attacked — sped up here
// with a pin mask so only moves that could plausibly expose the king need a
// full apply-and-check simulation, following herohde-morlock's
// pkg/eval/pins.go approach to pinned-piece detection.
func legalize(pos *board.Position, pseudo []board.Move) []board.Move {
	us := pos.SideToMove()
	king := pos.King(us)
	checkers := attackersOf(pos, us, king)
	pins := pinnedPieces(pos, us, king)

	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if isLegalMove(pos, us, king, checkers, pins, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// attackersOf returns the set of opponent-of-c pieces currently attacking sq.
func attackersOf(pos *board.Position, c board.Color, sq board.Square) board.Bitboard {
	opp := c.Opponent()
	occ := pos.AllPieces()

	var attackers board.Bitboard
	attackers |= board.KnightAttacks(sq) & pos.Pieces(opp, board.Knight)
	attackers |= board.KingAttacks(sq) & pos.Pieces(opp, board.King)
	attackers |= board.PawnCaptureAttacks(c, sq) & pos.Pieces(opp, board.Pawn)
	attackers |= board.BishopAttacks(sq, occ) & (pos.Pieces(opp, board.Bishop) | pos.Pieces(opp, board.Queen))
	attackers |= board.RookAttacks(sq, occ) & (pos.Pieces(opp, board.Rook) | pos.Pieces(opp, board.Queen))
	return attackers
}

// pin records that the piece on Square may only move within Allowed (the
// inclusive ray from just past the king out to, and including, the pinning
// slider) without exposing the king.
type pin struct {
	square  board.Square
	allowed board.Bitboard
}

// pinnedPieces finds every opponent slider aligned with king along a rank,
// file or diagonal that attacks through exactly one of c's own pieces.  That
// piece is pinned: it may move only within Between(king, slider). Grounded
// on herohde-morlock's pins.go, generalized from bishops to all three
// slider kinds.
func pinnedPieces(pos *board.Position, c board.Color, king board.Square) []pin {
	opp := c.Opponent()
	own := pos.Occupied(c)
	occ := pos.AllPieces()

	diagSliders := pos.Pieces(opp, board.Bishop) | pos.Pieces(opp, board.Queen)
	orthoSliders := pos.Pieces(opp, board.Rook) | pos.Pieces(opp, board.Queen)

	var pins []pin
	for _, dir := range board.Directions {
		ray := board.RayAttacks(dir, king)
		if ray.IsEmpty() {
			continue
		}
		var relevant board.Bitboard
		if isDiagonalDirection(dir) {
			relevant = diagSliders
		} else {
			relevant = orthoSliders
		}
		sliderOnRay := ray & relevant
		if sliderOnRay.IsEmpty() {
			continue
		}

		// Nearest slider of the relevant kind along this ray.
		var sliderSq board.Square
		if isPositiveDirection(dir) {
			sliderSq = board.Square(sliderOnRay.LowestSetSquare())
		} else {
			sliderSq = board.Square(sliderOnRay.HighestSetSquare())
		}

		segment := board.Between(king, sliderSq)
		blockers := segment & occ &^ board.BitMask(sliderSq)
		if blockers.PopCount() != 1 {
			continue
		}
		if blockers&own == 0 {
			continue // the lone blocker is an opponent piece: no pin, it's just blocked.
		}
		pins = append(pins, pin{square: board.Square(blockers.LowestSetSquare()), allowed: segment})
	}
	return pins
}

func isDiagonalDirection(dir board.Direction) bool {
	switch dir {
	case board.NorthEast, board.SouthEast, board.SouthWest, board.NorthWest:
		return true
	default:
		return false
	}
}

// isPositiveDirection mirrors board's internal ray-truncation convention:
// true for directions whose square-index delta is positive.
func isPositiveDirection(dir board.Direction) bool {
	switch dir {
	case board.North, board.NorthEast, board.East, board.NorthWest:
		return true
	default:
		return false
	}
}

func allowedRayFor(pins []pin, sq board.Square) (board.Bitboard, bool) {
	for _, p := range pins {
		if p.square == sq {
			return p.allowed, true
		}
	}
	return 0, false
}

// isLegalMove decides whether m, pseudo-legal from pos, is strictly legal.
// King moves are validated by simulating the move and checking the
// destination square for attack (genCastles already enforces the
// not-through-check rule for castling). Non-king moves while in single
// check must resolve that check; double check allows only king moves.
// Pinned pieces may move only within their allowed ray. En passant has a
// special case where the capture exposes the king along the vacated rank
// even though neither pawn was individually pinned.
func isLegalMove(pos *board.Position, us board.Color, king board.Square, checkers board.Bitboard, pins []pin, m board.Move) bool {
	if m.Source == king {
		return kingMoveIsLegal(pos, us, m)
	}

	numCheckers := checkers.PopCount()
	if numCheckers >= 2 {
		return false
	}
	if numCheckers == 1 {
		checker := board.Square(checkers.LowestSetSquare())
		resolves := board.BitMask(m.Dest) & (board.Between(king, checker) | board.BitMask(checker))
		if m.Type == board.EnPassantCapture {
			if epCapturedSquareFor(us, m.Dest) != checker && resolves.IsEmpty() {
				return false
			}
		} else if resolves.IsEmpty() {
			return false
		}
	}

	if allowed, ok := allowedRayFor(pins, m.Source); ok {
		if allowed&board.BitMask(m.Dest) == 0 {
			return false
		}
	}

	if m.Type == board.EnPassantCapture && enPassantExposesKing(pos, us, king, m) {
		return false
	}

	return true
}

// kingMoveIsLegal simulates the king move and checks whether the resulting
// position has the king in check.
func kingMoveIsLegal(pos *board.Position, us board.Color, m board.Move) bool {
	after := pos.ApplyMove(m)
	return !after.IsChecked(us)
}

// enPassantExposesKing detects the rare case where capturing en passant
// removes two pawns from the same rank as the king, exposing it to a
// rook/queen along that rank — not caught by the generic pin mask since
// neither pawn individually is pinned before the capture.
func enPassantExposesKing(pos *board.Position, us board.Color, king board.Square, m board.Move) bool {
	after := pos.ApplyMove(m)
	return after.IsAttacked(us, king)
}

func epCapturedSquareFor(mover board.Color, dest board.Square) board.Square {
	if mover == board.White {
		return board.Square(int(dest) - 8)
	}
	return board.Square(int(dest) + 8)
}
