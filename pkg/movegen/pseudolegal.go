package movegen

import "github.com/gumbelchess/engine/pkg/board"

// genPseudoLegal appends every pseudo-legal move for the side to move in pos
// to moves: pawn pushes/captures/promotions/en-passant, knight and king
// steps, sliding bishop/rook/queen moves, and castling. Pseudo-legal means
// the move obeys piece-movement rules but may leave the mover's own king in
// check; legalize filters those out. Grounded on original_source's
// MoveGenerator::GeneratePseudoLegalMoves (move_generator.cpp).
func genPseudoLegal(pos *board.Position, moves []board.Move) []board.Move {
	us := pos.SideToMove()
	pc := perspectiveOf(us)
	own := pos.Occupied(us)
	occ := pos.AllPieces()
	empty := ^occ

	moves = genPawnMoves(pos, pc, moves)
	moves = genJumperMoves(pos, us, board.Knight, board.KnightAttacks, own, moves)
	moves = genJumperMoves(pos, us, board.King, board.KingAttacks, own, moves)
	moves = genSliderMoves(pos, us, board.Bishop, board.BishopAttacks, own, occ, moves)
	moves = genSliderMoves(pos, us, board.Rook, board.RookAttacks, own, occ, moves)
	moves = genSliderMoves(pos, us, board.Queen, board.QueenAttacks, own, occ, moves)
	moves = genCastles(pos, us, empty, moves)
	return moves
}

func genJumperMoves(pos *board.Position, us board.Color, kind board.PieceKind, attacks func(board.Square) board.Bitboard, own board.Bitboard, moves []board.Move) []board.Move {
	pieces := pos.Pieces(us, kind)
	for !pieces.IsEmpty() {
		var from int
		pieces, from = pieces.PopLowestSetSquare()
		targets := attacks(board.Square(from)) &^ own
		moves = appendTargets(pos, board.Square(from), targets, moves)
	}
	return moves
}

func genSliderMoves(pos *board.Position, us board.Color, kind board.PieceKind, attacks func(board.Square, board.Bitboard) board.Bitboard, own, occ board.Bitboard, moves []board.Move) []board.Move {
	pieces := pos.Pieces(us, kind)
	for !pieces.IsEmpty() {
		var from int
		pieces, from = pieces.PopLowestSetSquare()
		targets := attacks(board.Square(from), occ) &^ own
		moves = appendTargets(pos, board.Square(from), targets, moves)
	}
	return moves
}

// appendTargets emits one Quiet or Capture move per set bit in targets.
func appendTargets(pos *board.Position, from board.Square, targets board.Bitboard, moves []board.Move) []board.Move {
	for !targets.IsEmpty() {
		var to int
		targets, to = targets.PopLowestSetSquare()
		dest := board.Square(to)
		t := board.Quiet
		if !pos.IsEmpty(dest) {
			t = board.Capture
		}
		moves = append(moves, board.Move{Source: from, Dest: dest, Type: t, Promotion: board.None})
	}
	return moves
}

func genPawnMoves(pos *board.Position, pc perspective, moves []board.Move) []board.Move {
	us := pc.us
	pawns := pos.Pieces(us, board.Pawn)
	occ := pos.AllPieces()
	empty := ^occ
	opp := pos.Occupied(pc.opponent)

	// Single push.
	singlePush := pawns.Shift(pc.up) & empty
	moves = appendPawnAdvances(pc, singlePush, moves)

	// Double push: single-push targets on the double-push-possible rank,
	// shifted "up" again, landing on an empty square.
	fromDoublePossible := singlePush & rankMask(pc.doublePushPossibleRank)
	doublePush := fromDoublePossible.Shift(pc.up) & empty
	moves = appendPawnDoublePush(pc, doublePush, moves)

	// Captures.
	upEast := pawns.Shift(pc.upEast) & opp
	moves = appendPawnCaptures(pc, upEast, pc.upEast, moves)
	upWest := pawns.Shift(pc.upWest) & opp
	moves = appendPawnCaptures(pc, upWest, pc.upWest, moves)

	// En passant.
	if ep, ok := pos.EnPassant(); ok {
		epBB := board.BitMask(ep)
		for _, dir := range [2]board.Direction{pc.upEast, pc.upWest} {
			src := epBB.Shift(opposite(dir))
			if src&pawns != 0 {
				from := board.Square(src.LowestSetSquare())
				moves = append(moves, board.Move{Source: from, Dest: ep, Type: board.EnPassantCapture, Promotion: board.None})
			}
		}
	}

	return moves
}

// opposite returns the reverse of a pawn-relative direction, used to walk
// backward from the en-passant target to the capturing pawn's square.
func opposite(dir board.Direction) board.Direction {
	switch dir {
	case board.North:
		return board.South
	case board.South:
		return board.North
	case board.NorthEast:
		return board.SouthWest
	case board.SouthWest:
		return board.NorthEast
	case board.NorthWest:
		return board.SouthEast
	case board.SouthEast:
		return board.NorthWest
	default:
		return dir
	}
}

func appendPawnAdvances(pc perspective, targets board.Bitboard, moves []board.Move) []board.Move {
	for !targets.IsEmpty() {
		var to int
		targets, to = targets.PopLowestSetSquare()
		dest := board.Square(to)
		from := board.Square(int(dest) - 8*pc.offsetSign)
		moves = appendPawnMoveOrPromotions(pc, from, dest, board.Quiet, moves)
	}
	return moves
}

func appendPawnDoublePush(pc perspective, targets board.Bitboard, moves []board.Move) []board.Move {
	for !targets.IsEmpty() {
		var to int
		targets, to = targets.PopLowestSetSquare()
		dest := board.Square(to)
		from := board.Square(int(dest) - 16*pc.offsetSign)
		moves = append(moves, board.Move{Source: from, Dest: dest, Type: board.Quiet, Promotion: board.None})
	}
	return moves
}

func appendPawnCaptures(pc perspective, targets board.Bitboard, dir board.Direction, moves []board.Move) []board.Move {
	for !targets.IsEmpty() {
		var to int
		targets, to = targets.PopLowestSetSquare()
		dest := board.Square(to)
		from := board.Square(int(board.BitMask(dest).Shift(opposite(dir)).LowestSetSquare()))
		moves = appendPawnMoveOrPromotions(pc, from, dest, board.Capture, moves)
	}
	return moves
}

// appendPawnMoveOrPromotions emits a single move, or all four promotion
// choices if dest is on the promotion rank.
func appendPawnMoveOrPromotions(pc perspective, from, dest board.Square, t board.MoveType, moves []board.Move) []board.Move {
	if dest.Rank() != pc.promotionRank {
		moves = append(moves, board.Move{Source: from, Dest: dest, Type: t, Promotion: board.None})
		return moves
	}
	for _, promo := range [4]board.PieceKind{board.Queen, board.Rook, board.Bishop, board.Knight} {
		moves = append(moves, board.Move{Source: from, Dest: dest, Type: t, Promotion: promo})
	}
	return moves
}

func genCastles(pos *board.Position, us board.Color, empty board.Bitboard, moves []board.Move) []board.Move {
	if pos.IsChecked(us) {
		return moves
	}
	for _, side := range [2]board.CastlingSide{board.Kingside, board.Queenside} {
		if !pos.Castling().Allowed(us, side) {
			continue
		}
		clear := true
		for _, sq := range board.CastlingEmptySquares[us][side] {
			if empty&board.BitMask(sq) == 0 {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		safe := true
		for _, sq := range board.CastlingTravelSquares[us][side] {
			if pos.IsAttacked(us, sq) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		t := board.KingsideCastle
		if side == board.Queenside {
			t = board.QueensideCastle
		}
		moves = append(moves, board.Move{
			Source:    board.KingHomeSquare[us],
			Dest:      board.KingCastledSquare[us][side],
			Type:      t,
			Promotion: board.None,
		})
	}
	return moves
}
