// Package movegen generates strictly legal chess moves from a board.Position
// via pseudo-legal generation followed by a legality filter, and provides
// perft for move-generator acceptance testing (spec §4.3).
package movegen

import "github.com/gumbelchess/engine/pkg/board"

// perspective caches the per-color constants pseudo-legal generation needs:
// opponent color, pawn ranks, and the six pawn-relevant directions. Grounded
// on original_source's BoardPerspective (move_generator.h).
type perspective struct {
	us, opponent board.Color

	promotionRank          board.Rank
	doublePushPossibleRank board.Rank // rank a single-pushed pawn must be on to double-push further

	up, upEast, downEast, down, downWest, upWest board.Direction

	offsetSign int
}

func perspectiveOf(us board.Color) perspective {
	if us == board.White {
		return perspective{
			us:                     board.White,
			opponent:               board.Black,
			promotionRank:          board.Rank8,
			doublePushPossibleRank: board.Rank3,
			up:                     board.North,
			upEast:                 board.NorthEast,
			downEast:               board.SouthEast,
			down:                   board.South,
			downWest:               board.SouthWest,
			upWest:                 board.NorthWest,
			offsetSign:             1,
		}
	}
	return perspective{
		us:                     board.Black,
		opponent:               board.White,
		promotionRank:          board.Rank1,
		doublePushPossibleRank: board.Rank6,
		up:                     board.South,
		upEast:                 board.SouthEast,
		downEast:               board.NorthEast,
		down:                   board.North,
		downWest:               board.NorthWest,
		upWest:                 board.SouthWest,
		offsetSign:             -1,
	}
}

func rankMask(r board.Rank) board.Bitboard {
	return board.BitRank(r)
}
