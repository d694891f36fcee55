package movegen

import "github.com/gumbelchess/engine/pkg/board"

// Generate returns every strictly legal move for the side to move in pos.
func Generate(pos *board.Position) []board.Move {
	pseudo := genPseudoLegal(pos, make([]board.Move, 0, 48))
	return legalize(pos, pseudo)
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func IsCheckmate(pos *board.Position) bool {
	return pos.IsChecked(pos.SideToMove()) && len(Generate(pos)) == 0
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func IsStalemate(pos *board.Position) bool {
	return !pos.IsChecked(pos.SideToMove()) && len(Generate(pos)) == 0
}

// IsTerminal reports whether the game has ended at pos: checkmate,
// stalemate, or any of Position's draw conditions (spec §4.2/§4.3).
func IsTerminal(pos *board.Position) bool {
	if pos.IsDraw() {
		return true
	}
	return len(Generate(pos)) == 0
}
