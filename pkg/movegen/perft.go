package movegen

import "github.com/gumbelchess/engine/pkg/board"

// Perft counts the number of leaf positions reachable in exactly depth
// plies from pos, used as the move generator's acceptance test (spec §8):
// a correct generator must match the published reference counts for the
// standard perft suite at every depth.
func Perft(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := Generate(pos)
	if depth == 1 {
		return int64(len(moves))
	}
	var count int64
	for _, m := range moves {
		count += Perft(pos.ApplyMove(m), depth-1)
	}
	return count
}

// Divide returns, for each legal move at pos, the perft count of the
// subtree reached by playing it — a debugging aid for isolating move
// generation discrepancies against a reference engine.
func Divide(pos *board.Position, depth int) map[board.Move]int64 {
	moves := Generate(pos)
	out := make(map[board.Move]int64, len(moves))
	for _, m := range moves {
		out[m] = Perft(pos.ApplyMove(m), depth-1)
	}
	return out
}
