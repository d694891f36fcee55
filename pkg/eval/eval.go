// Package eval defines the neural-net evaluator oracle contract consumed by
// pkg/search. The network itself, tensorization and model loading are out
// of scope (spec §1); this package only fixes the interface and provides a
// deterministic dummy implementation for tests.
package eval

import "github.com/gumbelchess/engine/pkg/board"

// PolicyMove pairs a candidate move with its raw, unnormalized oracle score.
// The sequence may range over a superset of the legal moves at a position;
// pkg/search renormalizes over the legal subset.
type PolicyMove struct {
	Move  board.Move
	Score float32
}

// Evaluator is the opaque neural-net oracle. Evaluate returns a scalar value
// in [-1, +1] from the perspective of the position's side to move, and a
// policy distribution over a superset of legal moves. It may be called from
// a single thread only, and must be deterministic enough for tests to use a
// fixed dummy implementation (spec §6).
type Evaluator interface {
	Evaluate(pos *board.Position) (value float32, policy []PolicyMove, err error)
}

// Uniform is a deterministic dummy evaluator: zero value, uniform policy
// over the position's legal moves. Used by pkg/search tests and as the
// default evaluator for cmd/play when no model is wired in (spec §8:
// "a deterministic dummy evaluator returning uniform policy and zero
// value").
type Uniform struct {
	// Generate produces the legal moves at pos; injected rather than
	// imported directly so eval has no movegen dependency, mirroring
	// pkg/board/fen's separation from move generation (spec §4.2/§4.3).
	Generate func(pos *board.Position) []board.Move
}

func (u Uniform) Evaluate(pos *board.Position) (float32, []PolicyMove, error) {
	moves := u.Generate(pos)
	policy := make([]PolicyMove, len(moves))
	for i, m := range moves {
		policy[i] = PolicyMove{Move: m, Score: 1}
	}
	return 0, policy, nil
}
