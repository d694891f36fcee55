package search_test

import (
	"context"
	"testing"

	"github.com/gumbelchess/engine/pkg/board"
	"github.com/gumbelchess/engine/pkg/board/fen"
	"github.com/gumbelchess/engine/pkg/eval"
	"github.com/gumbelchess/engine/pkg/movegen"
	"github.com/gumbelchess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform() eval.Evaluator {
	return eval.Uniform{Generate: movegen.Generate}
}

func smallOptions() search.Options {
	opts := search.DefaultOptions()
	opts.NConsider = 4
	opts.SimulationBudget = 32
	return opts
}

func legalMoveSet(t *testing.T, pos *board.Position) map[board.Move]bool {
	t.Helper()
	set := make(map[board.Move]bool)
	for _, m := range movegen.Generate(pos) {
		set[m] = true
	}
	return set
}

func TestGetBestMoveReturnsLegalMove(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	s := search.New(uniform(), movegen.Generate, smallOptions(), 1)
	move, err := s.GetBestMove(context.Background(), pos)
	require.NoError(t, err)

	assert.True(t, legalMoveSet(t, pos)[move], "move %v not among legal moves", move)
}

func TestGetBestMoveReproducibleWithSameSeed(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	s1 := search.New(uniform(), movegen.Generate, smallOptions(), 42)
	m1, err := s1.GetBestMove(context.Background(), pos)
	require.NoError(t, err)

	s2 := search.New(uniform(), movegen.Generate, smallOptions(), 42)
	m2, err := s2.GetBestMove(context.Background(), pos)
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
}

func TestGetBestMoveSingleLegalMoveShortCircuits(t *testing.T) {
	// Black king h8 is checked along the h-file by the white rook on h1.
	// Its own pawn on g7 blocks that escape, the rook covers h7, and neither
	// the bishop on f8 nor the pawn can interpose on the h-file, so Kh8-g8
	// is the only legal move.
	pos, err := fen.Decode("5b1k/6p1/8/8/8/8/8/K6R b - - 0 1")
	require.NoError(t, err)

	legal := movegen.Generate(pos)
	require.Len(t, legal, 1)

	s := search.New(uniform(), movegen.Generate, smallOptions(), 7)
	move, err := s.GetBestMove(context.Background(), pos)
	require.NoError(t, err)
	assert.Equal(t, legal[0], move)
}

// mateInOneEvaluator hands out a large policy score for the single mating
// move and near-zero for everything else, so Gumbel-MCTS should recover it
// even with a modest simulation budget.
type mateInOneEvaluator struct {
	mate board.Move
}

func (e mateInOneEvaluator) Evaluate(pos *board.Position) (float32, []eval.PolicyMove, error) {
	legal := movegen.Generate(pos)
	policy := make([]eval.PolicyMove, len(legal))
	for i, m := range legal {
		score := float32(0.01)
		if m == e.mate {
			score = 100
		}
		policy[i] = eval.PolicyMove{Move: m, Score: score}
	}
	return 0, policy, nil
}

func TestGetBestMoveFindsMateInOneWithStrongPrior(t *testing.T) {
	// Black king g8 boxed in by its own pawns f7/g7/h7; White rook a1
	// delivers back-rank mate with Ra1-a8.
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	mate := board.Move{Source: board.A1, Dest: board.A8, Type: board.Quiet, Promotion: board.None}

	legal := legalMoveSet(t, pos)
	require.True(t, legal[mate], "expected Ra1-a8 to be legal")

	opts := search.DefaultOptions()
	opts.NConsider = 8
	opts.SimulationBudget = 2 * len(legal)

	s := search.New(mateInOneEvaluator{mate: mate}, movegen.Generate, opts, 3)
	move, err := s.GetBestMove(context.Background(), pos)
	require.NoError(t, err)
	assert.Equal(t, mate, move)
}
