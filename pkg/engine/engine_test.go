package engine_test

import (
	"context"
	"testing"

	"github.com/gumbelchess/engine/pkg/board/fen"
	"github.com/gumbelchess/engine/pkg/engine"
	"github.com/gumbelchess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	opts := search.DefaultOptions()
	opts.NConsider = 4
	opts.SimulationBudget = 16

	return engine.New(context.Background(), "gumbelchess", "test", engine.WithSearch(opts), engine.WithSeed(1))
}

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, fen.Initial, e.Position())
}

func TestResetChangesPosition(t *testing.T) {
	e := newTestEngine(t)
	kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	require.NoError(t, e.Reset(context.Background(), kiwipete))
	assert.Equal(t, kiwipete, e.Position())
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	e := newTestEngine(t)
	assert.Error(t, e.Move(context.Background(), "e2e5"))
}

func TestMoveAppliesLegalMove(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Move(context.Background(), "e2e4"))
	assert.NotEqual(t, fen.Initial, e.Position())
}

func TestPlayAppliesAChosenMove(t *testing.T) {
	e := newTestEngine(t)
	before := e.Position()

	move, err := e.Play(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, move.String())
	assert.NotEqual(t, before, e.Position())
}

func TestThinkDoesNotMutatePosition(t *testing.T) {
	e := newTestEngine(t)
	before := e.Position()

	_, err := e.Think(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, e.Position())
}
