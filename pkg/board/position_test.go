package board_test

import (
	"testing"

	"github.com/gumbelchess/engine/pkg/board"
	"github.com/gumbelchess/engine/pkg/board/fen"
	"github.com/stretchr/testify/assert"
)

func mustDecode(t *testing.T, raw string) *board.Position {
	t.Helper()
	pos, err := fen.Decode(raw)
	assert.NoError(t, err)
	return pos
}

func TestApplyMoveIncrementalHash(t *testing.T) {
	pos := mustDecode(t, fen.Initial)

	moves := []board.Move{
		{Source: board.E2, Dest: board.E4, Type: board.Quiet},
		{Source: board.E7, Dest: board.E5, Type: board.Quiet},
		{Source: board.G1, Dest: board.F3, Type: board.Quiet},
	}

	for _, m := range moves {
		pos = pos.ApplyMove(m)
	}

	assert.Equal(t, pos.Hash(), recomputeHash(t, pos))
}

// recomputeHash round-trips the position through FEN and decodes it again,
// forcing board.NewPosition (and its internal computeHash) to rebuild
// the Zobrist hash from scratch for comparison against the incrementally
// maintained one.
func recomputeHash(t *testing.T, pos *board.Position) board.ZobristHash {
	t.Helper()
	raw := fen.Encode(pos, pos.HalfmoveClock(), pos.FullmoveNumber())
	fresh, err := fen.Decode(raw)
	assert.NoError(t, err)
	return fresh.Hash()
}

func TestApplyMoveDoesNotMutateReceiver(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	_ = pos.ApplyMove(board.Move{Source: board.E2, Dest: board.E4, Type: board.Quiet})

	c, k, ok := pos.PieceAt(board.E2)
	assert.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Pawn, k)
}

func TestEnPassantCapture(t *testing.T) {
	pos := mustDecode(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	next := pos.ApplyMove(board.Move{Source: board.E5, Dest: board.D6, Type: board.EnPassantCapture})

	assert.True(t, next.IsEmpty(board.D5))
	c, k, ok := next.PieceAt(board.D6)
	assert.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Pawn, k)
}

func TestCastlingRightsClearedByKingMove(t *testing.T) {
	pos := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	next := pos.ApplyMove(board.Move{Source: board.E1, Dest: board.F1, Type: board.Quiet})

	assert.False(t, next.Castling().Allowed(board.White, board.Kingside))
	assert.False(t, next.Castling().Allowed(board.White, board.Queenside))
	assert.True(t, next.Castling().Allowed(board.Black, board.Kingside))
}

func TestCastlingMovesKingAndRook(t *testing.T) {
	pos := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	next := pos.ApplyMove(board.Move{Source: board.E1, Dest: board.G1, Type: board.KingsideCastle})

	c, k, ok := next.PieceAt(board.G1)
	assert.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.King, k)

	c, k, ok = next.PieceAt(board.F1)
	assert.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Rook, k)

	assert.True(t, next.IsEmpty(board.E1))
	assert.True(t, next.IsEmpty(board.H1))
}

func TestHalfmoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/4K3/3nR3 w - - 12 30")
	next := pos.ApplyMove(board.Move{Source: board.E1, Dest: board.D1, Type: board.Capture})
	assert.Equal(t, 0, next.HalfmoveClock())
}

func TestDrawBy50Moves(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/4K3/8 w - - 99 60")
	next := pos.ApplyMove(board.Move{Source: board.E2, Dest: board.D2, Type: board.Quiet})
	assert.True(t, next.IsDrawBy50Moves())
	assert.True(t, next.IsDraw())
}

func TestDrawByInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and minor vs king", "4k3/8/8/8/8/8/8/3NK3 w - - 0 1", true},
		{"same color bishops", "4b2k/8/8/8/8/8/8/3BK3 w - - 0 1", true},
		{"opposite color bishops", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"rook on board", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"two knights one side", "4k3/8/8/8/8/8/8/2NNK3 w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.raw)
			assert.Equal(t, tt.expected, pos.IsDrawByInsufficientMaterial())
		})
	}
}

func TestIsAttackedAndChecked(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/4q3/8/4K3 w - - 0 1")
	assert.True(t, pos.IsAttacked(board.White, board.E1))
	assert.True(t, pos.IsChecked(board.White))
}

func TestFlipMirrorsPosition(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	flipped := pos.Flip()

	assert.Equal(t, board.Black, flipped.SideToMove())
	c, k, ok := flipped.PieceAt(board.E7)
	assert.True(t, ok)
	assert.Equal(t, board.Black, c)
	assert.Equal(t, board.Pawn, k)
}
