package movegen_test

import (
	"testing"

	"github.com/gumbelchess/engine/pkg/board/fen"
	"github.com/gumbelchess/engine/pkg/movegen"
	"github.com/stretchr/testify/assert"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		depth    int
		expected int64
	}{
		{"startpos d1", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 1, 20},
		{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"endgame rook d4", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"promotion heavy d1", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 1, 6},
		{"bishop pair d1", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1", 1, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := fen.Decode(tt.fen)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, movegen.Perft(pos, tt.depth))
		})
	}
}

// TestPerftStartposDepth4 is the slowest reference case (197,281 leaves); run
// separately so -short can skip it.
func TestPerftStartposDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("slow perft case")
	}
	pos, err := fen.Decode(fen.Initial)
	assert.NoError(t, err)
	assert.Equal(t, int64(197281), movegen.Perft(pos, 4))
}
