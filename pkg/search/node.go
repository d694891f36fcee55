package search

import "github.com/gumbelchess/engine/pkg/board"

// node is one entry in a tree's arena. Children are stored as indices into
// the owning tree's nodes slice rather than owned pointers (spec §9's
// recommended redesign of original_source's unique_ptr-owned Node tree),
// so the whole tree lives in one contiguous slice and is freed in one shot
// when GetBestMove returns.
type node struct {
	pos  *board.Position
	move board.Move

	rawPrior      float64
	appliedGumbel float64
	gumbelScore   float64 // log(rawPrior) + appliedGumbel, frozen by getKGumbelArgtop
	score         float64 // gumbelScore + σ(q̂), recomputed each Sequential Halving round

	visitCount int
	value      float64

	isRoot     bool
	isTerminal bool

	children []int
}

// tree is the per-decision node arena. A fresh tree is built for every
// GetBestMove call and discarded when it returns.
type tree struct {
	nodes []node
}

func (t *tree) add(n node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}
