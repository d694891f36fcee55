// Package search implements Gumbel Monte-Carlo Tree Search as described in
// "Policy Improvement by Planning with Gumbel" (Danihelka et al., 2022):
// Gumbel-based top-k sampling of root actions followed by Sequential
// Halving with completed Q-values. Ported from original_source's
// GumbelMCTS (search.h/search.cpp) onto an index-based node arena (spec
// §9's recommended redesign) and the opaque pkg/eval.Evaluator oracle.
package search

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/gumbelchess/engine/pkg/board"
	"github.com/gumbelchess/engine/pkg/eval"
	"github.com/seekerror/logw"
)

// GumbelMCTS owns an evaluator oracle, a legal-move generator and the
// hyperparameters controlling root-action sampling and Sequential Halving.
// It is single-threaded per spec §6 (the oracle "may be called from a
// single thread only"); §5 notes where parallelism would hook in, but that
// is out of scope here.
type GumbelMCTS struct {
	evaluator eval.Evaluator
	generate  func(pos *board.Position) []board.Move
	opts      Options
	rnd       *rand.Rand
}

// New builds a GumbelMCTS. generate is injected (rather than importing
// pkg/movegen directly) so this package has no hard dependency on the move
// generator's package, mirroring the separation pkg/board/fen keeps from
// pkg/movegen. seed makes the Gumbel sampling reproducible (spec §8: "with
// Gumbel noise seeded, output is reproducible").
func New(evaluator eval.Evaluator, generate func(pos *board.Position) []board.Move, opts Options, seed int64) *GumbelMCTS {
	return &GumbelMCTS{
		evaluator: evaluator,
		generate:  generate,
		opts:      opts,
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// GetBestMove runs the full Gumbel-MCTS procedure from pos and returns the
// chosen move (spec §4.4 steps 1-7).
func (s *GumbelMCTS) GetBestMove(ctx context.Context, pos *board.Position) (board.Move, error) {
	t := &tree{}
	root := t.add(node{pos: pos, isRoot: true})

	if err := t.expandAndEvaluate(root, s.generate, s.evaluator); err != nil {
		return board.Move{}, fmt.Errorf("gumbel-mcts: expand root: %w", err)
	}

	candidates := append([]int(nil), t.nodes[root].children...)
	if len(candidates) == 0 {
		return board.Move{}, fmt.Errorf("gumbel-mcts: no legal moves at root")
	}
	if len(candidates) == 1 {
		return t.nodes[candidates[0]].move, nil
	}

	k := s.opts.NConsider
	if k > len(candidates) {
		k = len(candidates)
	}
	candidates = t.getKGumbelArgtop(candidates, k, s.rnd)

	for _, c := range candidates {
		value, err := t.visit(c, s.generate, s.evaluator)
		if err != nil {
			return board.Move{}, fmt.Errorf("gumbel-mcts: guaranteed visit: %w", err)
		}
		t.nodes[root].value += -value
	}

	best, err := t.applySequentialHalving(root, candidates, s.opts, s.generate, s.evaluator)
	if err != nil {
		return board.Move{}, fmt.Errorf("gumbel-mcts: sequential halving: %w", err)
	}

	move := t.nodes[best].move
	logw.Infof(ctx, "gumbel-mcts chose %v from %v root candidates, budget=%v", move, len(t.nodes[root].children), s.opts.SimulationBudget)
	return move, nil
}

// getKGumbelArgtop samples an independent Gumbel(0,1) per candidate, scores
// it as log(rawPrior)+gumbel (the Gumbel-top-k trick requires log-prior, not
// raw probability — spec §4.4 step 4's "raw_prior_logit + gumbel"; the
// literal source adds raw_prior un-logged, which is inconsistent with its
// own "add logit(move)" comment, so this follows the spec text and the
// paper instead, see DESIGN.md), and keeps the top k by that score.
func (t *tree) getKGumbelArgtop(candidates []int, k int, rnd *rand.Rand) []int {
	type scored struct {
		idx   int
		score float64
	}
	list := make([]scored, len(candidates))
	for i, idx := range candidates {
		g := sampleGumbel(rnd)
		s := math.Log(t.nodes[idx].rawPrior) + g
		t.nodes[idx].appliedGumbel = g
		t.nodes[idx].gumbelScore = s
		list[i] = scored{idx: idx, score: s}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].score > list[j].score })

	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = list[i].idx
	}
	return out
}

func sampleGumbel(rnd *rand.Rand) float64 {
	u := rnd.Float64()
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	}
	return -math.Log(-math.Log(u))
}

// applySequentialHalving repeatedly halves candidates, spending a share of
// the simulation budget on each surviving candidate and rescoring by the
// completed-Q formula σ(q̂) = (C_VISIT+maxVisitCount)·(C_SCALE·-value/visitCount),
// until one candidate remains (spec §4.4 step 6). Uses log2 for the
// per-round visit share (§9 open question 2, resolved in DESIGN.md) and
// does not port original_source's leftover-budget branch for
// size ∈ {2,3} (§9 open question 4, resolved in DESIGN.md).
func (t *tree) applySequentialHalving(root int, candidates []int, opts Options, generate func(*board.Position) []board.Move, evaluator eval.Evaluator) (int, error) {
	remaining := opts.SimulationBudget

	for len(candidates) > 1 {
		size := len(candidates)
		visitsPerNode := int(float64(remaining) / (math.Log2(float64(size)) * float64(size)))

		maxVisitCount := 0
		for _, idx := range candidates {
			for i := 0; i < visitsPerNode; i++ {
				value, err := t.visit(idx, generate, evaluator)
				if err != nil {
					return 0, err
				}
				t.nodes[root].value += -value
				remaining--
			}
			if t.nodes[idx].visitCount > maxVisitCount {
				maxVisitCount = t.nodes[idx].visitCount
			}
		}

		for _, idx := range candidates {
			qHat := -t.nodes[idx].value / float64(t.nodes[idx].visitCount)
			sigmaQHat := (opts.CVisit + float64(maxVisitCount)) * (opts.CScale * qHat)
			t.nodes[idx].score = t.nodes[idx].gumbelScore + sigmaQHat
		}

		sort.Slice(candidates, func(i, j int) bool { return t.nodes[candidates[i]].score > t.nodes[candidates[j]].score })
		candidates = candidates[:len(candidates)/2]
	}

	return candidates[0], nil
}

// expandAndEvaluate queries the oracle on node idx and emplaces one child
// per legal move with its renormalized prior, or marks the node terminal
// with its fixed checkmate/stalemate/draw value. A no-op if idx already has
// children.
func (t *tree) expandAndEvaluate(idx int, generate func(*board.Position) []board.Move, evaluator eval.Evaluator) error {
	if len(t.nodes[idx].children) > 0 {
		return nil
	}

	pos := t.nodes[idx].pos
	legal := generate(pos)

	if len(legal) == 0 {
		if pos.IsChecked(pos.SideToMove()) {
			t.nodes[idx].value = -1
		} else {
			t.nodes[idx].value = 0
		}
		t.nodes[idx].isTerminal = true
		return nil
	}
	if pos.IsDraw() {
		t.nodes[idx].value = 0
		t.nodes[idx].isTerminal = true
		return nil
	}

	value, policy, err := evaluator.Evaluate(pos)
	if err != nil {
		return err
	}

	legalSet := make(map[uint16]bool, len(legal))
	for _, m := range legal {
		legalSet[m.Key()] = true
	}

	type candidate struct {
		move  board.Move
		prior float64
	}
	var candidates []candidate
	var total float64
	for _, pm := range policy {
		if legalSet[pm.Move.Key()] {
			total += float64(pm.Score)
			candidates = append(candidates, candidate{move: pm.Move, prior: float64(pm.Score)})
		}
	}
	if total <= 0 {
		// No policy mass over any legal move: fall back to a uniform prior
		// rather than propagating a division-by-zero NaN through every
		// downstream score.
		total = float64(len(candidates))
		for i := range candidates {
			candidates[i].prior = 1
		}
	}

	children := make([]int, 0, len(candidates))
	for _, c := range candidates {
		childPos := pos.ApplyMove(c.move)
		childIdx := t.add(node{pos: childPos, move: c.move, rawPrior: c.prior / total})
		children = append(children, childIdx)
	}

	t.nodes[idx].value = float64(value)
	t.nodes[idx].children = children
	return nil
}

// visit descends the tree: unexpanded nodes are expanded and their fixed
// or oracle value returned directly (this also covers terminal nodes,
// which never gain children and so are "re-expanded" — cheaply, since
// expandAndEvaluate's terminal branches return immediately — on every
// visit, exactly as original_source's visit does). Expanded nodes select
// the child maximizing raw_prior − visit_count/parent_visit_count (spec
// §4.4, §9 open question 1: the simpler source selector, not the paper's
// completed-Q selector), recurse, and accumulate the negated child value.
func (t *tree) visit(idx int, generate func(*board.Position) []board.Move, evaluator eval.Evaluator) (float64, error) {
	if len(t.nodes[idx].children) == 0 {
		if err := t.expandAndEvaluate(idx, generate, evaluator); err != nil {
			return 0, err
		}
	} else {
		t.nodes[idx].visitCount++
		parentVisits := t.nodes[idx].visitCount

		children := t.nodes[idx].children
		best := children[0]
		bestScore := math.Inf(-1)
		for _, c := range children {
			child := t.nodes[c]
			score := child.rawPrior - float64(child.visitCount)/float64(parentVisits)
			if score > bestScore {
				bestScore = score
				best = c
			}
		}

		value, err := t.visit(best, generate, evaluator)
		if err != nil {
			return 0, err
		}
		t.nodes[idx].value += -value
	}

	t.nodes[idx].visitCount++
	return t.nodes[idx].value, nil
}
