// Package engine wires the bitboard position machine, the Gumbel-MCTS
// search core and an evaluator oracle into a single stateful game-playing
// session, in the shape of herohde-morlock/pkg/engine's Engine.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/gumbelchess/engine/pkg/board"
	"github.com/gumbelchess/engine/pkg/board/fen"
	"github.com/gumbelchess/engine/pkg/eval"
	"github.com/gumbelchess/engine/pkg/movegen"
	"github.com/gumbelchess/engine/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// Search are the Gumbel-MCTS hyperparameters. Unset falls back to
	// search.DefaultOptions().
	Search lang.Optional[search.Options]
	// Seed drives both Zobrist key generation and Gumbel sampling.
	Seed int64
}

func (o Options) String() string {
	opts, _ := o.Search.V()
	return fmt.Sprintf("{nconsider=%v, budget=%v, seed=%v}", opts.NConsider, opts.SimulationBudget, o.Seed)
}

// Engine encapsulates game-playing logic atop the bitboard position machine
// and a Gumbel-MCTS decision core. Unlike herohde-morlock's Engine, there is
// no iterative-deepening Analyze/Halt streaming API: Gumbel-MCTS always runs
// to its configured simulation budget and returns a single move (spec
// §4.4), so play here is request/response rather than a long-running
// search the caller halts early.
type Engine struct {
	name, author string

	evaluator  eval.Evaluator
	opts       Options
	searchOpts search.Options

	mu  sync.Mutex
	pos *board.Position
}

// Option is an engine creation option.
type Option func(*Engine)

// WithSearch sets the Gumbel-MCTS hyperparameters, overriding
// search.DefaultOptions().
func WithSearch(opts search.Options) Option {
	return func(e *Engine) {
		e.opts.Search = lang.Some(opts)
	}
}

// WithSeed sets the seed driving Zobrist key generation and Gumbel
// sampling, overriding the default seed of zero.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.opts.Seed = seed
	}
}

// WithEvaluator overrides the default uniform dummy evaluator.
func WithEvaluator(evaluator eval.Evaluator) Option {
	return func(e *Engine) {
		e.evaluator = evaluator
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:      name,
		author:    author,
		evaluator: eval.Uniform{Generate: movegen.Generate},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.searchOpts = search.DefaultOptions()
	if v, ok := e.opts.Search.V(); ok {
		e.searchOpts = v
	}
	board.InitZobrist(e.opts.Seed)

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// Position returns the current position in FEN format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos, e.pos.HalfmoveClock(), e.pos.FullmoveNumber())
}

// Reset resets the engine to a new starting position in FEN format.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.pos = pos

	logw.Infof(ctx, "New position: %v", e.pos)
	return nil
}

// Move plays the given move, usually an opponent's. The candidate is
// matched against the legal moves by source, destination and promotion,
// which recovers its classification (capture, castle, en-passant).
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	for _, m := range movegen.Generate(e.pos) {
		if m.Source != candidate.Source || m.Dest != candidate.Dest || m.Promotion != candidate.Promotion {
			continue
		}
		e.pos = e.pos.ApplyMove(m)
		logw.Infof(ctx, "Move %v: %v", m, e.pos)
		return nil
	}
	return fmt.Errorf("illegal move: %v", candidate)
}

// Think runs Gumbel-MCTS from the current position and returns the chosen
// move without applying it.
func (e *Engine) Think(ctx context.Context) (board.Move, error) {
	e.mu.Lock()
	pos := e.pos
	opts := e.searchOpts
	evaluator := e.evaluator
	seed := e.opts.Seed
	e.mu.Unlock()

	if movegen.IsTerminal(pos) {
		return board.Move{}, fmt.Errorf("no legal moves: game is over at %v", pos)
	}

	logw.Infof(ctx, "Thinking at %v, opts=%v", pos, opts)

	s := search.New(evaluator, movegen.Generate, opts, seed)
	move, err := s.GetBestMove(ctx, pos)
	if err != nil {
		return board.Move{}, err
	}

	logw.Infof(ctx, "Chose %v", move)
	return move, nil
}

// Play runs Gumbel-MCTS from the current position and applies the chosen
// move, returning it.
func (e *Engine) Play(ctx context.Context) (board.Move, error) {
	move, err := e.Think(ctx)
	if err != nil {
		return board.Move{}, err
	}

	e.mu.Lock()
	e.pos = e.pos.ApplyMove(move)
	e.mu.Unlock()

	logw.Infof(ctx, "Played %v", move)
	return move, nil
}
