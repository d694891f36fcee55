// play is a minimal command-line driver for the Gumbel-MCTS engine: it
// plays itself from a starting position, or a position supplied via -fen,
// printing each chosen move and the final position. UCI/time management are
// explicit spec Non-goals, so there is no protocol driver here, unlike
// herohde-morlock/cmd/morlock.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gumbelchess/engine/pkg/board/fen"
	"github.com/gumbelchess/engine/pkg/config"
	"github.com/gumbelchess/engine/pkg/engine"
	"github.com/gumbelchess/engine/pkg/movegen"
	"github.com/seekerror/logw"
)

var (
	position   = flag.String("fen", "", "Start position (default to standard)")
	configPath = flag.String("config", "", "Path to a TOML search config (defaults built in if omitted)")
	seed       = flag.Int64("seed", 1, "Gumbel sampling seed")
	maxPlies   = flag.Int("plies", 80, "Maximum plies before giving up")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: play [options]

play is a self-play driver for a Gumbel-MCTS chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logw.Exitf(ctx, "Invalid config '%v': %v", *configPath, err)
		}
		cfg = loaded
	}

	start := *position
	if start == "" {
		start = fen.Initial
	}

	e := engine.New(ctx, "gumbelchess", "gumbelchess", engine.WithSearch(cfg.Options()), engine.WithSeed(*seed))
	if err := e.Reset(ctx, start); err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", start, err)
	}

	for ply := 0; ply < *maxPlies; ply++ {
		pos, err := fen.Decode(e.Position())
		if err != nil {
			logw.Exitf(ctx, "Corrupted position: %v", err)
		}
		if movegen.IsTerminal(pos) {
			break
		}

		move, err := e.Play(ctx)
		if err != nil {
			logw.Exitf(ctx, "Search failed: %v", err)
		}
		println(fmt.Sprintf("%v: %v", ply+1, move))
	}

	println(fmt.Sprintf("final position: %v", e.Position()))
}
