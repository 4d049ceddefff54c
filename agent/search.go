package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	solver  *searcher.Solver
	kind    searcher.Kind
	metrics metrics.Collector
}

// NewSearchAgent returns an agent that plays the optimal move found by the given engine.
func NewSearchAgent(solver *searcher.Solver, kind searcher.Kind) Agent {
	return &searchAgent{
		solver:  solver,
		kind:    kind,
		metrics: metrics.NewCollector(),
	}
}

func (a *searchAgent) Name() string {
	return a.kind.String()
}

func (a *searchAgent) FindMove(b game.Board) (game.Move, metrics.SearchMetric, error) {
	a.solver.ResetNodeCount(a.kind)
	a.metrics.Start(a.kind.String())

	move, ok := a.solver.BestMove(&b, a.kind)
	if !ok {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}

	metric := a.metrics.Complete(move, a.solver.NodeCount(a.kind))
	log.Debug().
		Str("engine", metric.Engine).
		Stringer("move", move).
		Int64("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return move, metric, nil
}
