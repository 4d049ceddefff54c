package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng       *rand.Rand
	collector metrics.Collector
}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed)), collector: metrics.NewCollector()}
}

func (a *randomAgent) Name() string {
	return "random"
}

func (a *randomAgent) FindMove(b game.Board) (game.Move, metrics.SearchMetric, error) {
	if b.IsTerminal() {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}
	a.collector.Start(a.Name())
	moves := b.LegalMoves()
	move := moves[a.rng.Intn(len(moves))]
	return move, a.collector.Complete(move, 0), nil
}
