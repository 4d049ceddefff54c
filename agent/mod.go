package agent

import (
	"errors"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var (
	// ErrNoMove is returned when an agent is asked to move on a finished game.
	ErrNoMove = errors.New("no legal move available")
	// ErrNoInput is returned when a human agent's input ends.
	ErrNoInput = errors.New("input closed")
)

type Agent interface {
	Name() string
	// FindMove returns a move for the player to move on b and the metrics of
	// the search that produced it. The board is the agent's own copy.
	FindMove(b game.Board) (game.Move, metrics.SearchMetric, error)
}
