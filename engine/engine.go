package engine

import (
	"errors"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// MaxRejects bounds consecutive illegal moves from one agent before the game is abandoned.
const MaxRejects = 100

var ErrTooManyRejects = errors.New("too many illegal moves")

type Engine interface {
	// Run plays the game to a terminal position and returns its outcome
	Run() (winner game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
