package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"tictactoe/agent"
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

// WithBoard starts the game from b instead of an empty board.
func WithBoard(b game.Board) Option {
	return func(e *LocalEngine) {
		e.board = b
	}
}

// WithOutput writes the board and turn prompts to w.
func WithOutput(w io.Writer) Option {
	return func(e *LocalEngine) {
		if w != nil {
			e.out = w
		}
	}
}

// LocalEngine plays two in-process agents against each other.
type LocalEngine struct {
	board  game.Board
	agents [2]agent.Agent // Indexed by mover: X first, O second
	out    io.Writer
}

// NewLocalEngine returns an engine where x plays First and o plays Second.
func NewLocalEngine(x, o agent.Agent, options ...Option) *LocalEngine {
	if x == nil || o == nil {
		panic("need an agent for each player")
	}

	e := &LocalEngine{
		board:  game.NewBoard(),
		agents: [2]agent.Agent{x, o},
		out:    io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns a copy of the current position.
func (e *LocalEngine) Board() game.Board {
	return e.board
}

// Run executes the game loop until the board is terminal.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Agents:    [2]string{e.agents[0].Name(), e.agents[1].Name()},
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (X) against %s (O)", gameMetric.Agents[0], gameMetric.Agents[1])

	step := 1
	rejects := 0
	for !e.board.IsTerminal() {
		player := e.board.Turn()
		current := e.agents[agentIndex(player)]

		fmt.Fprintln(e.out, e.board.String())
		fmt.Fprintf(e.out, "Player %s's turn\n", player)

		move, metric, err := current.FindMove(e.board)
		if err != nil {
			return game.Draw, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", current.Name(), err)
		}

		err = e.board.Place(move.Row, move.Col)
		if errors.Is(err, game.ErrIllegalMove) {
			rejects++
			gameMetric.Rejected++
			log.Warn().Err(err).Msgf("rejected move from %s", current.Name())
			fmt.Fprintln(e.out, "Invalid move. Try again.")
			if rejects >= MaxRejects {
				return game.Draw, gameMetric, moveMetrics, fmt.Errorf("%s: %w", current.Name(), ErrTooManyRejects)
			}
			continue
		}
		if err != nil {
			return game.Draw, gameMetric, moveMetrics, err
		}
		rejects = 0

		fmt.Fprintf(e.out, "%s chooses: %s\n", current.Name(), move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: metric,
		})
		step++
	}

	winner := e.board.Evaluate()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	fmt.Fprintln(e.out, e.board.String())
	fmt.Fprintln(e.out, announce(winner))
	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, winner)

	return winner, gameMetric, moveMetrics, nil
}

func agentIndex(player game.Mark) int {
	if player == game.First {
		return 0
	}
	return 1
}

func announce(winner game.Outcome) string {
	switch winner {
	case game.FirstWins:
		return "X wins!"
	case game.SecondWins:
		return "O wins!"
	}
	return "It's a draw!"
}
