package agent

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// LineReader is the subset of *bufio.Scanner used to read moves.
type LineReader interface {
	Scan() bool
	Text() string
	Err() error
}

type humanAgent struct {
	in        LineReader
	out       io.Writer
	collector metrics.Collector
}

// NewHumanAgent returns an agent that reads "row col" moves from in and
// writes prompts to out.
func NewHumanAgent(in LineReader, out io.Writer) Agent {
	return &humanAgent{in: in, out: out, collector: metrics.NewCollector()}
}

func (a *humanAgent) Name() string {
	return "human"
}

func (a *humanAgent) FindMove(b game.Board) (game.Move, metrics.SearchMetric, error) {
	if b.IsTerminal() {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}

	a.collector.Start(a.Name())
	for {
		fmt.Fprint(a.out, "Enter row and column (0-2): ")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, metrics.SearchMetric{}, ErrNoInput
		}

		move, err := ParseMove(a.in.Text())
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input. Try again.")
			continue
		}
		return move, a.collector.Complete(move, 0), nil
	}
}

// ParseMove parses two whitespace separated integers. Range is checked when
// the move is placed.
func ParseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("expected row and column, got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("invalid column: %w", err)
	}
	return game.Move{Row: row, Col: col}, nil
}
