package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/logx"
	"tictactoe/meta"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

type config struct {
	compare  bool
	match    bool
	games    int
	out      string
	seed     uint64
	logLevel string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	fs.BoolVar(&cfg.compare, "compare", false, "compare the engines on the test positions and exit")
	fs.BoolVar(&cfg.match, "match", false, "play engine matches and exit")
	fs.IntVar(&cfg.games, "games", meta.MATCH_GAMES, "games per matchup with -match")
	fs.StringVar(&cfg.out, "out", meta.OUTPUT_DIR, "base directory for experiment CSV files")
	fs.Uint64Var(&cfg.seed, "seed", meta.SEED, "seed for random agents")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	err := fs.Parse(args)
	return cfg, err
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	level, err := logx.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logger = logx.NewLogger(os.Stderr, level)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func run(cfg config, in io.Reader, out io.Writer) error {
	if cfg.compare {
		return compare(cfg)
	}
	if cfg.match {
		if cfg.games < 1 {
			return fmt.Errorf("games per matchup must be positive, got %d", cfg.games)
		}
		_, err := experiments.RunMatchExperiment(cfg.out, cfg.games, cfg.seed)
		return err
	}
	return menu(cfg, bufio.NewScanner(in), out)
}

func compare(cfg config) error {
	positions, err := experiments.ComparisonPositions(meta.COMPARISON_POSITIONS)
	if err != nil {
		return err
	}
	_, err = experiments.RunComparisonExperiment(cfg.out, positions)
	return err
}

func menu(cfg config, in *bufio.Scanner, out io.Writer) error {
	for {
		fmt.Fprintln(out, "\n====== Tic-Tac-Toe Menu ======")
		fmt.Fprintln(out, "1. Play Game")
		fmt.Fprintln(out, "2. Compare Minimax and Alpha-Beta")
		fmt.Fprintln(out, "3. Exit")

		choice, ok := prompt(in, out, "Enter your choice (1-3): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			if err := play(in, out); err != nil {
				if errors.Is(err, agent.ErrNoInput) {
					return nil
				}
				return err
			}
		case "2":
			if err := compare(cfg); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(out, "Exiting... Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid input. Try again.")
		}
	}
}

func play(in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to Tic-Tac-Toe!")
	fmt.Fprintln(out, "Choose your player:")
	fmt.Fprintln(out, "1. X (first player)")
	fmt.Fprintln(out, "2. O (second player)")
	side, ok := choose(in, out, "Enter choice (1 or 2): ", 2)
	if !ok {
		return agent.ErrNoInput
	}

	fmt.Fprintln(out, "\nSelect AI mode:")
	fmt.Fprintln(out, "1. Human vs Minimax AI")
	fmt.Fprintln(out, "2. Human vs Minimax with Alpha-Beta AI")
	fmt.Fprintln(out, "3. Minimax AI vs Alpha-Beta AI")
	mode, ok := choose(in, out, "Choose game mode (1-3): ", 3)
	if !ok {
		return agent.ErrNoInput
	}

	solver := searcher.NewSolver()
	var x, o agent.Agent
	switch mode {
	case 3:
		x = agent.NewSearchAgent(solver, searcher.Exhaustive)
		o = agent.NewSearchAgent(solver, searcher.Pruned)
	default:
		kind := searcher.Exhaustive
		if mode == 2 {
			kind = searcher.Pruned
		}
		human := agent.NewHumanAgent(in, out)
		ai := agent.NewSearchAgent(solver, kind)
		x, o = human, ai
		if side == 2 {
			x, o = ai, human
		}
	}

	_, _, _, err := engine.NewLocalEngine(x, o, engine.WithOutput(out)).Run()
	return err
}

// choose prompts until the answer is a number in [1, n].
func choose(in *bufio.Scanner, out io.Writer, question string, n int) (int, bool) {
	for {
		answer, ok := prompt(in, out, question)
		if !ok {
			return 0, false
		}
		if choice, err := strconv.Atoi(answer); err == nil && choice >= 1 && choice <= n {
			return choice, true
		}
		fmt.Fprintln(out, "Invalid input. Try again.")
	}
}

func prompt(in *bufio.Scanner, out io.Writer, question string) (string, bool) {
	fmt.Fprint(out, question)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
