package experiments

import (
	"fmt"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

// AgentConfig describes one side of a matchup. Random agents are used when
// Random is set, otherwise a search agent of Kind.
type AgentConfig struct {
	Kind   searcher.Kind
	Random bool
}

func (c AgentConfig) String() string {
	if c.Random {
		return "random"
	}
	return c.Kind.String()
}

// MatchUps pits the engines against each other and against random play,
// with each side taking both colours.
var MatchUps = [][2]AgentConfig{
	{{Kind: searcher.Exhaustive}, {Kind: searcher.Pruned}},
	{{Kind: searcher.Pruned}, {Kind: searcher.Exhaustive}},
	{{Kind: searcher.Exhaustive}, {Random: true}},
	{{Random: true}, {Kind: searcher.Exhaustive}},
	{{Kind: searcher.Pruned}, {Random: true}},
	{{Random: true}, {Kind: searcher.Pruned}},
}

// RunMatches plays numGames games for each matchup.
func RunMatches(matchUps [][2]AgentConfig, numGames int, seed uint64) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	solver := searcher.NewSolver()
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %s (X) and %s (O)...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < numGames; i++ {
			count++
			x := createAgent(solver, matchUp[0], seed+uint64(count))
			o := createAgent(solver, matchUp[1], seed+uint64(count))

			winner, gameMetric, moveMetrics, err := engine.NewLocalEngine(x, o).Run()
			if err != nil {
				return nil, nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			log.Debug().Msgf("completed matchup %d game %d of %d: %s", mi+1, i+1, numGames, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}
	return gameRecords, moveRecords, nil
}

// RunMatchExperiment plays every matchup and stores game and move records as CSV under root.
func RunMatchExperiment(root string, numGames int, seed uint64) (string, error) {
	log.Info().Msg("starting match experiment...")
	gameRecords, moveRecords, err := RunMatches(MatchUps, numGames, seed)
	if err != nil {
		return "", err
	}
	log.Info().Msg("completed match experiment")

	writer, err := metrics.NewWriter(root, "matches")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func createAgent(solver *searcher.Solver, config AgentConfig, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewSearchAgent(solver, config.Kind)
}
