package experiments

import (
	"fmt"
	"strings"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

// RunComparison asks every engine for a move on each position and records
// the move, the nodes visited and the time taken.
func RunComparison(solver *searcher.Solver, positions []game.Board) []metrics.ComparisonRecord {
	records := []metrics.ComparisonRecord{}
	collector := metrics.NewCollector()

	for i, position := range positions {
		log.Info().Msgf("test position %d:\n%s", i+1, position.String())

		bySearch := make(map[searcher.Kind]metrics.SearchMetric, len(searcher.Kinds))
		for _, kind := range searcher.Kinds {
			b := position
			solver.ResetNodeCount(kind)
			collector.Start(kind.String())
			move, ok := solver.BestMove(&b, kind)
			if !ok {
				log.Warn().Msgf("position %d is terminal, skipping", i+1)
				break
			}
			metric := collector.Complete(move, solver.NodeCount(kind))
			bySearch[kind] = metric

			log.Info().Msgf("%s chooses %s: %d nodes in %s", kind, move, metric.Nodes, metric.Duration)
			records = append(records, metrics.ComparisonRecord{
				Position:     i + 1,
				Board:        compact(position),
				SearchMetric: metric,
			})
		}

		exhaustive, ok1 := bySearch[searcher.Exhaustive]
		pruned, ok2 := bySearch[searcher.Pruned]
		if ok1 && ok2 && pruned.Nodes > 0 {
			log.Info().Msgf("alpha-beta visits %.2fx fewer nodes", float64(exhaustive.Nodes)/float64(pruned.Nodes))
			if pruned.Duration > 0 {
				log.Info().Msgf("alpha-beta is %.2fx faster", float64(exhaustive.Duration)/float64(pruned.Duration))
			}
		}
	}
	return records
}

// ComparisonPositions builds the boards listed by grids.
func ComparisonPositions(grids [][game.Size][game.Size]game.Mark) ([]game.Board, error) {
	positions := make([]game.Board, 0, len(grids))
	for i, grid := range grids {
		b, err := game.FromGrid(grid)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+1, err)
		}
		positions = append(positions, b)
	}
	return positions, nil
}

// RunComparisonExperiment compares the engines on positions and stores the
// records as CSV under root.
func RunComparisonExperiment(root string, positions []game.Board) (string, error) {
	log.Info().Msg("starting comparison experiment...")
	records := RunComparison(searcher.NewSolver(), positions)
	log.Info().Msg("completed comparison experiment")

	writer, err := metrics.NewWriter(root, "comparison")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteComparisonRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to store comparison records: %w", err)
	}
	log.Info().Msgf("stored comparison records in %s", writer.Dir())
	return writer.Dir(), nil
}

// compact renders a board on one line with rows separated by slashes.
func compact(b game.Board) string {
	rows := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	for i, row := range rows {
		rows[i] = strings.ReplaceAll(row, " ", "")
	}
	return strings.Join(rows, "/")
}
