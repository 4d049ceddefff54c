package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"

	"github.com/stretchr/testify/require"
)

func defaultPositions(t *testing.T) []game.Board {
	t.Helper()
	positions, err := ComparisonPositions(meta.COMPARISON_POSITIONS)
	require.NoError(t, err)
	require.Len(t, positions, 3)
	return positions
}

func TestRunComparison(t *testing.T) {
	positions := defaultPositions(t)

	records := RunComparison(searcher.NewSolver(), positions)

	require.Len(t, records, 2*len(positions), "One record per engine per position")
	for i := 0; i < len(records); i += 2 {
		exhaustive, pruned := records[i], records[i+1]
		require.Equal(t, exhaustive.Position, pruned.Position)
		require.Equal(t, "minimax", exhaustive.Engine)
		require.Equal(t, "alpha-beta", pruned.Engine)
		require.Equal(t, exhaustive.Move, pruned.Move, "Engines should agree on position %d", exhaustive.Position)
		require.Less(t, pruned.Nodes, exhaustive.Nodes, "Pruning should save nodes on position %d", exhaustive.Position)
	}

	require.Equal(t, ".../.../...", records[0].Board)
	require.Equal(t, game.Move{Row: 0, Col: 0}, records[0].Move)
	require.Equal(t, int64(549945), records[0].Nodes)
	require.Equal(t, "XOX/OX./...", records[4].Board)
	require.Equal(t, game.Move{Row: 1, Col: 2}, records[4].Move, "Every reply loses, so the first one is kept")
}

func TestRunComparisonSkipsTerminalPositions(t *testing.T) {
	b, err := game.FromGrid([game.Size][game.Size]game.Mark{
		{game.First, game.First, game.First},
		{game.Second, game.Second, game.Empty},
		{game.Empty, game.Empty, game.Empty},
	})
	require.NoError(t, err)

	records := RunComparison(searcher.NewSolver(), []game.Board{b})

	require.Empty(t, records)
}

func TestComparisonPositionsRejectsInvalidGrid(t *testing.T) {
	_, err := ComparisonPositions([][game.Size][game.Size]game.Mark{{
		{game.Second, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Empty},
	}})
	require.ErrorIs(t, err, game.ErrInvalidPosition)
}

func TestRunComparisonExperiment(t *testing.T) {
	root := t.TempDir()

	dir, err := RunComparisonExperiment(root, defaultPositions(t))

	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "comparison_records.csv"))
}

func TestRunMatches(t *testing.T) {
	gameRecords, moveRecords, err := RunMatches(MatchUps, 2, meta.SEED)

	require.NoError(t, err)
	require.Len(t, gameRecords, 2*len(MatchUps))

	moves := 0
	for i, record := range gameRecords {
		matchUp := MatchUps[i/2]
		require.Equal(t, i+1, record.ID)
		require.Equal(t, [2]string{matchUp[0].String(), matchUp[1].String()}, record.Agents)

		switch {
		case !matchUp[0].Random && !matchUp[1].Random:
			require.Equal(t, game.Draw, record.Winner, "Engines should draw each other")
		case matchUp[0].Random:
			require.NotEqual(t, game.FirstWins, record.Winner, "%s should not lose as O", matchUp[1])
		default:
			require.NotEqual(t, game.SecondWins, record.Winner, "%s should not lose as X", matchUp[0])
		}
		moves += record.TotalMoves
	}
	require.Len(t, moveRecords, moves)
}

func TestRunMatchExperiment(t *testing.T) {
	root := t.TempDir()

	dir, err := RunMatchExperiment(root, 1, meta.SEED)

	require.NoError(t, err)
	for _, name := range []string{"game_records.csv", "move_records.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}
