package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root, "comparison")
	require.NoError(t, err)
	require.DirExists(t, writer.Dir())
	require.Equal(t, filepath.Join(root, "comparison"), filepath.Dir(writer.Dir()))

	t.Run("comparison records", func(t *testing.T) {
		records := []ComparisonRecord{
			{Position: 1, Board: ".../.../...", SearchMetric: SearchMetric{Engine: "minimax", Move: game.Move{Row: 0, Col: 0}, Nodes: 549945, Duration: time.Second}},
			{Position: 1, Board: ".../.../...", SearchMetric: SearchMetric{Engine: "alpha-beta", Move: game.Move{Row: 0, Col: 0}, Nodes: 20000, Duration: time.Millisecond}},
		}

		require.NoError(t, writer.WriteComparisonRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "comparison_records.csv"))
		require.Len(t, rows, 3, "Header plus one row per record")
		require.Equal(t, []string{"position", "board", "engine", "row", "col", "nodes", "duration"}, rows[0])
		require.Equal(t, []string{"1", ".../.../...", "minimax", "0", "0", "549945", "1s"}, rows[1])
		require.Equal(t, "alpha-beta", rows[2][2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			ID: 1,
			GameMetric: GameMetric{
				Agents:     [2]string{"minimax", "random"},
				Winner:     game.FirstWins,
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 7,
			},
		}}

		require.NoError(t, writer.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "minimax", "random", "X wins", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "7", "0"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         1,
				Player:       game.Second,
				SearchMetric: SearchMetric{Engine: "alpha-beta", Move: game.Move{Row: 1, Col: 1}, Nodes: 42},
			},
		}}

		require.NoError(t, writer.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "O", "alpha-beta", "1", "1", "42", "0s"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("records engine, move and nodes", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax")
		metric := c.Complete(game.Move{Row: 2, Col: 1}, 10)

		require.Equal(t, "minimax", metric.Engine)
		require.Equal(t, game.Move{Row: 2, Col: 1}, metric.Move)
		require.Equal(t, int64(10), metric.Nodes)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
	})

	t.Run("restarting replaces the engine name", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax")
		c.Start("random")
		metric := c.Complete(game.Move{Row: 0, Col: 0}, 0)

		require.Equal(t, "random", metric.Engine)
		require.Zero(t, metric.Nodes)
	})
}
