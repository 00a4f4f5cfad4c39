package metrics

import (
	"encoding/csv"
	"os"
	"othello/game"
	"path/filepath"
	"testing"
	"time"

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
	t.Run("writing records under a timestamped directory", func(t *testing.T) {
		root := t.TempDir()
		w, err := NewWriter(root, "difficulty")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(root, "difficulty"), filepath.Dir(w.Dir()))

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Name: "easy", Depth: 1, Evaluator: "stability"},
		}))
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID: 1, Black: 1, White: 2,
			GameMetric: GameMetric{StartingPlayer: game.Black, Winner: game.White, BlackCount: 20, WhiteCount: 44, TotalMoves: 60},
		}}))
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 1, Player: game.Black, Move: game.Position{Row: 2, Col: 3},
				SearchMetric: SearchMetric{Depth: 2, Duration: time.Millisecond, Nodes: 16},
			},
		}}))

		configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "name", "depth", "evaluator"}, {"1", "easy", "1", "stability"}}, configs)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, []string{"1", "1", "2", "Black", "White", "20", "44", "60", "0"}, games[1][:9])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, moves, 2)
		require.Equal(t, []string{"1", "1", "Black", "d3", "2", "1ms", "16", "0", "false"}, moves[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counting one search", func(t *testing.T) {
		c := NewCollector()
		c.SetTreeReset(true)
		c.Start(3)
		c.AddNodes(10)
		c.AddNodes(5)
		c.AddReused(4)

		got := c.Complete()

		require.Equal(t, 3, got.Depth)
		require.Equal(t, 15, got.Nodes)
		require.Equal(t, 4, got.Reused)
		require.True(t, got.IsTreeReset)
	})

	t.Run("starting again clears the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddNodes(7)
		c.Start(2)

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNodes(10)

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
