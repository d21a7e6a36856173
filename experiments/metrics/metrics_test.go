package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
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

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("mcts", 4, 16, 0)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AddEpisode()
				if j%2 == 0 {
					c.AddFullPlayout()
				}
			}
		}()
	}
	wg.Wait()
	got := c.Complete()

	require.Equal(t, "mcts", got.Strategy)
	require.Equal(t, 4, got.Goroutines)
	require.Equal(t, 16, got.Cutoff)
	require.Equal(t, 400, got.Episodes, "Counters should be safe for concurrent use")
	require.Equal(t, 200, got.FullPlayouts)

	c.Start("negamax", 1, 0, 3)
	require.Zero(t, c.Complete().Episodes, "Start should reset the counters")
	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "strategies")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "strategies"), filepath.Dir(w.Dir()))

	configs := []AgentConfig{
		{ID: 0, Kind: "random"},
		{ID: 1, Kind: "mcts", Goroutines: 4, Duration: 10 * time.Millisecond, Cutoff: 32},
	}
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	games := []GameRecord{{ID: 1, Agent1: 0, Agent2: 1, GameMetric: GameMetric{
		Winner: configs[1].Name(), StartTime: start, EndTime: start.Add(time.Second),
		Duration: time.Second, TotalMoves: 12,
	}}}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, SearchMetric: SearchMetric{Strategy: "random", Episodes: 1}}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: 1, SearchMetric: SearchMetric{Strategy: "mcts", Episodes: 900}}},
	}

	require.NoError(t, w.WriteAgentConfigs(configs))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	agentRows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, agentRows, 3, "Should write a header and one row per agent")
	require.Equal(t, []string{"1", "mcts", "4", "10ms", "0", "32", "0"}, agentRows[2])

	gameRows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, gameRows, 2)
	require.Equal(t, "agent1-mcts", gameRows[1][4])
	require.Equal(t, "2024-05-01T12:00:00Z", gameRows[1][5])
	require.Equal(t, "12", gameRows[1][8])

	moveRows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moveRows, 3)
	require.Equal(t, "900", moveRows[2][6])
}
