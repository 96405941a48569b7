package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"aitournament/engine"
	"aitournament/game"
	"aitournament/game/nim"
	"aitournament/player"
	"aitournament/pool"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// tournament runs a three player nim game between a random player and the
// two members of a one-plus-one pool.
func tournament(t *testing.T, games int) (*Collector, *engine.RunResults) {
	t.Helper()
	rng := rand.New(rand.NewSource(3))
	g, err := nim.New(9, 2, game.Exact(3))
	require.NoError(t, err)
	e, err := engine.New(g)
	require.NoError(t, err)

	random := player.NewRandom("random", nim.Logic{}, rng)
	duelist := pool.NewOnePlusOne("duelist", func(name string) pool.Parametrized {
		return player.NewNetwork(name, nim.Logic{}, nim.Features, player.NetworkConfig{Inputs: 3, Hidden: []int{3}}, rng)
	}, pool.WithRand(rng))
	require.NoError(t, e.SetTrainingRoster([]game.Player{random}, []game.Pool{duelist}))

	c := NewCollector(engine.Train)
	var completed *engine.RunResults
	results, err := e.Run(games, engine.Train, c.Hooks(engine.Hooks{
		OnRunComplete: func(r *engine.RunResults) { completed = r },
	}))
	require.NoError(t, err)
	require.Same(t, results, completed, "Should chain the run hook")
	return c, results
}

func TestCollector(t *testing.T) {
	c, _ := tournament(t, 5)

	games := c.Games()
	require.Len(t, games, 5)
	for i, m := range games {
		require.Equal(t, i, m.Iteration)
		require.Equal(t, engine.Train, m.Mode)
		require.Equal(t, "random", m.Players[0])
		require.Equal(t, []string{"", "duelist", "duelist"}, m.Pools)
		require.GreaterOrEqual(t, m.Rounds, 5, "Nine stones take at least five moves")
		require.LessOrEqual(t, m.Rounds, 9)

		total := 0.0
		for _, r := range m.Results {
			total += r
		}
		require.Equal(t, 1.0, total, "Exactly one seat wins")
		require.False(t, m.EndTime.Before(m.StartTime))
	}
}

func TestSummarize(t *testing.T) {
	_, results := tournament(t, 6)

	summaries := Summarize(results)

	require.Len(t, summaries, 2)
	require.Equal(t, "random", summaries[0].Name)
	require.False(t, summaries[0].Pool)
	require.Equal(t, 6, summaries[0].Games)
	require.Equal(t, "duelist", summaries[1].Name)
	require.True(t, summaries[1].Pool)
	require.Equal(t, 6, summaries[1].Games)
	// the pool holds two of three seats and exactly one seat wins each game
	require.InDelta(t, 6.0, summaries[0].Mean*6+summaries[1].Mean*12, 1e-9)

	t.Run("empty results", func(t *testing.T) {
		s := summarize("nobody", false, 0, nil)
		require.Equal(t, Summary{Name: "nobody"}, s)
	})
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(w.Dir()))

	c, results := tournament(t, 3)
	require.NoError(t, w.WriteGameRecords("train", c.Games()))
	require.NoError(t, w.WriteSummaries("train", Summarize(results)))

	games := readCSV(t, filepath.Join(w.Dir(), "train_games.csv"))
	require.Len(t, games, 4)
	require.Equal(t, "mode", games[0][0])
	require.Equal(t, "train", games[1][0])
	require.Equal(t, ";duelist;duelist", games[1][3])

	summary := readCSV(t, filepath.Join(w.Dir(), "train_summary.csv"))
	require.Len(t, summary, 3)
	require.Equal(t, []string{"name", "pool", "games", "mean", "best"}, summary[0])
	require.Equal(t, "duelist", summary[2][0])
	require.Equal(t, "true", summary[2][1])
	require.Equal(t, "3", summary[2][2])

	t.Run("joins floats", func(t *testing.T) {
		require.Equal(t, "1;0.5;0", joinFloats([]float64{1, 0.5, 0}))
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}
