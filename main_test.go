package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("writes results per epoch and mode", func(t *testing.T) {
		out := t.TempDir()

		err := run(options{config: "config.yaml", epochs: 2, trainRuns: 3, testRuns: 2, seed: 1, output: out})

		require.NoError(t, err)
		dirs, err := os.ReadDir(out)
		require.NoError(t, err)
		require.Len(t, dirs, 1)
		for _, name := range []string{"epoch1_train_games.csv", "epoch2_test_summary.csv"} {
			_, err := os.Stat(filepath.Join(out, dirs[0].Name(), name))
			require.NoError(t, err, name)
		}
	})

	t.Run("toml configuration", func(t *testing.T) {
		err := run(options{config: "evolution.toml", epochs: 1, trainRuns: 8, testRuns: 1, seed: 2, output: t.TempDir()})
		require.NoError(t, err)
	})

	t.Run("missing configuration", func(t *testing.T) {
		err := run(options{config: "missing.yaml", epochs: 1, testRuns: 1})
		require.Error(t, err)
	})
}
