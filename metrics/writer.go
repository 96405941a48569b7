package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteGameRecords(name string, games []GameMetric) error {
	path := filepath.Join(w.baseDir, name+"_games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"mode", "iteration", "players", "pools", "results", "rounds", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, game := range games {
		row := []string{
			game.Mode.String(),
			strconv.Itoa(game.Iteration),
			strings.Join(game.Players, ";"),
			strings.Join(game.Pools, ";"),
			joinFloats(game.Results),
			strconv.Itoa(game.Rounds),
			game.StartTime.Format(time.RFC3339Nano),
			game.EndTime.Format(time.RFC3339Nano),
			game.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(name string, summaries []Summary) error {
	path := filepath.Join(w.baseDir, name+"_summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"name", "pool", "games", "mean", "best"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.Name,
			strconv.FormatBool(s.Pool),
			strconv.Itoa(s.Games),
			strconv.FormatFloat(s.Mean, 'f', -1, 64),
			strconv.FormatFloat(s.Best, 'f', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ";")
}
