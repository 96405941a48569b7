package engine

import (
	"errors"

	"aitournament/game"
)

var ErrNoRoster = errors.New("no players or pools configured for this run mode")

type Mode int

const (
	Train Mode = iota
	Test
)

func (m Mode) String() string {
	if m == Train {
		return "train"
	}
	return "test"
}

// Hooks are invoked in-line; the engine waits for them to return. Any of them
// may be nil.
type Hooks struct {
	OnRunComplete   func(results *RunResults)
	OnGameComplete  func(iteration int, g game.Game, results *RunResults, roster *Roster)
	OnRoundComplete func(g game.Game, roster *Roster)
}

// RunResults accumulates results across the iterations of one run. Entries are
// in the order the players and pools were configured.
type RunResults struct {
	Players []PlayerResults
	Pools   []PoolResults
}

type PlayerResults struct {
	Player  game.Player
	Results []float64 // one per game
}

type PoolResults struct {
	Pool  game.Pool
	Games [][]float64 // results of the pool's seats, one slice per game
}

func newRunResults(s *rosterSpec) *RunResults {
	r := &RunResults{
		Players: make([]PlayerResults, len(s.players)),
		Pools:   make([]PoolResults, len(s.pools)),
	}
	for i, p := range s.players {
		r.Players[i].Player = p
	}
	for i, p := range s.pools {
		r.Pools[i].Pool = p
	}
	return r
}
