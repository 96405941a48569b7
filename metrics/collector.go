package metrics

import (
	"time"

	"aitournament/engine"
	"aitournament/game"
)

type GameMetric struct {
	Mode      engine.Mode
	Iteration int
	Players   []string  // by seat
	Pools     []string  // pool name by seat, "" for standalone players
	Results   []float64 // by seat
	Rounds    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector records one GameMetric per game of a run through engine hooks.
type Collector struct {
	mode      engine.Mode
	rounds    int
	startTime time.Time
	games     []GameMetric
}

func NewCollector(mode engine.Mode) *Collector {
	return &Collector{mode: mode, startTime: time.Now()}
}

// Hooks returns hooks that record metrics and then call next.
func (c *Collector) Hooks(next engine.Hooks) engine.Hooks {
	return engine.Hooks{
		OnRoundComplete: func(g game.Game, roster *engine.Roster) {
			c.rounds++
			if next.OnRoundComplete != nil {
				next.OnRoundComplete(g, roster)
			}
		},
		OnGameComplete: func(iteration int, g game.Game, results *engine.RunResults, roster *engine.Roster) {
			c.AddGame(iteration, g, results, roster)
			if next.OnGameComplete != nil {
				next.OnGameComplete(iteration, g, results, roster)
			}
		},
		OnRunComplete: next.OnRunComplete,
	}
}

func (c *Collector) AddGame(iteration int, g game.Game, results *engine.RunResults, roster *engine.Roster) {
	end := time.Now()
	m := GameMetric{
		Mode:      c.mode,
		Iteration: iteration,
		Players:   make([]string, len(roster.Players)),
		Pools:     make([]string, len(roster.Players)),
		Results:   make([]float64, len(roster.Players)),
		Rounds:    c.rounds,
		StartTime: c.startTime,
		EndTime:   end,
		Duration:  end.Sub(c.startTime),
	}
	for seat, p := range roster.Players {
		m.Players[seat] = p.Name()
		m.Results[seat] = g.Result(seat)
		if origin := roster.Origin[seat]; origin != engine.Standalone {
			m.Pools[seat] = results.Pools[origin].Pool.Name()
		}
	}
	c.games = append(c.games, m)
	c.rounds = 0
	c.startTime = end
}

func (c *Collector) Games() []GameMetric {
	return c.games
}
