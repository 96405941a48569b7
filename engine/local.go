package engine

import (
	"fmt"
	"time"

	"aitournament/game"

	"github.com/rs/zerolog/log"
)

// Engine drives train and test runs of a single game between standalone
// players and pool-produced players. Runs are sequential and synchronous.
type Engine struct {
	game  game.Game
	min   int
	max   int
	train *rosterSpec
	test  *rosterSpec
}

func New(g game.Game) (*Engine, error) {
	min, max, err := g.Info().Bounds()
	if err != nil {
		return nil, err
	}
	return &Engine{game: g, min: min, max: max}, nil
}

// Seats returns the minimum and maximum roster size accepted by the game.
func (e *Engine) Seats() (min, max int) {
	return e.min, e.max
}

func (e *Engine) SetTrainingRoster(players []game.Player, pools []game.Pool) error {
	if err := validateRoster(players, pools, e.min, e.max); err != nil {
		return err
	}
	e.train = &rosterSpec{players: players, pools: pools}
	return nil
}

func (e *Engine) SetTestingRoster(players []game.Player, pools []game.Pool) error {
	if err := validateRoster(players, pools, e.min, e.max); err != nil {
		return err
	}
	e.test = &rosterSpec{players: players, pools: pools}
	return nil
}

// Run plays iterations games. In train mode every pool that had seats in a
// game is trained on its results before the next game starts. The first error
// raised by the game, a player or a pool aborts the run.
func (e *Engine) Run(iterations int, mode Mode, hooks Hooks) (*RunResults, error) {
	spec := e.train
	if mode == Test {
		spec = e.test
	}
	if spec == nil {
		return nil, fmt.Errorf("%s run: %w", mode, ErrNoRoster)
	}

	results := newRunResults(spec)
	log.Debug().Msgf("starting %s run of %d games", mode, iterations)

	for i := 0; i < iterations; i++ {
		if err := e.play(i, spec, mode, hooks, results); err != nil {
			return results, fmt.Errorf("%s game %d: %w", mode, i, err)
		}
	}

	if hooks.OnRunComplete != nil {
		hooks.OnRunComplete(results)
	}
	return results, nil
}

func (e *Engine) play(iteration int, spec *rosterSpec, mode Mode, hooks Hooks, results *RunResults) error {
	start := time.Now()
	for _, pool := range spec.pools {
		pool.PrepareNewGame()
	}

	roster, err := spec.assemble(e.max)
	if err != nil {
		return err
	}
	if err := roster.checkUnique(); err != nil {
		return err
	}
	for seat, p := range roster.Players {
		p.SetSeat(seat)
		p.PrepareNewGame()
	}
	if err := e.game.PrepareNewGame(roster.Players); err != nil {
		return fmt.Errorf("preparing game: %w", err)
	}

	rounds := 0
	for !e.game.IsGameOver() {
		e.refreshViews(roster)

		current := e.game.CurrentPlayers()
		moves := make(map[int]game.Move, len(current))
		for _, seat := range current {
			if seat < 0 || seat >= len(roster.Players) {
				return fmt.Errorf("game designated seat %d of %d", seat, len(roster.Players))
			}
			move, err := roster.Players[seat].NextMove()
			if err != nil {
				return fmt.Errorf("player %s: %w", roster.Players[seat].Name(), err)
			}
			moves[seat] = move
		}
		if err := e.game.SetPlayersMoves(moves); err != nil {
			return fmt.Errorf("round %d: %w", rounds, err)
		}
		rounds++

		if hooks.OnRoundComplete != nil {
			hooks.OnRoundComplete(e.game, roster)
		}
	}
	e.refreshViews(roster)

	// Register results
	seatResults := make([]float64, len(roster.Players))
	outcomes := make([][]game.Outcome, len(spec.pools))
	for seat, p := range roster.Players {
		result := e.game.Result(seat)
		seatResults[seat] = result

		origin := roster.Origin[seat]
		if origin == Standalone {
			// standalone players occupy the first seats in configuration order
			results.Players[seat].Results = append(results.Players[seat].Results, result)
			continue
		}
		outcomes[origin] = append(outcomes[origin], game.Outcome{Player: p, Result: result})
	}
	for i, out := range outcomes {
		if len(out) == 0 {
			continue
		}
		scores := make([]float64, len(out))
		for j, o := range out {
			scores[j] = o.Result
		}
		results.Pools[i].Games = append(results.Pools[i].Games, scores)
	}

	log.Debug().Msgf("%s game %d over after %d rounds in %s: %v", mode, iteration, rounds, time.Since(start), seatResults)

	if hooks.OnGameComplete != nil {
		hooks.OnGameComplete(iteration, e.game, results, roster)
	}

	if mode != Train {
		return nil
	}
	for i, out := range outcomes {
		if len(out) == 0 {
			continue
		}
		if err := spec.pools[i].TrainOnGameOver(out); err != nil {
			return fmt.Errorf("training pool %s: %w", spec.pools[i].Name(), err)
		}
	}
	for seat, p := range roster.Players {
		p.TrainGameOver(seatResults[seat])
	}
	return nil
}

func (e *Engine) refreshViews(roster *Roster) {
	for seat, p := range roster.Players {
		p.SetCurrentView(e.game.PlayerView(seat))
	}
}
