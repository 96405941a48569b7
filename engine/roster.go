package engine

import (
	"errors"
	"fmt"

	"aitournament/game"
	"aitournament/utils"
)

// Standalone marks a roster seat taken by a configured player rather than a pool.
const Standalone = -1

var (
	ErrEmptyRoster      = errors.New("players or player pools must not be empty")
	ErrTooManyPlayers   = errors.New("too large player number")
	ErrNotEnoughPlayers = errors.New("not enough available players")
	ErrEmptyPool        = errors.New("player pool must allow for at least one player")
	ErrDuplicatePlayer  = errors.New("player appears more than once in the roster")
)

// Roster is the list of participants of one game. Seats are indices into
// Players and define the turn order; Origin maps every seat to the index of the
// pool that produced the player, or Standalone.
type Roster struct {
	Players []game.Player
	Origin  []int
}

// rosterSpec is what a roster is assembled from, once per game.
type rosterSpec struct {
	players []game.Player
	pools   []game.Pool
}

func validateRoster(players []game.Player, pools []game.Pool, min, max int) error {
	if len(players)+len(pools) == 0 {
		return ErrEmptyRoster
	}
	// every pool contributes at least one seat
	if len(players)+len(pools) > max {
		return fmt.Errorf("%d players and %d pools for at most %d seats: %w", len(players), len(pools), max, ErrTooManyPlayers)
	}
	supply := len(players)
	for _, pool := range pools {
		if pool.MaxCount() < 1 {
			return fmt.Errorf("pool %s: %w", pool.Name(), ErrEmptyPool)
		}
		supply += pool.MaxCount()
	}
	if supply < min {
		return fmt.Errorf("%d available players for at least %d seats: %w", supply, min, ErrNotEnoughPlayers)
	}
	return nil
}

// assemble builds a roster from the standalone players followed by pool
// players drawn in rounds: every active pool gives one player per round and
// stays active while its MaxCount exceeds the number of rounds played.
func (s *rosterSpec) assemble(max int) (*Roster, error) {
	r := &Roster{
		Players: make([]game.Player, 0, max),
		Origin:  make([]int, 0, max),
	}
	for _, p := range s.players {
		r.Players = append(r.Players, p)
		r.Origin = append(r.Origin, Standalone)
	}
	if len(r.Players) >= max {
		return r, nil
	}

	active := make([]int, len(s.pools))
	for i := range active {
		active[i] = i
	}
	for level := 1; len(active) > 0; level++ {
		next := make([]int, 0, len(active))
		for _, i := range active {
			pool := s.pools[i]
			p, err := pool.Player()
			if err != nil {
				return nil, fmt.Errorf("pool %s: %w", pool.Name(), err)
			}
			r.Players = append(r.Players, p)
			r.Origin = append(r.Origin, i)
			if len(r.Players) == max {
				return r, nil
			}
			if pool.MaxCount() > level {
				next = append(next, i)
			}
		}
		active = next
	}
	return r, nil
}

// CountFrom returns how many seats the pool at index pool received.
func (r *Roster) CountFrom(pool int) int {
	return utils.Count(r.Origin, pool)
}

func (r *Roster) checkUnique() error {
	for i := range r.Players {
		for j := i + 1; j < len(r.Players); j++ {
			if r.Players[i] == r.Players[j] {
				return fmt.Errorf("%s at seats %d and %d: %w", r.Players[i].Name(), i, j, ErrDuplicatePlayer)
			}
		}
	}
	return nil
}
