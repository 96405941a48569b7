package searcher

import (
	"fmt"

	"aitournament/game"

	"golang.org/x/exp/rand"
)

// MinMax searches the game tree to a fixed depth. Every other seat is assumed
// to pick the move that is worst for the searching seat, and every leaf is
// scored from the searching seat's point of view only.
type MinMax struct {
	logic game.FiniteTurnLogic
	depth int
	rng   *rand.Rand
}

// NewMinMax returns a searcher looking depth plies ahead: 1 only evaluates the
// views reachable by the next move, 2 also looks at the reply, etc.
func NewMinMax(logic game.FiniteTurnLogic, depth int, options ...Option) *MinMax {
	if depth < 1 {
		panic(fmt.Sprintf("search depth must be at least 1, got %d", depth))
	}
	m := &MinMax{
		logic: logic,
		depth: depth,
		rng:   newRand(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MinMax) Depth() int { return m.depth }

// FindMove returns a move of maximal value for seat, picking uniformly at
// random among equally good moves, together with that value.
func (m *MinMax) FindMove(view game.View, seat int) (game.Move, float64, error) {
	var (
		best      []game.Move
		bestValue float64
	)
	for _, move := range m.logic.Moves(view) {
		value := m.evaluate(m.logic.Apply(view, move), seat, 1)
		switch {
		case best == nil || value > bestValue:
			bestValue = value
			best = []game.Move{move}
		case value == bestValue:
			best = append(best, move)
		}
	}
	if len(best) == 0 {
		return nil, 0, ErrNoMoves
	}
	return best[m.rng.Intn(len(best))], bestValue, nil
}

func (m *MinMax) evaluate(view game.View, seat int, depth int) float64 {
	if depth == m.depth || m.logic.IsTerminal(view) {
		return m.logic.Evaluate(view, seat)
	}
	moves := m.logic.Moves(view)
	if len(moves) == 0 {
		return m.logic.Evaluate(view, seat)
	}

	maximising := m.logic.CurrentPlayer(view) == seat
	var best float64
	for i, move := range moves {
		value := m.evaluate(m.logic.Apply(view, move), seat, depth+1)
		if i == 0 || maximising && value > best || !maximising && value < best {
			best = value
		}
	}
	return best
}
