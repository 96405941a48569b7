package searcher

import "aitournament/game"

// mockLogic is a hand-written game tree. Views are node names, moves are the
// names of the child nodes they lead to.
type mockLogic struct {
	children map[string][]string
	mover    map[string]int
	values   map[string]float64 // from seat 0's point of view
	terminal map[string]bool
}

func (m mockLogic) CurrentPlayer(view game.View) int { return m.mover[view.(string)] }

func (m mockLogic) Moves(view game.View) []game.Move {
	var moves []game.Move
	for _, c := range m.children[view.(string)] {
		moves = append(moves, c)
	}
	return moves
}

func (m mockLogic) IsTerminal(view game.View) bool { return m.terminal[view.(string)] }

func (m mockLogic) Apply(view game.View, move game.Move) game.View { return move }

func (m mockLogic) Evaluate(view game.View, seat int) float64 {
	if seat == 0 {
		return m.values[view.(string)]
	}
	return -m.values[view.(string)]
}
