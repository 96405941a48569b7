package nim

import "aitournament/game"

// Logic implements game.FiniteTurnLogic over nim views.
type Logic struct{}

func (Logic) CurrentPlayer(view game.View) int {
	return view.(View).Mover
}

func (Logic) Moves(view game.View) []game.Move {
	v := view.(View)
	if v.Winner != NoWinner {
		return nil
	}
	n := min(v.MaxTake, v.Stones)
	moves := make([]game.Move, 0, n)
	for m := 1; m <= n; m++ {
		moves = append(moves, Move(m))
	}
	return moves
}

func (Logic) IsTerminal(view game.View) bool {
	return view.(View).Winner != NoWinner
}

func (Logic) Apply(view game.View, move game.Move) game.View {
	v := view.(View)
	v.Stones -= int(move.(Move))
	if v.Stones <= 0 {
		v.Stones = 0
		v.Winner = v.Mover
	}
	v.Mover = (v.Mover + 1) % v.Players
	return v
}

// Evaluate returns 1 for a won and -1 for a lost terminal view. With two
// players the mover of a heap that is a multiple of MaxTake+1 loses under
// perfect play, which scores as -0.5 for the mover and 0.5 for the other seat.
func (Logic) Evaluate(view game.View, seat int) float64 {
	v := view.(View)
	if v.Winner != NoWinner {
		if v.Winner == seat {
			return 1
		}
		return -1
	}
	if v.Players != 2 {
		return 0
	}
	score := 0.5
	if v.Stones%(v.MaxTake+1) == 0 {
		score = -0.5
	}
	if v.Mover != seat {
		score = -score
	}
	return score
}

// Features encodes a view as network input from seat's point of view.
func Features(view game.View, seat int) []float64 {
	v := view.(View)
	mine := 0.0
	if v.Mover == seat {
		mine = 1
	}
	return []float64{
		float64(v.Stones) / float64(v.MaxTake+1),
		float64(v.Stones%(v.MaxTake+1)) / float64(v.MaxTake+1),
		mine,
	}
}
