// Package nim implements a multi-player subtraction game: players take turns
// removing between one and MaxTake stones from a single heap, and whoever takes
// the last stone wins.
package nim

import (
	"fmt"

	"aitournament/game"
)

const NoWinner = -1

// Move is the number of stones taken.
type Move int

// View is an immutable snapshot of the heap as seen by Seat.
type View struct {
	Seat    int
	Stones  int
	MaxTake int
	Mover   int
	Players int
	Winner  int
}

type Game struct {
	Logic
	info    game.Info
	stones  int
	maxTake int
	players []game.Player
	state   View
}

// New returns a game starting from the given heap size. The heap must hold at
// least one stone and players must be allowed to take at least one.
func New(stones, maxTake int, info game.Info) (*Game, error) {
	if stones < 1 || maxTake < 1 {
		return nil, fmt.Errorf("invalid heap: %d stones, take at most %d", stones, maxTake)
	}
	return &Game{info: info, stones: stones, maxTake: maxTake}, nil
}

func (g *Game) Info() game.Info { return g.info }

func (g *Game) PrepareNewGame(players []game.Player) error {
	if len(players) == 0 {
		return fmt.Errorf("nim needs at least one player")
	}
	g.players = players
	g.state = View{
		Stones:  g.stones,
		MaxTake: g.maxTake,
		Mover:   0,
		Players: len(players),
		Winner:  NoWinner,
	}
	return nil
}

// Players returns the roster of the current game.
func (g *Game) Players() []game.Player { return g.players }

func (g *Game) PlayerView(seat int) game.View {
	v := g.state
	v.Seat = seat
	return v
}

func (g *Game) CurrentPlayers() []int {
	if g.IsGameOver() {
		return nil
	}
	return []int{g.state.Mover}
}

func (g *Game) SetPlayersMoves(moves map[int]game.Move) error {
	if g.IsGameOver() {
		return game.ErrGameOver
	}
	for seat := range moves {
		if seat != g.state.Mover {
			return fmt.Errorf("seat %d: %w", seat, game.ErrNotCurrent)
		}
	}
	move, ok := moves[g.state.Mover]
	if !ok {
		return fmt.Errorf("no move from seat %d: %w", g.state.Mover, game.ErrIllegalMove)
	}
	m, ok := move.(Move)
	if !ok || !g.legal(g.state, m) {
		return fmt.Errorf("seat %d played %v: %w", g.state.Mover, move, game.ErrIllegalMove)
	}
	g.state = g.Apply(g.state, m).(View)
	return nil
}

func (g *Game) IsGameOver() bool { return g.state.Winner != NoWinner }

// Result is 1 for the winner and 0 for everybody else.
func (g *Game) Result(seat int) float64 {
	if g.state.Winner == seat {
		return 1
	}
	return 0
}

func (g *Game) String() string {
	return fmt.Sprintf("nim(%d stones, take %d)", g.stones, g.maxTake)
}

func (Logic) legal(v View, m Move) bool {
	return m >= 1 && int(m) <= v.MaxTake && int(m) <= v.Stones
}
