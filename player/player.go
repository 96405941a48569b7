package player

import (
	"fmt"
	"time"

	"aitournament/game"
	"aitournament/searcher"

	"golang.org/x/exp/rand"
)

// Base holds what every player kind tracks: its name, the seat assigned for
// the current game and the latest view. Kinds embed it and add NextMove.
type Base struct {
	name string
	seat int
	view game.View
}

func NewBase(name string) Base {
	return Base{name: name}
}

func (b *Base) Name() string                 { return b.name }
func (b *Base) SetName(name string)          { b.name = name }
func (b *Base) Seat() int                    { return b.seat }
func (b *Base) SetSeat(seat int)             { b.seat = seat }
func (b *Base) View() game.View              { return b.view }
func (b *Base) SetCurrentView(v game.View)   { b.view = v }
func (b *Base) PrepareNewGame()              {}
func (b *Base) TrainGameOver(result float64) {}

func (b *Base) String() string {
	if b.name == "" {
		return "unnamed player"
	}
	return b.name
}

// Random plays a uniformly random legal move.
type Random struct {
	Base
	logic game.FiniteTurnLogic
	rng   *rand.Rand
}

func NewRandom(name string, logic game.FiniteTurnLogic, rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Random{Base: NewBase(name), logic: logic, rng: rng}
}

func (r *Random) NextMove() (game.Move, error) {
	moves := r.logic.Moves(r.view)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%s: %w", r.name, searcher.ErrNoMoves)
	}
	return moves[r.rng.Intn(len(moves))], nil
}
