package pool

import (
	"errors"

	"aitournament/game"

	"golang.org/x/exp/rand"
)

// fakeGenome tracks which original member its parameters descend from.
type fakeGenome struct {
	name      string
	lineage   string
	mutations int
	sigmas    []float64
	err       error
}

func newFake(name string) Parametrized {
	return &fakeGenome{name: name, lineage: name}
}

func (f *fakeGenome) Name() string                  { return f.name }
func (f *fakeGenome) SetName(name string)           { f.name = name }
func (f *fakeGenome) SetSeat(seat int)              {}
func (f *fakeGenome) PrepareNewGame()               {}
func (f *fakeGenome) SetCurrentView(view game.View) {}
func (f *fakeGenome) NextMove() (game.Move, error)  { return nil, nil }
func (f *fakeGenome) TrainGameOver(result float64)  {}

func (f *fakeGenome) MutateFrom(src Parametrized, sigma float64, rng *rand.Rand) error {
	if f.err != nil {
		return f.err
	}
	other, ok := src.(*fakeGenome)
	if !ok {
		return errors.New("incompatible")
	}
	f.lineage = other.lineage
	f.mutations++
	f.sigmas = append(f.sigmas, sigma)
	return nil
}

func lineage(pl game.Player) string { return pl.(*fakeGenome).lineage }

func mutations(pl game.Player) int { return pl.(*fakeGenome).mutations }
