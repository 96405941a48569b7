package player

import (
	"testing"

	"aitournament/game"
	"aitournament/game/nim"
	"aitournament/pool"
	"aitournament/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func heap(stones int) nim.View {
	return nim.View{Stones: stones, MaxTake: 3, Players: 2, Winner: nim.NoWinner}
}

func newNetwork(name string, hidden ...int) *Network {
	config := NetworkConfig{Inputs: 3, Hidden: hidden}
	return NewNetwork(name, nim.Logic{}, nim.Features, config, rand.New(rand.NewSource(5)))
}

// frozen is a parametrized player without network weights.
type frozen struct{ *Random }

func (f frozen) MutateFrom(src pool.Parametrized, sigma float64, rng *rand.Rand) error { return nil }

func TestBase(t *testing.T) {
	b := NewBase("alice")
	b.SetSeat(2)
	b.SetCurrentView("v")

	require.Equal(t, "alice", b.Name())
	require.Equal(t, 2, b.Seat())
	require.Equal(t, game.View("v"), b.View())
	require.Equal(t, "alice", b.String())

	b.SetName("")
	require.Equal(t, "unnamed player", b.String())
}

func TestRandom(t *testing.T) {
	r := NewRandom("random", nim.Logic{}, rand.New(rand.NewSource(1)))

	t.Run("plays every legal move", func(t *testing.T) {
		r.SetCurrentView(heap(2))
		seen := map[game.Move]bool{}
		for i := 0; i < 100; i++ {
			move, err := r.NextMove()
			require.NoError(t, err)
			seen[move] = true
		}
		require.Equal(t, map[game.Move]bool{nim.Move(1): true, nim.Move(2): true}, seen)
	})

	t.Run("fails on a finished game", func(t *testing.T) {
		r.SetCurrentView(nim.View{MaxTake: 3, Players: 2, Winner: 0})
		_, err := r.NextMove()
		require.ErrorIs(t, err, searcher.ErrNoMoves)
	})
}

func TestMinMax(t *testing.T) {
	m := NewMinMax("minmax", searcher.NewMinMax(nim.Logic{}, 2))
	m.SetSeat(1)
	v := heap(6)
	v.Mover = 1
	m.SetCurrentView(v)

	move, err := m.NextMove()

	require.NoError(t, err)
	require.Equal(t, nim.Move(2), move)
}

func TestNetwork(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		n := newNetwork("net", 4)
		for stones := 1; stones <= 6; stones++ {
			n.SetCurrentView(heap(stones))
			move, err := n.NextMove()
			require.NoError(t, err)
			require.GreaterOrEqual(t, int(move.(nim.Move)), 1)
			require.LessOrEqual(t, int(move.(nim.Move)), min(3, stones))
		}
	})

	t.Run("fails on a finished game", func(t *testing.T) {
		n := newNetwork("net", 4)
		n.SetCurrentView(nim.View{MaxTake: 3, Players: 2, Winner: 1})
		_, err := n.NextMove()
		require.ErrorIs(t, err, searcher.ErrNoMoves)
	})

	t.Run("same seed gives the same initial weights", func(t *testing.T) {
		a := newNetwork("a", 4, 2)
		b := newNetwork("b", 4, 2)
		c := NewNetwork("c", nim.Logic{}, nim.Features, NetworkConfig{Inputs: 3, Hidden: []int{4, 2}}, rand.New(rand.NewSource(6)))

		require.Equal(t, a.Weights(), b.Weights())
		require.Equal(t, a.Rate(heap(5), 0), b.Rate(heap(5), 0))
		require.NotEqual(t, a.Weights(), c.Weights())
		for _, layer := range a.Weights() {
			for _, neuron := range layer {
				for _, w := range neuron {
					require.GreaterOrEqual(t, w, -0.25)
					require.Less(t, w, 0.25)
				}
			}
		}
	})

	t.Run("mutation without noise copies", func(t *testing.T) {
		a, b := newNetwork("a", 4), newNetwork("b", 4)
		rng := rand.New(rand.NewSource(1))

		require.NoError(t, b.MutateFrom(a, 0, rng))

		require.Equal(t, a.Weights(), b.Weights())
	})

	t.Run("mutation adds noise", func(t *testing.T) {
		a := newNetwork("a", 4)
		before := a.Weights()

		require.NoError(t, a.MutateFrom(a, 0.5, rand.New(rand.NewSource(1))))

		require.NotEqual(t, before, a.Weights())
		require.Equal(t, len(before[0]), len(a.Weights()[0]))
	})

	t.Run("incompatible sources", func(t *testing.T) {
		a := newNetwork("a", 4)
		rng := rand.New(rand.NewSource(1))

		require.ErrorIs(t, a.MutateFrom(newNetwork("b", 5), 0, rng), ErrIncompatible)
		require.ErrorIs(t, a.MutateFrom(newNetwork("c", 4, 2), 0, rng), ErrIncompatible)
		require.ErrorIs(t, a.MutateFrom(frozen{NewRandom("r", nim.Logic{}, nil)}, 0, rng), ErrIncompatible)
	})
}
