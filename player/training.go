package player

import (
	"errors"
	"fmt"
	"time"

	"aitournament/game"
	"aitournament/pool"
	"aitournament/searcher"

	"github.com/patrikeh/go-deep"
	"golang.org/x/exp/rand"
)

var ErrIncompatible = errors.New("incompatible parameters")

// Encoder turns a view into network input from seat's point of view.
type Encoder func(view game.View, seat int) []float64

type NetworkConfig struct {
	Inputs int
	Hidden []int
}

// Network is a greedy player: it applies every legal move and plays the one
// whose resulting view the network rates highest. Its weights are the
// parameters mutated by the pools.
type Network struct {
	Base
	logic  game.FiniteTurnLogic
	encode Encoder
	net    *deep.Neural
	rng    *rand.Rand
}

func NewNetwork(name string, logic game.FiniteTurnLogic, encode Encoder, config NetworkConfig, rng *rand.Rand) *Network {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	layout := append(append([]int{}, config.Hidden...), 1) // single evaluation output
	net := deep.NewNeural(&deep.Config{
		Inputs:     config.Inputs,
		Layout:     layout,
		Activation: deep.ActivationTanh,
		Mode:       deep.ModeRegression,
		Weight:     uniform(rng, 0.5),
		Bias:       true,
	})
	return &Network{
		Base:   NewBase(name),
		logic:  logic,
		encode: encode,
		net:    net,
		rng:    rng,
	}
}

// uniform draws initial weights in [-width/2, width/2) from rng, so that seeded
// runs start from the same networks.
func uniform(rng *rand.Rand, width float64) deep.WeightInitializer {
	return func() float64 {
		return (rng.Float64() - 0.5) * width
	}
}

// Rate returns the network's evaluation of view for seat.
func (n *Network) Rate(view game.View, seat int) float64 {
	return n.net.Predict(n.encode(view, seat))[0]
}

func (n *Network) NextMove() (game.Move, error) {
	var (
		best      []game.Move
		bestValue float64
	)
	for _, move := range n.logic.Moves(n.view) {
		value := n.Rate(n.logic.Apply(n.view, move), n.seat)
		switch {
		case best == nil || value > bestValue:
			bestValue = value
			best = []game.Move{move}
		case value == bestValue:
			best = append(best, move)
		}
	}
	if len(best) == 0 {
		return nil, fmt.Errorf("%s: %w", n.name, searcher.ErrNoMoves)
	}
	return best[n.rng.Intn(len(best))], nil
}

// Weights returns a copy of the network weights, by layer, neuron and input.
func (n *Network) Weights() [][][]float64 {
	return n.net.Weights()
}

// MutateFrom overwrites the weights with src's weights plus gaussian noise of
// standard deviation sigma. src may be n itself.
func (n *Network) MutateFrom(src pool.Parametrized, sigma float64, rng *rand.Rand) error {
	s, ok := src.(*Network)
	if !ok {
		return fmt.Errorf("%s from %s: %w", n.name, src.Name(), ErrIncompatible)
	}
	weights := s.net.Weights()
	if !sameShape(weights, n.net.Weights()) {
		return fmt.Errorf("%s from %s: layer layout differs: %w", n.name, s.name, ErrIncompatible)
	}
	for _, layer := range weights {
		for _, neuron := range layer {
			for i := range neuron {
				neuron[i] += sigma * rng.NormFloat64()
			}
		}
	}
	n.net.ApplyWeights(weights)
	return nil
}

func sameShape(a, b [][][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if len(a[i][j]) != len(b[i][j]) {
				return false
			}
		}
	}
	return true
}
