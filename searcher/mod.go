package searcher

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("no legal moves")

type Option func(m *MinMax)

// WithRand routes tie-breaks through rng.
func WithRand(rng *rand.Rand) Option {
	return func(m *MinMax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
