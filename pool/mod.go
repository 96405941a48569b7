package pool

import (
	"errors"
	"time"

	"aitournament/game"
	"aitournament/meta"

	"golang.org/x/exp/rand"
)

var (
	ErrPoolExhausted     = errors.New("max players number exceeded")
	ErrResultCount       = errors.New("unexpected number of results")
	ErrUnknownPlayer     = errors.New("result for a player the pool did not issue")
	ErrInvalidTournament = errors.New("invalid tournament configuration")
)

// Parametrized is a player whose parameters can be overwritten by a mutated
// copy of another player's parameters.
type Parametrized interface {
	game.Player
	SetName(name string)
	// MutateFrom sets the receiver's parameters to src's parameters plus
	// gaussian noise of standard deviation sigma. src may be the receiver.
	MutateFrom(src Parametrized, sigma float64, rng *rand.Rand) error
}

// Factory creates the members of a pool.
type Factory func(name string) Parametrized

type settings struct {
	rng             *rand.Rand
	sigma           float64
	sigmaProportion float64
	scalingInterval int
	winProportion   float64
	stddev          float64
	oneOnOne        bool
}

type Option func(s *settings)

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSigma sets the initial mutation strength of a one-plus-one pool.
func WithSigma(sigma float64) Option {
	return func(s *settings) {
		if sigma > 0 {
			s.sigma = sigma
		}
	}
}

func WithSigmaProportion(proportion float64) Option {
	return func(s *settings) {
		if proportion > 0 {
			s.sigmaProportion = proportion
		}
	}
}

func WithScalingInterval(games int) Option {
	return func(s *settings) {
		if games > 0 {
			s.scalingInterval = games
		}
	}
}

func WithWinProportion(proportion float64) Option {
	return func(s *settings) {
		if proportion > 0 {
			s.winProportion = proportion
		}
	}
}

// WithStdDev sets the mutation noise of an evolution pool.
func WithStdDev(stddev float64) Option {
	return func(s *settings) {
		if stddev > 0 {
			s.stddev = stddev
		}
	}
}

// WithOneOnOne makes an evolution pool run its tournaments as duels.
func WithOneOnOne(oneOnOne bool) Option {
	return func(s *settings) {
		s.oneOnOne = oneOnOne
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		sigma:           meta.SIGMA,
		sigmaProportion: meta.SIGMA_PROPORTION,
		scalingInterval: meta.SIGMA_SCALING_INTERVAL,
		winProportion:   meta.WIN_PROPORTION,
		stddev:          meta.MUTATION_STDDEV,
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}
