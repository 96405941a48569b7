package pool

import (
	"fmt"

	"aitournament/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// OnePlusOne keeps the best player found so far and a challenger mutated from
// it. The challenger replaces the best player when it scores at least as well,
// and sigma adapts so that roughly the target proportion of challengers wins.
type OnePlusOne struct {
	name   string
	first  Parametrized
	second Parametrized
	best   Parametrized
	active int

	sigma           float64
	sigmaProportion float64
	scalingInterval int
	winProportion   float64
	scalingT        int
	wins            int
	steps           int
	rng             *rand.Rand
}

func NewOnePlusOne(name string, newPlayer Factory, options ...Option) *OnePlusOne {
	s := newSettings(options)
	p := &OnePlusOne{
		name:            name,
		first:           newPlayer(fmt.Sprintf("%s: Initial player 1", name)),
		second:          newPlayer(fmt.Sprintf("%s: Initial player 2", name)),
		sigma:           s.sigma,
		sigmaProportion: s.sigmaProportion,
		scalingInterval: s.scalingInterval,
		winProportion:   s.winProportion,
		rng:             s.rng,
	}
	p.best = p.first
	return p
}

func (p *OnePlusOne) Name() string   { return p.name }
func (p *OnePlusOne) String() string { return p.name }
func (p *OnePlusOne) MaxCount() int  { return 2 }

func (p *OnePlusOne) PrepareNewGame() {
	p.active = 0
}

// Sigma is the current mutation strength.
func (p *OnePlusOne) Sigma() float64 { return p.sigma }

func (p *OnePlusOne) Best() Parametrized { return p.best }

func (p *OnePlusOne) Challenger() Parametrized {
	if p.best == p.first {
		return p.second
	}
	return p.first
}

// Steps returns the number of completed duels.
func (p *OnePlusOne) Steps() int { return p.steps }

// Player returns the best player first and the challenger second.
func (p *OnePlusOne) Player() (game.Player, error) {
	switch p.active {
	case 0:
		p.active = 1
		return p.best, nil
	case 1:
		p.active = 2
		return p.Challenger(), nil
	default:
		return nil, ErrPoolExhausted
	}
}

func (p *OnePlusOne) TrainOnGameOver(outcomes []game.Outcome) error {
	if len(outcomes) != p.active {
		return fmt.Errorf("%s: got %d results for %d players: %w", p.name, len(outcomes), p.active, ErrResultCount)
	}
	// nothing to compare when the roster only had room for one of the two
	if p.active != 2 {
		return nil
	}

	challenger := p.Challenger()
	var bestResult, newResult float64
	for _, o := range outcomes {
		switch o.Player {
		case p.best:
			bestResult = o.Result
		case challenger:
			newResult = o.Result
		default:
			return fmt.Errorf("%s: %s: %w", p.name, o.Player.Name(), ErrUnknownPlayer)
		}
	}

	if newResult >= bestResult {
		p.wins++
		p.best = challenger
	}
	loser := p.Challenger()
	if err := loser.MutateFrom(p.best, p.sigma, p.rng); err != nil {
		return fmt.Errorf("%s: mutating challenger: %w", p.name, err)
	}
	p.best.SetName(fmt.Sprintf("%s: Best player", p.name))
	loser.SetName(fmt.Sprintf("%s: New player", p.name))

	p.steps++
	p.scaleSigma()
	return nil
}

func (p *OnePlusOne) scaleSigma() {
	p.scalingT++
	if p.scalingT < p.scalingInterval {
		return
	}

	proportion := float64(p.wins) / float64(p.scalingInterval)
	if proportion > p.winProportion {
		p.sigma *= p.sigmaProportion
	} else if proportion < p.winProportion {
		p.sigma /= p.sigmaProportion
	}
	log.Debug().Msgf("%s: %d of %d challengers won, sigma is now %.4f", p.name, p.wins, p.scalingInterval, p.sigma)

	p.scalingT = 0
	p.wins = 0
}
