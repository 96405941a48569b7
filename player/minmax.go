package player

import (
	"aitournament/game"
	"aitournament/searcher"

	"github.com/rs/zerolog/log"
)

// MinMax picks its moves with a fixed-depth adversarial search.
type MinMax struct {
	Base
	search *searcher.MinMax
}

func NewMinMax(name string, search *searcher.MinMax) *MinMax {
	return &MinMax{Base: NewBase(name), search: search}
}

func (m *MinMax) NextMove() (game.Move, error) {
	move, value, err := m.search.FindMove(m.view, m.seat)
	if err != nil {
		return nil, err
	}
	log.Debug().Msgf("%s (seat %d) plays %v, evaluation %.3f", m.name, m.seat, move, value)
	return move, nil
}
