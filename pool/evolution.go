package pool

import (
	"fmt"

	"aitournament/game"
	"aitournament/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type phase int

const (
	idle phase = iota
	inRound
	finalized
	replacing
)

func (p phase) String() string {
	switch p {
	case inRound:
		return "round in progress"
	case finalized:
		return "round finalized"
	case replacing:
		return "generation replacement"
	default:
		return "idle"
	}
}

// round is the state of one internal tournament in duel mode: a round robin
// where every newly drawn contender plays all members that joined before it.
type round struct {
	participants []int // join order
	scores       map[int]int
	contender    int
	opponent     int
	pending      []int // opponents left for the contender
}

func newRound() round {
	return round{scores: make(map[int]int), contender: -1, opponent: -1}
}

func (r *round) join(id int) {
	if _, ok := r.scores[id]; ok {
		return
	}
	r.scores[id] = 0
	r.participants = append(r.participants, id)
}

// winner returns the first participant with the highest score.
func (r *round) winner() int {
	best := r.participants[0]
	for _, id := range r.participants[1:] {
		if r.scores[id] > r.scores[best] {
			best = id
		}
	}
	return best
}

// Evolution runs tournaments inside its population. Every tournament yields
// one winner; once there are as many winners as members the population is
// replaced by mutated copies of the winners, each winner propagated as many
// times as it won.
type Evolution struct {
	name           string
	players        []Parametrized
	tournamentSize int
	oneOnOne       bool
	stddev         float64
	rng            *rand.Rand

	phase      phase
	round      round
	unselected []int
	winners    *winners
	generation int

	issued []int // population indices handed out this game, in draw order
	sample []int
}

func NewEvolution(name string, newPlayer Factory, populationSize, tournamentSize int, options ...Option) (*Evolution, error) {
	s := newSettings(options)
	if tournamentSize < 2 || tournamentSize > populationSize {
		return nil, fmt.Errorf("%s: tournament of %d in a population of %d: %w", name, tournamentSize, populationSize, ErrInvalidTournament)
	}
	if !s.oneOnOne && populationSize%tournamentSize != 0 {
		return nil, fmt.Errorf("%s: population of %d is not a multiple of the tournament size %d: %w", name, populationSize, tournamentSize, ErrInvalidTournament)
	}

	p := &Evolution{
		name:           name,
		players:        make([]Parametrized, populationSize),
		tournamentSize: tournamentSize,
		oneOnOne:       s.oneOnOne,
		stddev:         s.stddev,
		rng:            s.rng,
		round:          newRound(),
		winners:        newWinners(),
	}
	for i := range p.players {
		p.players[i] = newPlayer(fmt.Sprintf("%s: member %d", name, i))
	}
	p.resetRound()
	return p, nil
}

func (p *Evolution) Name() string   { return p.name }
func (p *Evolution) String() string { return p.name }

func (p *Evolution) MaxCount() int {
	if p.oneOnOne {
		return 2
	}
	return p.tournamentSize
}

// Population returns the members in population order.
func (p *Evolution) Population() []Parametrized { return p.players }

// Generation returns how many times the population has been replaced.
func (p *Evolution) Generation() int { return p.generation }

// Phase describes what the pool is doing between two games.
func (p *Evolution) Phase() string { return p.phase.String() }

// Winners returns the tournament winners of the current generation.
func (p *Evolution) Winners() []int { return p.winners.Items() }

func (p *Evolution) PrepareNewGame() {
	// a simultaneous tournament lasts one game; without results it is dropped
	if !p.oneOnOne && p.phase == inRound {
		p.phase = idle
	}
	p.issued = p.issued[:0]
	p.sample = nil
}

func (p *Evolution) Player() (game.Player, error) {
	if len(p.issued) >= p.MaxCount() {
		return nil, ErrPoolExhausted
	}

	var id int
	if !p.oneOnOne {
		if p.sample == nil {
			p.sample = p.rng.Perm(len(p.players))[:p.tournamentSize]
			p.phase = inRound
		}
		id = p.sample[len(p.issued)]
	} else {
		r := &p.round
		if len(p.issued) == 0 {
			if r.contender < 0 {
				r.contender = p.draw()
				p.phase = inRound
			}
			id = r.contender
		} else {
			if r.opponent < 0 {
				r.opponent = p.draw()
			}
			id = r.opponent
		}
	}

	p.issued = append(p.issued, id)
	return p.players[id], nil
}

// draw takes a random member that has not yet been selected this round.
func (p *Evolution) draw() int {
	i := p.rng.Intn(len(p.unselected))
	id := p.unselected[i]
	p.unselected[i] = p.unselected[len(p.unselected)-1]
	p.unselected = p.unselected[:len(p.unselected)-1]
	return id
}

func (p *Evolution) TrainOnGameOver(outcomes []game.Outcome) error {
	if len(outcomes) != p.MaxCount() || len(outcomes) != len(p.issued) {
		return fmt.Errorf("%s: got %d results for %d players: %w", p.name, len(outcomes), len(p.issued), ErrResultCount)
	}
	for i, o := range outcomes {
		if o.Player != game.Player(p.players[p.issued[i]]) {
			return fmt.Errorf("%s: %s: %w", p.name, o.Player.Name(), ErrUnknownPlayer)
		}
	}

	if p.oneOnOne {
		p.score(outcomes[0].Result, outcomes[1].Result)
	} else {
		best := 0
		for i, o := range outcomes {
			if o.Result > outcomes[best].Result {
				best = i
			}
		}
		p.winners.Push(p.issued[best])
		p.phase = finalized
	}

	if p.winners.Len() == len(p.players) {
		return p.nextGeneration()
	}
	return nil
}

// score records a duel between the contender and its current opponent:
// 3 points for a win, 1 for a draw.
func (p *Evolution) score(contenderResult, opponentResult float64) {
	r := &p.round
	r.join(r.contender)
	r.join(r.opponent)
	switch {
	case contenderResult > opponentResult:
		r.scores[r.contender] += 3
	case opponentResult > contenderResult:
		r.scores[r.opponent] += 3
	default:
		r.scores[r.contender]++
		r.scores[r.opponent]++
	}

	if len(r.pending) > 0 {
		r.opponent = r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]
		return
	}
	if len(r.participants) < p.tournamentSize {
		// next contender plays everybody in the round
		r.pending = append([]int(nil), r.participants...)
		r.opponent = r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]
		r.contender = -1
		return
	}

	winner := r.winner()
	log.Debug().Msgf("%s: tournament won by member %d with %d points", p.name, winner, r.scores[winner])
	p.winners.Push(winner)
	p.resetRound()
	p.phase = finalized
}

func (p *Evolution) resetRound() {
	p.round = newRound()
	p.unselected = make([]int, len(p.players))
	for i := range p.unselected {
		p.unselected[i] = i
	}
	p.phase = idle
}

// nextGeneration overwrites every member with a mutated copy of a winner.
// Members that did not win take the most recent remaining winner, members
// that won once mutate themselves, and members that won more often wait until
// their other copies have been made.
func (p *Evolution) nextGeneration() error {
	p.phase = replacing
	log.Debug().Msgf("%s: replacing generation %d, winners %v", p.name, p.generation, p.winners.Items())

	toGenerate := make([]int, len(p.players))
	for i := range toGenerate {
		toGenerate[i] = i
	}
	for p.winners.Len() > 0 {
		var deferred []int
		for _, id := range toGenerate {
			switch p.winners.Count(id) {
			case 0:
				if p.winners.Len() == 0 {
					break
				}
				donor := p.winners.PopLast()
				if err := p.players[id].MutateFrom(p.players[donor], p.stddev, p.rng); err != nil {
					return fmt.Errorf("%s: member %d from %d: %w", p.name, id, donor, err)
				}
			case 1:
				if err := p.players[id].MutateFrom(p.players[id], p.stddev, p.rng); err != nil {
					return fmt.Errorf("%s: member %d: %w", p.name, id, err)
				}
				p.winners.RemoveLast(id)
			default:
				deferred = append(deferred, id)
			}
		}
		toGenerate = deferred
	}

	p.generation++
	p.winners.Reset()
	p.resetRound()
	log.Info().Msgf("%s: generation %d", p.name, p.generation)
	return nil
}

// IndexOf returns the population index of pl, or -1.
func (p *Evolution) IndexOf(pl game.Player) int {
	member, ok := pl.(Parametrized)
	if !ok {
		return -1
	}
	return utils.FindIndex(p.players, member)
}
