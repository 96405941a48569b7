package config

import (
	"fmt"

	"aitournament/game"
	"aitournament/game/nim"
	"aitournament/meta"
	"aitournament/player"
	"aitournament/pool"
	"aitournament/searcher"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Player and pool kinds.
const (
	Random     = "random"
	MinMax     = "minmax"
	Network    = "network"
	OnePlusOne = "one_plus_one"
	Evolution  = "evolution"
)

// kit is what a game kind provides to the players.
type kit struct {
	game   game.Game
	logic  game.FiniteTurnLogic
	encode player.Encoder
	inputs int
}

var games = map[string]func(c GameConfig) (*kit, error){
	"nim": newNim,
}

func newNim(c GameConfig) (*kit, error) {
	info := game.Exact(c.Players)
	if c.Players == 0 {
		info = game.Range(c.MinPlayers, c.MaxPlayers)
	}
	stones, maxTake := c.Stones, c.MaxTake
	if stones == 0 {
		stones = 21
	}
	if maxTake == 0 {
		maxTake = 3
	}
	g, err := nim.New(stones, maxTake, info)
	if err != nil {
		return nil, err
	}
	return &kit{
		game:   g,
		logic:  nim.Logic{},
		encode: nim.Features,
		inputs: len(nim.Features(nim.View{MaxTake: maxTake, Players: 1}, 0)),
	}, nil
}

// Setup holds the objects created from a configuration. Players and pools are
// created once per name, so a pool trained in the training run is the one
// evaluated in the testing run.
type Setup struct {
	Game         game.Game
	Players      map[string]game.Player
	Pools        map[string]game.Pool
	TrainPlayers []game.Player
	TrainPools   []game.Pool
	TestPlayers  []game.Player
	TestPools    []game.Pool
}

func (c *Config) Build(rng *rand.Rand) (*Setup, error) {
	k, err := games[c.Game.Kind](c.Game)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	s := &Setup{
		Game:    k.game,
		Players: make(map[string]game.Player, len(c.Players)),
		Pools:   make(map[string]game.Pool, len(c.Pools)),
	}

	// sorted so that the same seed draws the same initial parameters
	for _, name := range sortedKeys(c.Players) {
		p, err := newPlayer(name, c.Players[name], k, rng)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", name, err)
		}
		s.Players[name] = p
	}
	for _, name := range sortedKeys(c.Pools) {
		p, err := newPool(name, c.Pools[name], k, rng)
		if err != nil {
			return nil, fmt.Errorf("pool %s: %w", name, err)
		}
		s.Pools[name] = p
	}

	s.TrainPlayers, s.TrainPools = s.lists(c.Train)
	s.TestPlayers, s.TestPools = s.lists(c.Test)
	return s, nil
}

func (s *Setup) lists(r *RosterConfig) ([]game.Player, []game.Pool) {
	if r == nil {
		return nil, nil
	}
	players := make([]game.Player, 0, len(r.Players))
	for _, name := range r.Players {
		players = append(players, s.Players[name])
	}
	pools := make([]game.Pool, 0, len(r.Pools))
	for _, name := range r.Pools {
		pools = append(pools, s.Pools[name])
	}
	return players, pools
}

func newPlayer(name string, c PlayerConfig, k *kit, rng *rand.Rand) (game.Player, error) {
	switch c.Kind {
	case Random:
		return player.NewRandom(name, k.logic, rng), nil
	case MinMax:
		depth := c.Depth
		if depth == 0 {
			depth = meta.SEARCH_DEPTH
		}
		if depth < 1 {
			return nil, fmt.Errorf("depth must be at least 1: %w", ErrInvalidConfig)
		}
		return player.NewMinMax(name, searcher.NewMinMax(k.logic, depth, searcher.WithRand(rng))), nil
	case Network:
		return newNetwork(name, c, k, rng), nil
	default:
		return nil, fmt.Errorf("unrecognized kind %q: %w", c.Kind, ErrInvalidConfig)
	}
}

func newNetwork(name string, c PlayerConfig, k *kit, rng *rand.Rand) *player.Network {
	return player.NewNetwork(name, k.logic, k.encode, player.NetworkConfig{
		Inputs: k.inputs,
		Hidden: c.Hidden,
	}, rng)
}

func newPool(name string, c PoolConfig, k *kit, rng *rand.Rand) (game.Pool, error) {
	factory := func(member string) pool.Parametrized {
		return newNetwork(member, c.Player, k, rng)
	}
	switch c.Kind {
	case OnePlusOne:
		return pool.NewOnePlusOne(name, factory,
			pool.WithRand(rng),
			pool.WithSigma(c.Sigma),
			pool.WithSigmaProportion(c.SigmaProportion),
			pool.WithScalingInterval(c.ScalingInterval),
			pool.WithWinProportion(c.WinProportion),
		), nil
	case Evolution:
		return pool.NewEvolution(name, factory, c.PoolSize, c.TournamentSize,
			pool.WithRand(rng),
			pool.WithStdDev(c.StdDev),
			pool.WithOneOnOne(c.OneOnOne),
		)
	default:
		return nil, fmt.Errorf("unrecognized kind %q: %w", c.Kind, ErrInvalidConfig)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
