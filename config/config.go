// Package config loads a tournament description from a YAML or TOML file:
// the game, named players and pools, and which of them take part in training
// and testing runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type GameConfig struct {
	Kind       string `yaml:"kind" toml:"kind"`
	Stones     int    `yaml:"stones" toml:"stones"`
	MaxTake    int    `yaml:"max_take" toml:"max_take"`
	Players    int    `yaml:"players" toml:"players"`
	MinPlayers int    `yaml:"min_players" toml:"min_players"`
	MaxPlayers int    `yaml:"max_players" toml:"max_players"`
}

type PlayerConfig struct {
	Kind   string `yaml:"kind" toml:"kind"`
	Depth  int    `yaml:"depth" toml:"depth"`
	Hidden []int  `yaml:"hidden" toml:"hidden"`
}

type PoolConfig struct {
	Kind   string       `yaml:"kind" toml:"kind"`
	Player PlayerConfig `yaml:"player" toml:"player"`

	// one_plus_one
	Sigma           float64 `yaml:"sigma" toml:"sigma"`
	SigmaProportion float64 `yaml:"sigma_proportion" toml:"sigma_proportion"`
	ScalingInterval int     `yaml:"sigma_scaling_interval" toml:"sigma_scaling_interval"`
	WinProportion   float64 `yaml:"win_proportion" toml:"win_proportion"`

	// evolution
	PoolSize       int     `yaml:"pool_size" toml:"pool_size"`
	TournamentSize int     `yaml:"tournament_size" toml:"tournament_size"`
	StdDev         float64 `yaml:"stddev" toml:"stddev"`
	OneOnOne       bool    `yaml:"tournament_1_on_1" toml:"tournament_1_on_1"`
}

// RosterConfig names the players and pools of a run.
type RosterConfig struct {
	Players []string `yaml:"players" toml:"players"`
	Pools   []string `yaml:"pools" toml:"pools"`
}

type EventsConfig struct {
	LogRounds bool   `yaml:"log_rounds" toml:"log_rounds"`
	LogGames  bool   `yaml:"log_games" toml:"log_games"`
	Output    string `yaml:"output" toml:"output"`
}

type Config struct {
	Game    GameConfig              `yaml:"game" toml:"game"`
	Players map[string]PlayerConfig `yaml:"players" toml:"players"`
	Pools   map[string]PoolConfig   `yaml:"pools" toml:"pools"`
	Train   *RosterConfig           `yaml:"train" toml:"train"`
	Test    *RosterConfig           `yaml:"test" toml:"test"`
	Events  EventsConfig            `yaml:"events" toml:"events"`
}

// Load reads a configuration file, TOML if the name ends in .toml and YAML
// otherwise.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file '%s' does not exist: %w", path, err)
	}
	defer f.Close()

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}
	c, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("file '%s': %w", path, err)
	}
	return c, nil
}

func Parse(r io.Reader, format string) (*Config, error) {
	var c Config
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("not a valid TOML file: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("not a valid YAML file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q: %w", format, ErrInvalidConfig)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks references and kinds. Numeric ranges are left to the
// constructors that use them.
func (c *Config) Validate() error {
	if c.Game.Kind == "" {
		return fmt.Errorf("game is not configured: %w", ErrInvalidConfig)
	}
	if _, ok := games[c.Game.Kind]; !ok {
		return fmt.Errorf("unrecognized game %q: %w", c.Game.Kind, ErrInvalidConfig)
	}
	if len(c.Players) == 0 && len(c.Pools) == 0 {
		return fmt.Errorf("players or player pools must be configured: %w", ErrInvalidConfig)
	}
	for name, p := range c.Players {
		if err := validatePlayer(p); err != nil {
			return fmt.Errorf("player %s: %w", name, err)
		}
	}
	for name, p := range c.Pools {
		if p.Kind != OnePlusOne && p.Kind != Evolution {
			return fmt.Errorf("pool %s: unrecognized kind %q: %w", name, p.Kind, ErrInvalidConfig)
		}
		if p.Player.Kind != "" && p.Player.Kind != Network {
			return fmt.Errorf("pool %s: members must be %s players: %w", name, Network, ErrInvalidConfig)
		}
	}
	for _, r := range []struct {
		name   string
		roster *RosterConfig
	}{{"train", c.Train}, {"test", c.Test}} {
		if r.roster == nil {
			continue
		}
		for _, name := range r.roster.Players {
			if _, ok := c.Players[name]; !ok {
				return fmt.Errorf("%s: undefined player: %s: %w", r.name, name, ErrInvalidConfig)
			}
		}
		for _, name := range r.roster.Pools {
			if _, ok := c.Pools[name]; !ok {
				return fmt.Errorf("%s: undefined pool: %s: %w", r.name, name, ErrInvalidConfig)
			}
		}
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	switch p.Kind {
	case Random, MinMax, Network:
		return nil
	default:
		return fmt.Errorf("unrecognized kind %q: %w", p.Kind, ErrInvalidConfig)
	}
}
