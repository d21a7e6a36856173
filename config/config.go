package config

import (
	"os"
	"time"

	"runes/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const MinBoardSize = 3

type Kind string

const (
	Human   Kind = "human"
	Random  Kind = "random"
	Negamax Kind = "negamax"
	MCTS    Kind = "mcts"
)

// Player describes one side of a match. Zero search settings fall back to
// the defaults of the player's level.
type Player struct {
	Name       string         `yaml:"name"`
	Kind       Kind           `yaml:"kind"`
	Level      searcher.Level `yaml:"level"`
	Goroutines int            `yaml:"goroutines,omitempty"`
	Duration   time.Duration  `yaml:"duration,omitempty"`
	Episodes   int            `yaml:"episodes,omitempty"`
	Cutoff     int            `yaml:"cutoff,omitempty"`
	Depth      int            `yaml:"depth,omitempty"`
}

type Config struct {
	BoardSize       int      `yaml:"board_size"`
	MaxInvalidMoves int      `yaml:"max_invalid_moves"`
	LogLevel        string   `yaml:"log_level"`
	Players         []Player `yaml:"players"`
}

// Default is a 13x13 match of a medium MCTS opening against a human.
func Default() Config {
	return Config{
		BoardSize:       13,
		MaxInvalidMoves: 3,
		LogLevel:        "info",
		Players: []Player{
			{Name: "Monte", Kind: MCTS, Level: searcher.Medium, Goroutines: 4},
			{Name: "Human", Kind: Human},
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "unable to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unable to parse yaml config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.BoardSize < MinBoardSize {
		return errors.Errorf("board size %d is below %d", c.BoardSize, MinBoardSize)
	}
	if c.MaxInvalidMoves < 1 {
		return errors.Errorf("max invalid moves must be positive, got %d", c.MaxInvalidMoves)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	if len(c.Players) != 2 {
		return errors.Errorf("a match needs exactly 2 players, got %d", len(c.Players))
	}
	for i, p := range c.Players {
		if err := p.Validate(); err != nil {
			return errors.WithMessagef(err, "player %d", i)
		}
	}
	return nil
}

func (p Player) Validate() error {
	switch p.Kind {
	case Human, Random, Negamax, MCTS:
	default:
		return errors.Errorf("unknown player kind %q", p.Kind)
	}
	if p.Name == "" {
		return errors.New("player needs a name")
	}
	if p.Goroutines < 0 || p.Duration < 0 || p.Episodes < 0 || p.Cutoff < 0 || p.Depth < 0 {
		return errors.Errorf("negative search settings for %s", p.Name)
	}
	return nil
}
