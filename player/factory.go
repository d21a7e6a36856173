package player

import (
	"runes/config"
	"runes/searcher"

	"github.com/pkg/errors"
)

// New builds the player described by cfg. Human players read their moves
// from prompt.
func New(cfg config.Player, prompt Prompt) (Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case config.Human:
		if prompt == nil {
			return nil, errors.Errorf("human player %q needs a prompt", cfg.Name)
		}
		return NewHumanPlayer(cfg.Name, prompt), nil
	case config.Random:
		return NewAIPlayer(cfg.Name, searcher.NewRandom()), nil
	case config.Negamax:
		depth := cfg.Depth
		if depth == 0 {
			depth = cfg.Level.Depth()
		}
		return NewAIPlayer(cfg.Name, searcher.NewNegamax(depth)), nil
	case config.MCTS:
		mcts := searcher.NewMCTSForLevel(cfg.Level, cfg.Goroutines,
			searcher.WithDuration(cfg.Duration),
			searcher.WithEpisodes(cfg.Episodes),
			searcher.WithCutoff(cfg.Cutoff),
			searcher.WithMetrics(),
		)
		return NewAIPlayer(cfg.Name, mcts), nil
	}
	return nil, errors.Errorf("unknown player kind %q", cfg.Kind)
}
