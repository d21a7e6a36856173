package player

import (
	"runes/experiments/metrics"
	"runes/game"
	"runes/searcher"

	"github.com/pkg/errors"
)

// Player represents one side of a match.
type Player interface {
	// SetSymbol assigns the claim symbol of this side at match setup.
	SetSymbol(symbol game.Field)
	// MakeMove returns a legal move for the player to move in g. The snapshot
	// is owned by the player.
	MakeMove(g game.Game) (game.Move, error)
	Name() string
}

// AIPlayer plays the moves found by a search strategy.
type AIPlayer struct {
	name       string
	symbol     game.Field
	strategy   searcher.Strategy
	lastSearch metrics.SearchMetric
}

func NewAIPlayer(name string, strategy searcher.Strategy) *AIPlayer {
	return &AIPlayer{name: name, strategy: strategy}
}

func (p *AIPlayer) SetSymbol(symbol game.Field) {
	p.symbol = symbol
}

func (p *AIPlayer) Symbol() game.Field {
	return p.symbol
}

func (p *AIPlayer) Name() string {
	return p.name
}

func (p *AIPlayer) Strategy() searcher.Strategy {
	return p.strategy
}

func (p *AIPlayer) MakeMove(g game.Game) (game.Move, error) {
	move, metric, err := p.strategy.FindMove(g)
	p.lastSearch = metric
	if err != nil {
		return game.Move{}, errors.WithMessagef(err, "%s (%s)", p.name, p.strategy.Name())
	}
	return move, nil
}

// LastSearch returns the metric of the most recent MakeMove.
func (p *AIPlayer) LastSearch() metrics.SearchMetric {
	return p.lastSearch
}
