package searcher

import (
	"runes/experiments/metrics"
	"runes/game"

	"github.com/pkg/errors"
)

// ErrSearchExhausted means a strategy found no candidate move in a running
// game. Move generation never comes up empty before game over, so this
// points at a bug in the rules rather than a runtime condition.
var ErrSearchExhausted = errors.New("search exhausted: no candidate moves")

// Strategy picks a move for the player to move in a private game snapshot.
type Strategy interface {
	FindMove(g game.Game) (game.Move, metrics.SearchMetric, error)
	Name() string
}

func candidates(g *game.Game) ([]game.Move, error) {
	moves := g.GenerateMoves()
	if len(moves) == 0 {
		return nil, errors.Wrapf(ErrSearchExhausted, "game over: %t", g.GameOver())
	}
	return moves, nil
}
