package searcher

import (
	"runes/experiments/metrics"
	"runes/game"

	"golang.org/x/exp/rand"
)

// Random plays uniformly among the generated moves.
type Random struct {
	metrics metrics.Collector
}

func NewRandom() *Random {
	return &Random{metrics: metrics.NewCollector()}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) FindMove(g game.Game) (game.Move, metrics.SearchMetric, error) {
	r.metrics.Start(r.Name(), 1, 0, 0)
	moves, err := candidates(&g)
	if err != nil {
		return game.Move{}, r.metrics.Complete(), err
	}
	r.metrics.AddEpisode()
	return moves[rand.Intn(len(moves))], r.metrics.Complete(), nil
}
