package searcher

import (
	"math"

	"runes/experiments/metrics"
	"runes/game"

	"github.com/rs/zerolog/log"
)

// WinScore is the value of a won position. It dominates any heuristic score.
const WinScore = 1e6

type NegamaxOption func(n *Negamax)

func WithEvaluation(evaluate game.Evaluate) NegamaxOption {
	return func(n *Negamax) {
		if evaluate != nil {
			n.evaluate = evaluate
		}
	}
}

// Negamax searches the generated moves to a fixed depth with alpha-beta
// pruning. Among equally scored moves the first generated one is played.
type Negamax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewNegamax(depth int, options ...NegamaxOption) *Negamax {
	if depth < 1 {
		panic("negamax depth must be at least 1")
	}
	n := &Negamax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateFormations,
		metrics:  metrics.NewCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func NewNegamaxForLevel(level Level, options ...NegamaxOption) *Negamax {
	return NewNegamax(level.Depth(), options...)
}

func (n *Negamax) Name() string {
	return "negamax"
}

func (n *Negamax) Depth() int {
	return n.depth
}

func (n *Negamax) FindMove(g game.Game) (game.Move, metrics.SearchMetric, error) {
	n.metrics.Start(n.Name(), 1, 0, n.depth)
	moves, err := candidates(&g)
	if err != nil {
		return game.Move{}, n.metrics.Complete(), err
	}

	best := moves[0]
	alpha := math.Inf(-1)
	for _, move := range moves {
		child := g.Play(move).(*game.Game)
		score := -n.negamax(child, n.depth-1, math.Inf(-1), -alpha)
		if score > alpha {
			alpha = score
			best = move
		}
	}

	log.Debug().Str("move", best.String()).Float64("score", alpha).Int("depth", n.depth).Msg("negamax-best")
	return best, n.metrics.Complete(), nil
}

func (n *Negamax) negamax(g *game.Game, depth int, alpha, beta float64) float64 {
	n.metrics.AddEpisode()
	if g.GameOver() {
		return terminalScore(g, depth)
	}
	if depth == 0 {
		return n.evaluate(g)
	}
	moves := g.GenerateMoves()
	if len(moves) == 0 {
		return n.evaluate(g)
	}

	best := math.Inf(-1)
	for _, move := range moves {
		score := -n.negamax(g.Play(move).(*game.Game), depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// terminalScore scores a finished game for the player to move. Remaining depth
// is added so that quicker wins and slower losses are preferred.
func terminalScore(g *game.Game, depth int) float64 {
	switch g.Winner() {
	case game.NoWinner:
		return 0
	case g.Player():
		return WinScore + float64(depth)
	default:
		return -(WinScore + float64(depth))
	}
}
