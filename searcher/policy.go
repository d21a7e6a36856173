package searcher

import (
	"math"

	"runes/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const WIN = 1.0        // Reward for winning outcome
const LOSS = 0.0       // Reward for loss outcome (complement from opponent perspective)
const DRAW = WIN / 2.0 // Reward for a full board

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// outcome rewards player for a finished game won by winner.
func outcome(winner, player int) float64 {
	switch winner {
	case game.NoWinner:
		return DRAW
	case player:
		return WIN
	default:
		return LOSS
	}
}

// estimate maps a heuristic score in [-1, 1], seen by mover, to a reward for player.
func estimate(score float64, mover, player int) float64 {
	score = math.Max(-1, math.Min(1, score))
	r := (score + 1) / 2 * WIN
	if player == mover {
		return r
	}
	return WIN - r
}
