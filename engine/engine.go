package engine

import "runes/experiments/metrics"

type Engine interface {
	// Run plays a game till it is over and returns the winner's index, or
	// game.NoWinner for a draw
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
