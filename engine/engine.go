package engine

import "tablut/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner, a draw or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
