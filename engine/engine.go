package engine

import "minichess/experiments/metrics"

type Engine interface {
	// Run plays until the side to move has no legal move or the turn cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
