package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Engine interface {
	// Run plays a game till neither player can move or a max number of plies is reached
	Run() (winner game.Disk, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
