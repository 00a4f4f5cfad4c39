package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// FindMove returns the move to play on board and performance metrics (if collected) from the search.
	// updates lists the plies played since the agent's previous call, oldest first.
	FindMove(board *game.Board, updates []searcher.Segment) (game.Position, metrics.SearchMetric)
}
