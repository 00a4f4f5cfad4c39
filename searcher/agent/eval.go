package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

type evaluationAgent struct {
	tree    *searcher.GameTree
	options []searcher.Option
}

// NewEvaluationAgent returns an agent that plays the minimax best move. The
// game tree is built on the first call and kept between moves.
func NewEvaluationAgent(options ...searcher.Option) Agent {
	return &evaluationAgent{options: options}
}

func (a *evaluationAgent) FindMove(board *game.Board, updates []searcher.Segment) (game.Position, metrics.SearchMetric) {
	if a.tree == nil {
		a.tree = searcher.NewGameTree(board, a.options...)
	} else {
		for _, segment := range updates {
			a.tree.Advance(segment.Move, segment.Board)
		}
		if a.tree.Root().Board().Hash() != board.Hash() {
			log.Warn().Msgf("game tree is out of sync after %d updates, resetting", len(updates))
			a.tree.Reset(board)
		}
	}
	return a.tree.Search(board.Player())
}
