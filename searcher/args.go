package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Option func(t *GameTree)

// WithDepth sets how many plies are expanded and evaluated.
func WithDepth(depth int) Option {
	return func(t *GameTree) {
		if depth > 0 {
			t.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(t *GameTree) {
		if evaluate != nil {
			t.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(t *GameTree) {
		t.metrics = metrics.NewCollector()
	}
}
