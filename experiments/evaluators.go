package experiments

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/slices"
)

// RunEvaluatorExperiment plays every evaluation function against the others
// at the same search depth, so that only the scoring differs.
func RunEvaluatorExperiment(games, depth int, outDir string, seed uint64) error {
	if depth <= 0 {
		return fmt.Errorf("evaluator experiment needs a positive depth, got %d", depth)
	}

	names := make([]string, 0, len(game.Evaluators))
	for name := range game.Evaluators {
		names = append(names, name)
	}
	slices.Sort(names) // stable IDs across runs

	configs := make([]metrics.AgentConfig, 0, len(names))
	for i, name := range names {
		configs = append(configs, metrics.AgentConfig{
			ID:        i + 1,
			Name:      fmt.Sprintf("%s-%d", name, depth),
			Depth:     depth,
			Evaluator: name,
		})
	}

	return runExperiment("evaluators", outDir, configs, roundRobin(configs), games, seed)
}
