package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

// NumGames is the default number of games per match up.
const NumGames = 10

const randomAgentName = "random"

// RunDifficultyExperiment plays every difficulty level and a random baseline
// against each other. Each ordered pair is a match up, so every pairing is
// played with both colors.
func RunDifficultyExperiment(games int, outDir string, seed uint64) error {
	configs := []metrics.AgentConfig{{ID: 0, Name: randomAgentName}}
	for _, d := range meta.Difficulties {
		configs = append(configs, metrics.AgentConfig{
			ID:        int(d),
			Name:      d.String(),
			Depth:     d.SearchDepth(),
			Evaluator: "stability",
		})
	}

	return runExperiment("difficulty", outDir, configs, roundRobin(configs), games, seed)
}

func roundRobin(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for _, black := range configs {
		for _, white := range configs {
			if black.ID != white.ID {
				matchUps = append(matchUps, [2]metrics.AgentConfig{black, white})
			}
		}
	}
	return matchUps
}

// runExperiment plays games per match up and writes the agent configs, game
// records and move records under outDir/name.
func runExperiment(name, outDir string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int, seed uint64) error {
	if games <= 0 {
		return fmt.Errorf("%s experiment needs at least one game per match up, got %d", name, games)
	}

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		black, white := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between black=%s and white=%s...",
			mi+1, len(matchUps), black.Name, white.Name)

		for i := 0; i < games; i++ {
			count++
			gameSeed := seed + uint64(count)
			e := engine.LocalEngine(createAgent(black, gameSeed), createAgent(white, gameSeed+1),
				engine.WithRandomOpening(meta.OPENING_PLIES, gameSeed))

			winner, gameMetric, moveMetrics := e.Run()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored %d games in %s", len(gameRecords), writer.Dir())
	return nil
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Name == randomAgentName {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if evaluate, ok := game.Evaluators[config.Evaluator]; ok {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}
	return agent.NewEvaluationAgent(options...)
}
