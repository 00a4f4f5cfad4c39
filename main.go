package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	experiment string
	black      meta.Difficulty
	white      meta.Difficulty
	human      game.Disk
	evaluator  string
	games      int
	out        string
	seed       uint64
}

func main() {
	mode := flag.String("mode", "pvc", "Game mode: pvp, pvc, cvc or experiment")
	experiment := flag.String("experiment", "difficulty", "Experiment to run in experiment mode: difficulty or evaluators")
	black := flag.String("black", "normal", "Difficulty of the computer playing Black")
	white := flag.String("white", "normal", "Difficulty of the computer playing White")
	human := flag.String("human", "black", "Color played by the human in pvc mode")
	evaluator := flag.String("eval", "stability", "Evaluation function of computer players: stability, disks or positional")
	games := flag.Int("games", experiments.NumGames, "Number of games per match up in experiment mode")
	out := flag.String("out", "results", "Directory for experiment results")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random openings and random agents in experiment mode")
	level := flag.String("log-level", "info", "Log level: trace, debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	cfg, err := parseConfig(*mode, *experiment, *black, *white, *human, *evaluator, *games, *out, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func parseConfig(mode, experiment, black, white, human, evaluator string, games int, out string, seed uint64) (config, error) {
	cfg := config{mode: mode, experiment: experiment, evaluator: evaluator, games: games, out: out, seed: seed}

	var err error
	if cfg.black, err = meta.ParseDifficulty(black); err != nil {
		return cfg, fmt.Errorf("-black: %w", err)
	}
	if cfg.white, err = meta.ParseDifficulty(white); err != nil {
		return cfg, fmt.Errorf("-white: %w", err)
	}
	switch strings.ToLower(human) {
	case "black", "b":
		cfg.human = game.Black
	case "white", "w":
		cfg.human = game.White
	default:
		return cfg, fmt.Errorf("-human: unknown color %q: want black or white", human)
	}
	if _, ok := game.Evaluators[evaluator]; !ok {
		return cfg, fmt.Errorf("-eval: unknown evaluation function %q", evaluator)
	}
	return cfg, nil
}

func run(cfg config) error {
	switch cfg.mode {
	case "pvp":
		return playInteractive(cfg, false)
	case "pvc":
		return playInteractive(cfg, true)
	case "cvc":
		return watch(cfg)
	case "experiment":
		switch cfg.experiment {
		case "difficulty":
			return experiments.RunDifficultyExperiment(cfg.games, cfg.out, cfg.seed)
		case "evaluators":
			return experiments.RunEvaluatorExperiment(cfg.games, meta.DEFAULT_SEARCH_DEPTH, cfg.out, cfg.seed)
		}
		return fmt.Errorf("unknown experiment %q", cfg.experiment)
	}
	return fmt.Errorf("unknown mode %q", cfg.mode)
}

// depthOf returns the search depth of the computer playing player.
func (cfg config) depthOf(player game.Disk) int {
	if player == game.White {
		return cfg.white.SearchDepth()
	}
	return cfg.black.SearchDepth()
}

// watch plays two computer players against each other and prints every ply.
func watch(cfg config) error {
	evaluate := game.Evaluators[cfg.evaluator]
	newAgent := func(d meta.Difficulty) agent.Agent {
		return agent.NewEvaluationAgent(searcher.WithDepth(d.SearchDepth()), searcher.WithEvaluationFn(evaluate))
	}

	view := newView(os.Stdout)
	e := engine.LocalEngine(newAgent(cfg.black), newAgent(cfg.white),
		engine.WithObserver(func(segment searcher.Segment) {
			view.ply(segment)
		}))
	view.board(e.State)

	winner, gameMetric, _ := e.Run()
	view.result(winner, gameMetric.BlackCount, gameMetric.WhiteCount)
	return nil
}

// prompt reads the next non-empty line, returning false at end of input.
func prompt(in *bufio.Scanner, text string) (string, bool) {
	for {
		fmt.Print(text)
		if !in.Scan() {
			return "", false
		}
		if line := strings.TrimSpace(in.Text()); line != "" {
			return line, true
		}
	}
}
