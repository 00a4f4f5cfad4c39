package main

import (
	"bufio"
	"fmt"
	"os"
	"othello/game"
	"othello/gamemaster"
	"othello/searcher"
	"othello/utils"

	"github.com/rs/zerolog/log"
)

var quitCommands = []string{"quit", "q", "exit"}

// playInteractive runs a game on the terminal. With vsComputer the color not
// played by cfg.human is played by the computer, otherwise both colors read
// their moves from stdin.
func playInteractive(cfg config, vsComputer bool) error {
	gm := gamemaster.NewLocalEngine(searcher.WithEvaluationFn(game.Evaluators[cfg.evaluator]))
	board, getUpdate := gm.Init()
	view := newView(os.Stdout)
	view.board(board)

	in := bufio.NewScanner(os.Stdin)
	for !gm.State().IsOver() {
		player := gm.State().Player()

		var move game.Position
		if vsComputer && player != cfg.human {
			move = gm.BestMove(cfg.depthOf(player))
			if err := gm.Play(move); err != nil {
				return fmt.Errorf("computer move %v: %w", move, err)
			}
		} else {
			line, ok := prompt(in, fmt.Sprintf("%v to move (e.g. d3, hint, quit): ", player))
			if !ok || utils.Contains(quitCommands, line) {
				log.Info().Msg("game abandoned")
				return nil
			}
			if line == "hint" {
				view.message(fmt.Sprintf("try %v", gm.BestMove(cfg.depthOf(player))))
				continue
			}

			var err error
			if move, err = game.ParsePosition(line); err != nil {
				view.message(err.Error())
				continue
			}
			if err := gm.Play(move); err != nil {
				view.message(fmt.Sprintf("cannot play %v: %v", move, err))
				continue
			}
		}

		for {
			played, next := getUpdate()
			if next == nil {
				break
			}
			view.ply(searcher.Segment{Move: played, Board: next})
		}
	}

	final := gm.State()
	view.result(final.Winner(), final.BlackCount(), final.WhiteCount())
	return nil
}
