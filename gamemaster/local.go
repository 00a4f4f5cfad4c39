package gamemaster

import (
	"fmt"
	"othello/game"
	"othello/searcher"
	"sync"

	"github.com/rs/zerolog/log"
)

// UpdateGetter returns the next ply played, game.NoMove for a pass. It returns
// a nil board when no ply is pending or once the game is over and every ply
// has been read.
type UpdateGetter func() (game.Position, *game.Board)

type Engine interface {
	Init() (*game.Board, UpdateGetter)
	Play(game.Position) error
}

type update struct {
	move  game.Position
	board *game.Board
}

// A game has at most one ply per square plus one pass after each of them.
const updateBuffer = 2 * game.Size * game.Size

type localEngine struct {
	mu       sync.Mutex
	board    *game.Board
	tree     *searcher.GameTree
	updateCh chan update
	gameOver bool
	options  []searcher.Option
}

// NewLocalEngine returns an engine whose hints are searched with options.
func NewLocalEngine(options ...searcher.Option) *localEngine {
	return &localEngine{options: options}
}

// Init starts a new game and returns the starting board.
func (e *localEngine) Init() (*game.Board, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.updateCh != nil && !e.gameOver {
		close(e.updateCh) // ends the previous game's stream
	}
	e.board = game.NewBoard()
	e.tree = searcher.NewGameTree(e.board, e.options...)
	e.updateCh = make(chan update, updateBuffer)
	e.gameOver = false

	updateCh := e.updateCh
	return e.board, func() (game.Position, *game.Board) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return game.NoMove, nil
			}
			return u.move, u.board
		default:
			return game.NoMove, nil
		}
	}
}

// State returns the current board, nil before Init.
func (e *localEngine) State() *game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// Play places a disk for the player to move. When the next player has no
// legal move but the game goes on, a pass is played for them right away.
func (e *localEngine) Play(move game.Position) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.board == nil {
		return fmt.Errorf("game not started")
	}
	if e.gameOver {
		return game.ErrGameOver
	}

	next, err := game.Play(e.board, move)
	if err != nil {
		return err
	}
	e.push(move, next)

	if !next.IsOver() && len(next.LegalMoves()) == 0 {
		passed, err := game.Pass(next)
		if err != nil {
			return fmt.Errorf("automatic pass failed: %w", err)
		}
		log.Info().Msgf("%v has no legal move and passes", next.Player())
		e.push(game.NoMove, passed)
	}

	if e.board.IsOver() {
		e.gameOver = true
		close(e.updateCh)
		log.Info().Msgf("game over: black %d, white %d", e.board.BlackCount(), e.board.WhiteCount())
	}
	return nil
}

func (e *localEngine) push(move game.Position, board *game.Board) {
	e.board = board
	e.tree.Advance(move, board)
	e.updateCh <- update{move: move, board: board}
}

// BestMove searches depth plies ahead for the player to move. It returns
// game.NoMove once the game is over.
func (e *localEngine) BestMove(depth int) game.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.board == nil || e.gameOver {
		return game.NoMove
	}
	e.tree.SetDepth(depth)
	return e.tree.BestMove(e.board.Player())
}
