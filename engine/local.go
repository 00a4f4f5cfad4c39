package engine

import (
	"errors"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Local runs a game between two agents in the same process.
type Local struct {
	State  *game.Board
	Agents [2]agent.Agent // indexed by agentIndex: Black first

	openingPlies int
	openingSeed  uint64
	observer     func(searcher.Segment)
}

type Option func(e *Local)

// WithRandomOpening plays plies uniformly random moves before the agents take
// over, so that games between the same deterministic agents differ.
func WithRandomOpening(plies int, seed uint64) Option {
	return func(e *Local) {
		e.openingPlies = plies
		e.openingSeed = seed
	}
}

// WithObserver calls observe after every ply, passes included.
func WithObserver(observe func(searcher.Segment)) Option {
	return func(e *Local) {
		e.observer = observe
	}
}

func LocalEngine(black, white agent.Agent, options ...Option) *Local {
	if black == nil || white == nil {
		panic("need an agent for each color")
	}

	e := &Local{
		State:  game.NewBoard(),
		Agents: [2]agent.Agent{black, white},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func agentIndex(player game.Disk) int {
	if player == game.White {
		return 1
	}
	return 0
}

// Run executes the entire game loop until neither player can move.
func (e *Local) Run() (game.Disk, metrics.GameMetric, []metrics.MoveMetric) {
	e.playOpening()

	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("player %v is starting", e.State.Player())

	// updates[i] holds the plies agent i has not seen yet
	var updates [2][]searcher.Segment
	var moveMetrics []metrics.MoveMetric
	turn := 1
	for ; !e.State.IsOver() && turn <= meta.MAX_TURNS; turn++ {
		player := e.State.Player()
		i := agentIndex(player)

		var segment searcher.Segment
		if len(e.State.LegalMoves()) == 0 {
			next, err := game.Pass(e.State)
			if err != nil {
				log.Error().Err(err).Msgf("player %v cannot pass", player)
				break
			}
			segment = searcher.Segment{Move: game.NoMove, Board: next}
			gameMetric.Passes++
			log.Debug().Msgf("turn %d: %v passes", turn, player)
		} else {
			move, searchMetric := e.Agents[i].FindMove(e.State, updates[i])
			updates[i] = nil

			next, err := game.Play(e.State, move)
			if err != nil {
				fallback := e.State.LegalMoves()[0]
				log.Warn().Err(err).Msgf("player %v chose %v, playing %v instead", player, move, fallback)
				move = fallback
				next, err = game.Play(e.State, move)
				if err != nil {
					log.Error().Err(err).Msgf("fallback move %v failed", move)
					break
				}
			}
			segment = searcher.Segment{Move: move, Board: next}
			gameMetric.TotalMoves++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         turn,
				Player:       player,
				Move:         move,
				SearchMetric: searchMetric,
			})
			log.Debug().Msgf("turn %d: %v plays %v flipping %d", turn, player, move, next.Flipped())
		}

		updates[0] = append(updates[0], segment)
		updates[1] = append(updates[1], segment)
		e.State = segment.Board
		if e.observer != nil {
			e.observer(segment)
		}
	}

	if !e.State.IsOver() {
		log.Warn().Msgf("stopped after %d turns without a result", meta.MAX_TURNS)
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.BlackCount = e.State.BlackCount()
	gameMetric.WhiteCount = e.State.WhiteCount()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	log.Info().Msgf("game over after %d moves: black %d, white %d, winner %v",
		gameMetric.TotalMoves, gameMetric.BlackCount, gameMetric.WhiteCount, winner)

	return winner, gameMetric, moveMetrics
}

func (e *Local) playOpening() {
	if e.openingPlies <= 0 {
		return
	}

	rng := rand.New(rand.NewSource(e.openingSeed))
	for ply := 0; ply < e.openingPlies && !e.State.IsOver(); ply++ {
		var next *game.Board
		var err error
		moves := e.State.LegalMoves()
		if len(moves) == 0 {
			next, err = game.Pass(e.State)
		} else {
			next, err = game.Play(e.State, moves[rng.Intn(len(moves))])
		}
		if err != nil {
			if !errors.Is(err, game.ErrGameOver) {
				log.Warn().Err(err).Msg("random opening stopped early")
			}
			return
		}
		e.State = next
	}
	log.Debug().Msgf("random opening of %d plies:\n%v", e.openingPlies, e.State)
}
