package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

// Segment is one ply of the game: the move played (game.NoMove for a pass)
// and the board it produced.
type Segment struct {
	Move  game.Position
	Board *game.Board
}

// GameTree searches a fixed number of plies ahead of its root with plain minimax.
// Expanded subtrees are kept between searches and reused after Advance.
type GameTree struct {
	root     *Node
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewGameTree(board *game.Board, options ...Option) *GameTree {
	if board == nil {
		panic("cannot build a game tree without a board")
	}

	t := &GameTree{ // Default values
		depth:    meta.DEFAULT_SEARCH_DEPTH,
		evaluate: game.EvaluateStability,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	t.root = newNode(nil, board, t.evaluate)
	t.metrics.SetTreeReset(true)
	return t
}

func (t *GameTree) Root() *Node {
	return t.root
}

func (t *GameTree) Depth() int {
	return t.depth
}

// SetDepth changes the search depth for the following searches. Non-positive
// values are ignored.
func (t *GameTree) SetDepth(depth int) {
	if depth > 0 {
		t.depth = depth
	}
}

// Size returns the number of nodes currently held by the tree.
func (t *GameTree) Size() int {
	return t.root.size()
}

// Expand grows the tree breadth first until every path from the root is depth
// plies long or ends in a position without legal moves. Nodes expanded by an
// earlier call keep their children.
func (t *GameTree) Expand() {
	frontier := []*Node{t.root}
	for level := 0; level < t.depth; level++ {
		var next []*Node
		for _, node := range frontier {
			if node.expanded() {
				next = append(next, node.children...)
				t.metrics.AddReused(len(node.children))
				continue
			}

			for _, move := range node.board.LegalMoves() {
				board, err := game.Play(node.board, move)
				if err != nil {
					log.Warn().Err(err).Msgf("skipping move %v while expanding", move)
					continue
				}
				next = append(next, node.addChild(move, board, t.evaluate))
			}
			t.metrics.AddNodes(len(node.children))
		}
		frontier = next
	}
}

// MinMax evaluates node looking depthLimit plies ahead. A node whose player to
// move is player takes the minimum of its children, any other node the
// maximum. Leaves and nodes at the depth limit return their own score.
func (t *GameTree) MinMax(node *Node, player game.Disk, depthLimit int) int {
	if depthLimit <= 0 || !node.expanded() {
		return node.score
	}

	minimize := node.board.Player() == player
	best := t.MinMax(node.children[0], player, depthLimit-1)
	for _, child := range node.children[1:] {
		value := t.MinMax(child, player, depthLimit-1)
		if (minimize && value < best) || (!minimize && value > best) {
			best = value
		}
	}
	return best
}

// BestMove expands the tree and returns the root move with the minimum value
// when player is to move at the root, the maximum otherwise. Ties go to the
// first move in row-major order. It returns game.NoMove when the root has no
// legal move.
func (t *GameTree) BestMove(player game.Disk) game.Position {
	t.Expand()

	root := t.root
	if !root.expanded() {
		return game.NoMove
	}

	minimize := root.board.Player() == player
	bestMove := root.moves[0]
	bestValue := t.MinMax(root.children[0], player, t.depth-1)
	for i, child := range root.children[1:] {
		value := t.MinMax(child, player, t.depth-1)
		if (minimize && value < bestValue) || (!minimize && value > bestValue) {
			bestValue = value
			bestMove = root.moves[i+1]
		}
	}
	return bestMove
}

// Search runs BestMove and reports how the search went.
func (t *GameTree) Search(player game.Disk) (game.Position, metrics.SearchMetric) {
	t.metrics.Start(t.depth)
	move := t.BestMove(player)
	return move, t.metrics.Complete()
}

// Advance moves the root to the child reached by move and releases every
// other subtree. When that child was never expanded (a pass, or a move the
// tree did not look at) or does not hold board, the tree restarts from board.
func (t *GameTree) Advance(move game.Position, board *game.Board) {
	child := t.root.Child(move)
	switch {
	case child == nil:
		t.Reset(board)
	case board != nil && child.board.Hash() != board.Hash():
		log.Warn().Msgf("node's state hash %d does not match board hash %d", child.board.Hash(), board.Hash())
		t.Reset(board)
	default:
		child.parent = nil
		t.root = child
		t.metrics.SetTreeReset(false)
	}
}

// Reset drops the whole tree and starts again from board.
func (t *GameTree) Reset(board *game.Board) {
	if board == nil {
		panic("cannot reset a game tree without a board")
	}
	t.root = newNode(nil, board, t.evaluate)
	t.metrics.SetTreeReset(true)
}
