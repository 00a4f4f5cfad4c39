package searcher

import (
	"othello/game"
	"othello/utils"
)

// Node wraps one board of the game tree. Its score is computed once, when the
// node is created, and never changes.
type Node struct {
	board    *game.Board
	score    int
	parent   *Node // not owned; nil at the root
	moves    []game.Position
	children []*Node // children[i] is reached by moves[i]
}

func newNode(parent *Node, board *game.Board, evaluate game.Evaluate) *Node {
	return &Node{
		parent: parent,
		board:  board,
		score:  evaluate(board),
	}
}

func (n *Node) addChild(move game.Position, board *game.Board, evaluate game.Evaluate) *Node {
	child := newNode(n, board, evaluate)
	n.moves = append(n.moves, move)
	n.children = append(n.children, child)
	return child
}

func (n *Node) expanded() bool {
	return len(n.children) > 0
}

func (n *Node) Board() *game.Board {
	return n.board
}

func (n *Node) Score() int {
	return n.score
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Moves returns the moves leading to the expanded children, in row-major order.
func (n *Node) Moves() []game.Position {
	moves := make([]game.Position, len(n.moves))
	copy(moves, n.moves)
	return moves
}

// Child returns the node reached by move, or nil if it has not been expanded.
func (n *Node) Child(move game.Position) *Node {
	i := utils.FindIndex(n.moves, move)
	if i < 0 {
		return nil
	}
	return n.children[i]
}

// size counts n and every node below it.
func (n *Node) size() int {
	total := 1
	for _, child := range n.children {
		total += child.size()
	}
	return total
}
