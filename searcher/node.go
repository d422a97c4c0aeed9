package searcher

import "tablut/game"

// node is one position in the search tree. Nodes are created while expanding
// their parent and dropped once the parent has looked at all its children.
type node struct {
	state  game.State // owned, never shared with another node
	depth  int
	alpha  int
	beta   int
	parent *node     // only used to reach the root
	move   game.Move // move from parent.state to state; at the root, the best move found
}

func newRoot(state game.State) *node {
	return &node{
		state: state,
		depth: 0,
		alpha: MinScore,
		beta:  MaxScore,
	}
}

// newChild inherits the parent's current bounds, so siblings searched later
// see the window tightened by earlier ones.
func newChild(parent *node, state game.State, move game.Move) *node {
	return &node{
		state:  state,
		depth:  parent.depth + 1,
		alpha:  parent.alpha,
		beta:   parent.beta,
		parent: parent,
		move:   move,
	}
}

func (n *node) root() *node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// isMax reports whether the node belongs to the side the search favours.
func (n *node) isMax() bool {
	return n.depth%2 == 0
}

func (n *node) isRoot() bool {
	return n.parent == nil
}
