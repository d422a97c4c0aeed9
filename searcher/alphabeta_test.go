package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"tablut/game"
)

/**
Tests the fixed-depth alpha-beta search on synthetic trees (injected leaf
scores and winners) and on real Tablut positions.
- choosing: best root move, first move wins ties
- bounds: max node alpha is the max over children, min node beta the min
- pruning: same move as exhaustive minimax, fewer evaluations
- short-circuits: a won child is never expanded, a lost child is never chosen
- edge cases: no legal moves, every move lost
*/

// leafScores scores leaves by the index of their root-level ancestor.
func leafScores(scores ...int) func(path string) int {
	return func(path string) int {
		return scores[int(path[0]-'0')]
	}
}

// minimax is an exhaustive reference search over a mock tree.
func minimax(tree *mockTree, path string, depth, maxDepth int) int {
	if depth == maxDepth {
		return tree.scores[path]
	}
	best := 0
	for i, child := range tree.children[path] {
		v := minimax(tree, child, depth+1, maxDepth)
		if i == 0 || (depth%2 == 0 && v > best) || (depth%2 == 1 && v < best) {
			best = v
		}
	}
	return best
}

// exhaustiveBestMove returns the first root move with the highest minimax value.
func exhaustiveBestMove(tree *mockTree, maxDepth int) string {
	bestPath := ""
	bestValue := 0
	for i, child := range tree.children[""] {
		v := minimax(tree, child, 1, maxDepth)
		if i == 0 || v > bestValue {
			bestPath, bestValue = child, v
		}
	}
	return bestPath
}

func TestChooseMove(t *testing.T) {
	t.Run("picks the root move with the highest score", func(t *testing.T) {
		tree := uniformTree(3, 1, leafScores(5, 9, 2))
		ab := NewAlphaBeta(WithDepth(1), WithEvaluationFn(mockEvaluate))

		move, _, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, mockMove{path: "1"}, move)
	})

	t.Run("first move reaching the best value wins ties", func(t *testing.T) {
		tree := uniformTree(3, 3, leafScores(4, 7, 7))
		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate))

		move, _, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, mockMove{path: "1"}, move)
	})

	t.Run("same input gives the same move", func(t *testing.T) {
		ab := NewAlphaBeta(WithDepth(2))

		first, _, err := ab.ChooseMove(game.NewBoardState())
		require.NoError(t, err)
		second, _, err := ab.ChooseMove(game.NewBoardState())
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("no legal moves", func(t *testing.T) {
		tree := newMockTree()
		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate))

		move, _, err := ab.ChooseMove(tree.root(game.Swede))

		require.ErrorIs(t, err, ErrNoLegalMoves)
		require.Nil(t, move)
	})

	t.Run("every move loses immediately", func(t *testing.T) {
		tree := uniformTree(2, 3, leafScores(1, 1))
		tree.winners["0"] = game.Muscovite
		tree.winners["1"] = game.Muscovite
		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate))

		move, _, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, mockMove{path: "0"}, move, "Should fall back to the first legal move")
	})
}

func TestBoundConsistency(t *testing.T) {
	t.Run("maximizing node keeps the highest child value", func(t *testing.T) {
		tree := uniformTree(4, 1, leafScores(3, -8, 11, 6))
		ab := NewAlphaBeta(WithDepth(1), WithEvaluationFn(mockEvaluate))

		root := ab.search(newRoot(tree.root(game.Swede)))

		require.Equal(t, 11, root.alpha)
		require.Equal(t, mockMove{path: "2"}, root.move)
	})

	t.Run("minimizing node keeps the lowest child value", func(t *testing.T) {
		tree := uniformTree(4, 1, leafScores(3, -8, 11, 6))
		ab := NewAlphaBeta(WithDepth(2), WithEvaluationFn(mockEvaluate))
		n := &node{state: tree.root(game.Muscovite), depth: 1, alpha: MinScore, beta: MaxScore}

		n = ab.search(n)

		require.Equal(t, -8, n.beta)
		require.Equal(t, MinScore, n.alpha, "Minimizing node never raises alpha")
		require.Nil(t, n.move, "Only the root records a move")
	})

	t.Run("terminal node collapses both bounds to the evaluation", func(t *testing.T) {
		tree := uniformTree(1, 1, leafScores(42))
		ab := NewAlphaBeta(WithDepth(1), WithEvaluationFn(mockEvaluate))
		root := newRoot(tree.root(game.Swede))
		leafState := root.state.Clone()
		leafState.Play(mockMove{path: "0"})

		leaf := ab.search(newChild(root, leafState, mockMove{path: "0"}))

		require.Equal(t, 42, leaf.alpha)
		require.Equal(t, 42, leaf.beta)
	})
}

func TestPruningEquivalence(t *testing.T) {
	totalEvaluations, totalLeaves := 0, 0
	for seed := uint64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		tree := uniformTree(4, 3, func(string) int { return rng.Intn(2001) - 1000 })
		want := exhaustiveBestMove(tree, 3)

		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate), WithMetrics())
		move, metric, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, mockMove{path: want}, move, "seed %d: pruned search should agree with minimax", seed)
		require.Equal(t, minimax(tree, "", 0, 3), metric.Score, "seed %d: root bound should equal the minimax value", seed)
		totalEvaluations += metric.Evaluations
		totalLeaves += len(tree.scores)
	}
	require.Less(t, totalEvaluations, totalLeaves, "Pruning should skip some leaves")
}

func TestImmediateOutcomes(t *testing.T) {
	t.Run("winning root move is chosen over high heuristic scores", func(t *testing.T) {
		tree := uniformTree(3, 3, leafScores(9000000, 0, 9500000))
		tree.winners["1"] = game.Swede
		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate), WithMetrics())

		move, metric, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, mockMove{path: "1"}, move)
		require.Zero(t, tree.expanded["1"], "Won node should never generate children")
		require.Zero(t, tree.expanded["2"], "Moves after a root win are pruned")
		require.Equal(t, 1, metric.Wins)
		require.Equal(t, 2*MaxScore, metric.Score, "Win adds the sentinel to the inherited beta")
	})

	t.Run("win deeper in the tree is not expanded either", func(t *testing.T) {
		tree := uniformTree(2, 3, leafScores(5, 5))
		tree.winners["0.1"] = game.Swede
		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate))

		_, _, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, 1, tree.expanded["0.0"], "Sibling without a winner is expanded")
		require.Zero(t, tree.expanded["0.1"], "Won node should never generate children")
	})

	t.Run("drawn replies are scored, not left at the inherited window", func(t *testing.T) {
		tree := uniformTree(2, 3, leafScores(500, 500))
		tree.winners["0.0"] = game.Muscovite
		tree.winners["1.0"] = game.Draw
		tree.winners["1.1"] = game.Draw
		tree.scores["1.0"] = 0
		tree.scores["1.1"] = 0
		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate), WithMetrics())

		move, metric, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, mockMove{path: "1"}, move, "Drawing move should beat one that allows a loss")
		require.Equal(t, 0, metric.Score)
		require.Zero(t, tree.expanded["1.0"], "Drawn node should never generate children")
		require.Zero(t, tree.expanded["1.1"], "Drawn node should never generate children")
	})

	t.Run("losing root move is avoided", func(t *testing.T) {
		tree := uniformTree(2, 3, leafScores(100, 5))
		tree.winners["0"] = game.Muscovite
		ab := NewAlphaBeta(WithEvaluationFn(mockEvaluate), WithMetrics())

		move, metric, err := ab.ChooseMove(tree.root(game.Swede))

		require.NoError(t, err)
		require.Equal(t, mockMove{path: "1"}, move)
		require.Zero(t, tree.expanded["0"], "Lost node should never generate children")
		require.Equal(t, 1, metric.Losses)
		require.Equal(t, 5, metric.Score)
	})
}

func TestChooseMoveTablut(t *testing.T) {
	t.Run("king walks into a corner", func(t *testing.T) {
		bs, err := game.ParseBoard([]string{
			".........",
			".........",
			"W........",
			".........",
			"........B",
			"K........",
			"......B..",
			".........",
			".........",
		}, game.Swede)
		require.NoError(t, err)

		move, _, err := NewAlphaBeta().ChooseMove(bs)

		require.NoError(t, err)
		require.Equal(t, game.NewGameMove(game.NewCoord(0, 5), game.NewCoord(0, 8), game.Swede), move)
	})

	t.Run("Muscovites capture the king", func(t *testing.T) {
		bs, err := game.ParseBoard([]string{
			"...B.....",
			".........",
			".BK......",
			".........",
			".........",
			".........",
			".........",
			".........",
			".....W...",
		}, game.Muscovite)
		require.NoError(t, err)

		move, _, err := NewAlphaBeta().ChooseMove(bs)

		require.NoError(t, err)
		require.Equal(t, game.NewGameMove(game.NewCoord(3, 0), game.NewCoord(3, 2), game.Muscovite), move)
	})

	t.Run("Muscovites block the king on the last turn to draw", func(t *testing.T) {
		bs, err := game.ParseBoard([]string{
			".....B...",
			".........",
			".........",
			".........",
			".........",
			".........",
			".B.......",
			".........",
			"..KW.....",
		}, game.Muscovite)
		require.NoError(t, err)
		bs.Turns = game.MaxTurns - 1

		move, metric, err := NewAlphaBeta(WithMetrics()).ChooseMove(bs)

		require.NoError(t, err)
		require.Equal(t, game.NewGameMove(game.NewCoord(1, 6), game.NewCoord(1, 8), game.Muscovite), move)
		require.Greater(t, metric.Score, MinScore)

		require.NoError(t, bs.Apply(move.(game.GameMove)))
		for _, reply := range bs.LegalMoves() {
			next := bs.Copy()
			next.Play(reply)
			require.Equal(t, game.Draw, next.Winner(), reply.String())
		}
	})

	t.Run("search leaves the input state untouched", func(t *testing.T) {
		bs := game.NewBoardState()
		before := bs.Copy()

		_, metric, err := NewAlphaBeta(WithDepth(2), WithMetrics()).ChooseMove(bs)

		require.NoError(t, err)
		require.Equal(t, before, bs)
		require.Equal(t, 2, metric.Depth)
		require.Positive(t, metric.Evaluations)
		require.GreaterOrEqual(t, metric.Clones, metric.Evaluations, "Every evaluated leaf is a clone")
	})
}
