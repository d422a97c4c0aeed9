package searcher

import (
	"errors"

	"github.com/rs/zerolog/log"

	"tablut/experiments/metrics"
	"tablut/game"
)

const (
	MaxDepth = 3 // plies searched below the root

	MinScore = -10000000
	MaxScore = 10000000
)

var ErrNoLegalMoves = errors.New("no legal moves")

type Option func(ab *AlphaBeta)

// AlphaBeta is a fixed-depth minimax search with alpha-beta pruning.
// It keeps no state between searches.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:    MaxDepth,
		evaluate: game.EvaluateTablut,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

// ChooseMove searches state and returns the move leading to the best bound
// found at the root. When every move is provably lost no bound improves, and
// the first legal move is returned.
func (ab *AlphaBeta) ChooseMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	ab.metrics.Start(ab.depth)

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ab.metrics.Complete(0), ErrNoLegalMoves
	}

	root := newRoot(state)
	ab.expand(root, moves)
	metric := ab.metrics.Complete(root.alpha)

	move := root.move
	if move == nil {
		log.Debug().Str("player", state.TurnPlayer().String()).Msg("no move improves on the worst score, playing the first legal move")
		move = moves[0]
	}

	log.Debug().
		Str("move", move.String()).
		Int("score", root.alpha).
		Int("evaluations", metric.Evaluations).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("alpha-beta search complete")

	return move, metric, nil
}

// search finalises n's bounds: by static evaluation at the depth limit or
// on a finished game that neither side won, otherwise by expanding its legal
// moves.
func (ab *AlphaBeta) search(n *node) *node {
	if n.depth == ab.depth || n.state.Winner() != game.NoWinner {
		root := n.root()
		score := ab.evaluate(n.state, root.state.TurnPlayer(), root.state.Opponent())
		ab.metrics.AddEvaluation()
		n.alpha = score
		n.beta = score
		return n
	}

	ab.expand(n, n.state.LegalMoves())
	return n
}

func (ab *AlphaBeta) expand(n *node, moves []game.Move) {
	root := n.root()
	me, opponent := root.state.TurnPlayer(), root.state.Opponent()

	for _, move := range moves {
		childState := n.state.Clone()
		childState.Play(move)
		ab.metrics.AddClone()

		child := newChild(n, childState, move)

		switch childState.Winner() {
		case opponent:
			child.alpha = MinScore
			child.beta = MinScore
			ab.metrics.AddLoss()
		case me:
			// Added to the inherited bounds, not assigned like the loss case.
			child.alpha += MaxScore
			child.beta += MaxScore
			ab.metrics.AddWin()
		default:
			ab.search(child)
		}

		if n.isMax() {
			if child.beta > n.alpha {
				n.alpha = child.beta
				if n.isRoot() {
					n.move = child.move
				}
			}
		} else if child.alpha < n.beta {
			n.beta = child.alpha
		}

		if n.alpha > n.beta {
			ab.metrics.AddCutoff()
			break
		}
	}
}
