package agent

import (
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/searcher"
)

type alphaBetaAgent struct {
	ab *searcher.AlphaBeta
}

// NewAlphaBetaAgent returns an agent playing the move found by a fixed-depth alpha-beta search.
func NewAlphaBetaAgent(ab *searcher.AlphaBeta) Agent {
	return alphaBetaAgent{ab: ab}
}

func (a alphaBetaAgent) FindMove(state *game.BoardState) (game.GameMove, metrics.SearchMetric, error) {
	move, metric, err := a.ab.ChooseMove(state)
	if err != nil {
		return game.GameMove{}, metric, err
	}
	return move.(game.GameMove), metric, nil
}
