package agent

import (
	"golang.org/x/exp/rand"

	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/searcher"
)

// randomAgent plays a uniformly random legal move. It is the baseline opponent in matches.
type randomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.BoardState) (game.GameMove, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.GameMove{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))].(game.GameMove), metrics.SearchMetric{}, nil
}
