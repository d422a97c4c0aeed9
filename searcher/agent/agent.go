package agent

import (
	"fmt"

	"tablut/communication/client"
	"tablut/config"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/searcher"
)

type Agent interface {
	// FindMove returns a move for the side to move in state and the metrics of the search (if collected)
	FindMove(state *game.BoardState) (game.GameMove, metrics.SearchMetric, error)
}

// New builds the agent described by cfg.
func New(cfg config.Agent) (Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case config.KindAlphaBeta:
		return NewAlphaBetaAgent(searcher.NewAlphaBeta(
			searcher.WithDepth(cfg.Depth),
			searcher.WithMetrics(),
		)), nil
	case config.KindRandom:
		return NewRandomAgent(cfg.Seed), nil
	case config.KindRemote:
		return NewRemoteAgent(client.NewClient(cfg.URL)), nil
	}
	return nil, fmt.Errorf("%w: unknown agent kind %q", config.ErrInvalidConfig, cfg.Kind)
}
