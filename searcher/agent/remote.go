package agent

import (
	"context"

	"tablut/communication/client"
	"tablut/experiments/metrics"
	"tablut/game"
)

// remoteAgent delegates every move to an agent server.
type remoteAgent struct {
	client *client.Client
}

func NewRemoteAgent(c *client.Client) Agent {
	return remoteAgent{client: c}
}

func (a remoteAgent) FindMove(state *game.BoardState) (game.GameMove, metrics.SearchMetric, error) {
	ctx, cancel := context.WithTimeout(context.Background(), client.DefaultTimeout)
	defer cancel()
	return a.client.RequestMove(ctx, state)
}
