package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tablut/communication"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/searcher"
)

const DefaultTimeout = 30 * time.Second

// Client asks a remote agent server for moves.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient returns a client for the agent server at serverURL.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+communication.HealthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("agent server unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// RequestMove sends state to the server and returns the move it chose.
func (c *Client) RequestMove(ctx context.Context, state *game.BoardState) (game.GameMove, metrics.SearchMetric, error) {
	data, err := json.Marshal(communication.NewMoveRequest(state))
	if err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+communication.MovePath, bytes.NewReader(data))
	if err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusConflict:
		return game.GameMove{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	default:
		var e communication.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, e.Error)
	}

	var payload communication.MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("failed to decode response: %w", err)
	}
	move, err := payload.Move()
	if err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return move, payload.Metrics, nil
}
