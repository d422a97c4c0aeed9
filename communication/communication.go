package communication

import (
	"fmt"

	"tablut/experiments/metrics"
	"tablut/game"
)

const (
	MovePath   = "/move"
	HealthPath = "/health"
)

// MoveRequest asks an agent for a move. Board holds nine rows in the format
// game.ParseBoard reads.
type MoveRequest struct {
	Board      []string `json:"board"`
	Turn       string   `json:"turn"`
	TurnNumber int      `json:"turnNumber"`
}

func NewMoveRequest(state *game.BoardState) MoveRequest {
	return MoveRequest{
		Board:      state.Rows(),
		Turn:       state.TurnPlayer().String(),
		TurnNumber: state.TurnNumber(),
	}
}

// State rebuilds the position described by the request.
func (r MoveRequest) State() (*game.BoardState, error) {
	turn, err := game.ParsePlayer(r.Turn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrInvalidBoard, err)
	}
	state, err := game.ParseBoard(r.Board, turn)
	if err != nil {
		return nil, err
	}
	if r.TurnNumber < 0 {
		return nil, fmt.Errorf("%w: negative turn number %d", game.ErrInvalidBoard, r.TurnNumber)
	}
	state.Turns = r.TurnNumber
	return state, nil
}

type MoveResponse struct {
	From    game.Coord           `json:"from"`
	To      game.Coord           `json:"to"`
	Player  string               `json:"player"`
	Metrics metrics.SearchMetric `json:"metrics"`
}

func NewMoveResponse(move game.GameMove, metric metrics.SearchMetric) MoveResponse {
	return MoveResponse{
		From:    move.From,
		To:      move.To,
		Player:  move.Player.String(),
		Metrics: metric,
	}
}

func (r MoveResponse) Move() (game.GameMove, error) {
	player, err := game.ParsePlayer(r.Player)
	if err != nil {
		return game.GameMove{}, err
	}
	return game.NewGameMove(r.From, r.To, player), nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}
