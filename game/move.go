package game

import "fmt"

// GameMove slides one piece of Player from From to To along a row or column.
type GameMove struct {
	From   Coord  `json:"from"`
	To     Coord  `json:"to"`
	Player Player `json:"player"`
}

func NewGameMove(from, to Coord, player Player) GameMove {
	return GameMove{From: from, To: to, Player: player}
}

func (gm GameMove) String() string {
	return fmt.Sprintf("%s %s->%s", gm.Player, gm.From, gm.To)
}
