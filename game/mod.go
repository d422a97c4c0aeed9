package game

import (
	"fmt"
	"strings"
)

// Player identifies a side. NoWinner and Draw only appear as outcomes.
type Player int

const (
	Muscovite Player = iota // attackers, move first
	Swede                   // defenders, protect the king
	NoWinner
	Draw
)

func (p Player) String() string {
	switch p {
	case Muscovite:
		return "muscovite"
	case Swede:
		return "swede"
	case NoWinner:
		return "none"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("player(%d)", int(p))
}

// Other returns the opposing side.
func (p Player) Other() Player {
	if p == Muscovite {
		return Swede
	}
	return Muscovite
}

func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "muscovite", "black", "attacker":
		return Muscovite, nil
	case "swede", "white", "defender":
		return Swede, nil
	}
	return NoWinner, fmt.Errorf("unknown player %q", s)
}

type Piece uint8

const (
	Empty Piece = iota
	Black       // muscovite
	White       // swede
	King
)

// Owner returns the side a piece belongs to, NoWinner for an empty cell.
func (p Piece) Owner() Player {
	switch p {
	case Black:
		return Muscovite
	case White, King:
		return Swede
	}
	return NoWinner
}

// Move is a single ply.
type Move interface {
	String() string
}

// State is what a searcher needs from a game. Play mutates the receiver in
// place, so callers that branch must Clone first.
type State interface {
	Clone() State
	Play(Move)
	LegalMoves() []Move
	Winner() Player
	TurnPlayer() Player
	Opponent() Player
}

// Evaluate scores state from me's perspective against opponent. Higher is better for me.
type Evaluate func(state State, me, opponent Player) int
