package game

import "fmt"

// LegalMoves lists every move for the side to move. The order is stable:
// origin cells in row-major order, then directions left, right, up, down,
// then increasing distance.
func (bs *BoardState) LegalMoves() []Move {
	if bs.Won != NoWinner {
		return nil
	}
	var moves []Move
	for _, from := range bs.PlayerPieceCoordinates() {
		bs.forEachDestination(from, func(to Coord) bool {
			moves = append(moves, GameMove{From: from, To: to, Player: bs.Turn})
			return true
		})
	}
	return moves
}

// IsLegal reports whether m can be played in the current position.
func (bs *BoardState) IsLegal(m GameMove) bool {
	if bs.Won != NoWinner || m.Player != bs.Turn || !m.From.InBounds() || !m.To.InBounds() {
		return false
	}
	piece := bs.PieceAt(m.From)
	if piece == Empty || piece.Owner() != bs.Turn {
		return false
	}
	found := false
	bs.forEachDestination(m.From, func(to Coord) bool {
		found = to == m.To
		return !found
	})
	return found
}

// Apply validates m and plays it.
func (bs *BoardState) Apply(m GameMove) error {
	if bs.Won != NoWinner {
		return ErrGameOver
	}
	if !bs.IsLegal(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	bs.play(m)
	return nil
}

// Play applies a move known to be legal, in place.
func (bs *BoardState) Play(m Move) {
	gm, ok := m.(GameMove)
	if !ok {
		panic("unexpected move type")
	}
	bs.play(gm)
}

func (bs *BoardState) play(m GameMove) {
	piece := bs.PieceAt(m.From)
	bs.set(m.From, Empty)
	bs.set(m.To, piece)
	if piece == King {
		bs.King = m.To
	}

	bs.resolveCaptures(m.To, m.Player)
	if piece == King && IsCorner(m.To) {
		bs.Won = Swede
	}

	if m.Player == Swede {
		bs.Turns++
	}
	bs.Turn = m.Player.Other()

	if bs.Won == NoWinner {
		if bs.Turns >= MaxTurns {
			bs.Won = Draw
		} else if !bs.hasLegalMove() {
			// A side that cannot move loses.
			bs.Won = m.Player
		}
	}
}

// forEachDestination visits every cell the piece on from can slide to.
// It stops as soon as visit returns false.
func (bs *BoardState) forEachDestination(from Coord, visit func(Coord) bool) {
	isKing := bs.PieceAt(from) == King
	center := Center()
	for _, d := range directions {
		for to := (Coord{X: from.X + d.X, Y: from.Y + d.Y}); to.InBounds() && bs.CoordIsEmpty(to); to = (Coord{X: to.X + d.X, Y: to.Y + d.Y}) {
			// Only the king may stop on the throne or a corner; others may pass an empty throne.
			if !isKing && (to == center || IsCorner(to)) {
				continue
			}
			if !visit(to) {
				return
			}
		}
	}
}

func (bs *BoardState) hasLegalMove() bool {
	for _, from := range bs.PlayerPieceCoordinates() {
		found := false
		bs.forEachDestination(from, func(Coord) bool {
			found = true
			return false
		})
		if found {
			return true
		}
	}
	return false
}

func (bs *BoardState) resolveCaptures(at Coord, mover Player) {
	for _, n := range Neighbors(at) {
		target := bs.PieceAt(n)
		if target == Empty || target.Owner() == mover {
			continue
		}
		if target == King {
			if bs.kingCaptured(n, at) {
				bs.set(n, Empty)
				bs.Won = Muscovite
			}
			continue
		}
		if s, ok := SandwichCoord(n, at); ok && bs.hostileTo(s, target.Owner()) {
			bs.set(n, Empty)
		}
	}
}

// kingCaptured decides whether the king on k is taken by a Muscovite landing on at.
// On or next to the throne the king must be enclosed on all four sides.
func (bs *BoardState) kingCaptured(k, at Coord) bool {
	if IsCenterOrNeighborCenter(k) {
		for _, n := range Neighbors(k) {
			if !bs.hostileTo(n, Swede) {
				return false
			}
		}
		return true
	}
	s, ok := SandwichCoord(k, at)
	return ok && bs.hostileTo(s, Swede)
}

// hostileTo reports whether c works against victim in a sandwich: an enemy
// piece, a corner, or the empty throne.
func (bs *BoardState) hostileTo(c Coord, victim Player) bool {
	if p := bs.PieceAt(c); p != Empty {
		return p.Owner() == victim.Other()
	}
	return IsCorner(c) || c == Center()
}
