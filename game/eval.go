package game

const (
	CaptureWeight  = 100000
	DistanceWeight = 10000
	KeyAreaWeight  = 1000
	SurroundWeight = 1000
)

// EvaluateTablut blends material, king distance to a corner, key-area
// congestion and king encirclement into one score for me. The combination
// depends on which side me is: the Swedes want the king close to a corner and
// free to move, the Muscovites want it far away and the corners blocked.
func EvaluateTablut(s State, me, opponent Player) int {
	bs, ok := s.(*BoardState)
	if !ok {
		panic("unexpected state type")
	}

	capture := bs.captureScore(me, opponent) * CaptureWeight
	distance := bs.distanceScore() * DistanceWeight

	if me == Swede {
		surround := 0
		if !OnEdgeLine(bs.KingPosition()) {
			surround = bs.kingSurroundScore() * SurroundWeight
		}
		return capture + distance + surround
	}
	return capture - distance + bs.keyAreaScore()*KeyAreaWeight
}

// captureScore is the material difference between me and opponent.
func (bs *BoardState) captureScore(me, opponent Player) int {
	return bs.NumberPlayerPieces(me) - bs.NumberPlayerPieces(opponent)
}

// distanceScore is zero on a corner and more negative the further the king is from one.
func (bs *BoardState) distanceScore() int {
	return -DistanceToClosestCorner(bs.KingPosition())
}

// keyAreaScore counts occupied key-area cells, whoever holds them.
func (bs *BoardState) keyAreaScore() int {
	score := 0
	for _, c := range keyAreas {
		if !bs.CoordIsEmpty(c) {
			score++
		}
	}
	return score
}

// kingSurroundScore rewards open escape routes next to the king and
// penalises Muscovites flanking it. Only the first two neighbours with a
// resolvable sandwich cell are looked at, so a neighbour against the board
// edge is skipped and a third neighbour can be scored in its place.
func (bs *BoardState) kingSurroundScore() int {
	king := bs.KingPosition()
	score := 0
	if IsCenterOrNeighborCenter(king) {
		score += 2
	}

	considered := 0
	for _, n := range Neighbors(king) {
		if considered == 2 {
			break
		}
		s, ok := SandwichCoord(n, king)
		if !ok {
			continue
		}
		switch {
		case bs.CoordIsEmpty(n):
			if bs.CoordIsEmpty(s) {
				score += 2 // open escape
			} else if bs.IsHostileToKing(s) {
				score -= 2
			}
		case bs.IsHostileToKing(n):
			if bs.CoordIsEmpty(s) {
				score -= 2 // one more Muscovite captures
			} else {
				score--
			}
		default:
			if !bs.CoordIsEmpty(s) {
				score-- // boxed in by its own side
			}
		}
		considered++
	}
	return score
}
