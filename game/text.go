package game

import (
	"fmt"
	"strings"
)

var pieceRunes = map[rune]Piece{
	'.': Empty,
	'B': Black,
	'W': White,
	'K': King,
}

func (p Piece) Rune() rune {
	switch p {
	case Black:
		return 'B'
	case White:
		return 'W'
	case King:
		return 'K'
	}
	return '.'
}

// ParseBoard builds a position from nine rows of nine cells, using '.' for
// empty, 'B' for a Muscovite, 'W' for a Swede and 'K' for the king.
func ParseBoard(rows []string, turn Player) (*BoardState, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, BoardSize, len(rows))
	}
	if turn != Muscovite && turn != Swede {
		return nil, fmt.Errorf("%w: turn must be muscovite or swede, got %s", ErrInvalidBoard, turn)
	}

	bs := &BoardState{Turn: turn, Won: NoWinner}
	kings := 0
	for y, row := range rows {
		cells := []rune(strings.TrimSpace(row))
		if len(cells) != BoardSize {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, y, len(cells))
		}
		for x, r := range cells {
			piece, ok := pieceRunes[r]
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrInvalidBoard, r, Coord{X: x, Y: y})
			}
			c := Coord{X: x, Y: y}
			if piece != King && piece != Empty && (c == Center() || IsCorner(c)) {
				return nil, fmt.Errorf("%w: only the king may stand on %s", ErrInvalidBoard, c)
			}
			if piece == King {
				kings++
				bs.King = c
			}
			bs.set(c, piece)
		}
	}
	if kings != 1 {
		return nil, fmt.Errorf("%w: want exactly one king, got %d", ErrInvalidBoard, kings)
	}
	if IsCorner(bs.King) {
		bs.Won = Swede
	}
	return bs, nil
}

// Rows renders the board in the format ParseBoard reads.
func (bs *BoardState) Rows() []string {
	rows := make([]string, BoardSize)
	for y := 0; y < BoardSize; y++ {
		var sb strings.Builder
		for x := 0; x < BoardSize; x++ {
			sb.WriteRune(bs.Cells[y][x].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

func (bs *BoardState) String() string {
	return strings.Join(bs.Rows(), "\n")
}
