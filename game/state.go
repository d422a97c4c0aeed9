package game

import "errors"

// MaxTurns is the number of full turns (one move each) before a game is drawn.
const MaxTurns = 100

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrInvalidBoard = errors.New("invalid board")
)

var muscoviteStart = []Coord{
	{3, 0}, {4, 0}, {5, 0}, {4, 1},
	{3, 8}, {4, 8}, {5, 8}, {4, 7},
	{0, 3}, {0, 4}, {0, 5}, {1, 4},
	{8, 3}, {8, 4}, {8, 5}, {7, 4},
}

var swedeStart = []Coord{
	{4, 2}, {4, 3}, {4, 5}, {4, 6},
	{2, 4}, {3, 4}, {5, 4}, {6, 4},
}

// BoardState is a Tablut position. It is a plain value: copying the struct
// copies the whole board.
type BoardState struct {
	Cells [BoardSize][BoardSize]Piece // indexed [y][x]
	Turn  Player                      // side to move
	Turns int                         // full turns played
	Won   Player                      // NoWinner while the game is running
	King  Coord                       // last known king position
}

// NewBoardState returns the opening position with the Muscovites to move.
func NewBoardState() *BoardState {
	bs := &BoardState{Turn: Muscovite, Won: NoWinner}
	for _, c := range muscoviteStart {
		bs.set(c, Black)
	}
	for _, c := range swedeStart {
		bs.set(c, White)
	}
	bs.set(Center(), King)
	bs.King = Center()
	return bs
}

func (bs *BoardState) Copy() *BoardState {
	cp := *bs
	return &cp
}

func (bs *BoardState) Clone() State {
	return bs.Copy()
}

func (bs *BoardState) Winner() Player {
	return bs.Won
}

func (bs *BoardState) TurnPlayer() Player {
	return bs.Turn
}

func (bs *BoardState) Opponent() Player {
	return bs.Turn.Other()
}

func (bs *BoardState) TurnNumber() int {
	return bs.Turns
}

func (bs *BoardState) KingPosition() Coord {
	return bs.King
}

func (bs *BoardState) PieceAt(c Coord) Piece {
	return bs.Cells[c.Y][c.X]
}

func (bs *BoardState) CoordIsEmpty(c Coord) bool {
	return bs.PieceAt(c) == Empty
}

// IsOpponentPieceAt reports whether c holds a piece of the side not to move.
func (bs *BoardState) IsOpponentPieceAt(c Coord) bool {
	return bs.PieceAt(c).Owner() == bs.Opponent()
}

// IsHostileToKing reports whether c holds a Muscovite.
func (bs *BoardState) IsHostileToKing(c Coord) bool {
	return bs.PieceAt(c) == Black
}

// NumberPlayerPieces counts p's pieces on the board. The king counts for the Swedes.
func (bs *BoardState) NumberPlayerPieces(p Player) int {
	n := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if bs.Cells[y][x] != Empty && bs.Cells[y][x].Owner() == p {
				n++
			}
		}
	}
	return n
}

// PlayerPieceCoordinates returns the cells holding the side to move's pieces in row-major order.
func (bs *BoardState) PlayerPieceCoordinates() []Coord {
	var out []Coord
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if bs.Cells[y][x] != Empty && bs.Cells[y][x].Owner() == bs.Turn {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

func (bs *BoardState) set(c Coord, p Piece) {
	bs.Cells[c.Y][c.X] = p
}
