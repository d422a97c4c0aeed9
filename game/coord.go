package game

import "fmt"

// BoardSize is the width and height of the Tablut board.
const BoardSize = 9

// Coord is a cell on the board. X is the column, Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Center returns the throne.
func Center() Coord {
	return Coord{X: BoardSize / 2, Y: BoardSize / 2}
}

var corners = []Coord{
	{0, 0},
	{0, BoardSize - 1},
	{BoardSize - 1, 0},
	{BoardSize - 1, BoardSize - 1},
}

// Corners returns the four corner cells.
func Corners() []Coord {
	out := make([]Coord, len(corners))
	copy(out, corners)
	return out
}

func IsCorner(c Coord) bool {
	for _, corner := range corners {
		if c == corner {
			return true
		}
	}
	return false
}

// DistanceToClosestCorner returns the Manhattan distance from c to the nearest corner.
func DistanceToClosestCorner(c Coord) int {
	best := -1
	for _, corner := range corners {
		d := abs(c.X-corner.X) + abs(c.Y-corner.Y)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// directions in neighbour enumeration order: left, right, up, down
var directions = []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the orthogonal neighbours of c that lie on the board.
func Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(directions))
	for _, d := range directions {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

func IsCenterOrNeighborCenter(c Coord) bool {
	center := Center()
	return abs(c.X-center.X)+abs(c.Y-center.Y) <= 1
}

// SandwichCoord returns the cell on the far side of neighbor as seen from ref.
// ok is false when that cell is off the board.
func SandwichCoord(neighbor, ref Coord) (c Coord, ok bool) {
	c = Coord{X: 2*neighbor.X - ref.X, Y: 2*neighbor.Y - ref.Y}
	return c, c.InBounds()
}

// CoordsBetween returns the cells strictly between a and b. The result is empty
// when the two coordinates do not share a row or column.
func CoordsBetween(a, b Coord) []Coord {
	if a.X != b.X && a.Y != b.Y {
		return nil
	}
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	var out []Coord
	for c := (Coord{X: a.X + dx, Y: a.Y + dy}); c != b; c = (Coord{X: c.X + dx, Y: c.Y + dy}) {
		out = append(out, c)
	}
	return out
}

var edgeLines = buildEdgeLines()

func buildEdgeLines() map[Coord]struct{} {
	lines := make(map[Coord]struct{})
	for i, from := range corners {
		for _, to := range corners[i+1:] {
			for _, c := range CoordsBetween(from, to) {
				lines[c] = struct{}{}
			}
		}
	}
	return lines
}

// OnEdgeLine reports whether c lies on one of the four corner-to-corner edge lines.
func OnEdgeLine(c Coord) bool {
	_, ok := edgeLines[c]
	return ok
}

var keyAreas = []Coord{
	{1, 2}, {2, 1},
	{1, 6}, {6, 1},
	{2, 7}, {7, 2},
	{6, 7}, {7, 6},
}

// KeyAreas returns the eight near-corner cells that matter for containing the king.
func KeyAreas() []Coord {
	out := make([]Coord, len(keyAreas))
	copy(out, keyAreas)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
