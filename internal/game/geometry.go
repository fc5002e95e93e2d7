package game

import "fmt"

// Position is a pixel coordinate inside the playable area. Positions held by
// the body and food are always whole multiples of the cell size.
type Position struct {
	X, Y int
}

// Add returns p translated by d whole cells of the given size.
func (p Position) Add(d Direction, cell int) Position {
	return Position{X: p.X + d.X*cell, Y: p.Y + d.Y*cell}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Snap floors a pixel coordinate onto the cell grid.
func Snap(p Position, cell int) Position {
	return Position{X: p.X / cell * cell, Y: p.Y / cell * cell}
}

// CellOf returns the grid column and row containing p.
func CellOf(p Position, cell int) (col, row int) {
	return p.X / cell, p.Y / cell
}

// CellPosition is the inverse of CellOf.
func CellPosition(col, row, cell int) Position {
	return Position{X: col * cell, Y: row * cell}
}

// Direction is a unit step along one axis.
type Direction struct {
	X, Y int
}

var (
	Right = Direction{X: 1}
	Left  = Direction{X: -1}
	Down  = Direction{Y: 1}
	Up    = Direction{Y: -1}
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return fmt.Sprintf("dir(%d,%d)", d.X, d.Y)
}

// CanTurn reports whether the head, moving along cur, may switch to next.
// A horizontal request needs the current X component at rest and a vertical
// request needs the current Y component at rest, so reversals and repeats of
// the current axis are always refused.
func CanTurn(cur, next Direction) bool {
	if next.X != 0 {
		return cur.X == 0
	}
	return cur.Y == 0
}
