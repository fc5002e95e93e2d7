package game

import "testing"

func TestSnap_FloorsToCell(t *testing.T) {
	cases := []struct {
		in, want Position
	}{
		{Position{0, 0}, Position{0, 0}},
		{Position{59, 41}, Position{40, 40}},
		{Position{20, 19}, Position{20, 0}},
		{Position{799, 799}, Position{780, 780}},
	}
	for _, c := range cases {
		if got := Snap(c.in, 20); got != c.want {
			t.Fatalf("Snap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCellPosition_RoundTrip(t *testing.T) {
	col, row := CellOf(Position{X: 140, Y: 260}, 20)
	if col != 7 || row != 13 {
		t.Fatalf("expected cell (7,13), got (%d,%d)", col, row)
	}
	if p := CellPosition(col, row, 20); p != (Position{X: 140, Y: 260}) {
		t.Fatalf("expected (140,260), got %v", p)
	}
}

func TestPositionAdd_MovesWholeCells(t *testing.T) {
	p := Position{X: 40, Y: 40}
	if got := p.Add(Left, 20); got != (Position{X: 20, Y: 40}) {
		t.Fatalf("left: got %v", got)
	}
	if got := p.Add(Down, 20); got != (Position{X: 40, Y: 60}) {
		t.Fatalf("down: got %v", got)
	}
}

func TestCanTurn_OnlyPerpendicular(t *testing.T) {
	dirs := []Direction{Right, Left, Down, Up}
	for _, cur := range dirs {
		for _, next := range dirs {
			perpendicular := cur.X*next.X+cur.Y*next.Y == 0
			if got := CanTurn(cur, next); got != perpendicular {
				t.Fatalf("CanTurn(%s, %s) = %v, want %v", cur, next, got, perpendicular)
			}
		}
	}
}

func TestCanTurn_RejectsReversal(t *testing.T) {
	pairs := [][2]Direction{{Right, Left}, {Left, Right}, {Up, Down}, {Down, Up}}
	for _, p := range pairs {
		if CanTurn(p[0], p[1]) {
			t.Fatalf("reversal %s → %s should be rejected", p[0], p[1])
		}
	}
}
