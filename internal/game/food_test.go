package game

import "testing"

func TestSpawner_StaysOffTheOuterRing(t *testing.T) {
	a := defaultArena()
	sp := NewSpawner(7)
	seenLo, seenHi := false, false
	for i := 0; i < 5000; i++ {
		p := sp.Spawn(a)
		if p.X%a.Cell != 0 || p.Y%a.Cell != 0 {
			t.Fatalf("food %v is off the grid", p)
		}
		col, row := CellOf(p, a.Cell)
		if col < 1 || col > a.Cols()-2 || row < 1 || row > a.Rows()-2 {
			t.Fatalf("food %v in cell (%d,%d) outside [1,%d]", p, col, row, a.Cols()-2)
		}
		seenLo = seenLo || col == 1
		seenHi = seenHi || col == a.Cols()-2
	}
	if !seenLo || !seenHi {
		t.Fatalf("expected both extreme columns over 5000 draws, lo=%v hi=%v", seenLo, seenHi)
	}
}

func TestSpawner_DeterministicForSeed(t *testing.T) {
	a := defaultArena()
	s1, s2 := NewSpawner(99), NewSpawner(99)
	for i := 0; i < 50; i++ {
		p1, p2 := s1.Spawn(a), s2.Spawn(a)
		if p1 != p2 {
			t.Fatalf("draw %d differs: %v vs %v", i, p1, p2)
		}
	}
}

func TestSpawner_SmallestArenaHasOneCell(t *testing.T) {
	a := Arena{Width: 60, Height: 60, Cell: 20}
	sp := NewSpawner(1)
	for i := 0; i < 10; i++ {
		if p := sp.Spawn(a); p != (Position{20, 20}) {
			t.Fatalf("expected the single inner cell (20,20), got %v", p)
		}
	}
}
