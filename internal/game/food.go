package game

import "golang.org/x/exp/rand"

// Spawner places food on uniformly random cells, never on the outer ring.
// It does not avoid the body.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a spawner with a deterministic stream for seed.
func NewSpawner(seed uint64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn picks a cell with column and row in [1, n-2].
func (s *Spawner) Spawn(a Arena) Position {
	col := 1 + s.rng.Intn(a.Cols()-2)
	row := 1 + s.rng.Intn(a.Rows()-2)
	return CellPosition(col, row, a.Cell)
}
