package game

// Arena is the playable rectangle with a portal gap centred on each side wall.
type Arena struct {
	Width        int
	Height       int
	Cell         int
	PortalHeight int
}

// Outcome is the result of checking the head against the walls.
type Outcome int

const (
	OutcomeClear Outcome = iota
	OutcomeWrapped
	OutcomeWall
)

var outcomeNames = [...]string{"clear", "wrapped", "wall"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Cols and Rows count the whole cells across the area.
func (a Arena) Cols() int { return a.Width / a.Cell }
func (a Arena) Rows() int { return a.Height / a.Cell }

// PortalBand returns the open band (lo, hi]: a y coordinate passes through a
// side portal iff lo < y <= hi.
func (a Arena) PortalBand() (lo, hi int) {
	return a.Height/2 - a.PortalHeight/2, a.Height/2 + a.PortalHeight/2
}

// PortalOpen reports whether y lies inside the portal band.
func (a Arena) PortalOpen(y int) bool {
	lo, hi := a.PortalBand()
	return y > lo && y <= hi
}

// Contains reports whether p lies inside the area.
func (a Arena) Contains(p Position) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

// ResolveWalls applies the wall and portal rules to a head position. When the
// head exits through a side portal it returns the wrapped position and
// OutcomeWrapped. There are no portals on the top and bottom walls.
func (a Arena) ResolveWalls(head Position) (Position, Outcome) {
	out := OutcomeClear
	switch {
	case head.X >= a.Width:
		if !a.PortalOpen(head.Y) {
			return head, OutcomeWall
		}
		head.X = 0
		out = OutcomeWrapped
	case head.X < 0:
		if !a.PortalOpen(head.Y) {
			return head, OutcomeWall
		}
		head.X = a.Width - a.Cell
		out = OutcomeWrapped
	}
	if head.Y >= a.Height || head.Y < 0 {
		return head, OutcomeWall
	}
	return head, out
}
