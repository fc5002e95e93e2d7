package game

// Body is the segment chain. Movement steps write to targets; Advance commits
// them into segments, which are what gets drawn and collided. Both slices
// always have the same length.
type Body struct {
	segments []Position
	targets  []Position
}

// NewBody returns a body of length 1 with its head at start.
func NewBody(start Position) *Body {
	return &Body{
		segments: []Position{start},
		targets:  []Position{start},
	}
}

// newBodyFrom builds a body whose committed and target positions are both
// segs. segs[0] is the head.
func newBodyFrom(segs ...Position) *Body {
	b := &Body{
		segments: make([]Position, len(segs)),
		targets:  make([]Position, len(segs)),
	}
	copy(b.segments, segs)
	copy(b.targets, segs)
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Head returns the committed head position.
func (b *Body) Head() Position {
	return b.segments[0]
}

// Tail returns the committed tail position.
func (b *Body) Tail() Position {
	return b.segments[len(b.segments)-1]
}

// HeadTarget returns where the head will be after the next Advance.
func (b *Body) HeadTarget() Position {
	return b.targets[0]
}

// Segments returns a copy of the committed positions, head first.
func (b *Body) Segments() []Position {
	out := make([]Position, len(b.segments))
	copy(out, b.segments)
	return out
}

// Targets returns a copy of the pending positions, head first.
func (b *Body) Targets() []Position {
	out := make([]Position, len(b.targets))
	copy(out, b.targets)
	return out
}

// Step moves the targets one cell: every segment takes the target of the one
// ahead of it and the head moves by dir.
func (b *Body) Step(dir Direction, cell int) {
	for i := len(b.targets) - 1; i > 0; i-- {
		b.targets[i] = b.targets[i-1]
	}
	b.targets[0] = b.targets[0].Add(dir, cell)
}

// Grow appends one segment at the committed tail.
func (b *Body) Grow() {
	tail := b.Tail()
	b.segments = append(b.segments, tail)
	b.targets = append(b.targets, tail)
}

// Advance commits the targets.
func (b *Body) Advance() {
	copy(b.segments, b.targets)
}

// SetHeadTarget overwrites the head target without moving the rest of the body.
func (b *Body) SetHeadTarget(p Position) {
	b.targets[0] = p
}

// WrapHeadX moves the head horizontally to x, both committed and pending.
func (b *Body) WrapHeadX(x int) {
	b.segments[0].X = x
	b.targets[0].X = x
}

// HitsSelf reports whether the committed head overlaps another segment.
// A segment sitting on its predecessor is a fresh growth placeholder and is
// skipped until it has moved once.
func (b *Body) HitsSelf() bool {
	head := b.segments[0]
	for i := 1; i < len(b.segments); i++ {
		if b.segments[i] == b.segments[i-1] {
			continue
		}
		if b.segments[i] == head {
			return true
		}
	}
	return false
}
