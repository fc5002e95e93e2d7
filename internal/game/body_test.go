package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestBody_StepFollowsTheLeader(t *testing.T) {
	b := newBodyFrom(Position{60, 0}, Position{40, 0}, Position{20, 0})
	b.Step(Down, 20)

	want := []Position{{60, 20}, {60, 0}, {40, 0}}
	got := b.Targets()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("target %d = %v, want %v", i, got[i], want[i])
		}
	}
	if b.Head() != (Position{60, 0}) {
		t.Fatalf("committed head should not move before Advance, got %v", b.Head())
	}

	b.Advance()
	if b.Head() != (Position{60, 20}) {
		t.Fatalf("expected head (60,20) after Advance, got %v", b.Head())
	}
}

// Each segment must inherit its predecessor's prior position and the length
// must stay fixed across any sequence of steps.
func TestBody_StepInvariantOverRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test only
	dirs := []Direction{Right, Left, Down, Up}
	b := newBodyFrom(Position{200, 200}, Position{180, 200}, Position{160, 200}, Position{140, 200}, Position{120, 200})

	for step := 0; step < 200; step++ {
		prior := b.Targets()
		b.Step(dirs[rng.Intn(len(dirs))], 20)
		b.Advance()
		segs := b.Segments()
		if len(segs) != len(prior) {
			t.Fatalf("step %d: length changed %d → %d", step, len(prior), len(segs))
		}
		for i := 1; i < len(segs); i++ {
			if segs[i] != prior[i-1] {
				t.Fatalf("step %d: segment %d = %v, want predecessor's prior %v", step, i, segs[i], prior[i-1])
			}
		}
		if segs[0].X%20 != 0 || segs[0].Y%20 != 0 {
			t.Fatalf("step %d: head %v off the grid", step, segs[0])
		}
	}
}

func TestBody_GrowColocatesWithTail(t *testing.T) {
	b := newBodyFrom(Position{40, 0}, Position{20, 0})
	b.Grow()
	if b.Len() != 3 {
		t.Fatalf("expected length 3, got %d", b.Len())
	}
	if b.Tail() != (Position{20, 0}) {
		t.Fatalf("new tail should sit on the old tail, got %v", b.Tail())
	}

	b.Step(Right, 20)
	b.Advance()
	want := []Position{{60, 0}, {40, 0}, {20, 0}}
	for i, p := range b.Segments() {
		if p != want[i] {
			t.Fatalf("segment %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestBody_GrowthPlaceholderIsNotSelfHit(t *testing.T) {
	b := NewBody(Position{60, 0})
	b.Grow()
	if b.HitsSelf() {
		t.Fatal("a fresh growth segment on the head should not count as a self hit")
	}
}

func TestBody_HitsSelf(t *testing.T) {
	b := newBodyFrom(Position{20, 20}, Position{40, 20}, Position{40, 40}, Position{20, 40}, Position{20, 20})
	if !b.HitsSelf() {
		t.Fatal("head overlapping the tail should be a self hit")
	}
	straight := newBodyFrom(Position{20, 20}, Position{40, 20}, Position{60, 20})
	if straight.HitsSelf() {
		t.Fatal("straight body should not hit itself")
	}
}

func TestBody_SetHeadTargetLeavesRestAlone(t *testing.T) {
	b := newBodyFrom(Position{40, 0}, Position{20, 0})
	b.SetHeadTarget(Position{200, 200})
	b.Advance()
	if b.Head() != (Position{200, 200}) {
		t.Fatalf("expected teleported head, got %v", b.Head())
	}
	if b.Tail() != (Position{20, 0}) {
		t.Fatalf("tail should not move, got %v", b.Tail())
	}
}

func TestBody_WrapHeadXUpdatesBothBuffers(t *testing.T) {
	b := NewBody(Position{780, 400})
	b.WrapHeadX(0)
	if b.Head() != (Position{0, 400}) || b.HeadTarget() != (Position{0, 400}) {
		t.Fatalf("expected head and target at (0,400), got %v / %v", b.Head(), b.HeadTarget())
	}
}
