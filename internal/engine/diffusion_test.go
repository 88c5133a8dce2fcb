package engine

import (
	"testing"

	"github.com/vovakirdan/leaky-buckets/internal/core"
)

func TestGroundDecayReachesExactZero(t *testing.T) {
	w := NewWorld()
	p := core.Pos{3, 4}
	w.AddGround(p, 3)

	for i := 0; i < 3; i++ {
		w.stepDiffusion()
	}

	if _, ok := w.Ground[p]; ok {
		t.Errorf("position should be absent from the map after decaying to zero, has %d", w.Ground[p])
	}

	// Absence is idempotent: further ticks never resurrect the entry.
	w.stepDiffusion()
	if _, ok := w.Ground[p]; ok {
		t.Error("decayed position reappeared")
	}
}

func TestLeakConservation(t *testing.T) {
	w := NewWorld()
	p := core.Pos{0, 0}
	b := &Bucket{Capacity: 1000, Water: 500, Holes: 3}
	w.Placed[p] = b

	w.stepDiffusion()

	if b.Water != 497 {
		t.Errorf("bucket water = %d, want 497", b.Water)
	}
	var total int64
	for _, n := range p.Neighbors() {
		total += w.Ground[n]
	}
	if total != 3 {
		t.Errorf("deposited %d centi-pints, want 3 (splits plus remainder)", total)
	}
	// Tick 0: remainder goes north.
	if w.Ground[p.Neighbor(core.North)] != 3 {
		t.Errorf("north neighbor = %d, want the whole remainder 3", w.Ground[p.Neighbor(core.North)])
	}
}

func TestLeakRemainderRotates(t *testing.T) {
	w := NewWorld()
	p := core.Pos{5, 5}
	b := &Bucket{Capacity: 10000, Water: 10000, Holes: 1}
	w.Placed[p] = b

	// One centi-pint escapes per tick; the recipient cycles N, E, S, W.
	want := []core.Dir{core.North, core.East, core.South, core.West}
	for tick, dir := range want {
		w.Ground = make(map[core.Pos]int64) // isolate each tick's deposit
		w.Tick = uint64(tick)
		w.stepDiffusion()
		if w.Ground[p.Neighbor(dir)] != 1 {
			t.Errorf("tick %d: neighbor %v = %d, want 1", tick, dir, w.Ground[p.Neighbor(dir)])
		}
	}
}

func TestDrainClampsNearEmpty(t *testing.T) {
	b := &Bucket{Capacity: 1000, Water: 2, Holes: 3}
	lost := drain(b)
	if b.Water != 0 {
		t.Errorf("water = %d, want 0", b.Water)
	}
	// The escaping amount is capped by what remains after the decrement.
	if lost != 0 {
		t.Errorf("lost = %d, want 0", lost)
	}
}

func TestHeldBucketLeaksOntoActor(t *testing.T) {
	w := NewWorld()
	w.Pos = core.Pos{2, 2}
	w.Held = &Bucket{Capacity: 1000, Water: 800, Holes: 5}

	w.stepDiffusion()

	if w.Held.Water != 795 {
		t.Errorf("held water = %d, want 795", w.Held.Water)
	}
	if w.Ground[w.Pos] != 5 {
		t.Errorf("ground under actor = %d, want the full lost amount 5", w.Ground[w.Pos])
	}
	for _, n := range w.Pos.Neighbors() {
		if w.Ground[n] != 0 {
			t.Errorf("neighbor %v received %d, held leaks never split", n, w.Ground[n])
		}
	}
}

func TestDecayRunsBeforeLeak(t *testing.T) {
	w := NewWorld()
	p := core.Pos{0, 0}
	w.AddGround(p.Neighbor(core.North), 1)
	w.Placed[p] = &Bucket{Capacity: 1000, Water: 1000, Holes: 4}

	w.stepDiffusion()

	// The old centi-pint decays away before the leak deposits a fresh one.
	if w.Ground[p.Neighbor(core.North)] != 1 {
		t.Errorf("north neighbor = %d, want 1", w.Ground[p.Neighbor(core.North)])
	}
}
