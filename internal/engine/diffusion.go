package engine

import "github.com/vovakirdan/leaky-buckets/internal/core"

// stepDiffusion runs the once-per-tick water physics, before the tick's
// instruction is dispatched so it sees the previous instruction's
// effects. Two independent passes: ground decay, then bucket leaks.
func (w *World) stepDiffusion() {
	// Ground decay: every wet position loses 1 centi-pint; positions
	// reaching zero leave the map entirely.
	for p, v := range w.Ground {
		if v <= 1 {
			delete(w.Ground, p)
		} else {
			w.Ground[p] = v - 1
		}
	}

	// Placed bucket leaks. Each holed bucket loses water through its
	// holes; the escaping amount splits evenly over the four neighbors
	// with the remainder going to the tick-indexed direction so no
	// single neighbor is favored across ticks.
	spillDir := core.Dir(w.Tick % 4)
	for p, b := range w.Placed {
		lost := drain(b)
		if lost == 0 {
			continue
		}
		share := lost / 4
		rem := lost % 4
		for i, n := range p.Neighbors() {
			amount := share
			if core.Dir(i) == spillDir {
				amount += rem
			}
			w.AddGround(n, amount)
		}
	}

	// A held holed bucket drips straight onto the actor's square.
	if w.Held != nil {
		w.AddGround(w.Pos, drain(w.Held))
	}
}

// drain applies one tick of leakage to a bucket and returns the amount
// that escapes: the water first drops by the hole count (clamped at
// zero), and the escaping amount is capped by what is left afterwards.
func drain(b *Bucket) int64 {
	if b.Holes == 0 || b.Water == 0 {
		return 0
	}
	holes := int64(b.Holes)
	after := b.Water - holes
	if after < 0 {
		after = 0
	}
	b.Water = after
	lost := holes
	if after < lost {
		lost = after
	}
	return lost
}

// spill distributes an overflow amount over the four neighbors of
// target using the same fairness rule as bucket leaks: equal quarters,
// with the indivisible remainder going to target's own neighbor in the
// tick-indexed direction. The remainder orbits the square being spilled
// from, never the actor's square, even when the two differ.
func (w *World) spill(target core.Pos, amount int64) {
	if amount <= 0 {
		return
	}
	spillDir := core.Dir(w.Tick % 4)
	share := amount / 4
	rem := amount % 4
	for i, n := range target.Neighbors() {
		a := share
		if core.Dir(i) == spillDir {
			a += rem
		}
		w.AddGround(n, a)
	}
}
