// Package engine executes Leaky Buckets programs: it owns the world
// state, the per-tick diffusion physics, the instruction dispatcher, and
// the resumable stepper that drives them.
package engine

import (
	"github.com/vovakirdan/leaky-buckets/internal/core"
)

// Bucket is owned by exactly one place at a time: either the actor's
// hands or a lattice position. Water is centi-pints and always satisfies
// 0 <= Water <= Capacity; mutations that would break that fail instead
// of clamping.
type Bucket struct {
	Capacity int64
	Water    int64
	Holes    int
}

// Remaining returns the unfilled capacity in centi-pints.
func (b *Bucket) Remaining() int64 {
	return b.Capacity - b.Water
}

// Marker records where a "put wellies on" happened so a later fall-over
// can loop back to it with position and facing restored.
type Marker struct {
	Cursor int // index into the program's line list
	Pos    core.Pos
	Facing core.Dir
}

// World is the complete mutable simulation state for one running
// program. It is created once at program start and mutated only by the
// dispatch of a single instruction per tick.
type World struct {
	Pos    core.Pos
	Facing core.Dir

	// Landmark positions, bound once at bootstrap and immutable after.
	Depot core.Pos
	Tap   core.Pos
	Pond  core.Pos

	Placed map[core.Pos]*Bucket
	Ground map[core.Pos]int64 // centi-pints; zero entries are removed, never stored
	Held   *Bucket

	Mode        core.Mode
	modeChanged bool

	Wellies      []Marker
	WelliesCount int // always equal to len(Wellies)

	Tick uint64
}

// NewWorld returns the initial world: actor at the origin facing north,
// numeric mode, everything else empty. Landmarks are bound separately.
func NewWorld() *World {
	return &World{
		Facing: core.North,
		Placed: make(map[core.Pos]*Bucket),
		Ground: make(map[core.Pos]int64),
		Mode:   core.ModeNumeric,
	}
}

// BindFixedLandmarks places the landmarks at the constant layout used
// when bootstrap declarations are disabled: depot ahead, tap to the
// right, pond to the left of the starting position.
func (w *World) BindFixedLandmarks() {
	w.Depot = w.Pos.Neighbor(core.North)
	w.Tap = w.Pos.Neighbor(core.East)
	w.Pond = w.Pos.Neighbor(core.West)
}

// IsLandmark reports whether p holds the depot, tap, or pond.
func (w *World) IsLandmark(p core.Pos) bool {
	return p == w.Depot || p == w.Tap || p == w.Pond
}

// Occupied reports whether p holds a placed bucket or a landmark.
// A position holds at most one of the two.
func (w *World) Occupied(p core.Pos) bool {
	if _, ok := w.Placed[p]; ok {
		return true
	}
	return w.IsLandmark(p)
}

// AddGround deposits centi-pints of water at p. Zero deposits never
// create an entry.
func (w *World) AddGround(p core.Pos, amount int64) {
	if amount <= 0 {
		return
	}
	w.Ground[p] += amount
}

// RemoveGround takes up to amount centi-pints from p, clamped at zero,
// deleting the entry when it empties.
func (w *World) RemoveGround(p core.Pos, amount int64) {
	have := w.Ground[p]
	if have <= amount {
		delete(w.Ground, p)
		return
	}
	w.Ground[p] = have - amount
}

// SetMode changes the output mode and marks it asserted for this tick,
// which defers the automatic revert to numeric by one tick.
func (w *World) SetMode(m core.Mode) {
	w.Mode = m
	w.modeChanged = true
}

// pushMarker records a wellies marker; count and stack move together.
func (w *World) pushMarker(m Marker) {
	w.Wellies = append(w.Wellies, m)
	w.WelliesCount++
}

// popMarker removes and returns the top marker. Callers check depth first.
func (w *World) popMarker() Marker {
	m := w.Wellies[len(w.Wellies)-1]
	w.Wellies = w.Wellies[:len(w.Wellies)-1]
	w.WelliesCount--
	return m
}

// GroundAt returns the ground water at p in centi-pints.
func (w *World) GroundAt(p core.Pos) int64 {
	return w.Ground[p]
}
