// Package core provides fundamental types for the Leaky Buckets engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the simulation logic pure and testable.
package core

// Pos is a point on the unbounded 2D lattice the actor walks on.
type Pos struct {
	X, Y int
}

// Add returns the component-wise sum of two positions.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neighbor returns the adjacent position one step in the given direction.
func (p Pos) Neighbor(d Dir) Pos {
	return p.Add(d.Delta())
}

// Neighbors returns the four cardinal neighbors in N, E, S, W order.
func (p Pos) Neighbors() [4]Pos {
	return [4]Pos{
		p.Neighbor(North),
		p.Neighbor(East),
		p.Neighbor(South),
		p.Neighbor(West),
	}
}

// Dir is a cardinal direction. The declaration order N, E, S, W matters:
// rotation is index arithmetic mod 4, and the leak remainder cycles
// through directions in this order.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// String returns the single-letter compass name of the direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Delta returns the lattice offset for one step in this direction.
// North increases Y, South decreases it.
func (d Dir) Delta() Pos {
	switch d {
	case North:
		return Pos{0, 1}
	case East:
		return Pos{1, 0}
	case South:
		return Pos{0, -1}
	case West:
		return Pos{-1, 0}
	default:
		return Pos{}
	}
}

// Plus composes this direction with a relative one: rel is interpreted
// as an offset where North means "no change" and East means "90° clockwise".
// Used both for turning and for resolving "<relative-facing>" phrases.
func (d Dir) Plus(rel Dir) Dir {
	return Dir((uint8(d) + uint8(rel)) % 4)
}
