package engine

import (
	"github.com/vovakirdan/leaky-buckets/internal/core"
	"github.com/vovakirdan/leaky-buckets/internal/lang"
)

// outcome is the transient dispatch result the driver interprets:
// normal advance, a branch signal, or a loop-back jump.
type outcome struct {
	branch int  // skip the next N close-wellies lines
	jump   bool // redirect the cursor instead of advancing
	target int
}

// exec dispatches one parsed instruction against the world. Each tick
// either fully commits all its effects or fails fatally; preconditions
// are checked before any mutation.
func (m *Machine) exec(instr lang.Instr, line lang.Line) (outcome, error) {
	w := m.world

	switch in := instr.(type) {
	case lang.Collect:
		if w.Pos.Neighbor(w.Facing) != w.Depot {
			return outcome{}, core.Runtimef(line.Num, "must be facing bucket depot in order to collect a bucket")
		}
		if w.Held != nil {
			return outcome{}, core.Runtimef(line.Num, "cannot collect a bucket; already holding one")
		}
		w.Held = &Bucket{Capacity: in.Capacity, Holes: in.Holes}
		return outcome{}, nil

	case lang.Turn:
		if w.Held != nil {
			return outcome{}, core.Runtimef(line.Num, "cannot turn while holding a bucket")
		}
		if w.GroundAt(w.Pos) >= core.CentiPerPint {
			return m.fallOver(line)
		}
		w.Facing = w.Facing.Plus(in.Rel)
		return outcome{}, nil

	case lang.FillToTop:
		if w.Pos.Neighbor(w.Facing) != w.Tap {
			return outcome{}, core.Runtimef(line.Num, "must be facing the tap in order to fill a bucket")
		}
		if w.Held == nil {
			return outcome{}, core.Runtimef(line.Num, "must be holding a bucket in order to fill it")
		}
		w.Held.Water = w.Held.Capacity
		return outcome{}, nil

	case lang.FillFromGod:
		if w.Held == nil {
			return outcome{}, core.Runtimef(line.Num, "must be holding a bucket in order to fill it")
		}
		var pints int64
		if w.Mode == core.ModeASCIIIn {
			r, err := m.host.ReadRune()
			if err != nil {
				return outcome{}, core.Runtimef(line.Num, "reading input: %v", err)
			}
			pints = int64(r)
		} else {
			v, err := m.host.ReadInt()
			if err != nil {
				return outcome{}, core.Runtimef(line.Num, "reading input: %v", err)
			}
			pints = v
		}
		return outcome{}, m.addToHeld(core.PintsToCenti(pints), line)

	case lang.FillPints:
		if w.Pos.Neighbor(w.Facing) != w.Tap {
			return outcome{}, core.Runtimef(line.Num, "must be facing the tap in order to fill a bucket")
		}
		if w.Held == nil {
			return outcome{}, core.Runtimef(line.Num, "must be holding a bucket in order to fill it")
		}
		return outcome{}, m.addToHeld(in.Amount, line)

	case lang.PlaceDown:
		if w.Held == nil {
			return outcome{}, core.Runtimef(line.Num, "must be holding a bucket in order to put it down")
		}
		target := w.Pos.Neighbor(w.Facing.Plus(in.Rel))
		if w.Occupied(target) {
			return outcome{}, core.Runtimef(line.Num, "cannot place a bucket in an occupied position")
		}
		w.Placed[target] = w.Held
		w.Held = nil
		return outcome{}, nil

	case lang.PickUp:
		if w.Held != nil {
			return outcome{}, core.Runtimef(line.Num, "must not be holding a bucket in order to pick one up")
		}
		target := w.Pos.Neighbor(w.Facing.Plus(in.Rel))
		b, ok := w.Placed[target]
		if !ok {
			return outcome{}, core.Runtimef(line.Num, "cannot pick up a bucket from an unoccupied position")
		}
		delete(w.Placed, target)
		w.Held = b
		return outcome{}, nil

	case lang.EmptyOnto:
		return outcome{}, m.emptyOnto(in, line)

	case lang.EmptyHere:
		if w.Held == nil {
			return outcome{}, core.Runtimef(line.Num, "must be holding a bucket in order to empty it")
		}
		w.AddGround(w.Pos, w.Held.Water)
		w.Held.Water = 0
		return outcome{}, nil

	case lang.Move:
		// Atomic movement: every tile along the path is validated
		// before the position changes at all.
		delta := w.Facing.Delta()
		q := w.Pos
		for i := 0; i < in.Steps; i++ {
			q = q.Add(delta)
			if w.Occupied(q) {
				return outcome{}, core.Runtimef(line.Num, "cannot move through an occupied square")
			}
		}
		w.Pos = q
		return outcome{}, nil

	case lang.Shrink:
		if w.Held == nil {
			return outcome{}, core.Runtimef(line.Num, "must be holding a bucket in order to shrink it")
		}
		w.Held.Capacity = w.Held.Water
		return outcome{}, nil

	case lang.Wish:
		w.SetMode(in.Mode)
		return outcome{}, nil

	case lang.WelliesOn:
		w.pushMarker(Marker{Cursor: m.cursor, Pos: w.Pos, Facing: w.Facing})
		return outcome{}, nil

	case lang.WelliesOff:
		if w.WelliesCount == 0 {
			return outcome{}, core.Runtimef(line.Num, "cannot take wellies off when none are worn")
		}
		w.popMarker()
		return outcome{}, nil

	case lang.Evaporate:
		w.RemoveGround(w.Pos, in.Amount)
		return outcome{}, nil

	default:
		return outcome{}, core.Internalf("unhandled instruction %T", instr)
	}
}

// fallOver handles a turn attempted on a square holding at least one
// pint: a loop-back in wellies mode, a branch signal otherwise.
func (m *Machine) fallOver(line lang.Line) (outcome, error) {
	w := m.world
	if w.Mode == core.ModeWellies {
		if w.WelliesCount == 0 {
			return outcome{}, core.Runtimef(line.Num, "fell over with no wellies on")
		}
		marker := w.popMarker()
		w.Pos = marker.Pos
		w.Facing = marker.Facing
		return outcome{jump: true, target: marker.Cursor}, nil
	}
	n := int(w.GroundAt(w.Pos) / core.CentiPerPint)
	if n > w.WelliesCount {
		return outcome{}, core.Runtimef(line.Num, "fell over without enough wellies")
	}
	return outcome{branch: n}, nil
}

// addToHeld pours amount into the held bucket, failing rather than
// clamping when the result would leave the [0, capacity] range.
func (m *Machine) addToHeld(amount int64, line lang.Line) error {
	b := m.world.Held
	after := b.Water + amount
	if after < 0 {
		return core.Runtimef(line.Num, "bucket water cannot go negative when filling")
	}
	if after > b.Capacity {
		return core.Runtimef(line.Num, "exceeded capacity of bucket when filling")
	}
	b.Water = after
	return nil
}

// emptyOnto implements the three target cases for emptying onto an
// adjacent square: a placed bucket, the pond, or bare ground.
func (m *Machine) emptyOnto(in lang.EmptyOnto, line lang.Line) error {
	w := m.world
	if w.Held == nil {
		return core.Runtimef(line.Num, "must be holding a bucket in order to empty it")
	}
	target := w.Pos.Neighbor(w.Facing.Plus(in.Rel))

	if other, ok := w.Placed[target]; ok {
		remaining := other.Remaining()
		switch {
		case remaining > w.Held.Water:
			other.Water += w.Held.Water
			w.Held.Water = 0
		case in.NoOverflow:
			// Fill the target and keep the rest; no error.
			other.Water = other.Capacity
			w.Held.Water -= remaining
		default:
			// Overflow splashes over the target's neighbors; none of
			// it comes back to the actor.
			overflow := w.Held.Water - remaining
			other.Water = other.Capacity
			w.Held.Water = 0
			w.spill(target, overflow)
		}
		return nil
	}

	if target == w.Pond {
		if in.NoOverflow {
			return core.Runtimef(line.Num, "cannot empty without overflow into the pond")
		}
		if err := m.pourIntoPond(line); err != nil {
			return err
		}
		w.Held.Water = 0
		return nil
	}

	if w.IsLandmark(target) {
		return core.Runtimef(line.Num, "cannot empty a bucket onto the depot or the tap")
	}

	// Bare ground.
	if in.NoOverflow {
		return core.Runtimef(line.Num, "cannot empty without overflow onto bare ground")
	}
	w.AddGround(target, w.Held.Water)
	w.Held.Water = 0
	return nil
}

// pourIntoPond produces output for the held water according to the mode
// in effect this tick. The caller zeroes the bucket regardless of mode.
func (m *Machine) pourIntoPond(line lang.Line) error {
	w := m.world
	switch w.Mode {
	case core.ModeNumeric:
		m.host.Emit(core.FormatPints(w.Held.Water))
	case core.ModeASCII:
		if w.Held.Water%core.CentiPerPint != 0 {
			return core.Runtimef(line.Num, "couldn't print as ascii bucket holding a fractional number of pints")
		}
		code := w.Held.Water / core.CentiPerPint
		if code >= 128 {
			return core.Runtimef(line.Num, "couldn't print as ascii bucket for which water level was > 127")
		}
		m.host.Emit(string(rune(code)))
	case core.ModeVoid, core.ModeASCIIIn, core.ModeWellies:
		// Output suppressed.
	}
	return nil
}
