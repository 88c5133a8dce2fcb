package engine

import (
	"fmt"

	"github.com/vovakirdan/leaky-buckets/internal/core"
	"github.com/vovakirdan/leaky-buckets/internal/lang"
)

// Host supplies the engine's three I/O callbacks. Calls are synchronous
// and may block the driver; they only ever happen mid-tick, so a host
// that pauses between ticks never sees one in flight.
type Host interface {
	// Emit delivers one piece of pond output (already formatted).
	Emit(text string)
	// ReadInt requests one integer from the outside world.
	ReadInt() (int64, error)
	// ReadRune requests one character from the outside world.
	ReadRune() (rune, error)
}

// TickKind says what one Step call did.
type TickKind int

const (
	// TickExecuted means one instruction ran (diffusion plus effect).
	TickExecuted TickKind = iota
	// TickSkipped means a line was passed over by an active branch
	// countdown; no time passed.
	TickSkipped
	// TickBootstrap means a landmark declaration was consumed.
	TickBootstrap
	// TickFinished means the program has terminated normally.
	TickFinished
)

// TickResult reports the outcome of one Step call.
type TickResult struct {
	Kind   TickKind
	Line   lang.Line // the line that was processed (zero value for TickFinished)
	Cursor int       // index of that line in the program
}

// landmarkOrder is the fixed bootstrap declaration order.
var landmarkOrder = [3]lang.LandmarkKind{lang.LandmarkDepot, lang.LandmarkTap, lang.LandmarkPond}

// Machine is the resumable stepper: an explicit state machine in place
// of the coroutine the engine was first written around. The host loop,
// batch or interactive, just calls Step until Finished.
type Machine struct {
	world *World
	lines []lang.Line
	host  Host

	cursor    int
	countdown int // pending close-wellies skips from a branch signal
	bound     int // landmarks bound so far (0..3)
	fixed     bool
	finished  bool
	halted    error
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithFixedLandmarks skips bootstrap parsing and uses the constant
// landmark layout instead of the three declaration lines.
func WithFixedLandmarks() Option {
	return func(m *Machine) {
		m.fixed = true
	}
}

// New builds a machine over an already-normalized program.
func New(lines []lang.Line, host Host, opts ...Option) *Machine {
	m := &Machine{lines: lines, host: host}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()
	return m
}

// Reset discards all state and rebuilds the initial world over the same
// program. A machine is never partially reset.
func (m *Machine) Reset() {
	m.world = NewWorld()
	m.cursor = 0
	m.countdown = 0
	m.bound = 0
	m.finished = false
	m.halted = nil
	if m.fixed {
		m.world.BindFixedLandmarks()
		m.bound = len(landmarkOrder)
	}
}

// World exposes the state for rendering and inspection. Between ticks it
// is always a consistent snapshot.
func (m *Machine) World() *World {
	return m.world
}

// Finished reports whether the program has terminated (normally or fatally).
func (m *Machine) Finished() bool {
	return m.finished || m.halted != nil
}

// Halted returns the fatal error that stopped the machine, or nil.
func (m *Machine) Halted() error {
	return m.halted
}

// Bound reports whether all three landmarks have been fixed.
func (m *Machine) Bound() bool {
	return m.bound == len(landmarkOrder)
}

// Lines returns the normalized program the machine executes.
func (m *Machine) Lines() []lang.Line {
	return m.lines
}

// Cursor returns the current line index.
func (m *Machine) Cursor() int {
	return m.cursor
}

// CurrentLine returns the line Step would process next, if any.
func (m *Machine) CurrentLine() (lang.Line, bool) {
	c := m.cursor
	for c < len(m.lines) && m.lines[c].Text == "" {
		c++
	}
	if c >= len(m.lines) {
		return lang.Line{}, false
	}
	return m.lines[c], true
}

// Step advances execution by one line. Errors are fatal: once Step
// returns a non-nil error the machine is halted and every further call
// fails with an internal error.
func (m *Machine) Step() (TickResult, error) {
	if m.halted != nil {
		return TickResult{}, core.Internalf("machine has halted: %v", m.halted)
	}
	if m.finished {
		return TickResult{Kind: TickFinished}, nil
	}
	if m.host == nil {
		return TickResult{}, m.halt(core.Internalf("no host attached"))
	}

	// Blank lines are no-ops consuming no tick.
	for m.cursor < len(m.lines) && m.lines[m.cursor].Text == "" {
		m.cursor++
	}

	if m.cursor >= len(m.lines) {
		if m.countdown > 0 {
			return TickResult{}, m.halt(core.Runtimef(0, "terminated without finding correct branch to close"))
		}
		m.finished = true
		return TickResult{Kind: TickFinished}, nil
	}

	line := m.lines[m.cursor]

	// Bootstrap: the first three non-blank lines fix the landmarks.
	if m.bound < len(landmarkOrder) {
		rel, err := lang.ParseLandmark(line.Text, landmarkOrder[m.bound], line.Num)
		if err != nil {
			return TickResult{}, m.halt(err)
		}
		pos := m.world.Pos.Neighbor(m.world.Facing.Plus(rel))
		switch landmarkOrder[m.bound] {
		case lang.LandmarkDepot:
			m.world.Depot = pos
		case lang.LandmarkTap:
			m.world.Tap = pos
		case lang.LandmarkPond:
			m.world.Pond = pos
		}
		m.bound++
		res := TickResult{Kind: TickBootstrap, Line: line, Cursor: m.cursor}
		m.cursor++
		return res, nil
	}

	// An active branch countdown skips lines without executing them;
	// only the close-wellies spelling consumes a skip.
	if m.countdown > 0 {
		if line.Text == lang.TakeWelliesOff {
			m.countdown--
		}
		res := TickResult{Kind: TickSkipped, Line: line, Cursor: m.cursor}
		m.cursor++
		return res, nil
	}

	instr, err := lang.Parse(line.Text, line.Num)
	if err != nil {
		return TickResult{}, m.halt(err)
	}

	// One tick: diffusion first, so it sees yesterday's effects, then
	// the instruction itself.
	m.world.stepDiffusion()
	m.world.modeChanged = false

	outcome, err := m.exec(instr, line)
	if err != nil {
		return TickResult{}, m.halt(err)
	}

	// A mode asserted in the previous tick survives through this one
	// and reverts now unless reasserted.
	if !m.world.modeChanged {
		m.world.Mode = core.ModeNumeric
	}
	m.world.Tick++

	res := TickResult{Kind: TickExecuted, Line: line, Cursor: m.cursor}
	switch {
	case outcome.jump:
		m.cursor = outcome.target
	case outcome.branch > 0:
		m.countdown = outcome.branch
		m.cursor++
	default:
		m.cursor++
	}
	return res, nil
}

// halt records the fatal error and poisons the machine.
func (m *Machine) halt(err error) error {
	m.halted = err
	return err
}

// Run steps the machine to completion. maxTicks > 0 bounds the number of
// executed ticks as a runaway guard for batch drivers.
func (m *Machine) Run(maxTicks int) error {
	ticks := 0
	for {
		res, err := m.Step()
		if err != nil {
			return err
		}
		if res.Kind == TickFinished {
			return nil
		}
		if res.Kind == TickExecuted {
			ticks++
			if maxTicks > 0 && ticks >= maxTicks {
				return fmt.Errorf("run exceeded %d ticks", maxTicks)
			}
		}
	}
}
