package core

// Mode is the output mode in effect for the current tick. A mode set in
// tick t stays in effect through tick t+1 and then reverts to ModeNumeric
// unless reasserted.
type Mode uint8

const (
	// ModeNumeric prints pond output as pints (default).
	ModeNumeric Mode = iota
	// ModeVoid discards pond output.
	ModeVoid
	// ModeASCII prints pond output as a character code.
	ModeASCII
	// ModeASCIIIn makes the next god-fill read a character instead of an integer.
	ModeASCIIIn
	// ModeWellies turns the next fall-over into a loop-back instead of a branch.
	ModeWellies
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeVoid:
		return "void"
	case ModeASCII:
		return "ascii"
	case ModeASCIIIn:
		return "ascii-in"
	case ModeWellies:
		return "wellies-loop"
	default:
		return "unknown"
	}
}
