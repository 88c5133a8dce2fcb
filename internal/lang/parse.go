package lang

import (
	"regexp"
	"strconv"

	"github.com/vovakirdan/leaky-buckets/internal/core"
)

// Instr is one recognized instruction. The set is closed: the dispatcher
// switches exhaustively over these types.
type Instr interface {
	isInstr()
}

// Collect creates a new held bucket at the depot. Capacity is already
// resolved to centi-pints (the "max" spelling becomes core.MaxCapacity).
type Collect struct {
	Capacity int64
	Holes    int
}

// Turn rotates the actor by a relative direction, subject to the
// fall-over check on wet ground.
type Turn struct {
	Rel core.Dir
}

// FillToTop fills the held bucket to capacity at the tap.
type FillToTop struct{}

// FillFromGod adds externally supplied water to the held bucket.
type FillFromGod struct{}

// FillPints adds a fixed amount (centi-pints) to the held bucket at the tap.
type FillPints struct {
	Amount int64
}

// PlaceDown puts the held bucket on an adjacent square.
type PlaceDown struct {
	Rel core.Dir
}

// PickUp lifts a placed bucket from an adjacent square.
type PickUp struct {
	Rel core.Dir
}

// EmptyOnto pours the held bucket onto an adjacent square.
type EmptyOnto struct {
	Rel        core.Dir
	NoOverflow bool
}

// EmptyHere pours the held bucket onto the actor's own square.
type EmptyHere struct{}

// Move advances the actor by a number of steps in the facing direction.
type Move struct {
	Steps int
}

// Shrink sets the held bucket's capacity to its current water level.
type Shrink struct{}

// Wish sets the output mode for the current tick.
type Wish struct {
	Mode core.Mode
}

// WelliesOn pushes a loop/branch marker and increments the wellies count.
type WelliesOn struct{}

// WelliesOff pops the marker stack and decrements the wellies count.
type WelliesOff struct{}

// Evaporate removes ground water (centi-pints) at the actor's square.
type Evaporate struct {
	Amount int64
}

func (Collect) isInstr()     {}
func (Turn) isInstr()        {}
func (FillToTop) isInstr()   {}
func (FillFromGod) isInstr() {}
func (FillPints) isInstr()   {}
func (PlaceDown) isInstr()   {}
func (PickUp) isInstr()      {}
func (EmptyOnto) isInstr()   {}
func (EmptyHere) isInstr()   {}
func (Move) isInstr()        {}
func (Shrink) isInstr()      {}
func (Wish) isInstr()        {}
func (WelliesOn) isInstr()   {}
func (WelliesOff) isInstr()  {}
func (Evaporate) isInstr()   {}

// TakeWelliesOff is the exact spelling of the close-wellies instruction.
// The driver matches skipped lines against it while a branch countdown
// is active, without dispatching them.
const TakeWelliesOff = "take wellies off"

const relFacing = `(in front of me|to my left|behind me|to my right)`

// relDir maps a "<relative-facing>" phrase to a relative direction,
// where North means "no change".
func relDir(phrase string) core.Dir {
	switch phrase {
	case "in front of me":
		return core.North
	case "to my right":
		return core.East
	case "behind me":
		return core.South
	case "to my left":
		return core.West
	}
	return core.North
}

// The instruction catalogue, in documented order. Shapes are mutually
// exclusive by leading keyword; the first match wins.
var (
	collectRe    = regexp.MustCompile(`^collect a (\d+|max) pint bucket( with (\d+) holes?)?$`)
	turnRe       = regexp.MustCompile(`^turn (left|right|around|all the way around)$`)
	fillTopRe    = regexp.MustCompile(`^fill the bucket to the top$`)
	fillGodRe    = regexp.MustCompile(`^let god fill the bucket as he wishes$`)
	fillPintsRe  = regexp.MustCompile(`^fill the bucket with (\d+|max) pints of water$`)
	placeRe      = regexp.MustCompile(`^place the bucket down ` + relFacing + `$`)
	pickUpRe     = regexp.MustCompile(`^pick up the bucket ` + relFacing + `$`)
	emptyOntoRe  = regexp.MustCompile(`^empty the bucket on ?to the square ` + relFacing + `( without overflow)?$`)
	emptyHereRe  = regexp.MustCompile(`^empty the bucket here$`)
	moveRe       = regexp.MustCompile(`^move (\d+) steps?$`)
	shrinkRe     = regexp.MustCompile(`^shrink my bucket$`)
	screamRe     = regexp.MustCompile(`^i wish to scream in ?to the void$`)
	speakRe      = regexp.MustCompile(`^i wish to speak to god$`)
	hearRe       = regexp.MustCompile(`^i wish to hear from god$`)
	returnedRe   = regexp.MustCompile(`^i wish to have my wellies returned$`)
	welliesOnRe  = regexp.MustCompile(`^put wellies on$`)
	welliesOffRe = regexp.MustCompile(`^` + TakeWelliesOff + `$`)
	evaporateRe  = regexp.MustCompile(`^evaporate (\d+) pints?$`)
)

// Parse matches one normalized line against the instruction catalogue.
// Unmatched text is a fatal unknown-instruction error carrying lineNum.
func Parse(text string, lineNum int) (Instr, error) {
	if m := collectRe.FindStringSubmatch(text); m != nil {
		capacity, err := parseVolume(m[1], lineNum)
		if err != nil {
			return nil, err
		}
		holes := 0
		if m[3] != "" {
			holes, err = strconv.Atoi(m[3])
			if err != nil {
				return nil, core.Unknownf(lineNum, "hole count out of range: %q", m[3])
			}
		}
		return Collect{Capacity: capacity, Holes: holes}, nil
	}
	if m := turnRe.FindStringSubmatch(text); m != nil {
		var rel core.Dir
		switch m[1] {
		case "left":
			rel = core.West
		case "right":
			rel = core.East
		case "around":
			rel = core.South
		case "all the way around":
			rel = core.North
		}
		return Turn{Rel: rel}, nil
	}
	if fillTopRe.MatchString(text) {
		return FillToTop{}, nil
	}
	if fillGodRe.MatchString(text) {
		return FillFromGod{}, nil
	}
	if m := fillPintsRe.FindStringSubmatch(text); m != nil {
		amount, err := parseVolume(m[1], lineNum)
		if err != nil {
			return nil, err
		}
		return FillPints{Amount: amount}, nil
	}
	if m := placeRe.FindStringSubmatch(text); m != nil {
		return PlaceDown{Rel: relDir(m[1])}, nil
	}
	if m := pickUpRe.FindStringSubmatch(text); m != nil {
		return PickUp{Rel: relDir(m[1])}, nil
	}
	if m := emptyOntoRe.FindStringSubmatch(text); m != nil {
		return EmptyOnto{Rel: relDir(m[1]), NoOverflow: m[2] != ""}, nil
	}
	if emptyHereRe.MatchString(text) {
		return EmptyHere{}, nil
	}
	if m := moveRe.FindStringSubmatch(text); m != nil {
		steps, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, core.Unknownf(lineNum, "step count out of range: %q", m[1])
		}
		return Move{Steps: steps}, nil
	}
	if shrinkRe.MatchString(text) {
		return Shrink{}, nil
	}
	if screamRe.MatchString(text) {
		return Wish{Mode: core.ModeVoid}, nil
	}
	if speakRe.MatchString(text) {
		return Wish{Mode: core.ModeASCII}, nil
	}
	if hearRe.MatchString(text) {
		return Wish{Mode: core.ModeASCIIIn}, nil
	}
	if returnedRe.MatchString(text) {
		return Wish{Mode: core.ModeWellies}, nil
	}
	if welliesOnRe.MatchString(text) {
		return WelliesOn{}, nil
	}
	if welliesOffRe.MatchString(text) {
		return WelliesOff{}, nil
	}
	if m := evaporateRe.FindStringSubmatch(text); m != nil {
		pints, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, core.Unknownf(lineNum, "amount out of range: %q", m[1])
		}
		return Evaporate{Amount: core.PintsToCenti(pints)}, nil
	}
	return nil, core.Unknownf(lineNum, "unrecognised instruction %q", text)
}

// parseVolume resolves a "<N|max>" volume spelling to centi-pints.
func parseVolume(word string, lineNum int) (int64, error) {
	if word == "max" {
		return core.MaxCapacity, nil
	}
	pints, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return 0, core.Unknownf(lineNum, "volume out of range: %q", word)
	}
	return core.PintsToCenti(pints), nil
}
