package lang

import (
	"errors"
	"testing"

	"github.com/vovakirdan/leaky-buckets/internal/core"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases", "Turn LEFT", "turn left"},
		{"strips comments", "move 2 steps -- go to the tap", "move 2 steps"},
		{"collapses whitespace", "  fill   the\tbucket to the top ", "fill the bucket to the top"},
		{"blank to empty", "   -- only a comment", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitLinesKeepsNumbers(t *testing.T) {
	src := "the bucket depot is in front of me\n\n-- setup done\nturn left\n"
	lines := SplitLines(src)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Num != 1 || lines[1].Num != 4 {
		t.Errorf("line numbers = %d, %d; want 1, 4", lines[0].Num, lines[1].Num)
	}
}

func TestParseCatalogue(t *testing.T) {
	tests := []struct {
		text string
		want Instr
	}{
		{"collect a 10 pint bucket", Collect{Capacity: 1000}},
		{"collect a 5 pint bucket with 2 holes", Collect{Capacity: 500, Holes: 2}},
		{"collect a 5 pint bucket with 1 hole", Collect{Capacity: 500, Holes: 1}},
		{"collect a max pint bucket", Collect{Capacity: core.MaxCapacity}},
		{"turn left", Turn{Rel: core.West}},
		{"turn right", Turn{Rel: core.East}},
		{"turn around", Turn{Rel: core.South}},
		{"turn all the way around", Turn{Rel: core.North}},
		{"fill the bucket to the top", FillToTop{}},
		{"let god fill the bucket as he wishes", FillFromGod{}},
		{"fill the bucket with 3 pints of water", FillPints{Amount: 300}},
		{"place the bucket down to my left", PlaceDown{Rel: core.West}},
		{"pick up the bucket behind me", PickUp{Rel: core.South}},
		{"empty the bucket onto the square in front of me", EmptyOnto{Rel: core.North}},
		{"empty the bucket on to the square to my right without overflow", EmptyOnto{Rel: core.East, NoOverflow: true}},
		{"empty the bucket here", EmptyHere{}},
		{"move 1 step", Move{Steps: 1}},
		{"move 12 steps", Move{Steps: 12}},
		{"shrink my bucket", Shrink{}},
		{"i wish to scream into the void", Wish{Mode: core.ModeVoid}},
		{"i wish to scream in to the void", Wish{Mode: core.ModeVoid}},
		{"i wish to speak to god", Wish{Mode: core.ModeASCII}},
		{"i wish to hear from god", Wish{Mode: core.ModeASCIIIn}},
		{"i wish to have my wellies returned", Wish{Mode: core.ModeWellies}},
		{"put wellies on", WelliesOn{}},
		{"take wellies off", WelliesOff{}},
		{"evaporate 2 pints", Evaporate{Amount: 200}},
		{"evaporate 1 pint", Evaporate{Amount: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text, 1)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("dig a well", 7)
	var engineErr *core.Error
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected *core.Error, got %T", err)
	}
	if engineErr.Category != core.CategoryUnknown {
		t.Errorf("category = %v, want %v", engineErr.Category, core.CategoryUnknown)
	}
	if engineErr.Line != 7 {
		t.Errorf("line = %d, want 7", engineErr.Line)
	}
}

func TestParseRejectsTrailingText(t *testing.T) {
	if _, err := Parse("turn left sharply", 1); err == nil {
		t.Error("expected error for trailing text")
	}
}

func TestParseLandmark(t *testing.T) {
	rel, err := ParseLandmark("the tap is to my right", LandmarkTap, 2)
	if err != nil {
		t.Fatalf("ParseLandmark error: %v", err)
	}
	if rel != core.East {
		t.Errorf("rel = %v, want East", rel)
	}

	// Out-of-order declaration is an assertion failure.
	_, err = ParseLandmark("the pond is behind me", LandmarkTap, 2)
	var engineErr *core.Error
	if !errors.As(err, &engineErr) || engineErr.Category != core.CategoryAssertion {
		t.Errorf("expected assertion error, got %v", err)
	}
}
