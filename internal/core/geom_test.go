package core

import "testing"

func TestDirPlus(t *testing.T) {
	tests := []struct {
		name string
		dir  Dir
		rel  Dir
		want Dir
	}{
		{"north stays north", North, North, North},
		{"north turns right", North, East, East},
		{"north turns left", North, West, West},
		{"north turns around", North, South, South},
		{"west turns right wraps", West, East, North},
		{"south behind wraps", South, South, North},
		{"east left", East, West, North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.Plus(tt.rel); got != tt.want {
				t.Errorf("%v.Plus(%v) = %v, want %v", tt.dir, tt.rel, got, tt.want)
			}
		})
	}
}

func TestNeighborsOrder(t *testing.T) {
	n := Pos{2, 3}.Neighbors()
	want := [4]Pos{{2, 4}, {3, 3}, {2, 2}, {1, 3}}
	if n != want {
		t.Errorf("Neighbors() = %v, want %v (N, E, S, W)", n, want)
	}
}

func TestFormatPints(t *testing.T) {
	tests := []struct {
		centi int64
		want  string
	}{
		{1000, "10"},
		{1050, "10.5"},
		{1005, "10.05"},
		{0, "0"},
		{1, "0.01"},
	}

	for _, tt := range tests {
		if got := FormatPints(tt.centi); got != tt.want {
			t.Errorf("FormatPints(%d) = %q, want %q", tt.centi, got, tt.want)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	err := Runtimef(12, "cannot move through an occupied square")
	want := "RuntimeError: cannot move through an occupied square\n\tat line 12"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = Internalf("no host attached")
	if err.Error() != "InternalError: no host attached" {
		t.Errorf("Error() = %q", err.Error())
	}
}
