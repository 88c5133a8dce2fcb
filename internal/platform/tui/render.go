package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/leaky-buckets/internal/core"
)

// Grid viewport size in cells. The view is always centered on the actor.
const (
	gridCols = 15
	gridRows = 9
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	actorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	depotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	tapStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	pondStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	bucketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	wetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// facingRunes maps the actor's facing to its marker.
var facingRunes = map[core.Dir]string{
	core.North: "^",
	core.East:  ">",
	core.South: "v",
	core.West:  "<",
}

// renderStepper draws the full stepper screen.
func renderStepper(m *Model) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.program))
	sb.WriteString(statusStyle.Render(fmt.Sprintf("  tick %d  mode %s", m.snap.Tick, m.snap.Mode)))
	sb.WriteString("\n\n")

	sb.WriteString(renderGrid(m.snap))
	sb.WriteString("\n")

	sb.WriteString(statusStyle.Render(statusLine(m.snap)))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(holdingLine(m.snap)))
	sb.WriteString("\n")

	if m.output != "" {
		sb.WriteString(outputStyle.Render("pond: " + m.output))
		sb.WriteString("\n")
	}

	switch {
	case m.errText != "":
		sb.WriteString(errorStyle.Render(m.errText))
		sb.WriteString("\n")
	case m.finished:
		sb.WriteString(doneStyle.Render("program finished"))
		sb.WriteString("\n")
	case m.awaiting:
		sb.WriteString(promptStyle.Render(promptLabel(m.prompt)))
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		if m.inputErr != "" {
			sb.WriteString(errorStyle.Render(m.inputErr))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// renderGrid draws the viewport centered on the actor. North is up.
func renderGrid(s snapshot) string {
	var sb strings.Builder

	top := s.Pos.Y + gridRows/2
	left := s.Pos.X - gridCols/2

	for row := 0; row < gridRows; row++ {
		y := top - row
		for col := 0; col < gridCols; col++ {
			x := left + col
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(renderCell(s, core.Pos{X: x, Y: y}))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderCell picks the marker for one lattice position.
func renderCell(s snapshot, p core.Pos) string {
	if p == s.Pos {
		return actorStyle.Render(facingRunes[s.Facing])
	}
	if s.Bound {
		switch p {
		case s.Depot:
			return depotStyle.Render("D")
		case s.Tap:
			return tapStyle.Render("T")
		case s.Pond:
			return pondStyle.Render("P")
		}
	}
	if b, ok := s.Placed[p]; ok {
		if b.Water > 0 {
			return bucketStyle.Render("▮")
		}
		return bucketStyle.Render("▯")
	}
	if s.Ground[p] > 0 {
		return wetStyle.Render("~")
	}
	return emptyStyle.Render("·")
}

// statusLine shows progress through the program.
func statusLine(s snapshot) string {
	if !s.HasLine {
		return "at end of program"
	}
	return fmt.Sprintf("line %d: %s", s.LineNum, s.LineText)
}

// holdingLine describes what the actor carries, in the wording of the
// original status display.
func holdingLine(s snapshot) string {
	if s.Held == nil {
		return fmt.Sprintf("My hands are empty. I am wearing %d pairs of wellies", s.Wellies)
	}
	size := core.FormatPints(s.Held.Capacity)
	if s.Held.Capacity == core.MaxCapacity {
		size = "max"
	}
	if s.Held.Water == 0 {
		return fmt.Sprintf("Holding an empty %s pint bucket with %d holes", size, s.Held.Holes)
	}
	return fmt.Sprintf("Carrying %s pints in a %s pint bucket with %d holes",
		core.FormatPints(s.Held.Water), size, s.Held.Holes)
}

// promptLabel names what the machine is waiting for.
func promptLabel(kind promptKind) string {
	if kind == promptRune {
		return "a character is wished for:"
	}
	return "a number is wished for:"
}
