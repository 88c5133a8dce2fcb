package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leaky-buckets/internal/engine"
)

// promptKind says what the machine is waiting for.
type promptKind int

const (
	promptInt promptKind = iota
	promptRune
)

// outputMsg carries one piece of pond output surfaced mid-step.
type outputMsg string

// promptMsg tells the UI the machine is blocked on god input.
type promptMsg struct {
	kind promptKind
}

// stepDoneMsg reports that an in-flight Step call returned.
type stepDoneMsg struct {
	result engine.TickResult
	err    error
}

// hostBridge adapts the machine's synchronous host callbacks to Bubble
// Tea messages. Step runs on a command goroutine; Emit and the reads
// block there until the Update loop consumes the event or supplies the
// requested value, so the machine never observes the UI mid-tick.
type hostBridge struct {
	events chan tea.Msg
	ints   chan int64
	runes  chan rune
}

func newHostBridge() *hostBridge {
	return &hostBridge{
		events: make(chan tea.Msg),
		ints:   make(chan int64),
		runes:  make(chan rune),
	}
}

func (h *hostBridge) Emit(text string) {
	h.events <- outputMsg(text)
}

func (h *hostBridge) ReadInt() (int64, error) {
	h.events <- promptMsg{kind: promptInt}
	return <-h.ints, nil
}

func (h *hostBridge) ReadRune() (rune, error) {
	h.events <- promptMsg{kind: promptRune}
	return <-h.runes, nil
}

// waitEvent listens for the next mid-step event. Exactly one listener is
// kept alive at a time; Update re-arms it after every event.
func waitEvent(h *hostBridge) tea.Cmd {
	return func() tea.Msg {
		return <-h.events
	}
}

// stepCmd runs one machine step off the UI goroutine.
func stepCmd(m *engine.Machine) tea.Cmd {
	return func() tea.Msg {
		res, err := m.Step()
		return stepDoneMsg{result: res, err: err}
	}
}
