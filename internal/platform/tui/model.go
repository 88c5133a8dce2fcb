package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leaky-buckets/internal/core"
	"github.com/vovakirdan/leaky-buckets/internal/engine"
	"github.com/vovakirdan/leaky-buckets/internal/lang"
)

// bucketView is an immutable copy of one bucket for rendering.
type bucketView struct {
	Capacity int64
	Water    int64
	Holes    int
}

// snapshot is the render-side copy of the machine state. It is captured
// only while no step is in flight, so View never races the machine.
type snapshot struct {
	Pos     core.Pos
	Facing  core.Dir
	Depot   core.Pos
	Tap     core.Pos
	Pond    core.Pos
	Bound   bool
	Placed  map[core.Pos]bucketView
	Ground  map[core.Pos]int64
	Held    *bucketView
	Mode    core.Mode
	Wellies int
	Tick    uint64

	LineNum  int
	LineText string
	HasLine  bool
}

func takeSnapshot(m *engine.Machine) snapshot {
	w := m.World()

	snap := snapshot{
		Pos:     w.Pos,
		Facing:  w.Facing,
		Depot:   w.Depot,
		Tap:     w.Tap,
		Pond:    w.Pond,
		Bound:   m.Bound(),
		Placed:  make(map[core.Pos]bucketView, len(w.Placed)),
		Ground:  make(map[core.Pos]int64, len(w.Ground)),
		Mode:    w.Mode,
		Wellies: w.WelliesCount,
		Tick:    w.Tick,
	}
	for p, b := range w.Placed {
		snap.Placed[p] = bucketView{Capacity: b.Capacity, Water: b.Water, Holes: b.Holes}
	}
	for p, v := range w.Ground {
		snap.Ground[p] = v
	}
	if w.Held != nil {
		snap.Held = &bucketView{Capacity: w.Held.Capacity, Water: w.Held.Water, Holes: w.Held.Holes}
	}
	if line, ok := m.CurrentLine(); ok {
		snap.LineNum = line.Num
		snap.LineText = line.Text
		snap.HasLine = true
	}
	return snap
}

// Model is the Bubble Tea model for stepping through a program.
type Model struct {
	machine *engine.Machine
	bridge  *hostBridge
	program string
	delay   time.Duration

	keys  StepperKeyMap
	help  help.Model
	input textinput.Model

	snap     snapshot
	output   string
	errText  string
	width    int
	height   int
	stepping bool // a Step command is in flight
	awaiting bool // machine blocked on god input
	prompt   promptKind
	inputErr string
	autorun  bool
	finished bool
	quitting bool
}

// NewModel creates a stepper over an already-normalized program.
// delay is the auto-run interval.
func NewModel(program string, lines []lang.Line, delay time.Duration, opts ...engine.Option) Model {
	bridge := newHostBridge()
	machine := engine.New(lines, bridge, opts...)

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 20
	input.Width = 20

	m := Model{
		machine: machine,
		bridge:  bridge,
		program: program,
		delay:   delay,
		keys:    DefaultStepperKeyMap(),
		help:    help.New(),
		input:   input,
	}
	m.snap = takeSnapshot(machine)
	return m
}

// Init starts the mid-step event listener.
func (m Model) Init() tea.Cmd {
	return waitEvent(m.bridge)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case outputMsg:
		m.output += string(msg)
		return m, waitEvent(m.bridge)

	case promptMsg:
		m.awaiting = true
		m.prompt = msg.kind
		m.inputErr = ""
		m.input.Reset()
		return m, tea.Batch(waitEvent(m.bridge), m.input.Focus())

	case stepDoneMsg:
		return m.handleStepDone(msg)

	case TickMsg:
		if m.autorun && !m.stepping && !m.awaiting && !m.finished {
			m.stepping = true
			return m, stepCmd(m.machine)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keys to the god-input prompt when one is active,
// otherwise to the stepper bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.awaiting {
		if msg.Type == tea.KeyEnter {
			return m.submitInput()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Step):
		if !m.stepping && !m.finished {
			m.stepping = true
			return m, stepCmd(m.machine)
		}

	case key.Matches(msg, m.keys.Run):
		m.autorun = !m.autorun
		if m.autorun && !m.stepping && !m.finished {
			m.stepping = true
			return m, stepCmd(m.machine)
		}

	case key.Matches(msg, m.keys.Reset):
		// Never reset under an in-flight step; the machine would race.
		if !m.stepping {
			m.machine.Reset()
			m.output = ""
			m.errText = ""
			m.finished = false
			m.autorun = false
			m.snap = takeSnapshot(m.machine)
		}
	}

	return m, nil
}

// submitInput parses the typed value and unblocks the waiting read.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m, nil
	}

	switch m.prompt {
	case promptInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			m.inputErr = "enter a whole number"
			m.input.Reset()
			return m, nil
		}
		m.awaiting = false
		m.input.Blur()
		m.bridge.ints <- n

	case promptRune:
		r := []rune(value)[0]
		m.awaiting = false
		m.input.Blur()
		m.bridge.runes <- r
	}

	return m, nil
}

// handleStepDone folds a finished step back into the view state.
func (m Model) handleStepDone(msg stepDoneMsg) (tea.Model, tea.Cmd) {
	m.stepping = false
	m.snap = takeSnapshot(m.machine)

	if msg.err != nil {
		m.errText = msg.err.Error()
		m.finished = true
		m.autorun = false
		return m, nil
	}
	if msg.result.Kind == engine.TickFinished {
		m.finished = true
		m.autorun = false
		return m, nil
	}

	if m.autorun {
		return m, tickCmd(m.delay)
	}
	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderStepper(&m)
}

// Run starts the Bubble Tea program for the given source.
func Run(program string, lines []lang.Line, delay time.Duration, opts ...engine.Option) error {
	model := NewModel(program, lines, delay, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
