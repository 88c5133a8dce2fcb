package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// StepperKeyMap defines the key bindings for the stepper screen.
type StepperKeyMap struct {
	Step  key.Binding
	Run   key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StepperKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Run, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StepperKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Run},
		{k.Reset, k.Quit},
	}
}

// DefaultStepperKeyMap returns default key bindings.
func DefaultStepperKeyMap() StepperKeyMap {
	return StepperKeyMap{
		Step: key.NewBinding(
			key.WithKeys(" ", "n"),
			key.WithHelp("space/n", "step"),
		),
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
