package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/leaky-buckets/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Step through a program interactively",
	Long: `Step through a Leaky Buckets program in an interactive grid view.

Controls:
  Space/N    - Execute one line
  R          - Toggle auto-run
  Shift+R    - Reset the machine
  Q/Ctrl+C   - Quit

When the program wishes for input from god, type the value and press
enter.

Examples:
  leaky play examples/ten.lb
  leaky play examples/hello.lb --config ./my-config.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	lines, name, err := loadProgram(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The stepper needs a real terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal; use 'leaky run' instead")
		os.Exit(1)
	}

	delay := time.Duration(cfg.StepDelayMS) * time.Millisecond
	if err := tui.Run(name, lines, delay, machineOpts(cfg)...); err != nil {
		fmt.Fprintf(os.Stderr, "Error running stepper: %v\n", err)
		os.Exit(1)
	}
}
