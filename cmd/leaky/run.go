package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leaky-buckets/internal/engine"
	"github.com/vovakirdan/leaky-buckets/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a program to completion",
	Long: `Run a Leaky Buckets program to completion.

Pond output is printed to stdout, one emission per line. When the
program wishes for input from god it reads one line from stdin.
The run is recorded in the history database.

Examples:
  leaky run examples/ten.lb
  leaky run examples/hello.lb --db ./runs.db`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

// stdioHost is the batch host: pond output goes to stdout, god input
// comes from stdin line by line.
type stdioHost struct {
	in     *bufio.Reader
	output []string
}

func (h *stdioHost) Emit(text string) {
	h.output = append(h.output, text)
	fmt.Println(text)
}

func (h *stdioHost) ReadInt() (int64, error) {
	line, err := h.readLine()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(line, 10, 64)
}

func (h *stdioHost) ReadRune() (rune, error) {
	line, err := h.readLine()
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, errors.New("expected a character")
	}
	return []rune(line)[0], nil
}

func (h *stdioHost) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runRun(_ *cobra.Command, args []string) {
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

	host := &stdioHost{in: bufio.NewReader(os.Stdin)}
	machine := engine.New(lines, host, machineOpts(cfg)...)

	runErr := machine.Run(cfg.MaxTicks)

	saveRun(cfg.DBPath, name, machine, host.output, runErr)

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

// saveRun records the outcome in the history database. Persistence is
// best effort; a broken database never masks the program's own result.
func saveRun(dbPath, program string, machine *engine.Machine, output []string, runErr error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	rec := storage.RunRecord{
		Program: program,
		Status:  storage.StatusFinished,
		Ticks:   machine.World().Tick,
		Output:  strings.Join(output, "\n"),
	}
	if runErr != nil {
		rec.Status = storage.StatusError
		rec.ErrorText = runErr.Error()
		if machine.Halted() == nil {
			// Tick budget exceeded, not a program fault.
			rec.Status = storage.StatusAborted
		}
	}

	if _, err := store.SaveRun(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run record: %v\n", err)
	}
}
