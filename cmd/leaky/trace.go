package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/leaky-buckets/internal/engine"
)

var (
	flagTraceLimit int
	flagTraceDelay int
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Run a program with per-tick execution logging",
	Long: `Run a Leaky Buckets program, logging every processed line: the tick
count, the source line, what the driver did with it, the output mode,
and how much water is in play.

Examples:
  leaky trace examples/ten.lb
  leaky trace examples/hello.lb --limit 200
  leaky trace examples/ten.lb --delay 250`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceLimit, "limit", 0, "Stop after this many executed ticks (0 = config max_ticks)")
	traceCmd.Flags().IntVar(&flagTraceDelay, "delay", 0, "Pause between ticks in milliseconds")
}

// tickKindNames maps driver outcomes to log labels.
var tickKindNames = map[engine.TickKind]string{
	engine.TickExecuted:  "exec",
	engine.TickSkipped:   "skip",
	engine.TickBootstrap: "bind",
	engine.TickFinished:  "done",
}

func runTrace(_ *cobra.Command, args []string) {
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

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          name,
	})

	limit := flagTraceLimit
	if limit == 0 {
		limit = cfg.MaxTicks
	}
	delay := time.Duration(flagTraceDelay) * time.Millisecond

	host := &stdioHost{in: bufio.NewReader(os.Stdin)}
	machine := engine.New(lines, host, machineOpts(cfg)...)

	ticks := 0
	for {
		res, stepErr := machine.Step()
		if stepErr != nil {
			logger.Error("halted", "tick", machine.World().Tick, "error", stepErr)
			os.Exit(1)
		}
		if res.Kind == engine.TickFinished {
			logger.Info("finished", "ticks", machine.World().Tick)
			return
		}

		w := machine.World()
		logger.Info(tickKindNames[res.Kind],
			"tick", w.Tick,
			"cursor", res.Cursor,
			"line", res.Line.Num,
			"text", res.Line.Text,
			"mode", w.Mode.String(),
			"held", heldWater(w),
			"ground", totalGround(w),
			"wellies", w.WelliesCount,
		)

		if res.Kind == engine.TickExecuted {
			ticks++
			if limit > 0 && ticks >= limit {
				logger.Warn("tick limit reached", "limit", limit)
				return
			}
			if delay > 0 {
				time.Sleep(delay)
			}
		}
	}
}

func heldWater(w *engine.World) int64 {
	if w.Held == nil {
		return 0
	}
	return w.Held.Water
}

func totalGround(w *engine.World) int64 {
	var total int64
	for _, v := range w.Ground {
		total += v
	}
	return total
}
