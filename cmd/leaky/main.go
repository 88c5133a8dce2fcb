// leaky is an interpreter for the Leaky Buckets language: a grid-world
// machine that computes by carrying, filling, and emptying buckets of
// water that leak, spill, and evaporate as program ticks pass.
//
// Usage:
//
//	leaky run <file>       - Run a program to completion
//	leaky trace <file>     - Run with per-tick execution logging
//	leaky play <file>      - Step through a program interactively
//	leaky serve <file>     - Serve the interactive stepper over SSH
//	leaky history [file]   - Show recent run records
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (default: search order)
//	--db <path>      - Run history database (overrides config)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leaky-buckets/internal/config"
	"github.com/vovakirdan/leaky-buckets/internal/engine"
	"github.com/vovakirdan/leaky-buckets/internal/lang"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leaky",
	Short: "Leaky Buckets - a watery esoteric language interpreter",
	Long: `Leaky Buckets runs programs written in the Leaky Buckets language:
the actor walks a grid between a bucket depot, a tap, and a pond,
and every instruction costs one tick of leaking and evaporation.

Available commands:
  run      - Run a program to completion
  trace    - Run with per-tick execution logging
  play     - Step through a program interactively
  serve    - Serve the interactive stepper over SSH
  history  - Show recent run records

Examples:
  leaky run examples/ten.lb
  leaky trace examples/ten.lb --limit 100
  leaky play examples/hello.lb
  leaky serve examples/hello.lb --ssh :2222
  leaky history examples/ten.lb`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig resolves the effective configuration, applying flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	return cfg, nil
}

// loadProgram reads and normalizes a source file, returning the lines and
// a short display name.
func loadProgram(path string) ([]lang.Line, string, error) {
	lines, err := lang.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return lines, filepath.Base(path), nil
}

// machineOpts translates config into machine options.
func machineOpts(cfg config.Config) []engine.Option {
	if cfg.Landmarks == config.LandmarksFixed {
		return []engine.Option{engine.WithFixedLandmarks()}
	}
	return nil
}
