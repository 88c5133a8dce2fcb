package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leaky-buckets/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [file]",
	Short: "Show recent run records",
	Long: `Display recent runs from the history database. With a file argument
only that program's runs are shown.

Examples:
  leaky history
  leaky history examples/ten.lb
  leaky history examples/ten.lb --limit 5
  leaky history examples/ten.lb --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of records to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete history for the given program instead")
}

func runHistory(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var program string
	if len(args) == 1 {
		program = filepath.Base(args[0])
	}

	if flagHistoryClear {
		if program == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a program argument")
			os.Exit(1)
		}
		if err := store.ClearRuns(program); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared history for %s\n", program)
		return
	}

	var records []storage.RunRecord
	if program != "" {
		records, err = store.RunsForProgram(program, flagHistoryLimit)
	} else {
		records, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	// Print header
	fmt.Printf("  %-19s  %-20s  %-8s  %-8s  %s\n", "Date", "Program", "Status", "Ticks", "Output")
	fmt.Printf("  %-19s  %-20s  %-8s  %-8s  %s\n", "----", "-------", "------", "-----", "------")

	for _, rec := range records {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04:05")
		summary := rec.Output
		if rec.Status == storage.StatusError {
			summary = rec.ErrorText
		}
		summary = strings.ReplaceAll(summary, "\n", " ")
		// Truncate by runes; ascii-mode output can be multibyte.
		if runes := []rune(summary); len(runes) > 40 {
			summary = string(runes[:37]) + "..."
		}
		fmt.Printf("  %-19s  %-20s  %-8s  %-8d  %s\n", dateStr, rec.Program, rec.Status, rec.Ticks, summary)
	}
}
