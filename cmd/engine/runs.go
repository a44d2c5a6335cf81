package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-engine/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent sessions",
	Long: `Display recent engine sessions across all demos: which demo ran,
the state it ended in, how long it lasted, and the score reached.

Examples:
  engine runs
  engine runs --limit 50`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of sessions to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println("Recent sessions:")
	fmt.Println()
	fmt.Printf("  %-12s  %-10s  %-10s  %-8s  %s\n", "Demo", "Ended in", "Duration", "Score", "Date")
	fmt.Printf("  %-12s  %-10s  %-10s  %-8s  %s\n", "----", "--------", "--------", "-----", "----")

	for _, r := range runs {
		fmt.Printf("  %-12s  %-10s  %-10s  %-8d  %s\n",
			r.DemoID,
			r.State,
			r.Duration.Round(time.Second).String(),
			r.Score,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
