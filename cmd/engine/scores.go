package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-engine/internal/platform/tui"
	"github.com/vovakirdan/tui-engine/internal/registry"
	"github.com/vovakirdan/tui-engine/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [demo]",
	Short: "Show high scores",
	Long: `Display high scores. With a demo argument, prints the top 10 scores
for that demo. Without arguments, opens the interactive scoreboard.

Examples:
  engine scores
  engine scores bounce`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	demoID := args[0]

	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'engine list' to see available demos.")
		os.Exit(1)
	}

	demo, err := registry.Create(demoID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}
	title := demo.Title()

	scores, err := store.TopScores(demoID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'engine play %s' to set the first high score!\n", demoID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(demoID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
