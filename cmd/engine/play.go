package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/platform/tui"
	"github.com/vovakirdan/tui-engine/internal/registry"
	"github.com/vovakirdan/tui-engine/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo.

Controls:
  WASD/Arrows - Move
  Space       - Primary action (drop, jump)
  Mouse click - Pointer action where the demo supports it
  P           - Pause/resume the run loop
  R           - Restart the active screen
  Esc/B       - Back to the demo's menu
  Q/Ctrl+C    - Quit

Examples:
  engine play bounce
  engine play bounce --fps 30
  engine play bounce --seed 42
  engine play bounce --config ./my-engine.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	demoID := args[0]

	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'engine list' to see available demos.")
		os.Exit(1)
	}

	engineCfg := loadEngineConfig()

	// Terminal size, with the config fallback when detection fails
	width, height := engineCfg.Screen.Width, engineCfg.Screen.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = engineCfg.Loop.TickRate
	}

	cfg := config.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	demo, err := registry.Create(demoID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the demo still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "engine"})

	runErr := tui.Run(demo, store, engineCfg, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}
