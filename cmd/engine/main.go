// engine is a terminal host for 2D game demos built on the engine's
// state machine, physics, and pointer input packages.
//
// Usage:
//
//	engine list              - List available demos
//	engine play <demo>       - Run a demo
//	engine serve             - Start SSH server for remote sessions
//	engine scores [demo]     - Show high scores
//	engine runs              - Show recent sessions
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.tui-engine/scores.db)
//	--config <path>   - Path to engine config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-engine/internal/config"

	// Import demos to register them
	_ "github.com/vovakirdan/tui-engine/internal/demo/bounce"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "Run 2D game demos in your terminal",
	Long: `A terminal host for 2D game demos: a state machine drives each demo's
screens through a fixed-step run loop, with physics bodies and pointer
input normalized from terminal mouse events.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo
  serve    - Start SSH server for remote sessions
  scores   - View high scores
  runs     - View recent sessions

Examples:
  engine list
  engine play bounce
  engine serve --ssh :2222
  engine scores bounce`,
}

// loadEngineConfig resolves the engine config, warning instead of failing
// when a default-path config is broken.
func loadEngineConfig() config.EngineConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.Default()
	}
	return cfg
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-engine/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
}
