// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                  - Start with the title menu
//	tetris play             - Start a game directly
//	tetris menu             - Start with the title menu
//	tetris serve            - Start SSH server for remote play
//	tetris config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - Diagnostics level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

// logger reports CLI diagnostics on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tetris",
	Level:  log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  play     - Start a game directly
  menu     - Title menu (default)
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  tetris
  tetris play --seed 42
  tetris play --config ./wide.yaml
  tetris serve --ssh :2222`,
	PersistentPreRunE: setupLogging,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging applies --log-level to the CLI logger.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// loadGameConfig resolves the game configuration or exits.
func loadGameConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"line_scores", cfg.Scoring.LineScores,
		"lines_per_level", cfg.Levels.LinesPerLevel,
	)
	return cfg
}

// gameFactory creates a new game with the given rules for each play.
func gameFactory(cfg config.TetrisConfig) tui.GameFactory {
	return func() (tui.Game, error) {
		return tetris.New(cfg)
	}
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", err)
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
