package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long: `Start a game without the title menu.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate clockwise
  Down/S           - Soft drop
  Space            - Hard drop
  P                - Pause
  R                - Restart
  Ctrl+S           - Save screenshot to ~/.tetris/screenshots
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --fps 30
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	game, err := tetris.New(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", cfg.TickRate, "seed", cfg.Seed)

	if err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("game finished", "score", game.State().Score, "lines", game.State().Lines)
}
