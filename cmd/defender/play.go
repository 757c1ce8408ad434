package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game in the terminal",
	Long: `Start a game of Space Defender right away.

Controls:
  A/D, Left/Right   - Move
  Space/E/W/Up      - Fire
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Esc/B, Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, slower enemies
  normal - Config as loaded
  hard   - Fewer lives, faster and denser enemies
  fixed  - Speed and spawn rate never tighten

Examples:
  defender play
  defender play --difficulty easy
  defender play --config ./my-defender.yaml
  defender play --sound --log-file defender.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Player:  flagPlayer,
	}

	// Continue without storage - game still works
	if store := openStore(logger); store != nil {
		defer store.Close() //nolint:errcheck
		opts.Store = store
	}

	player := openAudio(logger)
	defer player.Close() //nolint:errcheck
	opts.Audio = player

	if err := tui.Run(opts); err != nil {
		fatal("running game: %v", err)
	}
}
