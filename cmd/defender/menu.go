package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the title screen",
	Long: `Start Space Defender at its title screen.

Pick Start to play, or High Scores to see the leaderboard. After a game you
return to the title screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  defender menu
  defender menu --fps 30
  defender menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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
	if store := openStore(logger); store != nil {
		defer store.Close() //nolint:errcheck
		opts.Store = store
	}

	player := openAudio(logger)
	defer player.Close() //nolint:errcheck
	opts.Audio = player

	if err := tui.RunSession(opts); err != nil {
		fatal("%v", err)
	}
}
