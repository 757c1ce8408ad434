package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Space Defender in a desktop window.

The window reports real key releases, so movement stops the moment a key is
let go.

Controls:
  Enter           - Start
  A/D, Left/Right - Move
  Space/E/W/Up    - Fire
  R               - Restart (after game over)
  Esc             - Back to title, or quit from the title
  Q               - Quit

Examples:
  defender window
  defender window --scale 1.5 --sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x600 playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	opts := window.Options{
		Config:   cfg,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Scale:    flagScale,
		Logger:   logger,
		Player:   flagPlayer,
	}
	if store := openStore(logger); store != nil {
		defer store.Close() //nolint:errcheck
		opts.Store = store
	}

	player := openAudio(logger)
	defer player.Close() //nolint:errcheck
	opts.Audio = player

	if err := window.Run(opts); err != nil {
		fatal("%v", err)
	}
}
