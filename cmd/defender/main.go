// defender is a Space Defender arcade game for the terminal, a desktop window
// or remote play over SSH.
//
// Usage:
//
//	defender play            - Play a single game in the terminal
//	defender menu            - Title screen with high scores
//	defender window          - Play in a desktop window
//	defender serve           - Start SSH server for remote play
//	defender scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.defender/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLogLevel   string
	flagLogFile    string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Space Defender - shoot down the zigzagging invaders",
	Long: `Space Defender is an arcade shooter. Your ship sits at the bottom of the
playfield; enemies zigzag down from the top. Shoot them before they reach you.
Every 100 points the level rises: enemies get faster, spawn more often and
you earn a bonus life.

Available commands:
  play     - Play a single game in the terminal
  menu     - Title screen with start and high scores
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  defender play
  defender play --difficulty hard --sound
  defender menu
  defender window --scale 1.5
  defender serve --ssh :2222
  defender scores`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.defender/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagSound, "sound", false, "Play sound effects")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with scores")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
