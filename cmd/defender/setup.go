package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/space-defender/internal/audio"
	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// newLogger builds the process logger from --log-level and --log-file.
// Without a log file a full-screen UI would be overdrawn by log lines, so only
// warnings and errors reach stderr.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() } //nolint:errcheck
	} else if interactive && level < log.WarnLevel {
		level = log.WarnLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "defender",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads --config and applies --difficulty.
func loadGameConfig() (config.DefenderConfig, error) {
	cfg, err := config.LoadDefender(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyDefenderPreset(&cfg, config.ParsePreset(flagDifficulty))
	}
	return cfg, nil
}

// openStore opens the scores database. A failure is logged and the game
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// openAudio returns a speaker when --sound is set, or a silent player.
func openAudio(logger *log.Logger) audio.Player {
	if !flagSound {
		return audio.Silent{}
	}
	spk, err := audio.NewSpeaker(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Silent{}
	}
	return spk
}

// runtimeConfig sizes the terminal playfield from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
