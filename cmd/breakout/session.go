package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFont       string
)

// newLogger builds the session logger. The game owns the terminal, so logs
// go to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger.With("session", uuid.NewString()), closer, nil
}

// loadConfig resolves the game config from --config, --difficulty and --font.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyBreakoutPreset(&cfg, preset)
	}

	if flagFont != "" {
		cfg.UI.Font = flagFont
	}
	return cfg, cfg.Validate()
}

// runtimeConfig sizes the playfield to the terminal.
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

// newEnv gathers everything a variant needs. The returned func closes the
// log file.
func newEnv() (registry.Env, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return registry.Env{}, func() {}, err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return registry.Env{}, closer, err
	}

	return registry.Env{
		Runtime: runtimeConfig(),
		Config:  cfg,
		Logger:  logger,
	}, closer, nil
}
