package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-blocks/internal/config"
	"github.com/vovakirdan/dodge-blocks/internal/core"
	"github.com/vovakirdan/dodge-blocks/internal/games/dodge"
	"github.com/vovakirdan/dodge-blocks/internal/registry"
	"github.com/vovakirdan/dodge-blocks/internal/storage"
)

// newLogger builds the logger from the global flags. Without --log-file,
// logs go to fallback. The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// newEnv loads the game config and opens the session log.
// The caller closes env.Store.
func newEnv(logger *log.Logger, width, height int) (registry.Env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return registry.Env{}, err
	}

	store, err := storage.Open()
	if err != nil {
		// Continue without the session log - game still works
		logger.Warn("session log disabled", "error", err)
		store = nil
	}

	rt := core.DefaultConfig()
	if width > 0 && height > 0 {
		rt.ScreenW, rt.ScreenH = width, height
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	return registry.Env{
		Config:  cfg,
		Runtime: rt,
		NewGame: func(best *core.Highscore) registry.Game {
			return dodge.New(cfg, dodge.WithHighscore(best))
		},
		Store:  store,
		Logger: logger,
	}, nil
}
