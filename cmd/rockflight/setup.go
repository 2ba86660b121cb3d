package main

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/core"
	"github.com/vovakirdan/rockflight/internal/logging"
)

// env is what every play command needs: the loaded tuning, a logger and,
// with --watch, the reload channel.
type env struct {
	flight  config.FlightConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	watcher *config.Watcher
}

// setup parses the global flags. Logs go to w.
func setup(w io.Writer, prefix string) (*env, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(w, prefix, level)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagAssets != "" {
		cfg.Assets.Path = flagAssets
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	e := &env{
		flight:  cfg,
		runtime: runtime,
		logger:  logger,
	}

	if flagWatch {
		if flagConfig == "" {
			return nil, errors.New("--watch needs --config")
		}
		e.watcher, err = config.Watch(flagConfig, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("watching config", "path", flagConfig)
	}
	return e, nil
}

// updates returns the reload channel, or nil without --watch.
func (e *env) updates() <-chan config.FlightConfig {
	if e.watcher == nil {
		return nil
	}
	return e.watcher.Updates()
}

func (e *env) close() {
	if e.watcher != nil {
		//nolint:errcheck // Best-effort close on exit
		e.watcher.Close()
	}
}
