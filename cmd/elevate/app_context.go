package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/elevate/internal/components"
	"github.com/alexisbeaulieu97/elevate/internal/config"
	"github.com/alexisbeaulieu97/elevate/internal/logger"
)

// AppContext bundles what every command needs after startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	return a.Logger.Close()
}

// newAppContext loads configuration, applies command-line overrides and
// builds the logger. fallback receives logs when no log file is set; nil
// discards them.
func newAppContext(flags *rootFlags, fallback io.Writer) (*AppContext, error) {
	if err := validateConfigPath(flags.configPath); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}

	mode, err := components.ParseThemeMode(cfg.Theme.Mode)
	if err != nil {
		return nil, err
	}
	components.SetTheme(components.ThemeForMode(mode))

	app := &AppContext{Config: cfg, Logger: logger.Discard()}
	if fallback == nil && cfg.Log.File == "" {
		return app, nil
	}

	log, err := logger.New(cfg.Log.LoggerOptions(fallback))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	app.Logger = log
	return app, nil
}
