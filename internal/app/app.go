// Package app wires ducktyper's dependencies together.
package app

import (
	"os"

	"ducktyper/internal/config"
	"ducktyper/internal/logging"
	"ducktyper/internal/services/filesystem"
	"ducktyper/internal/utils"
)

// App holds the wired application dependencies.
type App struct {
	Config *config.Config
	Logger *logging.Logger
	FS     *filesystem.Service
}

// New creates an App from a loaded configuration, wiring the logger and the
// filesystem service. When the configuration does not pin a log format, a
// terminal gets text output and anything else gets JSON.
func New(cfg *config.Config) *App {
	format := cfg.LogFormat
	if format == "" {
		if utils.StdoutIsTerminal() {
			format = "text"
		} else {
			format = "json"
		}
	}

	logger := logging.NewLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: format,
		Output: os.Stderr,
	})

	return &App{
		Config: cfg,
		Logger: logger,
		FS:     filesystem.NewService(cfg.BaseDir, logger.Logger),
	}
}
