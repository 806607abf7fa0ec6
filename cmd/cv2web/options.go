package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/nitzanshifris/cv2web/internal/config"
)

// loadAppConfig loads the optional JSON config file. An empty path means
// defaults only.
func loadAppConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	return config.LoadConfig(path)
}

// newLogger builds the CLI logger. Verbose mode lowers the level to debug;
// output is human-readable on stderr so stdout stays clean for results.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
