package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFileName = "checkgrip/checkgrip.log"

// SetupLogger configures the global logger based on verbosity level.
// The TUI owns the terminal, so output only goes to a log file. An empty
// path means $XDG_STATE_HOME/checkgrip/checkgrip.log. The returned closer
// releases the file.
func SetupLogger(verbosity int, path string) (io.Closer, error) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	if path == "" {
		var err error
		path, err = DefaultLogFilePath()
		if err != nil {
			log.Logger = zerolog.Nop()
			return io.NopCloser(nil), err
		}
	}

	file, err := openLogFile(path)
	if err != nil {
		log.Logger = zerolog.Nop()
		return io.NopCloser(nil), err
	}

	writer := zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
	return file, nil
}

// SetupConsoleLogger logs to w; used by non-interactive subcommands
func SetupConsoleLogger(verbosity int, w io.Writer) {
	zerolog.SetGlobalLevel(levelFor(verbosity))
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// DefaultLogFilePath returns the log path under XDG_STATE_HOME
func DefaultLogFilePath() (string, error) {
	path, err := xdg.StateFile(logFileName)
	if err != nil {
		return "", fmt.Errorf("failed to resolve log file path: %w", err)
	}
	return path, nil
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
