package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLogLevel names the environment variable holding the log level
const EnvLogLevel = "QR_GALLERY_LOG_LEVEL"

// DefaultLevel is used when no level is configured
const DefaultLevel = zerolog.InfoLevel

// New creates a logger writing JSON events with timestamps to writer
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human readable logger on stderr
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return New(consoleWriter, level)
}

// LevelFromEnv parses EnvLogLevel, falling back to DefaultLevel
func LevelFromEnv() zerolog.Level {
	return ParseLevel(os.Getenv(EnvLogLevel))
}

// ParseLevel converts a level name such as "debug" or "warn" into a zerolog
// level. Unknown or empty names yield DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// Component returns a child logger tagged with the component name
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("component", name).Logger()
}
