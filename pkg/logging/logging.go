package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Development gets the console writer,
// anything else emits plain JSON lines.
func New(level, environment string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)

	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger

	if environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(lvl).With().Timestamp().Logger()
}
