package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// InitLogger initializes and returns a structured logger on stderr, leaving
// stdout to command output.
func InitLogger(level string) zerolog.Logger {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(parsedLevel)

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
