// Package logger configures the global zerolog logger from CLI options.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds logging options, embeddable as a go-flags option group.
type Logger struct {
	Level string `long:"log-level" env:"LOG_LEVEL" description:"Logging level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	File  string `long:"log-file"  env:"LOG_FILE"  description:"Also write logs to this file (JSON lines)"`
	JSON  bool   `long:"log-json"  env:"LOG_JSON"  description:"Log to stderr in JSON instead of console format"`
}

// Setup applies the options to the global logger.
func (l *Logger) Setup() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out zerolog.LevelWriter
	if l.JSON {
		out = zerolog.MultiLevelWriter(os.Stderr)
	} else {
		out = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if l.File != "" {
		f, ferr := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr != nil {
			log.Error().Err(ferr).Str("path", l.File).Msg("Failed to open log file, logging to stderr only")
		} else {
			out = zerolog.MultiLevelWriter(out, f)
		}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
