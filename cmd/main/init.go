package main

import (
	"io"
	"os"
	"time"

	"github.com/ilyadubrovsky/homework-status-bot/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const loggerField = "logger"

func initLogger(cfg config.Log) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(newWriter(cfg.Format, os.Stdout)).
		With().
		Timestamp().
		Str(loggerField, config.LoggerName).
		Logger()

	if err != nil {
		log.Warn().Msgf("unknown log level %q, using debug", cfg.Level)
	}
}

// newWriter renders "time - logger - level - message" lines unless json is asked for.
func newWriter(format string, out io.Writer) io.Writer {
	if format == "json" {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		TimeFormat:    time.RFC3339,
		PartsOrder:    []string{zerolog.TimestampFieldName, loggerField, zerolog.LevelFieldName, zerolog.MessageFieldName},
		FieldsExclude: []string{loggerField},
	}
}
