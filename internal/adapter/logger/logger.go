package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

var _ ports.LoggerPort = (*LoggerAdapter)(nil)

type LoggerAdapter struct {
	zl zerolog.Logger
}

// NewLoggerAdapter writes human readable lines in development and JSON everywhere else.
func NewLoggerAdapter(env, level string) *LoggerAdapter {
	var w io.Writer = os.Stdout
	if env == "development" || env == "" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return NewWithWriter(w, level)
}

func NewWithWriter(w io.Writer, level string) *LoggerAdapter {
	zl := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return &LoggerAdapter{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.zl.Error().Fields(fields).Msg(msg)
}

// NewNopLogger discards everything, used by tests and tooling.
func NewNopLogger() *LoggerAdapter {
	return &LoggerAdapter{zl: zerolog.Nop()}
}
