package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config Optionen für den Logger.
type Config struct {
	Env   string // development -> lesbare Konsole; production -> JSON
	Level string // debug, info, warn, error
}

// Logger Wrapper um zerolog für Injektion und Konsistenz.
type Logger struct {
	zl zerolog.Logger
}

// New erstellt einen strukturierten Logger. In development mit lesbarer
// Konsolenausgabe, sonst JSON. Logs gehen nach stderr, damit die normale
// Programmausgabe auf stdout sauber bleibt.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Globalen zerolog-Logger umbiegen, falls Bibliotheken ihn nutzen
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error, Fatal delegieren an zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With erstellt einen Sublogger mit festen Feldern.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog liefert den inneren Logger für die direkte API.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
