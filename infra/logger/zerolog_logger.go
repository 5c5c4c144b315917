package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

var defaults = struct {
	sync.RWMutex
	level   zerolog.Level
	console bool
}{level: zerolog.InfoLevel}

// Configure sets the level and format used when LOG_LEVEL and APP_ENV are
// unset. Loggers created earlier keep their settings.
func Configure(level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	defaults.Lock()
	defer defaults.Unlock()
	defaults.level = lvl
	defaults.console = format == "console"
	return nil
}

// NewZerologLogger creates a ZerologLogger. APP_ENV=dev switches to a
// human-readable console writer and LOG_LEVEL (debug, info, warn, error)
// sets the minimum level; both fall back to Configure. All logs include
// the component.
func NewZerologLogger(component string) Logger {
	defaults.RLock()
	console := defaults.console
	defaults.RUnlock()
	env := strings.ToLower(os.Getenv("APP_ENV"))
	var z zerolog.Logger
	if env == "dev" || console {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		z = zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	} else {
		z = zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
	}
	return &ZerologLogger{log: z.Level(levelFromEnv())}
}

func levelFromEnv() zerolog.Level {
	defaults.RLock()
	fallback := defaults.level
	defaults.RUnlock()
	raw := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if raw == "" {
		return fallback
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return fallback
	}
	return lvl
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
