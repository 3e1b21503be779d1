package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	mu           sync.RWMutex
	once         sync.Once
)

// GetLogger returns the process-wide logger. Until New is called it writes
// human readable lines to stdout at info level.
func GetLogger() zerolog.Logger {
	once.Do(func() {
		mu.Lock()
		globalLogger = build(consoleWriter(os.Stdout), zerolog.InfoLevel)
		mu.Unlock()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// New replaces the global logger according to the LOG_LEVEL / LOG_FORMAT pair.
func New(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var out io.Writer
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		out = os.Stdout
	case "console", "":
		out = consoleWriter(os.Stdout)
	default:
		return zerolog.Logger{}, errors.New("unsupported log format")
	}

	// make sure the lazy default never overwrites this one
	once.Do(func() {})

	zerolog.SetGlobalLevel(lvl)
	mu.Lock()
	globalLogger = build(out, lvl)
	mu.Unlock()
	return GetLogger(), nil
}

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return GetLogger().With().Str("component", name).Logger()
}

func build(out io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Logger().Level(lvl)
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
}

// SetLevel changes the level of the global logger in place.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return err
	}
	current := GetLogger()
	if current.GetLevel() == lvl {
		return nil
	}
	zerolog.SetGlobalLevel(lvl)
	mu.Lock()
	globalLogger = current.Level(lvl)
	mu.Unlock()
	current.Info().Str("level", lvl.String()).Msg("log level changed")
	return nil
}
