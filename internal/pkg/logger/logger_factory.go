package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/MGTheTrain/rsa-demo/internal/pkg/config"
)

var errNotInitialized = errors.New("logger not initialized: call InitLogger first")

// sinkBuilder constructs a Logger for one LogType from already validated settings.
type sinkBuilder func(s *config.LoggerSettings) Logger

var sinks = map[string]sinkBuilder{
	config.LogTypeConsole: func(s *config.LoggerSettings) Logger {
		return NewConsoleLogger(s.LogLevel)
	},
	config.LogTypeFile: func(s *config.LoggerSettings) Logger {
		return NewFileLogger(s.LogLevel, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge)
	},
}

// critical has no slog level of its own and filters like error.
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// process-wide logger; the first InitLogger call decides its outcome
var shared struct {
	once   sync.Once
	logger Logger
	err    error
}

// InitLogger builds the process-wide logger from settings. Only the first call
// has an effect, including a failed one.
func InitLogger(settings *config.LoggerSettings) error {
	shared.once.Do(func() {
		shared.logger, shared.err = build(settings)
	})
	return shared.err
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if shared.logger == nil {
		return nil, errNotInitialized
	}
	return shared.logger, nil
}

// SinkNames lists the log types the factory can build, sorted.
func SinkNames() []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func build(s *config.LoggerSettings) (Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}
	newSink, ok := sinks[s.LogType]
	if !ok {
		return nil, fmt.Errorf("no sink for log type %q (have %v)", s.LogType, SinkNames())
	}
	return newSink(s), nil
}

// unknown levels fall back to info
func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
