//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	rotated := func(path string, size, backups, age int) *LoggerSettings {
		return &LoggerSettings{
			LogLevel:   LogLevelDebug,
			LogType:    LogTypeFile,
			FilePath:   path,
			MaxSize:    size,
			MaxBackups: backups,
			MaxAge:     age,
		}
	}

	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"console default", NewLoggerSettings(LogLevelWarning, ""), false},
		{"console critical", NewLoggerSettings(LogLevelCritical, ""), false},
		{"file default rotation", NewLoggerSettings(LogLevelInfo, "/var/log/rsa-demo.log"), false},
		{"empty level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"unknown level", NewLoggerSettings("verbose", ""), true},
		{"empty type", &LoggerSettings{LogLevel: LogLevelInfo}, true},
		{"unknown type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file without path", rotated("", 10, 3, 28), true},
		{"file size zero", rotated("/tmp/a.log", 0, 3, 28), true},
		{"file size too large", rotated("/tmp/a.log", 101, 3, 28), true},
		{"file backups too many", rotated("/tmp/a.log", 10, 11, 28), true},
		{"file age too long", rotated("/tmp/a.log", 10, 3, 366), true},
		{"file at upper bounds", rotated("/tmp/a.log", 100, 10, 365), false},
		{
			name:          "console ignores rotation fields",
			settings:      &LoggerSettings{LogLevel: LogLevelError, LogType: LogTypeConsole, MaxSize: 1000},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLoggerSettings(t *testing.T) {
	console := NewLoggerSettings(LogLevelWarning, "")
	assert.Equal(t, LogTypeConsole, console.LogType)
	assert.Empty(t, console.FilePath)

	file := NewLoggerSettings(LogLevelDebug, "/tmp/rsa-demo.log")
	assert.Equal(t, LogTypeFile, file.LogType)
	assert.Equal(t, DefaultLogMaxSize, file.MaxSize)
	assert.Equal(t, DefaultLogMaxBackups, file.MaxBackups)
	assert.Equal(t, DefaultLogMaxAge, file.MaxAge)
}
