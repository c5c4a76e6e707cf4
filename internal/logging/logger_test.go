package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	// Save original logger to restore later
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
	}()

	testCases := []struct {
		name         string
		level        LogLevel
		debugVisible bool
	}{
		{
			name:         "Debug level",
			level:        LevelDebug,
			debugVisible: true,
		},
		{
			name:         "Info level",
			level:        LevelInfo,
			debugVisible: false,
		},
		{
			name:         "Warn level",
			level:        LevelWarn,
			debugVisible: false,
		},
		{
			name:         "Error level",
			level:        LevelError,
			debugVisible: false,
		},
		{
			name:         "Invalid level defaults to Info",
			level:        LogLevel("invalid"),
			debugVisible: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(&buf, tc.level)

			if defaultLogger == nil {
				t.Fatal("defaultLogger is nil after setup")
			}

			Debug("debug message")
			output := buf.String()

			if tc.debugVisible && !strings.Contains(output, "debug message") {
				t.Errorf("Expected debug message in output, got: %s", output)
			}
			if !tc.debugVisible && strings.Contains(output, "debug message") {
				t.Errorf("Did not expect debug message in output, got: %s", output)
			}
		})
	}
}

func TestLoggingWithAttributes(t *testing.T) {
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
	}()

	var buf bytes.Buffer
	SetupLogger(&buf, LevelInfo)

	Info("fetched issues", "project", "PROJ", "count", 3)

	output := buf.String()
	for _, want := range []string{"fetched issues", "project=PROJ", "count=3"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestSetupLoggerSetsSlogDefault(t *testing.T) {
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
		slog.SetDefault(originalLogger)
	}()

	var buf bytes.Buffer
	SetupLogger(&buf, LevelInfo)

	if slog.Default() != defaultLogger {
		t.Error("Expected slog default to be the configured logger")
	}
}

func TestMaskSensitive(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "Empty value",
			value:    "",
			expected: "<not set>",
		},
		{
			name:     "Short value",
			value:    "abcd",
			expected: "<set>",
		},
		{
			name:     "Long value keeps prefix only",
			value:    "secret-api-token",
			expected: "secr...***",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaskSensitive(tc.value); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
