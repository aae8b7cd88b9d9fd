package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.level.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, tt.level.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
		{"unknown", LevelInfo}, // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelDebug})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false

	logger.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected output to contain 'INFO', got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelWarn})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should be present")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should be present")
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelDebug})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false

	componentLogger := logger.WithComponent("api")
	componentLogger.Info("request sent")

	output := buf.String()
	if !strings.Contains(output, "[api]") {
		t.Errorf("expected output to contain '[api]', got: %s", output)
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelDebug})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false

	fieldLogger := logger.WithField("lease_id", "lease-123")
	fieldLogger.Info("analysis complete")

	output := buf.String()
	if !strings.Contains(output, "lease_id=lease-123") {
		t.Errorf("expected output to contain 'lease_id=lease-123', got: %s", output)
	}
}

func TestLoggerWithMultipleFields(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelDebug})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false

	fieldLogger := logger.WithFields(map[string]interface{}{
		"status": 200,
		"method": "POST",
	})
	fieldLogger.Info("request finished")

	output := buf.String()
	if !strings.Contains(output, "status=200") {
		t.Errorf("expected output to contain 'status=200', got: %s", output)
	}
	if !strings.Contains(output, "method=POST") {
		t.Errorf("expected output to contain 'method=POST', got: %s", output)
	}
}

func TestLoggerShowTime(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelDebug, ShowTime: true})
	logger.output = &buf
	logger.colored = false

	logger.Info("test with time")

	output := buf.String()
	// Should contain a timestamp pattern (YYYY-MM-DD)
	if !strings.Contains(output, "202") {
		t.Errorf("expected output to contain timestamp, got: %s", output)
	}
}

func TestLoggerFileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger := New(&Config{
		Level:    LevelDebug,
		FilePath: logPath,
	})
	defer logger.Close()

	logger.Info("file log test")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "file log test") {
		t.Errorf("expected log file to contain message, got: %s", string(content))
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelDebug})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false
	SetGlobal(logger)

	Info("global test message")

	output := buf.String()
	if !strings.Contains(output, "global test message") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: LevelInfo})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false
	SetGlobal(logger)

	Debug("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Error("debug message should be filtered at info level")
	}

	SetLevel(LevelDebug)

	Debug("should appear now")
	if !strings.Contains(buf.String(), "should appear now") {
		t.Errorf("debug message should appear after SetLevel, got: %s", buf.String())
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"\033[31mRed\033[0m", "Red"},
		{"\033[32mGreen\033[0m text", "Green text"},
		{"No colors", "No colors"},
		{"\033[1m\033[34mBold Blue\033[0m", "Bold Blue"},
	}

	for _, tt := range tests {
		result := stripANSI(tt.input)
		if result != tt.expected {
			t.Errorf("stripANSI(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("expected LevelInfo, got %v", cfg.Level)
	}
	if !cfg.Colored {
		t.Error("expected Colored to be true")
	}
	if !cfg.ShowTime {
		t.Error("expected ShowTime to be true")
	}
}

// Benchmarks

func BenchmarkLoggerInfo(b *testing.B) {
	var buf bytes.Buffer
	logger := New(&Config{Level: LevelInfo})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message %d", i)
	}
}

func BenchmarkLoggerWithFields(b *testing.B) {
	var buf bytes.Buffer
	logger := New(&Config{Level: LevelInfo})
	logger.output = &buf
	logger.colored = false
	logger.showTime = false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.WithField("iteration", i).Info("benchmark message")
	}
}
