package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "warn")

	logger.LogDebug("debug message")
	logger.LogInfo("info message")
	logger.LogWarn("warn message")
	logger.LogError("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("Messages below warn should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("Messages at or above warn should appear:\n%s", out)
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "info")

	logger.LogInfo("hello")

	out := buf.String()
	// "[HH:MM:SS] [INFO] hello"
	if !strings.Contains(out, "] [INFO] hello") {
		t.Errorf("Unexpected format: %q", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("Expected timestamp prefix: %q", out)
	}
}

func TestConsoleLoggerDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "bogus-level")

	logger.LogDebug("should be hidden")
	logger.LogInfo("should appear")

	out := buf.String()
	if strings.Contains(out, "should be hidden") {
		t.Errorf("Debug should be filtered at default level:\n%s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("Info should pass at default level:\n%s", out)
	}
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "info")

	// Must not panic
	logger.LogInfo("discarded")
	logger.LogError("discarded")
}

func TestConsoleLoggerConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("concurrent message")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 10 {
		t.Errorf("Expected 10 log lines, got %d", len(lines))
	}
}
