package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRotatingWriter(t *testing.T) {
	// Arrange
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "sign.log")
	cfg := Config{
		Path:       logPath,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}

	// Act
	writer := NewRotatingWriter(cfg)
	_, err := writer.Write([]byte("test log message\n"))
	writer.Close()

	// Assert
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "test log message\n" {
		t.Errorf("log content = %q", data)
	}
}

func TestNewLogger(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	// Act
	logger.Info("test message", "key", "value")

	// Assert
	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Log output should contain 'test message': %q", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Log output should contain 'key=value': %q", output)
	}
	if !strings.Contains(output, "level=INFO") {
		t.Errorf("Log output should contain 'level=INFO': %q", output)
	}
}

func TestLogSign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		// Act
		LogSign(logger, SignEvent{
			File:        "/tmp/app.zip",
			Size:        42,
			SHA256:      "abc123",
			Fingerprint: "f00d",
		})

		// Assert
		output := buf.String()
		for _, want := range []string{"level=INFO", "msg=signed", "file=/tmp/app.zip", "size=42", "sha256=abc123", "key_fingerprint=f00d"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q: %q", want, output)
			}
		}
	})

	t.Run("failure", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		// Act
		LogSign(logger, SignEvent{
			File:    "/tmp/app.zip",
			ErrKind: "file_read",
			Err:     errors.New("no such file"),
		})

		// Assert
		output := buf.String()
		for _, want := range []string{"level=ERROR", `msg="sign failed"`, "kind=file_read", `error="no such file"`} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q: %q", want, output)
			}
		}
		if strings.Contains(output, "key_fingerprint") {
			t.Errorf("failure record should not carry fingerprint: %q", output)
		}
	})
}

func TestDiscard(t *testing.T) {
	// Should not panic
	LogSign(Discard(), SignEvent{File: "x"})
}
