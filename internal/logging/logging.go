// Package logging provides the signing audit log with file rotation.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds log file configuration.
type Config struct {
	Path       string // Log file path
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Number of old files to keep
	MaxAgeDays int    // Max age in days
	Compress   bool   // Compress old files
}

// NewRotatingWriter creates a log writer with rotation support.
func NewRotatingWriter(cfg Config) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// NewLogger creates a structured logger that writes to the given writer.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SignEvent is one audit record. It never holds key material or the
// signature itself.
type SignEvent struct {
	File        string
	Size        int64
	SHA256      string
	Fingerprint string
	ErrKind     string // empty on success
	Err         error
}

// LogSign writes ev to logger.
func LogSign(logger *slog.Logger, ev SignEvent) {
	attrs := []any{"file", ev.File}
	if ev.Err != nil {
		attrs = append(attrs, "kind", ev.ErrKind, "error", ev.Err.Error())
		logger.Error("sign failed", attrs...)
		return
	}
	attrs = append(attrs,
		"size", ev.Size,
		"sha256", ev.SHA256,
		"key_fingerprint", ev.Fingerprint,
	)
	logger.Info("signed", attrs...)
}
