package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/d2verb/sparklesign/internal/config"
	"github.com/d2verb/sparklesign/internal/logging"
	"github.com/d2verb/sparklesign/internal/pathutil"
)

// stdout receives machine-readable command output. Can be replaced for testing.
var stdout io.Writer = os.Stdout

// settings is bound into every command's Run method.
type settings struct {
	paths     *config.Paths
	config    *config.Config
	configDir string // relative key_path values resolve from here
	logger    *slog.Logger
	closer    io.Closer
}

func (s *settings) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func getPaths() (*config.Paths, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

// loadSettings reads the config file (configPath overrides the default
// location) and opens the audit log when it is enabled.
func loadSettings(configPath string) (*settings, error) {
	paths, err := getPaths()
	if err != nil {
		return nil, err
	}

	// The default location is optional; an explicit --config must exist.
	var cfg *config.Config
	if configPath == "" {
		configPath = paths.Config
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFile(configPath)
	}
	if err != nil {
		return nil, err
	}

	s := &settings{
		paths:     paths,
		config:    cfg,
		configDir: filepath.Dir(configPath),
		logger:    logging.Discard(),
	}

	if cfg.AuditLog {
		if err := paths.EnsureDirectories(); err != nil {
			return nil, fmt.Errorf("create directories: %w", err)
		}
		w := logging.NewRotatingWriter(logging.Config{
			Path:       paths.AuditLog,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		})
		s.logger = logging.NewLogger(w)
		s.closer = w
	}

	return s, nil
}

// resolveKeyPath picks the -f value, falling back to key_path from the config.
func resolveKeyPath(flag string, s *settings) (string, error) {
	if flag != "" {
		return pathutil.ExpandTilde(flag)
	}
	if s.config.KeyPath != "" {
		return pathutil.ResolvePath(s.config.KeyPath, s.configDir)
	}
	return "", errKeyRequired()
}

func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
