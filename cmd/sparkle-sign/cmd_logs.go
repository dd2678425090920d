package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/d2verb/sparklesign/internal/ui"
)

type LogsCmd struct {
	Follow bool `short:"f" help:"Follow log output in real-time (tail -f)"`
}

func (c *LogsCmd) Run(s *settings) error {
	logPath := s.paths.AuditLog

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		return fmt.Errorf("audit log not found: %s\nHint: set 'audit_log: true' in %s", logPath, s.paths.Config)
	}

	args := []string{"tail"}
	if c.Follow {
		args = append(args, "-f")
	}
	args = append(args, logPath)

	tailPath, err := exec.LookPath("tail")
	if err != nil {
		return fmt.Errorf("tail command not found in PATH (install coreutils or similar)")
	}

	if c.Follow {
		ui.PrintInfo(fmt.Sprintf("Following %s (Ctrl-C to stop)", logPath))
	}

	// Replace current process with tail
	return syscall.Exec(tailPath, args, os.Environ())
}
