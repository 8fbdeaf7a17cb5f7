package fileserver

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bernd/poddash/config"
)

// ServeCommand is the hidden CLI command that runs the server in the
// detached process.
const ServeCommand = "serve-files"

// Args returns the command line for the detached server process.
func Args(cfg config.FileServerConfig) []string {
	return []string{
		ServeCommand,
		"--dir", cfg.Dir,
		"--port", strconv.Itoa(cfg.Port),
		"--rate", strconv.FormatFloat(cfg.Rate, 'f', -1, 64),
		"--burst", strconv.Itoa(cfg.Burst),
	}
}

// Launch starts the server as a detached copy of the running executable
// with its output in cfg.LogFile, and returns the child's pid. The child
// keeps running after the dashboard exits.
func Launch(cfg config.FileServerConfig) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("find executable: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return 0, fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(exe, Args(cfg)...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = detachAttr()
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start file server: %w", err)
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("release file server: %w", err)
	}
	return pid, nil
}

// Running reports whether something already accepts connections on the
// local port.
func Running(port int) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), 500*time.Millisecond)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
