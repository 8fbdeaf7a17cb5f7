//go:build !windows

package tui

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyTerminate(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
}

// signalExitCode follows the shell convention of 128 + signal number.
func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
