//go:build windows

package tui

import (
	"os"
	"os/signal"
)

// notifyTerminate only watches os.Interrupt on Windows; console close events
// are delivered through the console API instead.
func notifyTerminate(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}

func signalExitCode(_ os.Signal) int { return 130 }
