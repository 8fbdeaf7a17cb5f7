//go:build !windows

package fileserver

import "syscall"

// A new session keeps the server alive when the dashboard's terminal goes
// away.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
