package sshsetup

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bernd/poddash/pod"
)

// ConnectionTitle is the frame title of the Connection Details screen.
const ConnectionTitle = "Connection Details"

// ConnectionOptions selects what the Connection Details screen shows.
type ConnectionOptions struct {
	User         string
	PasswordFile string
	// FileServerPort is set when the zero-GPU file server was started.
	FileServerPort int
}

// ConnectionDetails renders how to reach the pod from outside.
func ConnectionDetails(snap pod.Snapshot, opts ConnectionOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pod:        %s\n", snap.Get(pod.KeyPodID))
	fmt.Fprintf(&b, "Public IP:  %s\n", snap.Get(pod.KeyPublicIP))
	fmt.Fprintf(&b, "SSH port:   %s\n", snap.Get(pod.KeySSHPort))
	fmt.Fprintf(&b, "User:       %s\n", opts.User)

	password, err := ReadPassword(opts.PasswordFile)
	switch {
	case err == nil:
		fmt.Fprintf(&b, "Password:   %s\n", password)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(&b, "Password:   %s (run SSH Setup first)\n", pod.NotAvailable)
	default:
		fmt.Fprintf(&b, "Password:   %s (%v)\n", pod.NotAvailable, err)
	}

	b.WriteByte('\n')
	if cmd := SSHCommand(opts.User, snap); cmd != "" {
		fmt.Fprintf(&b, "SSH:\n  %s\n", cmd)
	} else {
		b.WriteString("SSH:\n  the pod does not expose a public SSH port\n")
	}

	if opts.FileServerPort > 0 {
		host := snap.Get(pod.KeyPublicIP)
		port := fmt.Sprint(opts.FileServerPort)
		if p, ok := snap.Lookup(fmt.Sprintf("RUNPOD_TCP_PORT_%d", opts.FileServerPort)); ok {
			port = p
		}
		fmt.Fprintf(&b, "\nFile server (no GPU attached):\n  http://%s:%s/\n", host, port)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
