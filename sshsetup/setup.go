package sshsetup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bernd/poddash/config"
	"github.com/bernd/poddash/pod"
)

// SetupTitle is the frame title of the SSH Setup screen.
const SetupTitle = "SSH Setup"

// Options configures Setup.
type Options struct {
	User           string
	PasswordFile   string
	PasswordLength int
	SSHDConfig     string
	StartCommand   []string
	Runner         Runner
}

// OptionsFromConfig builds Options from the ssh config section using the
// host command runner.
func OptionsFromConfig(c config.SSHConfig) Options {
	return Options{
		User:           c.User,
		PasswordFile:   c.PasswordFile,
		PasswordLength: c.PasswordLength,
		SSHDConfig:     c.SSHDConfig,
		StartCommand:   c.StartCommand,
		Runner:         ExecRunner{},
	}
}

// Step is the outcome of one setup step.
type Step struct {
	Name   string
	Detail string
	Err    error
}

// Result collects what Setup did.
type Result struct {
	Steps    []Step
	User     string
	Password string
	Command  string
}

// OK reports whether every step succeeded.
func (r Result) OK() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return false
		}
	}
	return true
}

// Setup enables root password logins: it sets a fresh password, stores it,
// updates sshd_config and starts the SSH service. Steps after a failed
// password change are skipped. The returned error joins all step errors;
// the Result is always usable for display.
func Setup(ctx context.Context, opts Options, snap pod.Snapshot) (Result, error) {
	res := Result{User: opts.User, Command: SSHCommand(opts.User, snap)}
	var errs []error
	record := func(name, detail string, err error) bool {
		res.Steps = append(res.Steps, Step{Name: name, Detail: detail, Err: err})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return err == nil
	}

	password, err := GeneratePassword(opts.PasswordLength)
	if !record("generate password", fmt.Sprintf("%d characters", opts.PasswordLength), err) {
		return res, errors.Join(errs...)
	}

	err = opts.Runner.Run(ctx, opts.User+":"+password+"\n", "chpasswd")
	if !record("set password", "user "+opts.User, err) {
		return res, errors.Join(errs...)
	}
	res.Password = password

	record("store password", opts.PasswordFile, WritePassword(opts.PasswordFile, password))

	backup, changed, err := EditConfig(opts.SSHDConfig, PasswordLoginSettings)
	detail := opts.SSHDConfig + " already allows password logins"
	if changed {
		detail = "updated " + opts.SSHDConfig
		if backup != "" {
			detail += ", backup " + backup
		}
	}
	record("configure sshd", detail, err)

	if len(opts.StartCommand) == 0 {
		record("start ssh", "no start command configured", nil)
	} else {
		err = opts.Runner.Run(ctx, "", opts.StartCommand[0], opts.StartCommand[1:]...)
		record("start ssh", strings.Join(opts.StartCommand, " "), err)
	}

	return res, errors.Join(errs...)
}

// Content renders the result for the SSH Setup screen.
func (r Result) Content() string {
	var b strings.Builder
	for _, s := range r.Steps {
		mark := "ok  "
		if s.Err != nil {
			mark = "FAIL"
		}
		fmt.Fprintf(&b, "[%s] %s", mark, s.Name)
		if s.Detail != "" {
			fmt.Fprintf(&b, " (%s)", s.Detail)
		}
		b.WriteByte('\n')
		if s.Err != nil {
			fmt.Fprintf(&b, "       %v\n", s.Err)
		}
	}

	b.WriteByte('\n')
	if r.Password == "" {
		b.WriteString("SSH password login was not enabled.\n")
		return strings.TrimSuffix(b.String(), "\n")
	}
	fmt.Fprintf(&b, "User:     %s\n", r.User)
	fmt.Fprintf(&b, "Password: %s\n", r.Password)
	if r.Command != "" {
		fmt.Fprintf(&b, "\nConnect with:\n  %s\n", r.Command)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// SSHCommand returns the ssh invocation for the pod's public endpoint, or ""
// when the pod does not expose one.
func SSHCommand(user string, snap pod.Snapshot) string {
	ip, ok := snap.Lookup(pod.KeyPublicIP)
	if !ok {
		return ""
	}
	port, ok := snap.Lookup(pod.KeySSHPort)
	if !ok {
		return ""
	}
	return fmt.Sprintf("ssh %s@%s -p %s", user, ip, port)
}
