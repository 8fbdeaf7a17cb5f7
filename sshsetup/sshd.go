package sshsetup

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/xid"
)

// Setting is one sshd_config directive.
type Setting struct {
	Key   string
	Value string
}

// PasswordLoginSettings are the directives required for root password logins.
var PasswordLoginSettings = []Setting{
	{Key: "PermitRootLogin", Value: "yes"},
	{Key: "PasswordAuthentication", Value: "yes"},
}

var (
	matchBlock  = regexp.MustCompile(`(?i)^\s*Match\s`)
	includeLine = regexp.MustCompile(`(?i)^\s*Include\s`)
)

// ApplySettings returns content with every setting in effect. sshd keeps the
// first value it reads for a directive and reads an Include where it
// appears, so each setting must occur before the first Include or Match
// line. Active occurrences in the global section are rewritten. Without an
// active one before that point, the first commented occurrence there is
// uncommented. Otherwise the directive is inserted right before it.
func ApplySettings(content string, settings []Setting) string {
	lines := strings.Split(content, "\n")
	for _, s := range settings {
		lines = applySetting(lines, s)
	}
	return strings.Join(lines, "\n")
}

func applySetting(lines []string, s Setting) []string {
	active := regexp.MustCompile(`(?i)^\s*` + regexp.QuoteMeta(s.Key) + `\s`)
	commented := regexp.MustCompile(`(?i)^\s*#\s*` + regexp.QuoteMeta(s.Key) + `\s`)
	want := s.Key + " " + s.Value

	global, first := len(lines), len(lines)
	for i, l := range lines {
		if includeLine.MatchString(l) && first == len(lines) {
			first = i
		}
		if matchBlock.MatchString(l) {
			global, first = i, min(first, i)
			break
		}
	}

	found := false
	firstComment := -1
	for i, l := range lines[:global] {
		switch {
		case active.MatchString(l):
			lines[i] = want
			found = found || i < first
		case firstComment < 0 && i < first && commented.MatchString(l):
			firstComment = i
		}
	}
	if found {
		return lines
	}
	if firstComment >= 0 {
		lines[firstComment] = want
		return lines
	}

	at := first
	// Keep a trailing newline at the end of the file.
	if at == len(lines) && at > 0 && lines[at-1] == "" {
		at--
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, want)
	return append(out, lines[at:]...)
}

// EditConfig applies settings to the sshd_config at path. The original is
// backed up once as <path>.poddash-<id>.bak before the first change. It
// returns the backup path, or "" when no new backup was written.
func EditConfig(path string, settings []Setting) (backup string, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("read sshd config: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", false, fmt.Errorf("stat sshd config: %w", err)
	}

	updated := ApplySettings(string(data), settings)
	if updated == string(data) {
		return "", false, nil
	}

	existing, _ := filepath.Glob(path + ".poddash-*.bak")
	if len(existing) == 0 {
		backup = path + ".poddash-" + xid.New().String() + ".bak"
		if err := os.WriteFile(backup, data, info.Mode().Perm()); err != nil {
			return "", false, fmt.Errorf("backup sshd config: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".sshd_config-*")
	if err != nil {
		return backup, false, fmt.Errorf("write sshd config: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(updated); err != nil {
		tmp.Close()
		return backup, false, fmt.Errorf("write sshd config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return backup, false, fmt.Errorf("write sshd config: %w", err)
	}
	if err := os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return backup, false, fmt.Errorf("write sshd config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return backup, false, fmt.Errorf("replace sshd config: %w", err)
	}
	return backup, true, nil
}
