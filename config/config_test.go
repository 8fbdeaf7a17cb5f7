package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.True(t, cfg.ClampScroll)
	assert.Equal(t, "root", cfg.SSH.User)
	assert.Equal(t, []string{"service", "ssh", "start"}, cfg.SSH.StartCommand)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
title: My Pod
clamp-scroll: false
ssh:
  user: ubuntu
  password-length: 24
fileserver:
  port: 9000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "My Pod", cfg.Title)
	assert.False(t, cfg.ClampScroll)
	assert.Equal(t, "ubuntu", cfg.SSH.User)
	assert.Equal(t, 24, cfg.SSH.PasswordLength)
	assert.Equal(t, 9000, cfg.FileServer.Port)

	// Untouched keys keep their defaults.
	def := Default()
	assert.Equal(t, def.Tagline, cfg.Tagline)
	assert.Equal(t, def.SSH.SSHDConfig, cfg.SSH.SSHDConfig)
	assert.Equal(t, def.FileServer.Dir, cfg.FileServer.Dir)
}

func TestLoad_StartCommand(t *testing.T) {
	path := writeConfig(t, `
ssh:
  start-command: ["/usr/sbin/sshd"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/sbin/sshd"}, cfg.SSH.StartCommand)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "title: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "short password", content: "ssh:\n  password-length: 4\n", want: "ssh.password-length"},
		{name: "empty user", content: "ssh:\n  user: \"\"\n", want: "ssh.user"},
		{name: "bad port", content: "fileserver:\n  port: 70000\n", want: "fileserver.port"},
		{name: "zero rate", content: "fileserver:\n  rate: 0\n", want: "fileserver.rate"},
		{name: "negative rate", content: "fileserver:\n  rate: -5\n", want: "fileserver.rate"},
		{name: "zero burst", content: "fileserver:\n  burst: 0\n", want: "fileserver.burst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(DefaultPath())))
	assert.Equal(t, "ssh-password", filepath.Base(DefaultPasswordPath()))
}
