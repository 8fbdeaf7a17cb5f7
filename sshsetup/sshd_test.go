package sshsetup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySettings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "replaces active directives",
			in:   "Port 22\nPermitRootLogin prohibit-password\nPasswordAuthentication no\n",
			want: "Port 22\nPermitRootLogin yes\nPasswordAuthentication yes\n",
		},
		{
			name: "uncomments first commented directive",
			in:   "#PermitRootLogin prohibit-password\n# PasswordAuthentication yes\n#PasswordAuthentication no\n",
			want: "PermitRootLogin yes\nPasswordAuthentication yes\n#PasswordAuthentication no\n",
		},
		{
			name: "appends missing directives",
			in:   "Port 22\n",
			want: "Port 22\nPermitRootLogin yes\nPasswordAuthentication yes\n",
		},
		{
			name: "inserts before match block",
			in:   "Port 22\nMatch User git\n  PasswordAuthentication no\n",
			want: "Port 22\nPermitRootLogin yes\nPasswordAuthentication yes\nMatch User git\n  PasswordAuthentication no\n",
		},
		{
			name: "inserts before include",
			in:   "Include /etc/ssh/sshd_config.d/*.conf\n#PermitRootLogin prohibit-password\nPasswordAuthentication no\n",
			want: "PermitRootLogin yes\nPasswordAuthentication yes\nInclude /etc/ssh/sshd_config.d/*.conf\n#PermitRootLogin prohibit-password\nPasswordAuthentication yes\n",
		},
		{
			name: "setting before include is kept",
			in:   "PermitRootLogin no\nPasswordAuthentication yes\nInclude /etc/ssh/sshd_config.d/*.conf\n",
			want: "PermitRootLogin yes\nPasswordAuthentication yes\nInclude /etc/ssh/sshd_config.d/*.conf\n",
		},
		{
			name: "leaves similar names alone",
			in:   "PermitRootLoginExtra no\n",
			want: "PermitRootLoginExtra no\nPermitRootLogin yes\nPasswordAuthentication yes\n",
		},
		{
			name: "already configured",
			in:   "PermitRootLogin yes\nPasswordAuthentication yes\n",
			want: "PermitRootLogin yes\nPasswordAuthentication yes\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplySettings(tt.in, PasswordLoginSettings)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ApplySettings(got, PasswordLoginSettings), "second pass changes nothing")
		})
	}
}

func TestEditConfig_BacksUpOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sshd_config")
	original := "PermitRootLogin no\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	backup, changed, err := EditConfig(path, PasswordLoginSettings)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotEmpty(t, backup)
	assert.Regexp(t, `sshd_config\.poddash-[0-9a-v]{20}\.bak$`, backup)

	saved, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, string(saved))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PermitRootLogin yes\nPasswordAuthentication yes\n", string(data))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// A second edit with a change must not write another backup.
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))
	backup, changed, err = EditConfig(path, PasswordLoginSettings)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, backup)

	backups, _ := filepath.Glob(path + ".poddash-*.bak")
	assert.Len(t, backups, 1)
}

func TestEditConfig_Unchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sshd_config")
	require.NoError(t, os.WriteFile(path, []byte("PermitRootLogin yes\nPasswordAuthentication yes\n"), 0o644))

	backup, changed, err := EditConfig(path, PasswordLoginSettings)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, backup)

	backups, _ := filepath.Glob(path + ".poddash-*.bak")
	assert.Empty(t, backups)
}

func TestEditConfig_Missing(t *testing.T) {
	_, _, err := EditConfig(filepath.Join(t.TempDir(), "sshd_config"), PasswordLoginSettings)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
