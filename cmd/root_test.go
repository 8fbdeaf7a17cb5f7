package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Commands(t *testing.T) {
	root := RootCommand()

	assert.Equal(t, "poddash", root.Name)
	require.Len(t, root.Commands, 1)
	serve := root.Commands[0]
	assert.Equal(t, "serve-files", serve.Name)
	assert.True(t, serve.Hidden)
	assert.Empty(t, root.Flags)
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	err := RootCommand().Run(context.Background(), []string{"poddash", "bogus"})
	assert.ErrorContains(t, err, `unexpected argument "bogus"`)
}

func TestServeFilesCommand_Flags(t *testing.T) {
	serve := ServeFilesCommand()

	var names []string
	for _, f := range serve.Flags {
		names = append(names, f.Names()[0])
	}
	assert.Equal(t, []string{"dir", "port", "rate", "burst"}, names)
}

func TestServeFilesCommand_MissingDir(t *testing.T) {
	err := RootCommand().Run(context.Background(), []string{"poddash", "serve-files", "--dir", t.TempDir() + "/missing", "--port", "0"})
	assert.ErrorContains(t, err, "file server dir")
}
