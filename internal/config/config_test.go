package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)
	require.Equal(t, "unknown", c.Author())
}

func TestAuthorPrefersConfigValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("user.name = Jane Doe\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", c.Author())
}

func TestAuthorFallsBackToEnvironment(t *testing.T) {
	t.Setenv("JIT_AUTHOR", "env-author")
	c, err := Load(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)
	require.Equal(t, "env-author", c.Author())
}

func TestLoadSkipsBlankLinesAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := "# a comment\n\nuser.name = Bob\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Bob", c.Author())
}
