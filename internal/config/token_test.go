package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh temp directory so the token file lookups are
// isolated from the developer's real working directory.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestResolveToken_ExplicitWins(t *testing.T) {
	chdir(t)
	t.Setenv(EnvToken, "from-env")

	token, err := ResolveToken("from-flag", false)

	require.NoError(t, err)
	assert.Equal(t, "from-flag", token)
}

func TestResolveToken_Environment(t *testing.T) {
	chdir(t)
	t.Setenv(EnvToken, "from-env")

	token, err := ResolveToken("", false)

	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestResolveToken_TokenFilePrecedence(t *testing.T) {
	dir := chdir(t)
	t.Setenv(EnvToken, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token.env"), []byte("GITHUB_TOKEN=from-token-env\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GITHUB_TOKEN=from-dot-env\n"), 0o600))

	token, err := ResolveToken("", false)

	require.NoError(t, err)
	// token.env is consulted before .env.
	assert.Equal(t, "from-token-env", token)
}

func TestResolveToken_DotEnvFallback(t *testing.T) {
	dir := chdir(t)
	t.Setenv(EnvToken, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GITHUB_TOKEN=from-dot-env\n"), 0o600))

	token, err := ResolveToken("", false)

	require.NoError(t, err)
	assert.Equal(t, "from-dot-env", token)
}

func TestResolveToken_NoSource(t *testing.T) {
	chdir(t)
	t.Setenv(EnvToken, "")

	_, err := ResolveToken("", false)

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestLoadDashboardConfig(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// defaults to apply.
	t.Setenv("STREAMGIT_HOST", "placeholder")
	t.Setenv("STREAMGIT_PORT", "1")
	os.Unsetenv("STREAMGIT_HOST")
	os.Unsetenv("STREAMGIT_PORT")

	cfg, err := LoadDashboardConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8501", cfg.Addr())

	t.Setenv("STREAMGIT_HOST", "0.0.0.0")
	t.Setenv("STREAMGIT_PORT", "9000")

	cfg, err = LoadDashboardConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
}
