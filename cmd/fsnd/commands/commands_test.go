package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milindvishnoi/FSND/security/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "Go Version:")
	assert.Contains(t, execute(t, "version", "--json"), `"goVersion"`)
}

func TestTokenCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("auth:\n  jwt:\n    secret: cli-secret\n"), 0o644))

	token := strings.TrimSpace(execute(t, "token", "-c", file, "--permissions", "get:drinks-detail,post:drinks"))
	claims, err := jwt.NewTokenManager("cli-secret").Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "barista", claims.Subject)
	assert.True(t, claims.Has("post:drinks"))
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
data:
  database:
    master:
      driver: sqlite
      source: "file:`+filepath.Join(dir, "fsnd.db")+`?cache=shared&_fk=1"
logger:
  level: 2
`), 0o644))

	execute(t, "seed", "-c", file)
	// seeding twice leaves existing rows alone
	execute(t, "seed", "-c", file)
}
