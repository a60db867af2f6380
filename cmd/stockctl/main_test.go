package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/pkg/client"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"stockctl"}, args...))
	return out.String(), err
}

func TestSeedDryRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalogo.xml")
	require.NoError(t, os.WriteFile(file, []byte(`<catalogo>
		<repuesto codigo="SP1" nombre="Bolt" precio="2" cantidad="10"/>
		<repuesto codigo="SP2" nombre="Tuerca" precio="0.5"/>
	</catalogo>`), 0o600))

	out, err := runCLI(t, "seed", "--file", file, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "2 repuestos válidos")
}

func TestComandoSinSesion(t *testing.T) {
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	_, err := runCLI(t, "--session", sessionFile, "parts", "list")
	assert.ErrorIs(t, err, client.ErrNoSession)
}

func TestSessionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	require.NoError(t, saveSession(path, &client.Session{Token: "abc"}))

	s, err := loadSession(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.Token)

	require.NoError(t, removeSession(path))
	require.NoError(t, removeSession(path))
	_, err = loadSession(path)
	assert.ErrorIs(t, err, client.ErrNoSession)
}
