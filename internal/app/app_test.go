package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRenderFrame_Contacts(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	require.NoError(t, RenderFrame(&out, Options{}, "contacts", 120, 30))

	frame := out.String()
	assert.Contains(t, frame, "[Contacts]")
	assert.Contains(t, frame, "Olivia Hart")
	assert.Contains(t, frame, "page 1 of 2")
}

func TestRenderFrame_OverviewShowsFinalCounters(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	require.NoError(t, RenderFrame(&out, Options{}, "overview", 120, 40))
	assert.Contains(t, out.String(), "$1,284,500")
}

func TestRenderFrame_UsesStoredTheme(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	prefsPath := filepath.Join(home, "prefs.toml")
	require.NoError(t, os.WriteFile(prefsPath, []byte("theme = \"dark\"\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, RenderFrame(&out, Options{PrefsPath: prefsPath}, "tasks", 100, 20))
	assert.Contains(t, out.String(), "T:dark")
}

func TestRenderFrame_Errors(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := RenderFrame(&bytes.Buffer{}, Options{}, "reports", 80, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view")

	err = RenderFrame(&bytes.Buffer{}, Options{}, "tasks", 0, 24)
	require.Error(t, err)

	cfgPath := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("panels = [\"tasks\"]\n"), 0o600))
	err = RenderFrame(&bytes.Buffer{}, Options{ConfigPath: cfgPath}, "contacts", 80, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")

	err = RenderFrame(&bytes.Buffer{}, Options{SeedPath: filepath.Join(home, "missing.yaml")}, "tasks", 80, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load seed")
}

func TestRenderFrame_CustomSeedAndLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	seedPath := filepath.Join(home, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
contacts: []
tasks: []
activity: []
activity_templates:
  - actor: Test User
    action: did something
    time: now
`), 0o644))
	logPath := filepath.Join(home, "logs", "pulse.log")
	cfgPath := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_path = \""+logPath+"\"\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, RenderFrame(&out, Options{ConfigPath: cfgPath, SeedPath: seedPath, Verbose: true}, "tasks", 100, 20))
	assert.Contains(t, out.String(), "No tasks yet. Add your first task.")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "environment loaded"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", firstNonEmpty())
}
