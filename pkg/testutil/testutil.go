package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// taxonomyEnv mirrors config.PathEnv; importing config here would make a cycle
// for the config tests.
const taxonomyEnv = "ATTEMPT_TAXONOMY"

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// Env is an isolated set of user directories
type Env struct {
	Root       string
	ConfigHome string
	StateHome  string
}

// IsolateEnv points the XDG config and state homes at a fresh temp dir,
// disables colour output and makes the default taxonomy path a missing file.
// The variables are restored when the test ends.
func IsolateEnv(t *testing.T) Env {
	t.Helper()

	root := t.TempDir()
	env := Env{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
	}

	// Registered first so it runs after the variables are restored.
	t.Cleanup(xdg.Reload)

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	t.Setenv(taxonomyEnv, filepath.Join(root, "missing.toml"))
	xdg.Reload()

	return env
}

// TraceLogger returns a logger that records every level into the buffer
func TraceLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf).Level(zerolog.TraceLevel), buf
}
