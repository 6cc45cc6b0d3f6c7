package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/attempt/pkg/logging"
)

// DefaultFileName is the taxonomy file looked up in the XDG config dirs
const DefaultFileName = "kinds.toml"

// PathEnv names the environment variable that points at a taxonomy file
const PathEnv = EnvPrefix + "TAXONOMY"

// DefaultPath returns where the user taxonomy lives: $ATTEMPT_TAXONOMY when
// set, otherwise $XDG_CONFIG_HOME/attempt/kinds.toml.
func DefaultPath() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, logging.AppName, DefaultFileName)
}

// FindDefault returns the first existing taxonomy among $ATTEMPT_TAXONOMY and
// the XDG config search path.
func FindDefault() (string, bool) {
	if p := os.Getenv(PathEnv); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		return "", false
	}
	p, err := xdg.SearchConfigFile(filepath.Join(logging.AppName, DefaultFileName))
	if err != nil {
		return "", false
	}
	return p, true
}
