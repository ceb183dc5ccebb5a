// Package logging builds the zap logger. The terminal belongs to the TUI,
// so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/happymeter/internal/config"
)

// DefaultLogPath returns $XDG_STATE_HOME/happymeter/happymeter.log,
// falling back to ~/.local/state. The parent directory is created.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "happymeter", "happymeter.log")
	return p, ensureDir(p)
}

// New creates a development logger for local runs and a production logger
// otherwise, both writing to cfg.LogFile or DefaultLogPath.
func New(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.LogFile
	if path == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	} else if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	var zc zap.Config
	if cfg.Production() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
