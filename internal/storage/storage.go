// Package storage provides XDG-compliant storage path management for linelint.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/linelint/internal/constants"
)

// Manager handles storage operations with filesystem abstraction
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetStateDir returns the XDG state directory for linelint, creating it if necessary
func (m *Manager) GetStateDir() (string, error) {
	stateDir := filepath.Join(xdg.StateHome, constants.AppName)
	err := m.fs.MkdirAll(stateDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create state directory %s: %w", stateDir, err)
	}
	return stateDir, nil
}

// GetLogPath returns the full path to the linelint log file
func (m *Manager) GetLogPath() (string, error) {
	stateDir, err := m.GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, constants.LogFilename), nil
}

// GlobalGitIgnorePath returns git's default global excludes file,
// $XDG_CONFIG_HOME/git/ignore. It is used when core.excludesfile is unset.
func GlobalGitIgnorePath() string {
	return filepath.Join(xdg.ConfigHome, "git", "ignore")
}
