// Package project locates the git work tree enclosing a directory.
package project

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/linelint/internal/constants"
)

// FindGitRoot returns the nearest directory at or above startDir that
// contains a .git entry. startDir should be absolute.
func FindGitRoot(fs afero.Fs, startDir string) (string, bool) {
	return findProjectMarker(fs, filepath.Clean(startDir), []string{constants.GitDir})
}

// GitDir returns the git metadata directory of root when it is a real
// directory. Worktrees and submodules use a .git file, which is not followed.
func GitDir(fs afero.Fs, root string) (string, bool) {
	gitDir := filepath.Join(root, constants.GitDir)
	ok, err := afero.DirExists(fs, gitDir)
	if err != nil || !ok {
		return "", false
	}
	return gitDir, true
}

// findProjectMarker searches for project root markers starting from the given directory
func findProjectMarker(fs afero.Fs, startDir string, markers []string) (string, bool) {
	currentDir := startDir

	for {
		if hasProjectMarker(fs, currentDir, markers) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)

		// Stop if we've reached the filesystem root
		if parentDir == currentDir {
			break
		}

		currentDir = parentDir
	}

	return "", false
}

// hasProjectMarker checks if any of the given markers exist in the directory
func hasProjectMarker(fs afero.Fs, dir string, markers []string) bool {
	for _, marker := range markers {
		if _, err := fs.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
