package git

import (
	"os"
	"path/filepath"
)

// FindRepoRoot finds the repository root by walking up from startDir
// looking for a .git entry. A .git regular file counts as well as a
// directory, covering linked worktrees and submodules.
func FindRepoRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotARepository
		}
		dir = parent
	}
}
