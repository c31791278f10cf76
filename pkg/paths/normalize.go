package paths

import (
	"os"
	"path/filepath"
)

// Normalize makes path absolute against cwd and cleans it. An empty path
// stands for cwd itself and a leading ~ is expanded. Symlinks are not
// resolved, so a linked directory and its target are different entries.
func Normalize(path, cwd string) string {
	if path == "" {
		return filepath.Clean(cwd)
	}
	path = expandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return filepath.Clean(path)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
