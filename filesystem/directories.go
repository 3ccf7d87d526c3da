package filesystem

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no ancestor directory carries the marker.
var ErrRootNotFound = errors.New("repository root not found")

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func IsDirectory(path string) bool {
	fs, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fs.IsDir()
}

// FindRoot returns the first of start and its parents containing a directory
// named marker.
func FindRoot(start string, marker string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if IsDirectory(filepath.Join(dir, marker)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}

		dir = parent
	}
}

// FindRootFromWorkingDirectory is FindRoot starting at the working directory.
func FindRootFromWorkingDirectory(marker string) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return FindRoot(pwd, marker)
}
