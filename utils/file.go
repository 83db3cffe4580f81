package utils

import (
	"os"
)

// Create creates the named file with mode 0666 (before umask), truncating it if it already exists
func Create(path string) (*os.File, error) {
	err := MkdirAll(path)
	if err != nil {
		return nil, err
	}

	return os.Create(path)
}

// MkdirAll creates a directory named path, along with any necessary parents, and returns nil, or else returns an error
func MkdirAll(path string) error {
	i := len(path)

	for i > 0 && !os.IsPathSeparator(path[i-1]) {
		i--
	}

	if i > 0 {
		err := os.MkdirAll(path[:i-1], os.ModePerm)
		if err != nil {
			return err
		}
	}

	return nil
}
