// Package filelock serialises writers of shared config files across processes.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"
)

// Lock is an exclusive advisory lock held on a sidecar ".lock" file
type Lock struct {
	file *os.File
}

// Acquire blocks until an exclusive lock for path is held
func Acquire(path string) (*Lock, error) {
	lockPath := path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := lockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", lockPath, err)
	}

	return &Lock{file: file}, nil
}

// Release unlocks and closes the lock file
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	defer l.file.Close()
	return unlockFile(l.file)
}
