package platform

import (
	"os"
	"path/filepath"
)

// DefaultOfflineDir returns the directory offline reel copies are written to,
// creating it if needed.
func DefaultOfflineDir() (string, error) {
	base, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "ReelBite", "Offline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
